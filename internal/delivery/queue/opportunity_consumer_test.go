package queue

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	mockUsecase "beacon/internal/mocks/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeAcknowledger records how a message was settled.
type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true

	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked = true
	f.requeue = requeue

	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	f.requeue = requeue

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func deliveryWithBody(t *testing.T, body string) (amqp.Delivery, *fakeAcknowledger) {
	t.Helper()

	ack := &fakeAcknowledger{}

	return amqp.Delivery{Acknowledger: ack, Body: []byte(body)}, ack
}

func TestOpportunityConsumer_AcksAfterDispatch(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	body := `{"id":"opp-1","title":"Bathroom renovation","location":{"latitude":37.98,"longitude":23.72}}`
	msg, ack := deliveryWithBody(t, body)

	dispatch.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(o *entity.Opportunity) bool {
			return o.ID == "opp-1" && o.Location != nil && o.Location.Latitude == 37.98
		})).
		Return(&entity.DispatchReport{OpportunityID: "opp-1", Sent: 2, Skipped: 1}, nil)

	consumer.handle(context.Background(), msg)

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestOpportunityConsumer_MalformedMessageIsDiscarded(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	msg, ack := deliveryWithBody(t, `{"id": not-json`)

	consumer.handle(context.Background(), msg)

	// A message that cannot be decoded must leave the queue without a
	// redelivery and without reaching the dispatcher.
	require.True(t, ack.nacked)
	assert.False(t, ack.requeue)
	assert.False(t, ack.acked)
	dispatch.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestOpportunityConsumer_DispatchErrorNacksWithoutRequeue(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	msg, ack := deliveryWithBody(t, `{"id":"opp-2","title":"Garden work"}`)

	dispatch.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to list verified subscribers"))

	consumer.handle(context.Background(), msg)

	require.True(t, ack.nacked)
	assert.False(t, ack.requeue)
	assert.False(t, ack.acked)
}

func TestOpportunityConsumer_DrainStopsCleanlyOnShutdown(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	deliveries := make(chan amqp.Delivery)
	consumer.stopping.Store(true)
	close(deliveries)

	// During shutdown the broker connection close ends the stream; that is
	// a normal stop, not a failure.
	assert.NoError(t, consumer.drain(context.Background(), deliveries))
}

func TestOpportunityConsumer_DrainErrorsOnUnexpectedChannelClose(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	deliveries := make(chan amqp.Delivery)
	close(deliveries)

	err := consumer.drain(context.Background(), deliveries)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestOpportunityConsumer_DrainReturnsOnContextCancel(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, consumer.drain(ctx, make(chan amqp.Delivery)))
}

func TestOpportunityConsumer_SendFailuresInReportStillAck(t *testing.T) {
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	consumer := &opportunityConsumer{
		queue:    "public-opportunities",
		logger:   testLogger(),
		dispatch: dispatch,
	}

	msg, ack := deliveryWithBody(t, `{"id":"opp-3","title":"Tiling"}`)

	dispatch.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(&entity.DispatchReport{OpportunityID: "opp-3", Sent: 1, Failed: 2}, nil)

	consumer.handle(context.Background(), msg)

	// Per-recipient failures are final, a redelivery would double-send to
	// the recipients that succeeded.
	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}
