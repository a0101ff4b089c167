package queue

import (
	"context"
	"testing"

	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWebhookConsumer_AcksAfterHandling(t *testing.T) {
	webhook := mockUsecase.NewMockWebhookUsecase(t)
	consumer := &webhookConsumer{
		queue:   "webhook-events",
		logger:  testLogger(),
		webhook: webhook,
	}

	body := `{"type":"user.created","user":{"id":"auth0|abc","email":"pro@example.com","email_verified":true,"name":"Pat"}}`
	msg, ack := deliveryWithBody(t, body)

	webhook.EXPECT().
		HandleIdentityEvent(mock.Anything, mock.MatchedBy(func(e *usecase.IdentityEvent) bool {
			return e.Type == usecase.IdentityEventUserCreated && e.User.ID == "auth0|abc" && e.User.EmailVerified
		})).
		Return(nil)

	consumer.handle(context.Background(), msg)

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestWebhookConsumer_MalformedEventIsDiscarded(t *testing.T) {
	webhook := mockUsecase.NewMockWebhookUsecase(t)
	consumer := &webhookConsumer{
		queue:   "webhook-events",
		logger:  testLogger(),
		webhook: webhook,
	}

	msg, ack := deliveryWithBody(t, `not json at all`)

	consumer.handle(context.Background(), msg)

	require.True(t, ack.nacked)
	assert.False(t, ack.requeue)
	assert.False(t, ack.acked)
	webhook.AssertNotCalled(t, "HandleIdentityEvent", mock.Anything, mock.Anything)
}

func TestWebhookConsumer_DrainStopsCleanlyOnShutdown(t *testing.T) {
	webhook := mockUsecase.NewMockWebhookUsecase(t)
	consumer := &webhookConsumer{
		queue:   "webhook-events",
		logger:  testLogger(),
		webhook: webhook,
	}

	deliveries := make(chan amqp.Delivery)
	consumer.stopping.Store(true)
	close(deliveries)

	assert.NoError(t, consumer.drain(context.Background(), deliveries))
}

func TestWebhookConsumer_HandlerErrorNacksWithoutRequeue(t *testing.T) {
	webhook := mockUsecase.NewMockWebhookUsecase(t)
	consumer := &webhookConsumer{
		queue:   "webhook-events",
		logger:  testLogger(),
		webhook: webhook,
	}

	msg, ack := deliveryWithBody(t, `{"type":"user.renamed","user":{"id":"auth0|abc"}}`)

	webhook.EXPECT().
		HandleIdentityEvent(mock.Anything, mock.Anything).
		Return(errors.New("unknown identity event type: user.renamed"))

	consumer.handle(context.Background(), msg)

	require.True(t, ack.nacked)
	assert.False(t, ack.requeue)
	assert.False(t, ack.acked)
}
