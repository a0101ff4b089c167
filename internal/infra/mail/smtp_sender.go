// Package mail provides the SMTP implementation of the outbound mail service.
package mail

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// opportunityTemplate renders the notification body. Coordinates are
// included only when the opportunity carries a location.
var opportunityTemplate = template.Must(template.New("opportunity").Parse(`<html>
<body>
  <h2>{{.Title}}</h2>
  <p>{{.Description}}</p>
  {{if .Location}}<p>Location: {{.Location.Latitude}}, {{.Location.Longitude}}</p>{{end}}
</body>
</html>`))

// smtpSender is a concrete implementation of the MailService interface
// backed by an SMTP relay.
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailService, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail transport is not configured")
	}
	if cfg.Mail.From == "" {
		return nil, errors.New("mail sender address must be provided")
	}

	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

// composeMessage renders one opportunity into a ready-to-send message.
func (s *smtpSender) composeMessage(to string, opportunity *entity.Opportunity) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := opportunityTemplate.Execute(&body, opportunity); err != nil {
		return nil, errors.Wrap(err, "failed to render opportunity mail")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "New Opportunity: "+opportunity.Title)
	message.SetBody("text/html", body.String())

	return message, nil
}

// SendOpportunityMail renders and sends one opportunity notification.
func (s *smtpSender) SendOpportunityMail(ctx context.Context, to string, opportunity *entity.Opportunity) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send aborted")
	}

	message, err := s.composeMessage(to, opportunity)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "failed to send opportunity mail")
	}

	s.logger.Debug("Opportunity mail sent",
		slog.String("opportunity_id", opportunity.ID),
		slog.String("recipient", to),
	)

	return nil
}
