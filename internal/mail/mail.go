// Package mail delivers transactional email through an HTTP mail API.
// Delivery is best effort: callers log failures and continue, they never
// fail the surrounding request because a message could not be sent.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hd-notes/internal/config"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/go-resty/resty/v2"
)

// Sender delivers one email message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single outgoing email with both HTML and plain-text bodies.
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From    recipient   `json:"from"`
	To      []recipient `json:"to"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html,omitempty"`
	Text    string      `json:"text,omitempty"`
}

// httpSender posts messages to a Mailtrap-compatible send endpoint with a
// bearer API key.
type httpSender struct {
	client    *resty.Client
	fromEmail string
	fromName  string
}

// NewHTTPSender builds a [Sender] for the configured mail API. If no API URL
// is configured it returns a log-only sender, so local setups work without
// mail credentials.
func NewHTTPSender(cfg config.Mail, log *logger.Logger) Sender {
	if cfg.APIURL == "" {
		log.Warn().Str("func", "NewHTTPSender").Msg("mail API URL is not set, outgoing email will only be logged")
		return &logSender{}
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &httpSender{
		client:    cli,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *httpSender) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	body := sendRequest{
		From:    recipient{Email: s.fromEmail, Name: s.fromName},
		To:      []recipient{{Email: msg.ToEmail, Name: msg.ToName}},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("")
	if err != nil {
		return fmt.Errorf("mail send request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode())
	}

	log.Debug().Str("func", "*httpSender.Send").Str("to", msg.ToEmail).Msg("email accepted by mail API")
	return nil
}

// logSender writes outgoing messages to the log instead of sending them.
type logSender struct{}

func (s *logSender) Send(ctx context.Context, msg Message) error {
	logger.FromContext(ctx).Info().
		Str("func", "*logSender.Send").
		Str("to", msg.ToEmail).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("mail delivery disabled, logging message instead")
	return nil
}
