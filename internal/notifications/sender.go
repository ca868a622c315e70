// Package notifications sends WhatsApp messages to customers about their
// bookings.
package notifications

import (
	"context"
	"fmt"
	"strings"

	"studio/pkg/config"
	"studio/pkg/logger"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender delivers body to an E.164 phone number.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// NewSender uses Twilio when credentials are configured and logs otherwise.
func NewSender(cfg *config.Config) Sender {
	if cfg.TwilioEnabled() {
		return NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom, cfg.Log)
	}
	cfg.Log.Warn("Twilio not configured, notifications are only logged")
	return NewLogSender(cfg.Log)
}

type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    *logger.Logger
}

func NewTwilioSender(accountSID, authToken, from string, log *logger.Logger) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: whatsappAddress(from),
		log:  log,
	}
}

// Send ignores ctx: the Twilio client has no context-aware calls.
func (s *TwilioSender) Send(_ context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappAddress(to))
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", to, err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.log.Info("WhatsApp message sent", "to", to, "sid", sid)
	return nil
}

func whatsappAddress(number string) string {
	return "whatsapp:" + strings.TrimPrefix(strings.TrimSpace(number), "whatsapp:")
}

// LogSender records messages without sending them.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, to, body string) error {
	s.log.Info("WhatsApp message (not sent)", "to", to, "body", body)
	return nil
}
