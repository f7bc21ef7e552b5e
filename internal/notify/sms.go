package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/dtroode/travelgo-server/internal/model"
)

// messageAPI is the part of the Twilio REST client used for SMS.
type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

var _ model.Notifier = (*SMS)(nil)

// SMS texts booking confirmations to a fixed operator number.
type SMS struct {
	api  messageAPI
	from string
	to   string
}

func NewSMS(accountSID, authToken, from, to string) *SMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewSMSWithAPI(client.Api, from, to)
}

func NewSMSWithAPI(api messageAPI, from, to string) *SMS {
	return &SMS{
		api:  api,
		from: from,
		to:   to,
	}
}

// Notify sends the message and gives up when ctx is done. The Twilio client
// takes no context, so an abandoned request finishes in the background.
func (s *SMS) Notify(ctx context.Context, service, ownerEmail string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(Subject + ": " + confirmationMessage(service, ownerEmail))

	result := make(chan error, 1)
	go func() {
		_, err := s.api.CreateMessage(params)
		result <- err
	}()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("failed to send sms: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send sms: %w", ctx.Err())
	}
}
