package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtroode/travelgo-server/internal/model"
)

type publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Event is the payload published for every confirmed booking.
type Event struct {
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Service    string `json:"service"`
	OwnerEmail string `json:"owner_email"`
}

var _ model.Notifier = (*PubSub)(nil)

type PubSub struct {
	publisher publisher
	channel   string
}

func NewPubSub(p publisher, channel string) *PubSub {
	return &PubSub{
		publisher: p,
		channel:   channel,
	}
}

func (p *PubSub) Notify(ctx context.Context, service, ownerEmail string) error {
	payload, err := json.Marshal(Event{
		Subject:    Subject,
		Message:    confirmationMessage(service, ownerEmail),
		Service:    service,
		OwnerEmail: ownerEmail,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	if err := p.publisher.Publish(ctx, p.channel, payload); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
