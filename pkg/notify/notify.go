package notify

import (
	"context"
	"errors"
	"time"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

var ErrHubClosed = errors.New("notification hub closed")

const EventTypeNotification = "notification"

// Event is the realtime payload pushed to a user's room.
type Event struct {
	Type             string                      `json:"type"`
	UserID           string                      `json:"-"`
	NotificationID   uint                        `json:"notificationId,omitempty"`
	Title            string                      `json:"title"`
	Message          string                      `json:"message"`
	NotificationType models.NotificationType     `json:"notificationType"`
	Category         models.NotificationCategory `json:"category"`
	Icon             string                      `json:"icon,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
}

func EventFromNotification(n *models.Notification) Event {
	return Event{
		Type:             EventTypeNotification,
		UserID:           n.UserID,
		NotificationID:   n.ID,
		Title:            n.Title,
		Message:          n.Message,
		NotificationType: n.Type,
		Category:         n.Category,
		Icon:             n.Icon,
		CreatedAt:        n.CreatedAt,
	}
}

// Publisher delivers an event to whoever listens on the user's room. There is
// no retry and no ordering across publishers.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Fanout publishes to every member and joins their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
