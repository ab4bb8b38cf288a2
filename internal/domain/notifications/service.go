package notifications

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Mailer mirrors the in-app notification to email when configured. A nil
// mailer keeps notifications in-app only.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	Store       StoreAPI
	Mailer      Mailer
	DefaultFrom string
}

func New(store StoreAPI, mailer Mailer, defaultFrom string) *Service {
	if defaultFrom == "" {
		defaultFrom = "no-reply@example.com"
	}
	return &Service{Store: store, Mailer: mailer, DefaultFrom: defaultFrom}
}

// Create stores a notification for the recipient. Email delivery is best
// effort and never fails the create.
func (s *Service) Create(ctx context.Context, recipientEmail, ntype, title, message, actionURL, priority string) error {
	if priority == "" {
		priority = PriorityNormal
	}
	n := Notification{
		ID:             uuid.NewString(),
		RecipientEmail: recipientEmail,
		Type:           ntype,
		Title:          title,
		Message:        message,
		ActionURL:      actionURL,
		Priority:       priority,
	}
	if err := s.Store.Insert(ctx, n); err != nil {
		return err
	}

	if s.Mailer != nil && priority == PriorityHigh {
		if err := s.Mailer.Send(ctx, s.DefaultFrom, recipientEmail, title, message); err != nil {
			slog.Warn("notification email send failed", "recipient", recipientEmail, "err", err)
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context, recipientEmail string, limit, offset int) ([]Notification, error) {
	return s.Store.ListForRecipient(ctx, recipientEmail, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, recipientEmail string) (int, error) {
	return s.Store.UnreadCount(ctx, recipientEmail)
}

func (s *Service) MarkRead(ctx context.Context, recipientEmail, id string) error {
	return s.Store.MarkRead(ctx, recipientEmail, id)
}

func (s *Service) MarkAllRead(ctx context.Context, recipientEmail string) error {
	return s.Store.MarkAllRead(ctx, recipientEmail)
}
