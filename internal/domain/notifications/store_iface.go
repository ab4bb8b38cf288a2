package notifications

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, n Notification) error
	ListForRecipient(ctx context.Context, recipientEmail string, limit, offset int) ([]Notification, error)
	UnreadCount(ctx context.Context, recipientEmail string) (int, error)
	MarkRead(ctx context.Context, recipientEmail, id string) error
	MarkAllRead(ctx context.Context, recipientEmail string) error
}
