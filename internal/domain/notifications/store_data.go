package notifications

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, n Notification) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO notifications
      (id, recipient_email, type, title, message, action_url, priority, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7, now())
  `, n.ID, n.RecipientEmail, n.Type, n.Title, n.Message, nullIfEmpty(n.ActionURL), n.Priority)
	return err
}

func (s *Store) ListForRecipient(ctx context.Context, recipientEmail string, limit, offset int) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, recipient_email, type, title, message, COALESCE(action_url, ''),
           priority, read_at, created_at
    FROM notifications
    WHERE lower(recipient_email) = lower($1)
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, recipientEmail, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientEmail, &n.Type, &n.Title, &n.Message, &n.ActionURL,
			&n.Priority, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		n.Read = n.ReadAt != nil
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) UnreadCount(ctx context.Context, recipientEmail string) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM notifications
    WHERE lower(recipient_email) = lower($1) AND read_at IS NULL
  `, recipientEmail).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) MarkRead(ctx context.Context, recipientEmail, id string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET read_at = now()
    WHERE lower(recipient_email) = lower($1) AND id = $2 AND read_at IS NULL
  `, recipientEmail, id)
	return err
}

func (s *Store) MarkAllRead(ctx context.Context, recipientEmail string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET read_at = now()
    WHERE lower(recipient_email) = lower($1) AND read_at IS NULL
  `, recipientEmail)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
