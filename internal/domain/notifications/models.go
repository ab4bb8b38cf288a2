package notifications

import "time"

type Notification struct {
	ID             string     `json:"id"`
	RecipientEmail string     `json:"recipientEmail"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	ActionURL      string     `json:"actionUrl,omitempty"`
	Priority       string     `json:"priority"`
	Read           bool       `json:"read"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
