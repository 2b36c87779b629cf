package types

import "time"

// CustomReminder is a user-registered reminder request. Records are kept
// in memory only; nothing reads them back for delivery yet, so treat the
// store as registration bookkeeping rather than a working scheduler.
type CustomReminder struct {
	ID                  string    `json:"id"`
	Time                string    `json:"time"`
	Message             string    `json:"message"`
	Where               string    `json:"where"`
	PersonalizedMessage string    `json:"personalized_message"`
	Frequency           string    `json:"frequency"`
	ChannelID           string    `json:"channel_id"`
	UserID              string    `json:"user_id"`
	CreatedAt           time.Time `json:"created_at"`
}

// Delivery is one scheduled message that was actually posted to Discord.
type Delivery struct {
	ID        string    `db:"id"`
	Kind      string    `db:"kind"`
	Category  string    `db:"category"`
	Message   string    `db:"message"`
	ChannelID string    `db:"channel_id"`
	SentAt    time.Time `db:"sent_at"`
}
