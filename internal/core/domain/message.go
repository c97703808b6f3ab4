package domain

import "time"

// Message is a platform inbox entry surfaced on the admin messages page.
type Message struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Read    bool      `json:"read"`
	SentAt  time.Time `json:"sent_at"`
}
