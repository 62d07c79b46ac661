package domain

import "time"

// Comment on a video. Comments are ordered newest first and are never edited
// or deleted once created.
type Comment struct {
	ID        string
	User      User
	Text      string
	CreatedAt time.Time
}
