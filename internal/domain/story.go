package domain

import "time"

// Story is an ephemeral, display-only item in the stories rail. Stories are
// never interacted with beyond being viewed, and expire after a TTL.
type Story struct {
	ID        string
	User      User
	ImageURL  string
	Viewed    bool
	CreatedAt time.Time
}
