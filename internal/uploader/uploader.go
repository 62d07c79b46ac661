package uploader

import (
	"context"
	"errors"

	"github.com/wanderreel/wanderreel/internal/domain"
	"github.com/wanderreel/wanderreel/internal/drafts"
)

var (
	ErrRateLimited = errors.New("too many uploads in a row")
	ErrUnplayable  = errors.New("video url is not playable")
)

// Progress reports one step of a simulated upload. Done is set exactly once
// per job, with either Video or Err populated.
type Progress struct {
	JobID   string
	Percent int
	Done    bool
	Err     error
	Video   *domain.Video
}

type ProgressFunc func(Progress)

//go:generate go run go.uber.org/mock/mockgen -source=uploader.go -destination=mocks/mock.go

// Publisher is the slice of the store an upload commits through. Nothing is
// committed until the final step, so an aborted upload leaves no partial
// record behind.
type Publisher interface {
	AddVideo(draft drafts.VideoDraft) domain.Video
}

type Client interface {
	// Enqueue starts a simulated upload for an already-validated draft and
	// returns the job id. Progress ticks, the completion delay and the final
	// commit all happen on a worker; cancelling ctx abandons the job without
	// committing anything.
	Enqueue(ctx context.Context, userID string, draft drafts.VideoDraft, onProgress ProgressFunc) (string, error)
	Close()
}
