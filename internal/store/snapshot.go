package store

import (
	"github.com/samber/lo"
	"github.com/wanderreel/wanderreel/internal/domain"
)

// Snapshot is the complete state value observable after a mutation completes.
// It shares no memory with the store: mutating a snapshot cannot affect the
// store or other subscribers.
type Snapshot struct {
	Version        uint64
	Videos         []domain.Video
	Users          []domain.User
	CurrentUser    domain.User
	Destinations   []domain.Destination
	ShopItems      []domain.ShopItem
	Stories        []domain.Story
	LikedVideos    map[string]struct{}
	FollowedUsers  map[string]struct{}
	SavedVideos    map[string]struct{}
	RepostedVideos map[string]struct{}

	// Transient comment-sheet signal. ActiveVideoID is empty when the sheet
	// is closed.
	CommentSheetOpen bool
	ActiveVideoID    string
}

func cloneVideo(v domain.Video) domain.Video {
	out := v
	out.Comments = append([]domain.Comment(nil), v.Comments...)
	return out
}

func cloneVideos(vs []domain.Video) []domain.Video {
	return lo.Map(vs, func(v domain.Video, _ int) domain.Video { return cloneVideo(v) })
}

func cloneSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
