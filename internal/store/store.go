package store

import (
	"time"

	"github.com/wanderreel/wanderreel/internal/domain"
	"github.com/wanderreel/wanderreel/internal/drafts"
	"github.com/wanderreel/wanderreel/pkg/errors"
)

// Each sentinel also matches the generic errors.ErrNotFound.
var (
	ErrVideoNotFound       = errors.Wrap(errors.ErrNotFound, "video")
	ErrUserNotFound        = errors.Wrap(errors.ErrNotFound, "user")
	ErrDestinationNotFound = errors.Wrap(errors.ErrNotFound, "destination")
)

// Subscriber receives the post-mutation snapshot. Every subscriber observes
// the same snapshot before the mutating call returns.
type Subscriber func(Snapshot)

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock.go

// Store is the single source of truth for the catalog and the session's
// interaction state. Mutations apply in call order, one at a time; operations
// given an unresolvable id are silent no-ops, never errors. Drafts are
// expected to be validated by the caller before they reach the store.
type Store interface {
	Snapshot() Snapshot
	Subscribe(fn Subscriber) (unsubscribe func())

	AddVideo(draft drafts.VideoDraft) domain.Video
	DeleteVideo(videoID string)
	RecordView(videoID string)

	ToggleLike(videoID string)
	ToggleFollow(userID string)
	ToggleSave(videoID string)
	ToggleRepost(videoID string)
	IsLiked(videoID string) bool
	IsFollowing(userID string) bool
	IsSaved(videoID string) bool
	IsReposted(videoID string) bool

	OpenCommentSheet(videoID string)
	CloseCommentSheet()
	AddComment(videoID, text string) *domain.Comment

	UpdateCurrentUser(update domain.ProfileUpdate)
	AddShopItem(draft drafts.ShopItemDraft) domain.ShopItem

	MarkStoryViewed(storyID string)
	ExpireStories(maxAge time.Duration) int

	CurrentUser() domain.User
	Videos() []domain.Video
	Users() []domain.User
	ShopItems() []domain.ShopItem
	Stories() []domain.Story
	Destinations() []domain.Destination
	VideoByID(id string) (domain.Video, error)
	UserByID(id string) (domain.User, error)
	UserByUsername(username string) (domain.User, error)
	DestinationBySlug(slug string) (domain.Destination, error)
}
