package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/wanderreel/wanderreel/internal/domain"
	"github.com/wanderreel/wanderreel/internal/seed"
	"github.com/wanderreel/wanderreel/pkg/config"
	"github.com/wanderreel/wanderreel/pkg/logger"
	"go.uber.org/fx"
)

type subscription struct {
	id uint64
	fn Subscriber
}

// Memory is the in-process Store implementation. All state lives and dies
// with the process; there is no persistence.
type Memory struct {
	mu sync.RWMutex

	videos        []domain.Video
	users         []domain.User
	destinations  []domain.Destination
	shopItems     []domain.ShopItem
	stories       []domain.Story
	currentUserID string

	liked    map[string]struct{}
	followed map[string]struct{}
	saved    map[string]struct{}
	reposted map[string]struct{}

	sheetOpen     bool
	activeVideoID string

	version uint64
	subs    []subscription
	nextSub uint64

	clock clockwork.Clock
	newID func() string

	Logger logger.Logger
}

type Opts struct {
	fx.In

	Catalog seed.Catalog
	Config  *config.Config
	Logger  logger.Logger
	Clock   clockwork.Clock
}

func NewMemory(opts Opts) (*Memory, error) {
	m := &Memory{
		videos:       opts.Catalog.Videos,
		users:        opts.Catalog.Users,
		destinations: opts.Catalog.Destinations,
		shopItems:    opts.Catalog.ShopItems,
		stories:      opts.Catalog.Stories,
		liked:        make(map[string]struct{}),
		followed:     make(map[string]struct{}),
		saved:        make(map[string]struct{}),
		reposted:     make(map[string]struct{}),
		clock:        opts.Clock,
		newID:        uuid.NewString,
		Logger:       opts.Logger,
	}

	cu, ok := m.findUserByUsername(opts.Config.Session.CurrentUser)
	if !ok {
		return nil, fmt.Errorf("seed catalog has no user with username %q", opts.Config.Session.CurrentUser)
	}
	m.currentUserID = cu.ID

	return m, nil
}

var _ Store = (*Memory)(nil)

// mutate runs apply under the write lock. When apply reports a state change,
// the version is bumped and every subscriber is handed the new snapshot
// before mutate returns. Subscribers are notified outside the lock so they
// can read back from the store.
func (m *Memory) mutate(apply func() bool) {
	m.mu.Lock()
	if !apply() {
		m.mu.Unlock()
		return
	}
	m.version++
	snap := m.snapshotLocked()
	subs := append([]subscription(nil), m.subs...)
	m.mu.Unlock()

	for _, s := range subs {
		s.fn(snap)
	}
}

func (m *Memory) snapshotLocked() Snapshot {
	return Snapshot{
		Version:          m.version,
		Videos:           cloneVideos(m.videos),
		Users:            append([]domain.User(nil), m.users...),
		CurrentUser:      *m.currentUserLocked(),
		Destinations:     append([]domain.Destination(nil), m.destinations...),
		ShopItems:        append([]domain.ShopItem(nil), m.shopItems...),
		Stories:          append([]domain.Story(nil), m.stories...),
		LikedVideos:      cloneSet(m.liked),
		FollowedUsers:    cloneSet(m.followed),
		SavedVideos:      cloneSet(m.saved),
		RepostedVideos:   cloneSet(m.reposted),
		CommentSheetOpen: m.sheetOpen,
		ActiveVideoID:    m.activeVideoID,
	}
}

func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Memory) Subscribe(fn Subscriber) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscription{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

func (m *Memory) currentUserLocked() *domain.User {
	for i := range m.users {
		if m.users[i].ID == m.currentUserID {
			return &m.users[i]
		}
	}
	// The current user is seeded and never deleted.
	panic("store: current user missing from user catalog")
}

func (m *Memory) findVideoLocked(id string) *domain.Video {
	for i := range m.videos {
		if m.videos[i].ID == id {
			return &m.videos[i]
		}
	}
	return nil
}

func (m *Memory) findUserLocked(id string) *domain.User {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i]
		}
	}
	return nil
}

func (m *Memory) findUserByUsername(username string) (*domain.User, bool) {
	for i := range m.users {
		if m.users[i].Username == username {
			return &m.users[i], true
		}
	}
	return nil, false
}
