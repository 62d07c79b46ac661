package store

import "github.com/wanderreel/wanderreel/internal/domain"

// Read paths return copies and sentinel errors; they never mutate state.

func (m *Memory) CurrentUser() domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.currentUserLocked()
}

func (m *Memory) Videos() []domain.Video {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneVideos(m.videos)
}

func (m *Memory) Users() []domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.User(nil), m.users...)
}

func (m *Memory) ShopItems() []domain.ShopItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.ShopItem(nil), m.shopItems...)
}

func (m *Memory) Stories() []domain.Story {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Story(nil), m.stories...)
}

func (m *Memory) Destinations() []domain.Destination {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Destination(nil), m.destinations...)
}

func (m *Memory) VideoByID(id string) (domain.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v := m.findVideoLocked(id); v != nil {
		return cloneVideo(*v), nil
	}
	return domain.Video{}, ErrVideoNotFound
}

func (m *Memory) UserByID(id string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u := m.findUserLocked(id); u != nil {
		return *u, nil
	}
	return domain.User{}, ErrUserNotFound
}

func (m *Memory) UserByUsername(username string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, ok := m.findUserByUsername(username); ok {
		return *u, nil
	}
	return domain.User{}, ErrUserNotFound
}

func (m *Memory) DestinationBySlug(slug string) (domain.Destination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.destinations {
		if d.Slug == slug {
			return d, nil
		}
	}
	return domain.Destination{}, ErrDestinationNotFound
}
