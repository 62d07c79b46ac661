package store

import "github.com/wanderreel/wanderreel/internal/domain"

// UpdateCurrentUser merges the provided fields into the current user record
// and fans the updated record out into every video, comment and story
// authored by that user. User references are denormalized copies, so this
// rewrite is what keeps them consistent: after the call no stale copy of the
// old record is reachable anywhere in the catalog.
func (m *Memory) UpdateCurrentUser(update domain.ProfileUpdate) {
	m.mutate(func() bool {
		cu := m.currentUserLocked()

		if update.Name != nil {
			cu.Name = *update.Name
		}
		if update.Username != nil {
			cu.Username = *update.Username
		}
		if update.Website != nil {
			cu.Website = *update.Website
		}
		if update.Bio != nil {
			cu.Bio = *update.Bio
		}

		m.cascadeUserLocked(*cu)
		return true
	})
}

func (m *Memory) cascadeUserLocked(u domain.User) {
	for i := range m.videos {
		if m.videos[i].User.ID == u.ID {
			m.videos[i].User = u
		}
		for j := range m.videos[i].Comments {
			if m.videos[i].Comments[j].User.ID == u.ID {
				m.videos[i].Comments[j].User = u
			}
		}
	}
	for i := range m.stories {
		if m.stories[i].User.ID == u.ID {
			m.stories[i].User = u
		}
	}
}
