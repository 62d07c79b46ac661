package store

import "time"

// MarkStoryViewed flags a story as viewed. Unknown ids are a no-op; marking
// an already-viewed story changes nothing.
func (m *Memory) MarkStoryViewed(storyID string) {
	m.mutate(func() bool {
		for i := range m.stories {
			if m.stories[i].ID == storyID {
				if m.stories[i].Viewed {
					return false
				}
				m.stories[i].Viewed = true
				return true
			}
		}
		return false
	})
}

// ExpireStories drops every story older than maxAge and reports how many
// were removed. Stories are ephemeral; the sweeper calls this on a schedule.
func (m *Memory) ExpireStories(maxAge time.Duration) int {
	removed := 0

	m.mutate(func() bool {
		cutoff := m.clock.Now().Add(-maxAge)
		kept := m.stories[:0]
		for _, s := range m.stories {
			if s.CreatedAt.After(cutoff) {
				kept = append(kept, s)
			} else {
				removed++
			}
		}
		m.stories = kept
		return removed > 0
	})

	return removed
}
