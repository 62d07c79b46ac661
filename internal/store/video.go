package store

import (
	"strings"

	"github.com/wanderreel/wanderreel/internal/domain"
	"github.com/wanderreel/wanderreel/internal/drafts"
	"github.com/wanderreel/wanderreel/pkg/formatter"
)

// AddVideo commits a validated draft as a new video owned by the current
// user and prepends it to the feed. The destination is resolved by slug
// against the existing catalog; a new one is minted only when no destination
// with that slug exists yet.
func (m *Memory) AddVideo(draft drafts.VideoDraft) domain.Video {
	var created domain.Video

	m.mutate(func() bool {
		dest := m.resolveDestinationLocked(draft.Place, draft.Country)

		created = domain.Video{
			ID:           m.newID(),
			Title:        draft.Title,
			VideoURL:     draft.VideoURL,
			ThumbnailURL: draft.ThumbnailURL,
			Source:       draft.Source,
			User:         *m.currentUserLocked(),
			Category:     draft.Category,
			Description:  draft.Description,
			Comments:     []domain.Comment{},
			Destination:  dest,
		}
		m.videos = append([]domain.Video{created}, m.videos...)
		return true
	})

	m.Logger.Info("Video added", "video_id", created.ID, "title", created.Title)
	return created
}

func (m *Memory) resolveDestinationLocked(place, country string) domain.Destination {
	slug := formatter.Slugify(place)
	for _, d := range m.destinations {
		if d.Slug == slug {
			return d
		}
	}

	dest := domain.Destination{
		ID:      m.newID(),
		Name:    place,
		Country: country,
		Slug:    slug,
	}
	m.destinations = append(m.destinations, dest)
	return dest
}

// DeleteVideo removes the video with the given id. Unknown ids are a no-op.
func (m *Memory) DeleteVideo(videoID string) {
	m.mutate(func() bool {
		for i := range m.videos {
			if m.videos[i].ID == videoID {
				m.videos = append(m.videos[:i], m.videos[i+1:]...)
				return true
			}
		}
		return false
	})
}

// RecordView bumps the view counter of a video. Unknown ids are a no-op.
func (m *Memory) RecordView(videoID string) {
	m.mutate(func() bool {
		v := m.findVideoLocked(videoID)
		if v == nil {
			return false
		}
		v.Views++
		return true
	})
}

func (m *Memory) OpenCommentSheet(videoID string) {
	m.mutate(func() bool {
		m.sheetOpen = true
		m.activeVideoID = videoID
		return true
	})
}

func (m *Memory) CloseCommentSheet() {
	m.mutate(func() bool {
		m.sheetOpen = false
		m.activeVideoID = ""
		return true
	})
}

// AddComment prepends a comment authored by the current user to the video's
// comment list. Callers pass non-empty, trimmed text; the store does not
// validate it. Returns nil when the video cannot be resolved.
func (m *Memory) AddComment(videoID, text string) *domain.Comment {
	var created *domain.Comment

	m.mutate(func() bool {
		v := m.findVideoLocked(videoID)
		if v == nil {
			return false
		}

		c := domain.Comment{
			ID:        m.newID(),
			User:      *m.currentUserLocked(),
			Text:      strings.TrimSpace(text),
			CreatedAt: m.clock.Now(),
		}
		v.Comments = append([]domain.Comment{c}, v.Comments...)
		created = &c
		return true
	})

	return created
}
