package store

// ToggleLike flips the current user's like on a video and moves its like
// counter by one in the matching direction, clamped at zero. Unknown video
// ids are a silent no-op so the membership set and the counter cannot drift.
func (m *Memory) ToggleLike(videoID string) {
	m.mutate(func() bool {
		v := m.findVideoLocked(videoID)
		if v == nil {
			return false
		}

		if _, liked := m.liked[videoID]; liked {
			delete(m.liked, videoID)
			v.Likes = max(v.Likes-1, 0)
		} else {
			m.liked[videoID] = struct{}{}
			v.Likes++
		}
		return true
	})
}

// ToggleFollow flips the current user's follow on another user and adjusts
// both follower counters symmetrically, clamped at zero. Following yourself
// is rejected here rather than left to the UI.
func (m *Memory) ToggleFollow(userID string) {
	m.mutate(func() bool {
		target := m.findUserLocked(userID)
		if target == nil || target.ID == m.currentUserID {
			return false
		}
		cu := m.currentUserLocked()

		if _, following := m.followed[userID]; following {
			delete(m.followed, userID)
			target.Followers = max(target.Followers-1, 0)
			cu.Following = max(cu.Following-1, 0)
		} else {
			m.followed[userID] = struct{}{}
			target.Followers++
			cu.Following++
		}
		return true
	})
}

// ToggleSave flips membership in the saved set. No counter side effects.
func (m *Memory) ToggleSave(videoID string) {
	m.toggleMembership(m.saved, videoID)
}

// ToggleRepost flips membership in the reposted set. No counter side effects.
func (m *Memory) ToggleRepost(videoID string) {
	m.toggleMembership(m.reposted, videoID)
}

func (m *Memory) toggleMembership(set map[string]struct{}, videoID string) {
	m.mutate(func() bool {
		if m.findVideoLocked(videoID) == nil {
			return false
		}
		if _, ok := set[videoID]; ok {
			delete(set, videoID)
		} else {
			set[videoID] = struct{}{}
		}
		return true
	})
}

func (m *Memory) IsLiked(videoID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.liked[videoID]
	return ok
}

func (m *Memory) IsFollowing(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.followed[userID]
	return ok
}

func (m *Memory) IsSaved(videoID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.saved[videoID]
	return ok
}

func (m *Memory) IsReposted(videoID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.reposted[videoID]
	return ok
}
