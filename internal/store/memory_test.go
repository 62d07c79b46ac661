package store

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderreel/wanderreel/internal/domain"
	"github.com/wanderreel/wanderreel/internal/drafts"
	"github.com/wanderreel/wanderreel/internal/seed"
	"github.com/wanderreel/wanderreel/pkg/config"
	errs "github.com/wanderreel/wanderreel/pkg/errors"
	"github.com/wanderreel/wanderreel/pkg/logger"
)

func newTestStore(t *testing.T) (*Memory, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	cfg := &config.Config{}
	cfg.Session.CurrentUser = "mira.travels"

	m, err := NewMemory(Opts{
		Catalog: seed.New(clock),
		Config:  cfg,
		Logger:  logger.New(logger.Opts{Env: "production"}),
		Clock:   clock,
	})
	require.NoError(t, err)

	return m, clock
}

func validDraft() drafts.VideoDraft {
	return drafts.VideoDraft{
		Title:    "Trip to Goa",
		VideoURL: "https://www.youtube.com/watch?v=trip-to-goa",
		Category: domain.CategoryBeach,
		Place:    "Goa",
		Country:  "India",
		Source:   domain.SourceYouTube,
	}
}

func TestToggleLike_RoundTrip(t *testing.T) {
	m, _ := newTestStore(t)

	before, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)

	m.ToggleLike("v-goa-sunset")
	assert.True(t, m.IsLiked("v-goa-sunset"))
	after, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)
	assert.Equal(t, before.Likes+1, after.Likes)

	m.ToggleLike("v-goa-sunset")
	assert.False(t, m.IsLiked("v-goa-sunset"))
	restored, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)
	assert.Equal(t, before.Likes, restored.Likes)
}

func TestToggleLike_UnknownVideoIsNoOp(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.Snapshot()
	m.ToggleLike("v-nope")

	after := m.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	assert.False(t, m.IsLiked("v-nope"))
}

func TestToggleLike_LikesNeverNegative(t *testing.T) {
	m, _ := newTestStore(t)

	// Lisbon tram is seeded with a small count; hammer it with toggles.
	for i := 0; i < 7; i++ {
		m.ToggleLike("v-lisbon-tram")
		v, err := m.VideoByID("v-lisbon-tram")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.Likes, 0)
	}
}

func TestToggleFollow_RoundTrip(t *testing.T) {
	m, _ := newTestStore(t)

	target, err := m.UserByID("u-jonas")
	require.NoError(t, err)
	me := m.CurrentUser()

	m.ToggleFollow("u-jonas")
	assert.True(t, m.IsFollowing("u-jonas"))

	followed, err := m.UserByID("u-jonas")
	require.NoError(t, err)
	assert.Equal(t, target.Followers+1, followed.Followers)
	assert.Equal(t, me.Following+1, m.CurrentUser().Following)

	m.ToggleFollow("u-jonas")
	assert.False(t, m.IsFollowing("u-jonas"))

	unfollowed, err := m.UserByID("u-jonas")
	require.NoError(t, err)
	assert.Equal(t, target.Followers, unfollowed.Followers)
	assert.Equal(t, me.Following, m.CurrentUser().Following)
}

func TestToggleFollow_SelfIsRejected(t *testing.T) {
	m, _ := newTestStore(t)

	me := m.CurrentUser()
	m.ToggleFollow(me.ID)

	assert.False(t, m.IsFollowing(me.ID))
	assert.Equal(t, me.Following, m.CurrentUser().Following)
}

func TestToggleFollow_UnknownUserIsNoOp(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.Snapshot()
	m.ToggleFollow("u-ghost")
	assert.Equal(t, before.Version, m.Snapshot().Version)
}

func TestToggleSaveAndRepost_MembershipOnly(t *testing.T) {
	m, _ := newTestStore(t)

	before, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)

	m.ToggleSave("v-goa-sunset")
	m.ToggleRepost("v-goa-sunset")
	assert.True(t, m.IsSaved("v-goa-sunset"))
	assert.True(t, m.IsReposted("v-goa-sunset"))

	after, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)
	assert.Equal(t, before.Likes, after.Likes)
	assert.Equal(t, before.Views, after.Views)

	m.ToggleSave("v-goa-sunset")
	m.ToggleRepost("v-goa-sunset")
	assert.False(t, m.IsSaved("v-goa-sunset"))
	assert.False(t, m.IsReposted("v-goa-sunset"))
}

func TestAddComment_PrependsAndAuthors(t *testing.T) {
	m, _ := newTestStore(t)

	before, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)

	created := m.AddComment("v-goa-sunset", "  hello  ")
	require.NotNil(t, created)
	assert.Equal(t, "hello", created.Text)
	assert.Equal(t, m.CurrentUser().ID, created.User.ID)

	after, err := m.VideoByID("v-goa-sunset")
	require.NoError(t, err)
	require.Len(t, after.Comments, len(before.Comments)+1)
	assert.Equal(t, created.ID, after.Comments[0].ID)
	assert.Equal(t, before.Comments, after.Comments[1:])
}

func TestAddComment_UnknownVideoReturnsNil(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.Snapshot()
	assert.Nil(t, m.AddComment("v-nope", "hello"))
	assert.Equal(t, before.Version, m.Snapshot().Version)
}

func TestAddVideo_PrependsFreshVideo(t *testing.T) {
	m, _ := newTestStore(t)

	existing := m.Videos()
	created := m.AddVideo(validDraft())

	assert.NotEmpty(t, created.ID)
	for _, v := range existing {
		assert.NotEqual(t, v.ID, created.ID)
	}
	assert.Zero(t, created.Views)
	assert.Zero(t, created.Likes)
	assert.Empty(t, created.Comments)
	assert.Equal(t, m.CurrentUser().ID, created.User.ID)

	videos := m.Videos()
	require.Len(t, videos, len(existing)+1)
	assert.Equal(t, created.ID, videos[0].ID)
}

func TestAddVideo_ReusesDestinationBySlug(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.Destinations()
	created := m.AddVideo(validDraft())

	// "Goa" is already seeded; no duplicate destination is minted.
	assert.Equal(t, "goa", created.Destination.Slug)
	assert.Equal(t, "d-goa", created.Destination.ID)
	assert.Len(t, m.Destinations(), len(before))
}

func TestAddVideo_MintsDestinationForNewPlace(t *testing.T) {
	m, _ := newTestStore(t)

	draft := validDraft()
	draft.Place = "Cape Town"
	draft.Country = "South Africa"

	created := m.AddVideo(draft)
	assert.Equal(t, "cape-town", created.Destination.Slug)

	dest, err := m.DestinationBySlug("cape-town")
	require.NoError(t, err)
	assert.Equal(t, "South Africa", dest.Country)
}

func TestDeleteVideo(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.Videos()

	m.DeleteVideo("nonexistent-id")
	assert.Equal(t, before, m.Videos())

	m.DeleteVideo("v-goa-sunset")
	assert.Len(t, m.Videos(), len(before)-1)
	_, err := m.VideoByID("v-goa-sunset")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestRecordView(t *testing.T) {
	m, _ := newTestStore(t)

	before, err := m.VideoByID("v-lisbon-tram")
	require.NoError(t, err)

	m.RecordView("v-lisbon-tram")
	after, err := m.VideoByID("v-lisbon-tram")
	require.NoError(t, err)
	assert.Equal(t, before.Views+1, after.Views)

	m.RecordView("v-nope") // no-op
}

func TestUpdateCurrentUser_CascadesEverywhere(t *testing.T) {
	m, _ := newTestStore(t)

	newName := "New Name"
	m.UpdateCurrentUser(domain.ProfileUpdate{Name: &newName})

	me := m.CurrentUser()
	assert.Equal(t, "New Name", me.Name)

	for _, v := range m.Videos() {
		if v.User.ID == me.ID {
			assert.Equal(t, "New Name", v.User.Name)
		}
		for _, c := range v.Comments {
			if c.User.ID == me.ID {
				assert.Equal(t, "New Name", c.User.Name)
			}
		}
	}
	for _, s := range m.Stories() {
		if s.User.ID == me.ID {
			assert.Equal(t, "New Name", s.User.Name)
		}
	}
}

func TestUpdateCurrentUser_PartialMerge(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.CurrentUser()
	site := "https://example.com"
	m.UpdateCurrentUser(domain.ProfileUpdate{Website: &site})

	after := m.CurrentUser()
	assert.Equal(t, site, after.Website)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Username, after.Username)
	assert.Equal(t, before.Bio, after.Bio)
}

func TestAddShopItem(t *testing.T) {
	m, _ := newTestStore(t)

	before := m.ShopItems()
	created := m.AddShopItem(drafts.ShopItemDraft{
		Name:       "Dry bag 20L",
		ProductURL: "https://shop.example.com/dry-bag",
		Price:      "$19.00",
		Category:   domain.ShopPhysical,
	})

	assert.NotEmpty(t, created.ID)
	items := m.ShopItems()
	require.Len(t, items, len(before)+1)
	assert.Equal(t, created, items[len(items)-1])
}

func TestCommentSheetSignal(t *testing.T) {
	m, _ := newTestStore(t)

	m.OpenCommentSheet("v-goa-sunset")
	snap := m.Snapshot()
	assert.True(t, snap.CommentSheetOpen)
	assert.Equal(t, "v-goa-sunset", snap.ActiveVideoID)

	m.CloseCommentSheet()
	snap = m.Snapshot()
	assert.False(t, snap.CommentSheetOpen)
	assert.Empty(t, snap.ActiveVideoID)
}

func TestStories_ViewedAndExpired(t *testing.T) {
	m, clock := newTestStore(t)

	m.MarkStoryViewed("st-jonas-ferry")
	for _, s := range m.Stories() {
		if s.ID == "st-jonas-ferry" {
			assert.True(t, s.Viewed)
		}
	}

	// Seed has stories at 2h, 7h and 21h of age.
	clock.Advance(5 * time.Hour)
	removed := m.ExpireStories(24 * time.Hour)
	assert.Equal(t, 1, removed)
	assert.Len(t, m.Stories(), 2)

	assert.Zero(t, m.ExpireStories(24*time.Hour))
}

func TestSubscribe_NotifiedSynchronously(t *testing.T) {
	m, _ := newTestStore(t)

	var got []Snapshot
	unsubscribe := m.Subscribe(func(s Snapshot) { got = append(got, s) })

	m.ToggleLike("v-goa-sunset")
	require.Len(t, got, 1, "subscriber must run before the mutation returns")
	assert.True(t, got[0].Version > 0)
	_, liked := got[0].LikedVideos["v-goa-sunset"]
	assert.True(t, liked)

	// No-op mutations publish nothing.
	m.ToggleLike("v-nope")
	assert.Len(t, got, 1)

	unsubscribe()
	m.ToggleLike("v-goa-sunset")
	assert.Len(t, got, 1)
}

func TestSubscribe_AllSeeTheSameVersion(t *testing.T) {
	m, _ := newTestStore(t)

	var a, b uint64
	m.Subscribe(func(s Snapshot) { a = s.Version })
	m.Subscribe(func(s Snapshot) { b = s.Version })

	m.ToggleSave("v-goa-sunset")
	assert.Equal(t, a, b)
	assert.Equal(t, m.Snapshot().Version, a)
}

func TestSnapshot_IsIsolatedFromStore(t *testing.T) {
	m, _ := newTestStore(t)

	snap := m.Snapshot()
	snap.Videos[0].Title = "mutated"
	snap.Videos[0].Comments = append(snap.Videos[0].Comments, domain.Comment{ID: "c-fake"})
	snap.LikedVideos["v-goa-sunset"] = struct{}{}

	fresh := m.Snapshot()
	assert.NotEqual(t, "mutated", fresh.Videos[0].Title)
	assert.False(t, m.IsLiked("v-goa-sunset"))

	v, err := m.VideoByID(snap.Videos[0].ID)
	require.NoError(t, err)
	for _, c := range v.Comments {
		assert.NotEqual(t, "c-fake", c.ID)
	}
}

func TestFollowScenario_TwoUsers(t *testing.T) {
	m, _ := newTestStore(t)

	// Current user B follows owner A of a seeded video, then unfollows.
	owner, err := m.VideoByID("v-halong-kayak")
	require.NoError(t, err)
	a := owner.User.ID

	aBefore, err := m.UserByID(a)
	require.NoError(t, err)
	bBefore := m.CurrentUser()

	m.ToggleFollow(a)
	aNow, err := m.UserByID(a)
	require.NoError(t, err)
	assert.Equal(t, aBefore.Followers+1, aNow.Followers)
	assert.Equal(t, bBefore.Following+1, m.CurrentUser().Following)

	m.ToggleFollow(a)
	aNow, err = m.UserByID(a)
	require.NoError(t, err)
	assert.Equal(t, aBefore.Followers, aNow.Followers)
	assert.Equal(t, bBefore.Following, m.CurrentUser().Following)
}

func TestQueries_NotFound(t *testing.T) {
	m, _ := newTestStore(t)

	_, err := m.VideoByID("v-nope")
	assert.ErrorIs(t, err, ErrVideoNotFound)
	assert.True(t, errs.IsNotFound(err))

	_, err = m.UserByID("u-nope")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = m.UserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = m.DestinationBySlug("atlantis")
	assert.ErrorIs(t, err, ErrDestinationNotFound)
}
