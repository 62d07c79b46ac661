package drafts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderreel/wanderreel/internal/domain"
)

func validVideoDraft() VideoDraft {
	return VideoDraft{
		Title:    "Trip to Goa",
		VideoURL: "https://www.youtube.com/watch?v=abc",
		Category: domain.CategoryBeach,
		Place:    "Goa",
		Country:  "India",
		Source:   domain.SourceYouTube,
	}
}

func TestVideoDraft_Valid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.VideoDraft(validVideoDraft()))

	d := validVideoDraft()
	d.Category = domain.CategoryAmusementPark
	assert.NoError(t, v.VideoDraft(d), "multi-word category must pass oneof")
}

func TestVideoDraft_Invalid(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(*VideoDraft)
		field  string
	}{
		{"empty title", func(d *VideoDraft) { d.Title = "" }, "Title"},
		{"malformed url", func(d *VideoDraft) { d.VideoURL = "not a url" }, "VideoURL"},
		{"unknown category", func(d *VideoDraft) { d.Category = "Space" }, "Category"},
		{"unknown source", func(d *VideoDraft) { d.Source = "vhs" }, "Source"},
		{"missing place", func(d *VideoDraft) { d.Place = "" }, "Place"},
		{"bad thumbnail", func(d *VideoDraft) { d.ThumbnailURL = "::" }, "ThumbnailURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validVideoDraft()
			tt.mutate(&d)

			err := v.VideoDraft(d)
			require.Error(t, err)
			assert.Contains(t, FieldErrors(err), tt.field)
		})
	}
}

func TestProfileDraft(t *testing.T) {
	v := NewValidator()

	ok := ProfileDraft{Name: "Mira Kapoor", Username: "mira.travels", Website: "https://mira.travels"}
	assert.NoError(t, v.ProfileDraft(ok))

	bad := ok
	bad.Username = "mira travels"
	err := v.ProfileDraft(bad)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "Username")
}

func TestShopItemDraft(t *testing.T) {
	v := NewValidator()

	ok := ShopItemDraft{
		Name:       "Dry bag",
		ProductURL: "https://shop.example.com/dry-bag",
		Price:      "$19.00",
		Category:   domain.ShopPhysical,
	}
	assert.NoError(t, v.ShopItemDraft(ok))

	bad := ok
	bad.Category = "Rental"
	err := v.ShopItemDraft(bad)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "Category")
}
