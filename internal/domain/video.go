package domain

// Source identifies where a video's media is hosted.
type Source string

const (
	SourceYouTube   Source = "youtube"
	SourceDirect    Source = "direct"
	SourceInstagram Source = "instagram"
	SourceTelegram  Source = "telegram"
	SourceURL       Source = "url"
)

// Category is the closed set of destination categories a video is filed under.
type Category string

const (
	CategoryBeach         Category = "Beach"
	CategoryMountain      Category = "Mountain"
	CategoryCity          Category = "City"
	CategoryReligious     Category = "Religious"
	CategoryFood          Category = "Food"
	CategoryAmusementPark Category = "Amusement Park"
	CategoryForest        Category = "Forest"
	CategoryTropical      Category = "Tropical"
	CategoryCamping       Category = "Camping"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryBeach,
	CategoryMountain,
	CategoryCity,
	CategoryReligious,
	CategoryFood,
	CategoryAmusementPark,
	CategoryForest,
	CategoryTropical,
	CategoryCamping,
	CategoryOther,
}

// Video is a short-form travel clip. User and Destination are denormalized
// copies, not shared pointers: profile edits are fanned out by the store.
type Video struct {
	ID           string
	Title        string
	VideoURL     string
	ThumbnailURL string
	Source       Source
	User         User
	Views        int
	Likes        int
	Category     Category
	Description  string
	Comments     []Comment
	Destination  Destination
}
