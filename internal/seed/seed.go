package seed

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/wanderreel/wanderreel/internal/domain"
)

// Catalog is the data the store starts from. It is rebuilt on every process
// start; nothing survives a restart.
type Catalog struct {
	Users        []domain.User
	Destinations []domain.Destination
	Videos       []domain.Video
	ShopItems    []domain.ShopItem
	Stories      []domain.Story
}

// New builds the demo catalog. Timestamps are derived from the injected
// clock so tests can pin them.
func New(clock clockwork.Clock) Catalog {
	now := clock.Now()

	mira := domain.User{
		ID:        "u-mira",
		Name:      "Mira Kapoor",
		Username:  "mira.travels",
		AvatarURL: "https://images.wanderreel.app/avatars/mira.jpg",
		Bio:       "Chasing monsoons and mountain passes.",
		Website:   "https://mira.travels",
		Followers: 15400,
		Following: 0,
	}
	jonas := domain.User{
		ID:        "u-jonas",
		Name:      "Jonas Weber",
		Username:  "jonas.onroad",
		AvatarURL: "https://images.wanderreel.app/avatars/jonas.jpg",
		Bio:       "Vanlife across the Balkans.",
		Followers: 2300000,
		Following: 312,
	}
	aiko := domain.User{
		ID:        "u-aiko",
		Name:      "Aiko Tanaka",
		Username:  "aiko.eats",
		AvatarURL: "https://images.wanderreel.app/avatars/aiko.jpg",
		Bio:       "Street food first, temples second.",
		Website:   "https://aiko.eats",
		Followers: 88000,
		Following: 540,
	}
	leo := domain.User{
		ID:        "u-leo",
		Name:      "Leo Martins",
		Username:  "leo.dives",
		AvatarURL: "https://images.wanderreel.app/avatars/leo.jpg",
		Followers: 970,
		Following: 120,
	}

	goa := domain.Destination{
		ID: "d-goa", Name: "Goa", Country: "India", Slug: "goa",
		Lat: 15.2993, Lng: 74.1240,
		ImageURL: "https://images.wanderreel.app/places/goa.jpg",
	}
	halong := domain.Destination{
		ID: "d-ha-long-bay", Name: "Ha Long Bay", Country: "Vietnam", Slug: "ha-long-bay",
		Lat: 20.9101, Lng: 107.1839,
		ImageURL: "https://images.wanderreel.app/places/ha-long-bay.jpg",
	}
	kyoto := domain.Destination{
		ID: "d-kyoto", Name: "Kyoto", Country: "Japan", Slug: "kyoto",
		Lat: 35.0116, Lng: 135.7681,
		ImageURL: "https://images.wanderreel.app/places/kyoto.jpg",
	}
	interlaken := domain.Destination{
		ID: "d-interlaken", Name: "Interlaken", Country: "Switzerland", Slug: "interlaken",
		Lat: 46.6863, Lng: 7.8632,
		ImageURL: "https://images.wanderreel.app/places/interlaken.jpg",
	}
	lisbon := domain.Destination{
		ID: "d-lisbon", Name: "Lisbon", Country: "Portugal", Slug: "lisbon",
		Lat: 38.7223, Lng: -9.1393,
		ImageURL: "https://images.wanderreel.app/places/lisbon.jpg",
	}

	videos := []domain.Video{
		{
			ID:           "v-goa-sunset",
			Title:        "Sunset at Palolem Beach",
			VideoURL:     "https://www.youtube.com/watch?v=goa-sunset",
			ThumbnailURL: "https://images.wanderreel.app/thumbs/goa-sunset.jpg",
			Source:       domain.SourceYouTube,
			User:         mira,
			Views:        1250000,
			Likes:        98000,
			Category:     domain.CategoryBeach,
			Description:  "Golden hour from the southern tip of Palolem.",
			Comments: []domain.Comment{
				{
					ID:        "c-goa-2",
					User:      aiko,
					Text:      "That light is unreal.",
					CreatedAt: now.Add(-3 * time.Hour),
				},
				{
					ID:        "c-goa-1",
					User:      jonas,
					Text:      "Adding this to the route!",
					CreatedAt: now.Add(-26 * time.Hour),
				},
			},
			Destination: goa,
		},
		{
			ID:           "v-halong-kayak",
			Title:        "Kayaking between the karsts",
			VideoURL:     "https://media.wanderreel.app/videos/halong-kayak.mp4",
			ThumbnailURL: "https://images.wanderreel.app/thumbs/halong-kayak.jpg",
			Source:       domain.SourceDirect,
			User:         jonas,
			Views:        4300000,
			Likes:        310000,
			Category:     domain.CategoryTropical,
			Description:  "Dawn paddle through Ha Long Bay before the boats wake up.",
			Comments: []domain.Comment{
				{
					ID:        "c-halong-1",
					User:      mira,
					Text:      "Booked my ticket after watching this.",
					CreatedAt: now.Add(-40 * time.Hour),
				},
			},
			Destination: halong,
		},
		{
			ID:           "v-kyoto-market",
			Title:        "Nishiki Market in five minutes",
			VideoURL:     "https://www.instagram.com/reel/kyoto-market",
			ThumbnailURL: "https://images.wanderreel.app/thumbs/kyoto-market.jpg",
			Source:       domain.SourceInstagram,
			User:         aiko,
			Views:        89000,
			Likes:        7200,
			Category:     domain.CategoryFood,
			Description:  "Everything I ate walking the length of Nishiki.",
			Comments:     []domain.Comment{},
			Destination:  kyoto,
		},
		{
			ID:           "v-kyoto-fushimi",
			Title:        "Ten thousand torii gates",
			VideoURL:     "https://www.youtube.com/watch?v=kyoto-fushimi",
			ThumbnailURL: "https://images.wanderreel.app/thumbs/kyoto-fushimi.jpg",
			Source:       domain.SourceYouTube,
			User:         mira,
			Views:        560000,
			Likes:        41000,
			Category:     domain.CategoryReligious,
			Description:  "Fushimi Inari at six in the morning, almost alone.",
			Comments:     []domain.Comment{},
			Destination:  kyoto,
		},
		{
			ID:           "v-interlaken-paraglide",
			Title:        "Paragliding over two lakes",
			VideoURL:     "https://media.wanderreel.app/videos/interlaken-fly.mp4",
			ThumbnailURL: "https://images.wanderreel.app/thumbs/interlaken-fly.jpg",
			Source:       domain.SourceDirect,
			User:         leo,
			Views:        12000,
			Likes:        890,
			Category:     domain.CategoryMountain,
			Description:  "Thun on the left, Brienz on the right.",
			Comments:     []domain.Comment{},
			Destination:  interlaken,
		},
		{
			ID:           "v-lisbon-tram",
			Title:        "Riding tram 28 end to end",
			VideoURL:     "https://t.me/wanderreel/lisbon-tram",
			ThumbnailURL: "https://images.wanderreel.app/thumbs/lisbon-tram.jpg",
			Source:       domain.SourceTelegram,
			User:         jonas,
			Views:        780,
			Likes:        64,
			Category:     domain.CategoryCity,
			Description:  "The whole Alfama line, uncut.",
			Comments:     []domain.Comment{},
			Destination:  lisbon,
		},
	}

	shopItems := []domain.ShopItem{
		{
			ID:         "s-packing-cubes",
			Name:       "Compression packing cubes (set of 4)",
			ProductURL: "https://shop.wanderreel.app/packing-cubes",
			ImageURL:   "https://images.wanderreel.app/shop/packing-cubes.jpg",
			Price:      "$29.90",
			Category:   domain.ShopPhysical,
		},
		{
			ID:         "s-lut-pack",
			Name:       "Travel film LUT pack",
			ProductURL: "https://shop.wanderreel.app/lut-pack",
			ImageURL:   "https://images.wanderreel.app/shop/lut-pack.jpg",
			Price:      "$14.00",
			Category:   domain.ShopDigital,
		},
		{
			ID:         "s-tripod",
			Name:       "Pocket carbon tripod",
			ProductURL: "https://shop.wanderreel.app/tripod",
			ImageURL:   "https://images.wanderreel.app/shop/tripod.jpg",
			Price:      "$54.50",
			Category:   domain.ShopPhysical,
		},
		{
			ID:         "s-itinerary-goa",
			Name:       "Goa 7-day itinerary (PDF)",
			ProductURL: "https://shop.wanderreel.app/itinerary-goa",
			ImageURL:   "https://images.wanderreel.app/shop/itinerary-goa.jpg",
			Price:      "$6.00",
			Category:   domain.ShopDigital,
		},
	}

	stories := []domain.Story{
		{
			ID:        "st-jonas-ferry",
			User:      jonas,
			ImageURL:  "https://images.wanderreel.app/stories/jonas-ferry.jpg",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "st-aiko-ramen",
			User:      aiko,
			ImageURL:  "https://images.wanderreel.app/stories/aiko-ramen.jpg",
			CreatedAt: now.Add(-7 * time.Hour),
		},
		{
			ID:        "st-leo-reef",
			User:      leo,
			ImageURL:  "https://images.wanderreel.app/stories/leo-reef.jpg",
			Viewed:    true,
			CreatedAt: now.Add(-21 * time.Hour),
		},
	}

	return Catalog{
		Users:        []domain.User{mira, jonas, aiko, leo},
		Destinations: []domain.Destination{goa, halong, kyoto, interlaken, lisbon},
		Videos:       videos,
		ShopItems:    shopItems,
		Stories:      stories,
	}
}
