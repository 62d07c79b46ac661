package formatter

import (
	"strconv"
	"strings"
)

// FormatCount abbreviates an integer the way like/view/follower counts are
// displayed everywhere in the app.
// Example: 1250000 -> "1.3M", 5400 -> "5.4K", 999 -> "999"
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// Slugify derives a stable, URL-safe slug from a display name.
// Example: "Ha Long Bay" -> "ha-long-bay"
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
