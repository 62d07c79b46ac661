package domain

// User represents a member of the travel community. One seeded user is
// designated the current (signed-in) user for the lifetime of the process.
type User struct {
	ID        string
	Name      string
	Username  string
	AvatarURL string
	Bio       string
	Website   string
	Followers int
	Following int
}

// ProfileUpdate carries the editable fields of the current user's profile.
// Nil fields are left untouched by the merge.
type ProfileUpdate struct {
	Name     *string
	Username *string
	Website  *string
	Bio      *string
}
