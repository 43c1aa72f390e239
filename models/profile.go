package models

// UserProfile is the free-form profile record edited on the profile page.
// Values are persisted verbatim without validation.
type UserProfile struct {
	Grade      string `json:"grade,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Location   string `json:"location,omitempty"`
	Curriculum string `json:"curriculum,omitempty"`
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme value.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
