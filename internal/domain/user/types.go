package user

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) String() string {
	return string(t)
}

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// NewTheme defaults an empty value to light.
func NewTheme(s string) (Theme, error) {
	if s == "" {
		return ThemeLight, nil
	}
	theme := Theme(s)
	if !theme.IsValid() {
		return "", ErrInvalidTheme
	}
	return theme, nil
}

type Preferences struct {
	Theme Theme
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight}
}
