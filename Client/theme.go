package Client

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeController persists the light/dark preference across sessions.
type ThemeController struct {
	store Store
}

func NewThemeController(store Store) *ThemeController {
	return &ThemeController{store: store}
}

// Current returns the persisted theme, defaulting to light when unset or
// unrecognized.
func (t *ThemeController) Current() string {
	theme, ok := t.store.Get(keyTheme)
	if !ok || theme != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle flips the preference, persists it and returns the new value.
func (t *ThemeController) Toggle() string {
	next := ThemeDark
	if t.Current() == ThemeDark {
		next = ThemeLight
	}
	t.store.Set(keyTheme, next)
	return next
}
