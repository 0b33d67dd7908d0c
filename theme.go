package polyui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tanema/gween/ease"
)

// ============================================================================
// Theme
// ============================================================================

// Theme is the shared styling table: named colors, font families and the
// default animation settings. Themes load from TOML files; missing keys
// keep the default theme's values. Swapping the theme at runtime
// broadcasts ThemeChanged through the tree (see UI.SetTheme).
type Theme struct {
	Name      string         `toml:"name"`
	Colors    ThemeColors    `toml:"colors"`
	Fonts     ThemeFonts     `toml:"fonts"`
	Animation ThemeAnimation `toml:"animation"`
}

// ThemeColors holds the palette as "#RRGGBB" or "#RRGGBBAA" hex strings.
type ThemeColors struct {
	Background string `toml:"background"`
	Surface    string `toml:"surface"`
	Primary    string `toml:"primary"`
	Accent     string `toml:"accent"`
	Text       string `toml:"text"`
	TextMuted  string `toml:"text_muted"`
}

// ThemeFonts names the font families registered with the renderer.
type ThemeFonts struct {
	Regular  string  `toml:"regular"`
	Bold     string  `toml:"bold"`
	BaseSize float32 `toml:"base_size"`
}

// ThemeAnimation is the default duration and easing for animations and
// smooth scrolling.
type ThemeAnimation struct {
	DurationMS int    `toml:"duration_ms"`
	Easing     string `toml:"easing"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		Colors: ThemeColors{
			Background: "#17171aff",
			Surface:    "#232328ff",
			Primary:    "#2563ebff",
			Accent:     "#f59e0bff",
			Text:       "#f4f4f5ff",
			TextMuted:  "#a1a1aaff",
		},
		Fonts: ThemeFonts{
			Regular:  "regular",
			Bold:     "bold",
			BaseSize: 14,
		},
		Animation: ThemeAnimation{
			DurationMS: 200,
			Easing:     "out-quad",
		},
	}
}

// LoadTheme reads a TOML theme file. Keys absent from the file keep the
// default theme's values.
func LoadTheme(path string) (*Theme, error) {
	t := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Duration returns the default animation duration.
func (t *Theme) Duration() time.Duration {
	if t.Animation.DurationMS <= 0 {
		return DefaultAnimationDuration
	}
	return time.Duration(t.Animation.DurationMS) * time.Millisecond
}

// EasingFunc returns the default easing, falling back to out-quad when the
// configured name is unknown.
func (t *Theme) EasingFunc() ease.TweenFunc {
	if fn := EasingByName(t.Animation.Easing); fn != nil {
		return fn
	}
	return ease.OutQuad
}

// Color resolves a palette hex string, falling back to White on a parse
// error so a typo in a theme file degrades visibly instead of crashing.
func (t *Theme) Color(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		return White
	}
	return c
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" hex notation.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 6:
		h += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return Color(v), nil
}
