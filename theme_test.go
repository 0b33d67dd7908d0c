package polyui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{"rgb", "#102030", Color(0x102030FF), false},
		{"rgba", "#10203040", Color(0x10203040), false},
		{"no hash", "102030", Color(0x102030FF), false},
		{"short", "#123", 0, true},
		{"junk", "#zzzzzz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultThemeAnimation(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, 200*time.Millisecond, th.Duration())
	assert.NotNil(t, th.EasingFunc())
}

func TestThemeDurationFallback(t *testing.T) {
	th := &Theme{}
	assert.Equal(t, DefaultAnimationDuration, th.Duration())
	assert.NotNil(t, th.EasingFunc(), "unknown easing falls back")
}

func TestLoadThemeKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	data := `
name = "midnight"

[colors]
background = "#000010"

[animation]
duration_ms = 350
easing = "out-cubic"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	th, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "midnight", th.Name)
	assert.Equal(t, "#000010", th.Colors.Background)
	assert.Equal(t, 350*time.Millisecond, th.Duration())
	// Keys absent from the file keep the default theme's values.
	assert.Equal(t, DefaultTheme().Colors.Text, th.Colors.Text)
	assert.Equal(t, DefaultTheme().Fonts.Regular, th.Fonts.Regular)
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestEasingByName(t *testing.T) {
	assert.NotNil(t, EasingByName("linear"))
	assert.NotNil(t, EasingByName("out-bounce"))
	assert.Nil(t, EasingByName("wobble"))
}

func TestThemeColorFallsBackToWhite(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, White, th.Color("not-a-color"))
	assert.Equal(t, Color(0x17171AFF), th.Color(th.Colors.Background))
}
