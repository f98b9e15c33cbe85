package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/go-playground/validator.v9"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := New().Config()
	assert.Equal(t, DefaultOverlay(), cfg.Overlay)
	assert.False(t, cfg.Overlay.ShowArea)
	assert.True(t, cfg.Overlay.CollisionDetection)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, cfg.Overlay.Color)
	assert.Equal(t, 600, cfg.Viewer.TickMillis)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "aggro.yaml", `
npcAggroArea:
  showNpcAggroArea: true
  npcAggroAreaCollisionDetection: false
  npcAggroAreaColor: "#00ff0080"
metrics:
  enabled: true
  addr: ":9100"
viewer:
  scene: scenes/lumbridge.yaml
`)
	s, err := Load(path)
	require.NoError(t, err)

	cfg := s.Config()
	assert.True(t, cfg.Overlay.ShowArea)
	assert.False(t, cfg.Overlay.CollisionDetection)
	assert.Equal(t, color.NRGBA{G: 255, A: 0x80}, cfg.Overlay.Color)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "scenes/lumbridge.yaml", cfg.Viewer.Scene)
	assert.Equal(t, 1024, cfg.Viewer.Width, "unset keys keep defaults")
}

func TestLoadRejectsInvalidColor(t *testing.T) {
	path := writeFile(t, t.TempDir(), "aggro.json", `{"npcAggroArea": {"npcAggroAreaColor": "red"}}`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#12ab34")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0xab, B: 0x34, A: 0xff}, c)
	assert.Equal(t, "#12ab34", FormatColor(c))

	c, err = ParseColor("12ab3440")
	require.NoError(t, err)
	assert.Equal(t, "#12ab3440", FormatColor(c))

	for _, bad := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestSetAndToggle(t *testing.T) {
	s := New()

	o, changed, err := s.Set(KeyColor, "#0000ff")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, o.Color)

	_, changed, err = s.Set(KeyColor, "#0000ff")
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = s.Set(KeyColor, "blue")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, s.Overlay().Color, "failed set keeps the old value")

	o, err = s.Toggle(KeyShowArea)
	require.NoError(t, err)
	assert.True(t, o.ShowArea)
	o, err = s.Toggle(KeyCollisionDetection)
	require.NoError(t, err)
	assert.False(t, o.CollisionDetection)

	_, err = s.Toggle(KeyColor)
	assert.Error(t, err)
	_, _, err = s.Set("bogus", true)
	assert.Error(t, err)
}

func TestChangedKeysOrder(t *testing.T) {
	a := DefaultOverlay()
	b := Overlay{ShowArea: true, CollisionDetection: false, Color: color.NRGBA{A: 255}}
	assert.Equal(t, []string{KeyShowArea, KeyCollisionDetection, KeyColor}, changedKeys(a, b))
	assert.Empty(t, changedKeys(a, a))
}

func TestWatchReportsChangedKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "aggro.yaml", "npcAggroArea:\n  showNpcAggroArea: false\n")
	s, err := Load(path)
	require.NoError(t, err)

	keys := make(chan string, 8)
	s.Watch(func(key string, o Overlay) {
		if key == KeyShowArea && o.ShowArea {
			keys <- key
		}
	}, nil)

	require.NoError(t, os.WriteFile(path, []byte("npcAggroArea:\n  showNpcAggroArea: true\n"), 0o644))

	select {
	case key := <-keys:
		assert.Equal(t, KeyShowArea, key)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	assert.True(t, s.Overlay().ShowArea)
}

func TestLoadValidatesRanges(t *testing.T) {
	path := writeFile(t, t.TempDir(), "aggro.yaml", "viewer:\n  tilepixels: 0\n")
	_, err := Load(path)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "TilePixels", verrs[0].Field())
}
