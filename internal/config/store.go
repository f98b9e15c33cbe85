package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// Store wraps a viper instance and keeps the last successfully decoded
// Config.
type Store struct {
	mu      sync.Mutex
	v       *viper.Viper
	current Config
}

func overlayKey(key string) string {
	return Group + "." + key
}

func setDefaults(v *viper.Viper) {
	def := DefaultOverlay()
	v.SetDefault(overlayKey(KeyShowArea), def.ShowArea)
	v.SetDefault(overlayKey(KeyCollisionDetection), def.CollisionDetection)
	v.SetDefault(overlayKey(KeyColor), FormatColor(def.Color))

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.rotation", true)
	v.SetDefault("logger.stdout", true)
	v.SetDefault("logger.maxsize", 100)
	v.SetDefault("logger.maxage", 7)
	v.SetDefault("logger.maxbackups", 3)
	v.SetDefault("logger.localtime", true)
	v.SetDefault("logger.compress", false)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")

	v.SetDefault("viewer.scene", "data/scene.json")
	v.SetDefault("viewer.width", 1024)
	v.SetDefault("viewer.height", 768)
	v.SetDefault("viewer.tilepixels", 8)
	v.SetDefault("viewer.tickmillis", 600)
	v.SetDefault("viewer.startx", 3160)
	v.SetDefault("viewer.starty", 3200)
}

// New returns a store holding only the defaults.
func New() *Store {
	v := viper.New()
	setDefaults(v)
	s := &Store{v: v}
	// Defaults always decode.
	s.current, _ = decode(v)
	return s
}

// Load reads the config file at path on top of the defaults. The format is
// taken from the file extension.
func Load(path string) (*Store, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return &Store{v: v, current: cfg}, nil
}

func decode(v *viper.Viper) (Config, error) {
	c, err := ParseColor(v.GetString(overlayKey(KeyColor)))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Overlay: Overlay{
			ShowArea:           v.GetBool(overlayKey(KeyShowArea)),
			CollisionDetection: v.GetBool(overlayKey(KeyCollisionDetection)),
			Color:              c,
		},
		Logger: Logger{
			Level:      v.GetString("logger.level"),
			File:       v.GetString("logger.file"),
			Rotation:   v.GetBool("logger.rotation"),
			Stdout:     v.GetBool("logger.stdout"),
			MaxSize:    v.GetInt("logger.maxsize"),
			MaxAge:     v.GetInt("logger.maxage"),
			MaxBackups: v.GetInt("logger.maxbackups"),
			LocalTime:  v.GetBool("logger.localtime"),
			Compress:   v.GetBool("logger.compress"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("metrics.enabled"),
			Addr:    v.GetString("metrics.addr"),
		},
		Viewer: Viewer{
			Scene:      v.GetString("viewer.scene"),
			Width:      v.GetInt("viewer.width"),
			Height:     v.GetInt("viewer.height"),
			TilePixels: v.GetInt("viewer.tilepixels"),
			TickMillis: v.GetInt("viewer.tickmillis"),
			StartX:     v.GetInt("viewer.startx"),
			StartY:     v.GetInt("viewer.starty"),
		},
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Config returns the last decoded configuration.
func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Overlay returns the current overlay settings.
func (s *Store) Overlay() Overlay {
	return s.Config().Overlay
}

// Set changes one overlay key in memory and returns the resulting settings.
// changed is false when the value was already set.
func (s *Store) Set(key string, value any) (Overlay, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case KeyShowArea, KeyCollisionDetection, KeyColor:
	default:
		return s.current.Overlay, false, fmt.Errorf("unknown overlay key %q", key)
	}

	prev := s.v.Get(overlayKey(key))
	s.v.Set(overlayKey(key), value)
	cfg, err := decode(s.v)
	if err != nil {
		s.v.Set(overlayKey(key), prev)
		return s.current.Overlay, false, fmt.Errorf("failed to set %s: %w", key, err)
	}
	changed := len(changedKeys(s.current.Overlay, cfg.Overlay)) > 0
	s.current = cfg
	return cfg.Overlay, changed, nil
}

// Toggle flips a boolean overlay key.
func (s *Store) Toggle(key string) (Overlay, error) {
	cur := s.Overlay()
	var next bool
	switch key {
	case KeyShowArea:
		next = !cur.ShowArea
	case KeyCollisionDetection:
		next = !cur.CollisionDetection
	default:
		return cur, fmt.Errorf("key %q is not a toggle", key)
	}
	o, _, err := s.Set(key, next)
	return o, err
}

// Watch re-reads the config file whenever it changes on disk and calls
// onChange once for every overlay key whose value changed, with the settings
// after the change. A file that fails to decode is reported to onError and
// the previous settings stay in effect. Callbacks run on the watcher
// goroutine.
func (s *Store) Watch(onChange func(key string, o Overlay), onError func(error)) {
	s.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		keys, o, err := s.reload()
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("failed to reload config %s: %w", e.Name, err))
			}
			return
		}
		for _, key := range keys {
			onChange(key, o)
		}
	})
	s.v.WatchConfig()
}

func (s *Store) reload() ([]string, Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := decode(s.v)
	if err != nil {
		return nil, s.current.Overlay, err
	}
	keys := changedKeys(s.current.Overlay, cfg.Overlay)
	s.current = cfg
	return keys, cfg.Overlay, nil
}
