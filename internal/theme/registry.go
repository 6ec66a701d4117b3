package theme

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/maquette/internal/events"
	"github.com/alexisbeaulieu97/maquette/internal/logger"
	"github.com/alexisbeaulieu97/maquette/internal/store"
)

// SavedThemeKey is the preference-store key holding the active theme id.
const SavedThemeKey = "maquette.theme"

// Change describes a completed theme switch. PreviousID is empty when no
// theme had been applied before.
type Change struct {
	PreviousID string
	CurrentID  string
}

// Options configures a Registry. Zero-value fields fall back to in-memory
// or no-op implementations so the library works without any host wiring.
type Options struct {
	Store     store.Store
	Overlay   StyleOverlay
	Publisher events.Publisher
	Logger    *logger.Logger

	// Scheme reports the terminal colour scheme as (dark, ok). Left nil,
	// the termenv-backed detector is used.
	Scheme func() (dark bool, ok bool)
}

// Registry owns the set of named themes, the active selection, its
// persistence, and change notification. Hosts decide its lifetime; there
// is no package-level instance.
type Registry struct {
	mu        sync.RWMutex
	themes    map[string]Theme
	currentID string
	config    *Config

	subscribers map[int]func(Change)
	nextSubID   int

	store     store.Store
	overlay   StyleOverlay
	publisher events.Publisher
	log       *logger.Logger
	scheme    func() (bool, bool)
}

// NewRegistry creates a registry seeded with the built-in light and dark
// themes. No theme is current until Initialize or Apply is called.
func NewRegistry(opts Options) *Registry {
	if opts.Store == nil {
		opts.Store = store.NewMemStore()
	}
	if opts.Overlay == nil {
		opts.Overlay = nopOverlay{}
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Scheme == nil {
		opts.Scheme = terminalScheme
	}

	r := &Registry{
		themes:      make(map[string]Theme),
		subscribers: make(map[int]func(Change)),
		store:       opts.Store,
		overlay:     opts.Overlay,
		publisher:   opts.Publisher,
		log:         opts.Logger,
		scheme:      opts.Scheme,
	}

	for _, builtin := range []Theme{LightTheme(), DarkTheme()} {
		r.themes[builtin.ID] = builtin
	}

	return r
}

// LoadConfig parses a serialized theme configuration and merges its custom
// themes into the registry. Parse or validation failures leave the
// registry untouched: the error is logged and returned, and no theme is
// partially registered.
func (r *Registry) LoadConfig(data []byte) error {
	cfg, err := ParseThemeConfig(data)
	if err != nil {
		r.log.Error(err, "failed to load theme configuration")
		return err
	}

	r.mu.Lock()
	r.config = cfg
	r.mu.Unlock()

	for _, custom := range cfg.CustomThemes {
		r.Register(Theme{
			ID:          custom.ID,
			Name:        custom.Name,
			Description: custom.Description,
			Variables:   custom.Variables,
		})
	}

	r.log.WithFields(map[string]any{
		"default_theme": cfg.DefaultTheme,
		"custom_themes": len(cfg.CustomThemes),
	}).Debug("theme configuration loaded")

	return nil
}

// Initialize resolves the starting theme and applies it. Resolution order:
// the persisted preference if it still names a registered theme, then the
// configured default, then the hard-coded fallback.
func (r *Registry) Initialize() {
	if saved, ok := r.SavedTheme(); ok && r.Has(saved) {
		r.Apply(saved)
		return
	}

	r.mu.RLock()
	configured := ""
	if r.config != nil {
		configured = r.config.DefaultTheme
	}
	r.mu.RUnlock()

	if configured != "" && r.Has(configured) {
		r.Apply(configured)
		return
	}

	r.Apply(DefaultThemeID)
}

// Apply makes the named theme current. It returns false, leaving all
// state unchanged, when id is not registered. On success the choice is
// persisted best-effort and every subscriber is notified.
func (r *Registry) Apply(id string) bool {
	r.mu.Lock()
	t, ok := r.themes[id]
	if !ok {
		r.mu.Unlock()
		r.log.WithFields(map[string]any{"theme": id}).Warn("cannot apply unknown theme")
		return false
	}

	previous := r.currentID
	r.currentID = id

	if !t.BuiltIn && len(t.Variables) > 0 {
		r.overlay.Install(id, t.Variables)
	} else {
		r.overlay.Remove()
	}

	subs := make([]func(Change), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	if err := r.store.Set(SavedThemeKey, id); err != nil {
		r.log.Error(err, "failed to persist theme selection")
	}

	change := Change{PreviousID: previous, CurrentID: id}
	for _, fn := range subs {
		fn(change)
	}
	r.publisher.Publish("theme.changed", map[string]any{
		"previous_theme_id": previous,
		"current_theme_id":  id,
	})

	r.log.WithFields(map[string]any{"theme": id, "previous": previous}).Debug("theme applied")
	return true
}

// Register inserts or overwrites a theme. The BuiltIn flag is always
// cleared so callers cannot spoof the seeded themes.
func (r *Registry) Register(t Theme) {
	t.BuiltIn = false
	t = normalizeTheme(t)

	r.mu.Lock()
	r.themes[t.ID] = t
	r.mu.Unlock()
}

// Unregister removes a custom theme. It returns false for unknown or
// built-in ids. If the removed theme was current, the hard-coded default
// is re-applied immediately.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	t, ok := r.themes[id]
	if !ok || t.BuiltIn {
		r.mu.Unlock()
		return false
	}

	delete(r.themes, id)
	wasCurrent := r.currentID == id
	r.mu.Unlock()

	if wasCurrent {
		r.Apply(DefaultThemeID)
	}
	return true
}

// SavedTheme returns the persisted theme id, if any. Store failures are
// indistinguishable from an absent preference.
func (r *Registry) SavedTheme() (string, bool) {
	return r.store.Get(SavedThemeKey)
}

// ClearSavedTheme removes the persisted preference. Failures are logged
// and swallowed.
func (r *Registry) ClearSavedTheme() {
	if err := r.store.Delete(SavedThemeKey); err != nil {
		r.log.Error(err, "failed to clear saved theme")
	}
}

// OnChange registers fn for future change notifications and returns its
// unsubscribe function. Subscribers are independent: removing one never
// affects the others.
func (r *Registry) OnChange(fn func(Change)) func() {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subscribers, id)
		r.mu.Unlock()
	}
}

// PrefersColorScheme reports the terminal's preferred scheme, "light" or
// "dark". When detection is unavailable it returns "light".
func (r *Registry) PrefersColorScheme() string {
	dark, ok := r.scheme()
	if !ok || !dark {
		return "light"
	}
	return "dark"
}

// Get returns the theme registered under id.
func (r *Registry) Get(id string) (Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[id]
	return t, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.themes[id]
	return ok
}

// List returns all registered themes, built-ins first, then custom themes
// sorted by id.
func (r *Registry) List() []Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builtins := make([]Theme, 0, 2)
	customs := make([]Theme, 0, len(r.themes))
	for _, t := range r.themes {
		if t.BuiltIn {
			builtins = append(builtins, t)
		} else {
			customs = append(customs, t)
		}
	}

	sortThemes(builtins)
	sortThemes(customs)
	return append(builtins, customs...)
}

func sortThemes(themes []Theme) {
	sort.Slice(themes, func(i, j int) bool {
		return themes[i].ID < themes[j].ID
	})
}

// CurrentID returns the active theme id, or "" before the first apply.
func (r *Registry) CurrentID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentID
}

// Current returns the active theme. The second result is false before the
// first apply.
func (r *Registry) Current() (Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.currentID == "" {
		return Theme{}, false
	}
	t, ok := r.themes[r.currentID]
	return t, ok
}

// DefaultTheme returns the configured default theme id, falling back to
// the hard-coded default when no configuration was loaded.
func (r *Registry) DefaultTheme() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config != nil && r.config.DefaultTheme != "" {
		return r.config.DefaultTheme
	}
	return DefaultThemeID
}

// ActivePalette returns the palette widgets should render with: the
// current theme's palette with any live overlay applied. Before the first
// apply it returns the light palette.
func (r *Registry) ActivePalette() Palette {
	current, ok := r.Current()
	if !ok {
		return lightPalette()
	}

	palette := current.Palette
	if overlay, isPalette := r.overlay.(*PaletteOverlay); isPalette {
		palette = overlay.Apply(palette)
	}
	return palette
}
