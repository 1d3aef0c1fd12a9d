package stylemgr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/sx"
	"github.com/npillmayer/sx/baseline"
	"github.com/zeebo/xxh3"
)

// DefaultCapacity is the number of mounted styles a manager keeps by default.
const DefaultCapacity = 256

// ErrNoTheme is returned when creating a manager without a theme.
var ErrNoTheme = errors.New("style manager needs a theme")

// Ref refers to a mounted style.
type Ref struct {
	Class string // generated class name, without the leading '.'
	CSS   string // compiled rules for the class
}

// Selector returns the class selector of a mounted style.
func (ref Ref) Selector() string {
	return "." + ref.Class
}

// Manager compiles and memoizes styles for a theme. Identical styles,
// mounted in the same mode, share one class and are compiled once.
// A Manager is safe for concurrent use.
type Manager struct {
	theme    *sx.Theme
	detector sx.Detector
	mu       sync.Mutex // guards mode and compile-once
	mode     sx.Mode
	cache    *lru.Cache[uint64, Ref]
	compiles int
}

type options struct {
	mode     sx.Mode
	detector sx.Detector
	capacity int
}

// Option configures a Manager.
type Option func(*options)

// WithMode sets the theme mode of mounted styles. The default is System.
func WithMode(m sx.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithDetector sets the detector which resolves mode System.
func WithDetector(d sx.Detector) Option {
	return func(o *options) {
		o.detector = d
	}
}

// WithCapacity sets the number of mounted styles kept. Least recently
// mounted styles are dropped first.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New creates a manager for a theme.
func New(theme *sx.Theme, opts ...Option) (*Manager, error) {
	if theme == nil {
		return nil, ErrNoTheme
	}
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	cache, err := lru.New[uint64, Ref](o.capacity)
	if err != nil {
		return nil, fmt.Errorf("style manager: %w", err)
	}
	tracer().Debugf("style manager for theme %q, capacity %d", theme.Prefix(), o.capacity)
	return &Manager{
		theme:    theme,
		detector: o.detector,
		mode:     o.mode,
		cache:    cache,
	}, nil
}

// Theme returns the theme of mgr.
func (mgr *Manager) Theme() *sx.Theme {
	return mgr.theme
}

// Mode returns the theme mode styles are mounted in, with System resolved.
func (mgr *Manager) Mode() sx.Mode {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.mode.Resolve(mgr.detector)
}

// SetMode switches the theme mode for subsequent mounts. Styles mounted
// before keep their classes.
func (mgr *Manager) SetMode(m sx.Mode) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.mode = m
}

// Mount compiles a style into a class of its own, or returns the class of
// an identical style mounted before. Compile errors are returned and not
// memoized.
func (mgr *Manager) Mount(style *sx.Style) (Ref, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	m := mgr.mode.Resolve(mgr.detector)
	key := fingerprint(style, m, mgr.theme)
	if ref, ok := mgr.cache.Get(key); ok {
		tracer().Debugf("style %s already mounted", ref.Class)
		return ref, nil
	}
	class := fmt.Sprintf("%s-%016x", mgr.theme.Prefix(), key)
	css, err := sx.Compile(style, m, mgr.theme, sx.WithBase("."+class))
	if err != nil {
		return Ref{}, fmt.Errorf("mounting style: %w", err)
	}
	mgr.compiles++
	ref := Ref{Class: class, CSS: css}
	if mgr.cache.Add(key, ref) {
		tracer().Infof("style cache full, dropped least recently mounted style")
	}
	tracer().Debugf("mounted style %s in %s mode", class, m)
	return ref, nil
}

// Mounted returns the mounted styles, least recently mounted first.
func (mgr *Manager) Mounted() []Ref {
	keys := mgr.cache.Keys()
	refs := make([]Ref, 0, len(keys))
	for _, k := range keys {
		if ref, ok := mgr.cache.Peek(k); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Baseline compiles the baseline sheet of the theme in the current mode.
func (mgr *Manager) Baseline() (string, error) {
	return baseline.Sheet(mgr.theme, mgr.Mode(), nil)
}

// BaselineID is the data-style attribute of the baseline <style> element.
func (mgr *Manager) BaselineID() string {
	return "theme-" + mgr.theme.Prefix() + "-main"
}

func fingerprint(style *sx.Style, m sx.Mode, theme *sx.Theme) uint64 {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:], style.Fingerprint())
	binary.LittleEndian.PutUint64(buf[8:], theme.ID())
	buf[16] = byte(m)
	return xxh3.Hash(buf[:])
}
