package textstate

import (
	"errors"
	"fmt"

	"github.com/gogpu/textstate/shape"
)

// Context is the shared layout context threaded into every reshape: the
// shaping engine and the font library it resolves families against.
// One Context is shared by all states of a Manager; it is borrowed
// exclusively for the duration of one Recalculate. There are no hidden
// globals; every operation that shapes receives the Context explicitly.
type Context struct {
	Shaper shape.Shaper
	Fonts  *shape.Library
}

// Option configures a Manager.
type Option func(*managerConfig)

type managerConfig struct {
	shaper     shape.Shaper
	fonts      *shape.Library
	caretWidth float64
}

// WithShaper replaces the default HarfBuzz engine. Tests use it to
// inject deterministic shapers.
func WithShaper(s shape.Shaper) Option {
	return func(c *managerConfig) { c.shaper = s }
}

// WithFonts shares a caller-owned font library, for example one
// already populated by another Manager.
func WithFonts(lib *shape.Library) Option {
	return func(c *managerConfig) { c.fonts = lib }
}

// WithCaretWidth sets the caret thickness given to new states.
func WithCaretWidth(w float64) Option {
	return func(c *managerConfig) { c.caretWidth = w }
}

// Manager owns a registry of text states keyed by ID, the shared
// layout context, and per-frame usage tracking. States not looked up
// between StartFrame and EndFrame are swept; see [Manager.EndFrame].
//
// A Manager is driven from a single caller-controlled frame loop and
// is not safe for concurrent use.
type Manager[M any] struct {
	ctx    *Context
	states map[ID]*State[M]

	touched   map[ID]struct{}
	frameOpen bool

	caretWidth float64
}

// NewManager creates an empty Manager. Without options it shapes with
// the HarfBuzz engine over its own empty font library; load fonts
// before the first recalculation.
func NewManager[M any](opts ...Option) *Manager[M] {
	cfg := managerConfig{caretWidth: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fonts == nil {
		cfg.fonts = shape.NewLibrary()
	}
	if cfg.shaper == nil {
		cfg.shaper = shape.NewEngine(cfg.fonts)
	}
	return &Manager[M]{
		ctx:        &Context{Shaper: cfg.shaper, Fonts: cfg.fonts},
		states:     make(map[ID]*State[M]),
		touched:    make(map[ID]struct{}),
		caretWidth: cfg.caretWidth,
	}
}

// Context returns the shared layout context, for passing into State
// operations.
func (m *Manager[M]) Context() *Context {
	return m.ctx
}

// Len returns the number of registered states.
func (m *Manager[M]) Len() int {
	return len(m.states)
}

// Create registers a new state under id with initial text and
// metadata. It returns ErrDuplicateID if the id is taken. Creation
// counts as touching the id for the current frame.
func (m *Manager[M]) Create(id ID, text string, metadata M) (*State[M], error) {
	if _, ok := m.states[id]; ok {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateID, id)
	}
	return m.insert(id, text, metadata), nil
}

// CreateOrReplace registers a new state under id, dropping any
// existing one along with its cached layout.
func (m *Manager[M]) CreateOrReplace(id ID, text string, metadata M) *State[M] {
	return m.insert(id, text, metadata)
}

func (m *Manager[M]) insert(id ID, text string, metadata M) *State[M] {
	st := newState(text, metadata)
	st.CaretWidth = m.caretWidth
	m.states[id] = st
	m.touch(id)
	return st
}

// Remove drops the state under id, releasing its cached layout. It
// returns ErrNotFound if no state exists.
func (m *Manager[M]) Remove(id ID) error {
	if _, ok := m.states[id]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	delete(m.states, id)
	delete(m.touched, id)
	return nil
}

// State looks up the state under id. A successful lookup marks the id
// as touched for the current frame; this is the liveness signal the
// frame sweep relies on, so look up every state you intend to keep,
// every frame.
func (m *Manager[M]) State(id ID) (*State[M], bool) {
	st, ok := m.states[id]
	if ok {
		m.touch(id)
	}
	return st, ok
}

// Each visits all states in unspecified order without marking them
// touched. The visitor returns false to stop early.
func (m *Manager[M]) Each(fn func(ID, *State[M]) bool) {
	for id, st := range m.states {
		if !fn(id, st) {
			return
		}
	}
}

func (m *Manager[M]) touch(id ID) {
	if m.frameOpen {
		m.touched[id] = struct{}{}
	}
}

// LoadFonts reads and registers font files. Failures are collected
// per path and joined; one unreadable font never aborts the rest.
// Test individual failures with errors.As against *shape.FontError.
func (m *Manager[M]) LoadFonts(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := m.ctx.Fonts.LoadFile(path); err != nil {
			Logger().Warn("textstate: font load failed", "source", path, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadFontBytes registers in-memory font data, one font per slice.
// Failures are collected per source like LoadFonts.
func (m *Manager[M]) LoadFontBytes(sources ...[]byte) error {
	var errs []error
	for i, data := range sources {
		src := fmt.Sprintf("font[%d]", i)
		if err := m.ctx.Fonts.Load(data, src); err != nil {
			Logger().Warn("textstate: font load failed", "source", src, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StartFrame opens a frame: the touched set is cleared and lookups
// begin marking liveness. Calling it is optional; a Manager that never
// starts a frame keeps every state forever.
func (m *Manager[M]) StartFrame() {
	clear(m.touched)
	m.frameOpen = true
}

// EndFrame sweeps every state not touched since StartFrame, appends
// the evicted IDs to dst, and returns it. The caller reacts to the
// returned IDs, for example by releasing renderer resources. Without a
// prior StartFrame nothing is removed.
//
// The sweep is mark-and-sweep with a generation of exactly one frame:
// a state the caller skips for a single frame is evicted. That is the
// documented contract, traded for not needing reference counting.
func (m *Manager[M]) EndFrame(dst []ID) []ID {
	if !m.frameOpen {
		return dst
	}
	m.frameOpen = false

	for id := range m.states {
		if _, ok := m.touched[id]; ok {
			continue
		}
		delete(m.states, id)
		dst = append(dst, id)
		Logger().Debug("textstate: evicted", "id", id)
	}
	clear(m.touched)
	return dst
}
