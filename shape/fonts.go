package shape

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Library holds parsed fonts keyed by family name and resolves family
// query strings to a concrete font. It is safe for concurrent use.
//
// The parsed font.Font objects are read-only and shared; per-call
// font.Face instances are created by the Engine at shape time.
type Library struct {
	mu       sync.RWMutex
	families map[string]*font.Font
	order    []string

	// resolved memoizes query string to family key lookups. Queries
	// repeat heavily across frames, family sets change rarely.
	resolved *cache[string, string]
}

// NewLibrary returns an empty font library.
func NewLibrary() *Library {
	return &Library{
		families: make(map[string]*font.Font),
		resolved: newCache[string, string](64),
	}
}

// Load parses TTF or OTF font data and registers it under its family
// name. The source string only labels errors. Loading a family that is
// already registered replaces it.
func (l *Library) Load(data []byte, source string) error {
	if len(data) == 0 {
		return &FontError{Source: source, Err: ErrEmptyFontData}
	}

	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return &FontError{Source: source, Err: err}
	}

	name := familyName(data)
	if name == "" {
		name = source
	}
	key := strings.ToLower(strings.TrimSpace(name))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.families[key]; !ok {
		l.order = append(l.order, key)
	}
	l.families[key] = parsed.Font
	l.resolved.clear()
	return nil
}

// LoadFile reads and registers a font file. The path labels errors.
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FontError{Source: path, Err: err}
	}
	return l.Load(data, path)
}

// Len returns the number of registered families.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.families)
}

// Families returns the registered family names, sorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, len(l.order))
	copy(names, l.order)
	sort.Strings(names)
	return names
}

// Resolve maps a family query to a loaded font. The query is a
// comma-separated list of family names tried in order,
// case-insensitively, like "Inter, Noto Sans, sans-serif". When no
// entry matches, the first loaded font is used as fallback. Resolve
// returns ErrNoFonts when the library is empty.
func (l *Library) Resolve(query string) (*font.Font, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.order) == 0 {
		return nil, ErrNoFonts
	}
	if key, ok := l.resolved.get(query); ok {
		return l.families[key], nil
	}

	key := l.order[0]
	for _, part := range strings.Split(query, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if _, ok := l.families[part]; ok {
			key = part
			break
		}
	}
	l.resolved.set(query, key)
	return l.families[key], nil
}

// familyName extracts the family name from the font's naming table, or
// "" when the table cannot be read.
func familyName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
