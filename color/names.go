package color

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// extraNames holds colors the SVG 1.1 set behind colornames.Map does
// not define. Entries here overwrite the base set on collision.
var extraNames = map[string]Color{
	"transparent":   {R: 0, G: 0, B: 0, A: 0},
	"rebeccapurple": {R: 102, G: 51, B: 153, A: 255},
}

var (
	namesOnce sync.Once
	names     map[string]Color
)

// namedColors returns the name table, building it on first use. The
// table is never written again once namesOnce completes, so readers
// need no locking.
func namedColors() map[string]Color {
	namesOnce.Do(func() {
		m := make(map[string]Color, len(colornames.Map)+len(extraNames))
		for name, c := range colornames.Map {
			m[name] = Color{R: c.R, G: c.G, B: c.B, A: c.A}
		}
		for name, c := range extraNames {
			m[name] = c
		}
		names = m
	})
	return names
}

// Lookup returns the color registered under name. Matching is
// case-insensitive; the table stores lowercase names.
func Lookup(name string) (Color, bool) {
	c, ok := namedColors()[strings.ToLower(name)]
	return c, ok
}

// Names returns the sorted list of recognized color names. The slice
// is a copy; callers may modify it freely.
func Names() []string {
	table := namedColors()
	list := make([]string, 0, len(table))
	for name := range table {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
