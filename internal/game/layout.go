package game

import (
	"fmt"
	"sort"
	"sync"
)

// Slot is a cell of the brick grid.
type Slot struct {
	Col, Row int
}

// LayoutFunc returns the occupied slots for a columns x rows field, in the
// order bricks are created.
type LayoutFunc func(columns, rows int) []Slot

var (
	layouts   = make(map[string]LayoutFunc)
	layoutsMu sync.RWMutex
)

// RegisterLayout adds a named field layout.
// Panics if a layout with the same name is already registered.
func RegisterLayout(name string, fn LayoutFunc) {
	layoutsMu.Lock()
	defer layoutsMu.Unlock()

	if _, exists := layouts[name]; exists {
		panic(fmt.Sprintf("game: layout %q already registered", name))
	}
	layouts[name] = fn
}

// Layouts returns the registered layout names, sorted.
func Layouts() []string {
	layoutsMu.RLock()
	defer layoutsMu.RUnlock()

	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupLayout(name string) (LayoutFunc, bool) {
	layoutsMu.RLock()
	defer layoutsMu.RUnlock()

	fn, ok := layouts[name]
	return fn, ok
}

func gridLayout(columns, rows int) []Slot {
	slots := make([]Slot, 0, columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			slots = append(slots, Slot{Col: col, Row: row})
		}
	}
	return slots
}

func lineLayout(columns, _ int) []Slot {
	return gridLayout(columns, 1)
}

func checkerLayout(columns, rows int) []Slot {
	slots := make([]Slot, 0, columns*rows/2+1)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if (row+col)%2 == 0 {
				slots = append(slots, Slot{Col: col, Row: row})
			}
		}
	}
	return slots
}

func init() {
	RegisterLayout("grid", gridLayout)
	RegisterLayout("line", lineLayout)
	RegisterLayout("checker", checkerLayout)
}
