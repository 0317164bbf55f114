package gridpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/jps"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/wallfollow"
)

// ErrUnknownEngine indicates an engine name or kind that is not registered.
var ErrUnknownEngine = errors.New("gridpath: unknown engine")

// Engine identifies one of the built-in engines.
type Engine uint8

const (
	// Dijkstra is uniform-cost search; see package dijkstra.
	Dijkstra Engine = iota
	// AStar is heuristic best-first search; see package astar.
	AStar
	// JPS is jump point search; see package jps.
	JPS
	// WallFollow is the contour-following explorer search; see package wallfollow.
	WallFollow
)

var engineNames = [...]string{
	Dijkstra:   dijkstra.Name,
	AStar:      astar.Name,
	JPS:        jps.Name,
	WallFollow: wallfollow.Name,
}

// String returns the engine name as reported by Manager.Name.
func (e Engine) String() string {
	if int(e) < len(engineNames) {
		return engineNames[e]
	}
	return fmt.Sprintf("Engine(%d)", uint8(e))
}

// Engines lists every built-in engine in declaration order.
func Engines() []Engine {
	return []Engine{Dijkstra, AStar, JPS, WallFollow}
}

// ParseEngine maps a name ("dijkstra", "astar", "jps", "wallfollow";
// case-insensitive, "a*" accepted) to its Engine.
func ParseEngine(name string) (Engine, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" {
		return AStar, nil
	}
	for i, s := range engineNames {
		if s == n {
			return Engine(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Next returns the engine after e, wrapping around.
func (e Engine) Next() Engine {
	return Engine((int(e) + 1) % len(engineNames))
}

// New builds a manager of the given kind.
func New(kind Engine, opts ...search.Option) (search.Manager, error) {
	switch kind {
	case Dijkstra:
		return dijkstra.New(opts...), nil
	case AStar:
		return astar.New(opts...), nil
	case JPS:
		return jps.New(opts...), nil
	case WallFollow:
		return wallfollow.New(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, kind)
	}
}
