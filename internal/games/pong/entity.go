package pong

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Kind is the role of an entity in the simulation.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindGutter
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "Ball"
	case KindPaddle:
		return "Paddle"
	case KindGutter:
		return "Gutter"
	default:
		return "Unknown"
	}
}

// EntityID identifies an entity for the lifetime of a World.
// IDs are assigned densely in spawn order.
type EntityID int

// Entity is a simulated object. It is plain data: systems read and
// write the fields directly.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Player bool // Paddle driven by player input

	Position core.Vec2 // Box center, simulation space
	Shape    core.Vec2 // Full box size, fixed after spawn
	Velocity core.Vec2 // Displacement per tick before speed scaling
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Position, e.Shape)
}

// Arena is the size of the playing field, centered on the origin.
type Arena struct {
	Width  float64
	Height float64
}

// Registry invariant violations.
var (
	ErrDuplicateBall   = errors.New("pong: world already has a ball")
	ErrDuplicatePlayer = errors.New("pong: world already has a player paddle")
	ErrPlayerNotPaddle = errors.New("pong: only paddles can be player controlled")
)

// World is the entity registry. Entities are stored in spawn order and
// never removed, so an EntityID is also the entity's index.
type World struct {
	entities []Entity
	arena    Arena

	ball   EntityID
	player EntityID
	// hasBall and hasPlayer guard the two singletons.
	hasBall   bool
	hasPlayer bool
}

// NewWorld creates an empty world for an arena of the given size.
func NewWorld(arena Arena) *World {
	return &World{arena: arena}
}

// Arena returns the current arena size.
func (w *World) Arena() Arena {
	return w.arena
}

// SetArena replaces the arena size. Existing entities are not moved.
func (w *World) SetArena(arena Arena) {
	w.arena = arena
}

// Spawn adds an entity and returns its ID. The ID field of e is ignored.
// A second ball or a second player paddle is rejected.
func (w *World) Spawn(e Entity) (EntityID, error) {
	if e.Kind == KindBall && w.hasBall {
		return 0, ErrDuplicateBall
	}
	if e.Player {
		if e.Kind != KindPaddle {
			return 0, fmt.Errorf("%w: got %v", ErrPlayerNotPaddle, e.Kind)
		}
		if w.hasPlayer {
			return 0, ErrDuplicatePlayer
		}
	}

	e.ID = EntityID(len(w.entities))
	w.entities = append(w.entities, e)

	if e.Kind == KindBall {
		w.ball, w.hasBall = e.ID, true
	}
	if e.Player {
		w.player, w.hasPlayer = e.ID, true
	}
	return e.ID, nil
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Get returns the entity with the given ID.
func (w *World) Get(id EntityID) (*Entity, bool) {
	if id < 0 || int(id) >= len(w.entities) {
		return nil, false
	}
	return &w.entities[id], true
}

// Ball returns the ball, if one has been spawned.
func (w *World) Ball() (*Entity, bool) {
	if !w.hasBall {
		return nil, false
	}
	return &w.entities[w.ball], true
}

// Player returns the player paddle, if one has been spawned.
func (w *World) Player() (*Entity, bool) {
	if !w.hasPlayer {
		return nil, false
	}
	return &w.entities[w.player], true
}

// Paddles returns pointers to every paddle, in spawn order.
func (w *World) Paddles() []*Entity {
	return w.filter(func(e *Entity) bool { return e.Kind == KindPaddle })
}

// Obstacles returns every entity the ball can collide with, in spawn order.
func (w *World) Obstacles() []*Entity {
	return w.filter(func(e *Entity) bool { return e.Kind != KindBall })
}

// Entities returns a copy of all entities for read-only consumers.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

func (w *World) filter(keep func(*Entity) bool) []*Entity {
	var out []*Entity
	for i := range w.entities {
		if keep(&w.entities[i]) {
			out = append(out, &w.entities[i])
		}
	}
	return out
}
