package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestSpawnRejectsSecondBall(t *testing.T) {
	w := NewWorld(Arena{Width: 800, Height: 600})

	id, err := w.Spawn(Entity{Kind: KindBall, Shape: core.V(10, 10)})
	require.NoError(t, err)
	assert.Equal(t, EntityID(0), id)

	_, err = w.Spawn(Entity{Kind: KindBall, Shape: core.V(10, 10)})
	assert.ErrorIs(t, err, ErrDuplicateBall)
	assert.Equal(t, 1, w.Len(), "rejected entity must not be stored")
}

func TestSpawnRejectsSecondPlayer(t *testing.T) {
	w := NewWorld(Arena{Width: 800, Height: 600})

	_, err := w.Spawn(Entity{Kind: KindPaddle, Player: true})
	require.NoError(t, err)

	_, err = w.Spawn(Entity{Kind: KindPaddle, Player: true})
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = w.Spawn(Entity{Kind: KindGutter, Player: true})
	assert.ErrorIs(t, err, ErrPlayerNotPaddle)

	_, err = w.Spawn(Entity{Kind: KindPaddle})
	assert.NoError(t, err, "untagged paddles are unlimited")
}

func TestQueriesOnEmptyWorld(t *testing.T) {
	w := NewWorld(Arena{Width: 800, Height: 600})

	_, ok := w.Ball()
	assert.False(t, ok)
	_, ok = w.Player()
	assert.False(t, ok)
	_, ok = w.Get(0)
	assert.False(t, ok)
	assert.Empty(t, w.Paddles())
	assert.Empty(t, w.Obstacles())
}

func TestNewArenaWorldLayout(t *testing.T) {
	w, err := NewArenaWorld(Arena{Width: 800, Height: 600}, DefaultParams())
	require.NoError(t, err)
	require.Equal(t, 5, w.Len())

	ball, ok := w.Ball()
	require.True(t, ok)
	assert.Equal(t, core.V(0, 0), ball.Position)
	assert.Equal(t, core.V(10, 10), ball.Shape)
	assert.Equal(t, core.V(1, 0), ball.Velocity)

	player, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, core.V(-350, 0), player.Position)
	assert.Equal(t, core.V(10, 50), player.Shape)

	paddles := w.Paddles()
	require.Len(t, paddles, 2)
	assert.Equal(t, core.V(350, 0), paddles[1].Position)
	assert.False(t, paddles[1].Player)
	assert.Equal(t, core.V(0, 0), paddles[1].Velocity)

	obstacles := w.Obstacles()
	require.Len(t, obstacles, 4)
	top, bottom := obstacles[2], obstacles[3]
	assert.Equal(t, KindGutter, top.Kind)
	assert.Equal(t, core.V(0, 290), top.Position)
	assert.Equal(t, core.V(0, -290), bottom.Position)
	assert.Equal(t, core.V(800, 20), top.Shape)
	assert.Equal(t, core.V(800, 20), bottom.Shape)
}

func TestPaddlePlacementFollowsArena(t *testing.T) {
	w, err := NewArenaWorld(Arena{Width: 1000, Height: 400}, DefaultParams())
	require.NoError(t, err)

	paddles := w.Paddles()
	require.Len(t, paddles, 2)
	assert.Equal(t, -450.0, paddles[0].Position.X)
	assert.Equal(t, 450.0, paddles[1].Position.X)

	obstacles := w.Obstacles()
	assert.Equal(t, 190.0, obstacles[2].Position.Y)
	assert.Equal(t, 1000.0, obstacles[2].Shape.X)
}

func TestEntitiesReturnsCopy(t *testing.T) {
	w, err := NewArenaWorld(Arena{Width: 800, Height: 600}, DefaultParams())
	require.NoError(t, err)

	entities := w.Entities()
	entities[0].Position = core.V(99, 99)

	ball, _ := w.Ball()
	assert.Equal(t, core.V(0, 0), ball.Position)
}
