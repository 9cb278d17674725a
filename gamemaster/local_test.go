package gamemaster

import (
	"inversi/game"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	board, getUpdate := engine.Init()

	require.NotNil(t, board)
	require.Equal(t, game.NewBoard().Grid(), board.Grid())
	require.Equal(t, game.SeatX, engine.Turn())
	require.Len(t, engine.Moves(), 4*game.Size)

	_, ok := getUpdate()
	require.False(t, ok, "expected no update yet")
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine := NewLocalEngine()
	board, getUpdate := engine.Init()

	move := engine.Moves()[6]
	require.NoError(t, engine.PlayIndex(6))

	u, ok := getUpdate()
	require.True(t, ok, "expected an update after playing a move")
	require.Equal(t, game.SeatX, u.Seat)
	require.Equal(t, move, u.Move)
	require.False(t, u.Passed)

	require.NoError(t, board.Place(move, game.SeatX))
	require.Equal(t, board.Grid(), u.Grid, "update should carry the grid after the move")
	require.Equal(t, game.SeatO, engine.Turn())
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	t.Run("before init", func(t *testing.T) {
		engine := NewLocalEngine()
		require.Error(t, engine.Play(game.Move{}))
		require.Nil(t, engine.Moves())
	})

	t.Run("move off the board", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init()

		err := engine.Play(game.Move{Position: game.Position{X: 2, Y: 2}, Direction: game.Right})
		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Equal(t, game.SeatX, engine.Turn(), "turn should not advance")
	})

	t.Run("index out of range", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init()

		require.ErrorIs(t, engine.PlayIndex(24), game.ErrInvalidMove)
		require.ErrorIs(t, engine.PlayIndex(-1), game.ErrInvalidMove)
	})
}

func TestLocalEnginePass(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init()

	require.NoError(t, engine.Pass())
	require.NoError(t, engine.Pass())

	u, ok := getUpdate()
	require.True(t, ok)
	require.True(t, u.Passed)
	require.Equal(t, game.SeatO, u.Seat, "only the latest update is kept")
	require.Equal(t, game.SeatX, engine.Turn())
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init()

	// One unfinalized x left, at the far end of the first move
	var grid game.Grid
	for x := range grid {
		for y := range grid[x] {
			grid[x][y] = 1
		}
	}
	grid[0][game.Size-1] = 0
	engine.board = game.NewBoardFrom(grid, [2]game.Stone{2, 3}) // force internal state

	require.NoError(t, engine.PlayIndex(0))
	require.True(t, engine.gameOver)

	_, ok := getUpdate()
	require.True(t, ok, "expected a final update before game ends")

	_, ok = getUpdate()
	require.False(t, ok, "expected no updates after game over")

	err := engine.Pass()
	require.ErrorIs(t, err, ErrGameOver)
	require.EqualError(t, engine.PlayIndex(0), "game is over - no moves allowed")
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	board1, _ := NewLocalEngine().Init()
	board2, _ := NewLocalEngine().Init()

	require.NotSame(t, board1, board2)
	require.True(t, reflect.DeepEqual(board1, board2), "expected the same initial board")
}
