package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

type managerMocks struct {
	games       *mockedUseCase.MockgameRepo
	bot         *mockedUseCase.MockmoveSelector
	leaderboard *mockedUseCase.MockoutcomeRecorder
	names       *mockedUseCase.MocknameRecorder
}

type changeEvent struct {
	event  string
	gameID string
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(t *testing.T, settings Settings) (*GameManager, *managerMocks) {
	t.Helper()

	mocks := &managerMocks{
		games:       mockedUseCase.NewMockgameRepo(t),
		bot:         mockedUseCase.NewMockmoveSelector(t),
		leaderboard: mockedUseCase.NewMockoutcomeRecorder(t),
		names:       mockedUseCase.NewMocknameRecorder(t),
	}

	manager := NewGameManager(newTestLogger(), settings, mocks.games, mocks.bot, mocks.leaderboard, mocks.names)

	return manager, mocks
}

// recordChanges collects what the manager reports to its listeners.
func recordChanges(manager *GameManager) *[]changeEvent {
	var events []changeEvent
	manager.OnChange(func(event string, game *entity.Game) {
		events = append(events, changeEvent{event: event, gameID: game.ID})
	})

	return &events
}

func play(t *testing.T, game *entity.Game, moves ...entity.Coordinate) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, gomoku.ApplyMove(game.State, move))
	}
}

// playToOpenFour leaves A one move short of five along row 7, with (7,6) and (7,11) open.
func playToOpenFour(t *testing.T, game *entity.Game) {
	t.Helper()

	play(t, game,
		entity.NewCoordinate(7, 7), entity.NewCoordinate(0, 0),
		entity.NewCoordinate(7, 8), entity.NewCoordinate(0, 2),
		entity.NewCoordinate(7, 9), entity.NewCoordinate(0, 4),
		entity.NewCoordinate(7, 10), entity.NewCoordinate(0, 6),
	)
}

func pvpGame(id string) *entity.Game {
	game := entity.NewGame(id, entity.ModePvP, 15)
	game.Players = entity.Players{A: "alice", B: "bob"}
	return game
}

func botGame(id string, botPlayer entity.Cell) *entity.Game {
	game := entity.NewGame(id, entity.ModeBot, 15)
	game.BotPlayer = botPlayer
	game.Difficulty = entity.MediumDifficulty
	game.Players = entity.Players{A: "alice", B: "Bot"}
	return game
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a pvp game with defaults", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		mocks.games.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: creating a game without options
		game, err := manager.NewGame(ctx, NewGameRequest{})

		// Then: an empty 15x15 pvp game is stored
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.ModePvP, game.Mode)
		assert.Equal(t, 15, game.State.Board.Size())
		assert.Equal(t, entity.PlayerA, game.State.CurrentPlayer)
		assert.Equal(t, entity.Players{A: "Player A", B: "Player B"}, game.Players)
		assert.Equal(t, []changeEvent{{event: EventNew, gameID: game.ID}}, *events)
		mocks.names.AssertNotCalled(t, "RememberName", mock.Anything, mock.Anything)
	})

	t.Run("Bot playing A opens immediately", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		mocks.names.EXPECT().RememberName(mock.Anything, "alice").Return(nil).Once()
		mocks.games.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Twice()
		mocks.bot.EXPECT().
			SelectMove(mock.Anything, entity.PlayerA, entity.HardDifficulty).
			Return(entity.NewCoordinate(7, 7), nil).
			Once()

		// When: the bot takes A on hard
		game, err := manager.NewGame(ctx, NewGameRequest{
			Mode:       entity.ModeBot,
			Difficulty: "hard",
			BotPlayer:  entity.PlayerA,
			PlayerB:    "  alice ",
			BoardSize:  19,
		})

		// Then: its first stone is on the board and the human is to move
		require.NoError(t, err)
		assert.Equal(t, 19, game.State.Board.Size())
		assert.Equal(t, entity.PlayerA, game.State.Board.At(entity.NewCoordinate(7, 7)))
		assert.Equal(t, entity.PlayerB, game.State.CurrentPlayer)
		assert.Equal(t, entity.Players{A: "Bot", B: "alice"}, game.Players)
	})

	t.Run("Rejects invalid requests", func(t *testing.T) {
		tests := []struct {
			name    string
			request NewGameRequest
			wantErr error
		}{
			{"unknown mode", NewGameRequest{Mode: "chess"}, entity.ErrUnknownMode},
			{"board too small", NewGameRequest{BoardSize: 4}, apperror.ErrInvalidBoardSize},
			{"board too large", NewGameRequest{BoardSize: 26}, apperror.ErrInvalidBoardSize},
			{"unknown difficulty", NewGameRequest{Mode: entity.ModeBot, Difficulty: "insane"}, entity.ErrUnknownDifficulty},
			{"bot side", NewGameRequest{Mode: entity.ModeBot, BotPlayer: entity.Cell(3)}, apperror.ErrInvalidSide},
			{"blank name", NewGameRequest{PlayerA: "   "}, apperror.ErrInvalidName},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				manager, _ := newTestManager(t, Settings{})
				events := recordChanges(manager)

				game, err := manager.NewGame(ctx, tt.request)

				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, game)
				assert.Empty(t, *events)
			})
		}
	})
}

func TestGameManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Bot replies to a human move", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		// Given: a fresh bot game where the bot plays B
		stored := botGame("g1", entity.PlayerB)
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Twice()
		mocks.bot.EXPECT().
			SelectMove(mock.Anything, entity.PlayerB, entity.MediumDifficulty).
			Return(entity.NewCoordinate(7, 8), nil).
			Once()

		// When: the human plays the center
		game, err := manager.MakeMove(ctx, "g1", entity.NewCoordinate(7, 7))

		// Then: both stones are down, it is the human's turn again and one change is reported
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerA, game.State.Board.At(entity.NewCoordinate(7, 7)))
		assert.Equal(t, entity.PlayerB, game.State.Board.At(entity.NewCoordinate(7, 8)))
		assert.Equal(t, entity.PlayerA, game.State.CurrentPlayer)
		assert.Equal(t, 2, game.State.MoveCount())
		assert.Equal(t, []changeEvent{{event: EventMove, gameID: "g1"}}, *events)
	})

	t.Run("Rejected move is not stored", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		// Given: a pvp game with a stone at the center
		stored := pvpGame("g1")
		play(t, stored, entity.NewCoordinate(7, 7))
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Twice()

		// When: B plays the same cell, then off the board
		_, occupiedErr := manager.MakeMove(ctx, "g1", entity.NewCoordinate(7, 7))
		_, boundsErr := manager.MakeMove(ctx, "g1", entity.NewCoordinate(15, 0))

		// Then: the engine errors come back and nothing is written or reported
		require.ErrorIs(t, occupiedErr, apperror.ErrCellOccupied)
		require.ErrorIs(t, boundsErr, apperror.ErrOutOfBounds)
		mocks.games.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
		assert.Empty(t, *events)
	})

	t.Run("Human cannot move for the bot", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		// Given: a bot game where the bot plays A and has not moved yet
		stored := botGame("g1", entity.PlayerA)
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()

		// When: the human tries to move
		_, err := manager.MakeMove(ctx, "g1", entity.NewCoordinate(0, 0))

		// Then: it is refused
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Records a win exactly once", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		// Given: A has four in a row with an open end
		stored := pvpGame("g1")
		playToOpenFour(t, stored)
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Twice()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()
		mocks.leaderboard.EXPECT().RecordOutcome(mock.Anything, stored).Return(nil).Once()

		// When: A completes five and then someone tries to keep playing
		game, err := manager.MakeMove(ctx, "g1", entity.NewCoordinate(7, 11))
		require.NoError(t, err)
		_, againErr := manager.MakeMove(ctx, "g1", entity.NewCoordinate(14, 14))

		// Then: the win is recorded once and the game is over
		assert.Equal(t, entity.PlayerA, game.State.Winner)
		assert.True(t, game.Recorded)
		require.ErrorIs(t, againErr, apperror.ErrGameOver)
	})

	t.Run("A failing leaderboard does not fail the move", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		stored := pvpGame("g1")
		playToOpenFour(t, stored)
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()
		mocks.leaderboard.EXPECT().RecordOutcome(mock.Anything, stored).Return(errRedisDown).Once()

		game, err := manager.MakeMove(ctx, "g1", entity.NewCoordinate(7, 6))

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerA, game.State.Winner)
		assert.False(t, game.Recorded)
	})

	t.Run("Bot delay honors cancellation", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{BotDelay: time.Hour})

		stored := botGame("g1", entity.PlayerB)
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := manager.MakeMove(cancelled, "g1", entity.NewCoordinate(7, 7))

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Unknown game", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		mocks.games.EXPECT().GetByID(mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := manager.MakeMove(ctx, "nope", entity.NewCoordinate(0, 0))

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameManager_RecordsOutcomeOnce(t *testing.T) {
	ctx := context.Background()

	// Given: a manager backed by the real leaderboard whose first write fails
	games := mockedUseCase.NewMockgameRepo(t)
	players := mockedUseCase.NewMockplayerRepo(t)
	leaderboard := NewLeaderboardUseCase(newTestLogger(), players)
	manager := NewGameManager(newTestLogger(), Settings{}, games, mockedUseCase.NewMockmoveSelector(t), leaderboard, mockedUseCase.NewMocknameRecorder(t))

	stored := pvpGame("g1")
	playToOpenFour(t, stored)

	bothSides := []entity.PlayerResult{
		{Name: "alice", Result: entity.ResultWin},
		{Name: "bob", Result: entity.ResultLoss},
	}
	games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Times(3)
	games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Times(3)
	players.EXPECT().AddResults(mock.Anything, bothSides).Return(errRedisDown).Once()
	players.EXPECT().AddResults(mock.Anything, bothSides).Return(nil).Once()

	// When: A wins, the result cannot be stored, and the winning move is taken back and replayed
	game, err := manager.MakeMove(ctx, "g1", entity.NewCoordinate(7, 11))
	require.NoError(t, err)
	assert.False(t, game.Recorded)

	_, err = manager.Undo(ctx, "g1")
	require.NoError(t, err)

	game, err = manager.MakeMove(ctx, "g1", entity.NewCoordinate(7, 11))
	require.NoError(t, err)

	// Then: each attempt carried both sides together and the game is recorded once
	assert.True(t, game.Recorded)
	players.AssertNumberOfCalls(t, "AddResults", 2)
}

func TestGameManager_Locks(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown games leave no lock behind", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		mocks.games.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, apperror.ErrGameNotFound).Times(1000)

		// When: a client sends moves for a thousand made-up games
		for i := 0; i < 1000; i++ {
			_, err := manager.MakeMove(ctx, fmt.Sprintf("random-%d", i), entity.NewCoordinate(0, 0))
			require.ErrorIs(t, err, apperror.ErrGameNotFound)
		}

		// Then: nothing is kept per game
		assert.Empty(t, manager.locks)
	})

	t.Run("Concurrent calls on one game share a lock and release it", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		var inside, maxInside int
		var counter sync.Mutex
		mocks.games.EXPECT().
			GetByID(mock.Anything, "g1").
			Run(func(context.Context, string) {
				counter.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				counter.Unlock()

				time.Sleep(time.Millisecond)

				counter.Lock()
				inside--
				counter.Unlock()
			}).
			Return(nil, apperror.ErrGameNotFound).
			Times(20)

		// When: twenty requests for the same game arrive together
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = manager.Reset(ctx, "g1")
			}()
		}
		wg.Wait()

		// Then: they ran one at a time and the lock is gone afterwards
		assert.Equal(t, 1, maxInside)
		assert.Empty(t, manager.locks)
	})
}

func TestGameManager_Undo(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing to undo", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(pvpGame("g1"), nil).Once()

		_, err := manager.Undo(ctx, "g1")

		require.ErrorIs(t, err, apperror.ErrNoHistory)
		assert.Empty(t, *events)
	})

	t.Run("Pvp undo takes back one move", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		stored := pvpGame("g1")
		play(t, stored, entity.NewCoordinate(7, 7), entity.NewCoordinate(7, 8))
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		game, err := manager.Undo(ctx, "g1")

		require.NoError(t, err)
		assert.Equal(t, 1, game.State.MoveCount())
		assert.Equal(t, entity.PlayerB, game.State.CurrentPlayer)
		assert.Equal(t, entity.Empty, game.State.Board.At(entity.NewCoordinate(7, 8)))
		assert.Equal(t, []changeEvent{{event: EventUndo, gameID: "g1"}}, *events)
	})

	t.Run("Bot game returns control to the human", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		// Given: the human and the bot each moved once
		stored := botGame("g1", entity.PlayerB)
		play(t, stored, entity.NewCoordinate(7, 7), entity.NewCoordinate(7, 8))
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		// When: the human undoes
		game, err := manager.Undo(ctx, "g1")

		// Then: both moves are gone
		require.NoError(t, err)
		assert.Equal(t, 0, game.State.MoveCount())
		assert.Equal(t, entity.PlayerA, game.State.CurrentPlayer)
		assert.Equal(t, 0, game.State.Board.Count(entity.PlayerA))
	})

	t.Run("Undoing a finished game keeps the record", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		stored := pvpGame("g1")
		playToOpenFour(t, stored)
		play(t, stored, entity.NewCoordinate(7, 11))
		stored.Recorded = true
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		game, err := manager.Undo(ctx, "g1")

		require.NoError(t, err)
		assert.Equal(t, entity.Empty, game.State.Winner)
		assert.Nil(t, game.State.WinningLine)
		assert.True(t, game.Recorded)
	})
}

func TestGameManager_Reset(t *testing.T) {
	manager, mocks := newTestManager(t, Settings{})
	events := recordChanges(manager)

	// Given: a game in progress
	stored := pvpGame("g1")
	play(t, stored, entity.NewCoordinate(7, 7), entity.NewCoordinate(7, 8))
	mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
	mocks.games.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

	// When: resetting it
	game, err := manager.Reset(context.Background(), "g1")

	// Then: the board is empty and the players are kept
	require.NoError(t, err)
	assert.Equal(t, 0, game.State.MoveCount())
	assert.Equal(t, entity.PlayerA, game.State.CurrentPlayer)
	assert.Equal(t, 0, game.State.Board.Count(entity.PlayerA)+game.State.Board.Count(entity.PlayerB))
	assert.Equal(t, entity.Players{A: "alice", B: "bob"}, game.Players)
	assert.Equal(t, []changeEvent{{event: EventReset, gameID: "g1"}}, *events)
}

func TestGameManager_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("Waits for the game's lock before writing", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		saved := pvpGame("g1")
		play(t, saved, entity.NewCoordinate(3, 3))

		written := make(chan struct{})
		mocks.games.EXPECT().
			CreateOrUpdate(mock.Anything, saved).
			Run(func(context.Context, *entity.Game) { close(written) }).
			Return(nil).
			Once()

		// Given: a move on g1 is in progress
		unlock := manager.lock("g1")

		// When: a save of g1 is restored at the same time
		done := make(chan error, 1)
		go func() {
			done <- manager.Restore(ctx, saved)
		}()

		// Then: nothing is written until the move is over
		select {
		case <-written:
			t.Fatal("restore wrote while the game was locked")
		case <-time.After(50 * time.Millisecond):
		}

		unlock()

		require.NoError(t, <-done)
		<-written
		assert.Equal(t, []changeEvent{{event: EventRestore, gameID: "g1"}}, *events)
		assert.Empty(t, manager.locks)
	})

	t.Run("Storage errors are returned", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})
		events := recordChanges(manager)

		saved := pvpGame("g1")
		mocks.games.EXPECT().CreateOrUpdate(mock.Anything, saved).Return(errRedisDown).Once()

		require.ErrorIs(t, manager.Restore(ctx, saved), errRedisDown)
		assert.Empty(t, *events)
	})
}

func TestGameManager_Hint(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the requested difficulty for the side to move", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		stored := pvpGame("g1")
		play(t, stored, entity.NewCoordinate(7, 7))
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.bot.EXPECT().
			SelectMove(stored.State.Board, entity.PlayerB, entity.HardDifficulty).
			Return(entity.NewCoordinate(6, 6), nil).
			Once()

		hint, err := manager.Hint(ctx, "g1", "hard")

		require.NoError(t, err)
		assert.Equal(t, entity.NewCoordinate(6, 6), hint)
		assert.Equal(t, 1, stored.State.MoveCount())
	})

	t.Run("Falls back to the default difficulty", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{DefaultDifficulty: entity.EasyDifficulty})

		stored := pvpGame("g1")
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()
		mocks.bot.EXPECT().
			SelectMove(stored.State.Board, entity.PlayerA, entity.EasyDifficulty).
			Return(entity.NewCoordinate(1, 1), nil).
			Once()

		_, err := manager.Hint(ctx, "g1", "")

		require.NoError(t, err)
	})

	t.Run("No hint once the game is over", func(t *testing.T) {
		manager, mocks := newTestManager(t, Settings{})

		stored := pvpGame("g1")
		stored.State.Winner = entity.PlayerB
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil).Once()

		_, err := manager.Hint(ctx, "g1", "")

		require.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestGameManager_DeleteGame(t *testing.T) {
	manager, mocks := newTestManager(t, Settings{})

	mocks.games.EXPECT().DeleteByID(mock.Anything, "g1").Return(nil).Once()
	mocks.games.EXPECT().DeleteByID(mock.Anything, "g2").Return(apperror.ErrGameNotFound).Once()

	require.NoError(t, manager.DeleteGame(context.Background(), "g1"))
	require.ErrorIs(t, manager.DeleteGame(context.Background(), "g2"), apperror.ErrGameNotFound)
	assert.Empty(t, manager.locks)
}
