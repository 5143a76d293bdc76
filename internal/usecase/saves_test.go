package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

type saveMocks struct {
	games    *mockedUseCase.MockgameRepo
	saves    *mockedUseCase.MocksaveRepo
	restorer *mockedUseCase.MockgameRestorer
}

func newTestSaves(t *testing.T, now time.Time) (*saveUseCase, *saveMocks) {
	t.Helper()

	mocks := &saveMocks{
		games:    mockedUseCase.NewMockgameRepo(t),
		saves:    mockedUseCase.NewMocksaveRepo(t),
		restorer: mockedUseCase.NewMockgameRestorer(t),
	}

	useCase := NewSaveUseCase(newTestLogger(), mocks.games, mocks.saves, mocks.restorer).(*saveUseCase)
	useCase.now = func() time.Time { return now }

	return useCase, mocks
}

func TestSaveUseCase_SaveGame(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Defaults the name to the save time", func(t *testing.T) {
		saves, mocks := newTestSaves(t, now)

		game := pvpGame("g1")
		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()
		mocks.saves.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Save")).Return(nil).Once()

		save, err := saves.SaveGame(ctx, "g1", "  ")

		require.NoError(t, err)
		assert.Equal(t, "2024/05/01 09:30:00", save.Name)
		assert.Equal(t, now.UnixMilli(), save.Timestamp)
		assert.Same(t, game, save.Game)
	})

	t.Run("Keeps a given name", func(t *testing.T) {
		saves, mocks := newTestSaves(t, now)

		mocks.games.EXPECT().GetByID(mock.Anything, "g1").Return(pvpGame("g1"), nil).Once()
		mocks.saves.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Save")).Return(nil).Once()

		save, err := saves.SaveGame(ctx, "g1", "opening trap")

		require.NoError(t, err)
		assert.Equal(t, "opening trap", save.Name)
	})

	t.Run("Unknown game", func(t *testing.T) {
		saves, mocks := newTestSaves(t, now)

		mocks.games.EXPECT().GetByID(mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := saves.SaveGame(ctx, "nope", "")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestSaveUseCase_LoadSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores the game through the manager", func(t *testing.T) {
		saves, mocks := newTestSaves(t, time.Now())

		// Given: a save of a game in progress
		game := pvpGame("g1")
		play(t, game, entity.NewCoordinate(3, 3))
		mocks.saves.EXPECT().
			GetByTimestamp(mock.Anything, int64(42)).
			Return(&entity.Save{Name: "x", Timestamp: 42, Game: game}, nil).
			Once()
		mocks.restorer.EXPECT().Restore(mock.Anything, game).Return(nil).Once()

		// When: loading it
		loaded, err := saves.LoadSave(ctx, 42)

		// Then: the session goes back under its ID without touching the repository directly
		require.NoError(t, err)
		assert.Equal(t, "g1", loaded.ID)
		assert.Equal(t, entity.PlayerB, loaded.State.CurrentPlayer)
		mocks.games.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Restore errors are returned", func(t *testing.T) {
		saves, mocks := newTestSaves(t, time.Now())

		game := pvpGame("g1")
		mocks.saves.EXPECT().
			GetByTimestamp(mock.Anything, int64(42)).
			Return(&entity.Save{Name: "x", Timestamp: 42, Game: game}, nil).
			Once()
		mocks.restorer.EXPECT().Restore(mock.Anything, game).Return(errRedisDown).Once()

		_, err := saves.LoadSave(ctx, 42)

		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Unknown save", func(t *testing.T) {
		saves, mocks := newTestSaves(t, time.Now())

		mocks.saves.EXPECT().GetByTimestamp(mock.Anything, int64(7)).Return(nil, apperror.ErrSaveNotFound).Once()

		_, err := saves.LoadSave(ctx, 7)

		require.ErrorIs(t, err, apperror.ErrSaveNotFound)
	})
}

func TestSaveUseCase_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	saves, mocks := newTestSaves(t, time.Now())

	list := []*entity.Save{{Name: "b", Timestamp: 2}, {Name: "a", Timestamp: 1}}
	mocks.saves.EXPECT().List(mock.Anything).Return(list, nil).Once()
	mocks.saves.EXPECT().DeleteByTimestamp(mock.Anything, int64(2)).Return(nil).Once()
	mocks.saves.EXPECT().DeleteByTimestamp(mock.Anything, int64(3)).Return(apperror.ErrSaveNotFound).Once()

	got, err := saves.ListSaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	require.NoError(t, saves.DeleteSave(ctx, 2))
	require.ErrorIs(t, saves.DeleteSave(ctx, 3), apperror.ErrSaveNotFound)
}

func TestSaveUseCase_LoadSaveWithManager(t *testing.T) {
	ctx := context.Background()

	// Given: saves wired to a real manager the way the application does it
	games := mockedUseCase.NewMockgameRepo(t)
	saveRepo := mockedUseCase.NewMocksaveRepo(t)
	manager := NewGameManager(newTestLogger(), Settings{}, games, mockedUseCase.NewMockmoveSelector(t), mockedUseCase.NewMockoutcomeRecorder(t), mockedUseCase.NewMocknameRecorder(t))
	saves := NewSaveUseCase(newTestLogger(), games, saveRepo, manager)
	events := recordChanges(manager)

	game := pvpGame("g1")
	saveRepo.EXPECT().GetByTimestamp(mock.Anything, int64(42)).Return(&entity.Save{Name: "x", Timestamp: 42, Game: game}, nil).Once()
	games.EXPECT().CreateOrUpdate(mock.Anything, game).Return(nil).Once()

	// When: loading the save
	_, err := saves.LoadSave(ctx, 42)

	// Then: it is stored and watchers of g1 are told
	require.NoError(t, err)
	assert.Equal(t, []changeEvent{{event: EventRestore, gameID: "g1"}}, *events)
}
