package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

func TestLeaderboardUseCase_RecordOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("Pvp win credits both sides in one write", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		// Given: B won a pvp game
		game := pvpGame("g1")
		game.State.Winner = entity.PlayerB

		repo.EXPECT().
			AddResults(mock.Anything, []entity.PlayerResult{
				{Name: "alice", Result: entity.ResultLoss},
				{Name: "bob", Result: entity.ResultWin},
			}).
			Return(nil).
			Once()

		// When: recording it
		err := leaderboard.RecordOutcome(ctx, game)

		// Then: alice lost and bob won
		require.NoError(t, err)
	})

	t.Run("Draw credits both sides", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		// Given: a full board without a winner
		game := entity.NewGame("g1", entity.ModePvP, 1)
		game.Players = entity.Players{A: "alice", B: "bob"}
		game.State.Board.Set(entity.NewCoordinate(0, 0), entity.PlayerA)

		repo.EXPECT().
			AddResults(mock.Anything, []entity.PlayerResult{
				{Name: "alice", Result: entity.ResultDraw},
				{Name: "bob", Result: entity.ResultDraw},
			}).
			Return(nil).
			Once()

		require.NoError(t, leaderboard.RecordOutcome(ctx, game))
	})

	t.Run("The bot is never ranked", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		game := botGame("g1", entity.PlayerB)
		game.State.Winner = entity.PlayerB

		repo.EXPECT().
			AddResults(mock.Anything, []entity.PlayerResult{{Name: "alice", Result: entity.ResultLoss}}).
			Return(nil).
			Once()

		require.NoError(t, leaderboard.RecordOutcome(ctx, game))
	})

	t.Run("Game in progress records nothing", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		require.NoError(t, leaderboard.RecordOutcome(ctx, pvpGame("g1")))
		repo.AssertNotCalled(t, "AddResults", mock.Anything, mock.Anything)
	})

	t.Run("A failed write is reported for the whole game", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		game := pvpGame("g1")
		game.State.Winner = entity.PlayerA

		repo.EXPECT().AddResults(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		require.ErrorIs(t, leaderboard.RecordOutcome(ctx, game), errRedisDown)
		repo.AssertNumberOfCalls(t, "AddResults", 1)
	})
}

func TestLeaderboardUseCase_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("Leaderboard passes the limit through", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		records := []*entity.PlayerRecord{{Name: "carol", Score: 10, Wins: 1}}
		repo.EXPECT().List(mock.Anything, 5).Return(records, nil).Once()

		got, err := leaderboard.Leaderboard(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("GetRecord trims the name", func(t *testing.T) {
		repo := mockedUseCase.NewMockplayerRepo(t)
		leaderboard := NewLeaderboardUseCase(newTestLogger(), repo)

		repo.EXPECT().GetByName(mock.Anything, "carol").Return(&entity.PlayerRecord{Name: "carol"}, nil).Once()

		record, err := leaderboard.GetRecord(ctx, " carol ")

		require.NoError(t, err)
		assert.Equal(t, "carol", record.Name)
	})

	t.Run("GetRecord rejects a blank name", func(t *testing.T) {
		leaderboard := NewLeaderboardUseCase(newTestLogger(), mockedUseCase.NewMockplayerRepo(t))

		_, err := leaderboard.GetRecord(ctx, " ")

		require.ErrorIs(t, err, apperror.ErrInvalidName)
	})
}
