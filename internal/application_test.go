package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func TestEngineSettings(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		settings, err := engineSettings(config.Engine{BoardSize: 19, DefaultDifficulty: "Hard", BotDelay: time.Second})

		require.NoError(t, err)
		assert.Equal(t, 19, settings.BoardSize)
		assert.Equal(t, entity.HardDifficulty, settings.DefaultDifficulty)
		assert.Equal(t, time.Second, settings.BotDelay)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		_, err := engineSettings(config.Engine{BoardSize: 15, DefaultDifficulty: "expert"})

		require.ErrorIs(t, err, entity.ErrUnknownDifficulty)
	})

	t.Run("Board too small", func(t *testing.T) {
		_, err := engineSettings(config.Engine{BoardSize: 3, DefaultDifficulty: "easy"})

		require.ErrorIs(t, err, entity.ErrInvalidBoard)
	})
}
