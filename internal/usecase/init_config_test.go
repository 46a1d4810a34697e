package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/runoshun/imgresize/internal/testutil"
	"github.com/runoshun/imgresize/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates project config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.imgresize.toml", out.Path)
		assert.True(t, manager.ProjectInitCalled)
		assert.False(t, manager.GlobalInitCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/imgresize/config.toml", out.Path)
		assert.False(t, manager.ProjectInitCalled)
		assert.True(t, manager.GlobalInitCalled)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error when global config is disabled", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitErr = domain.ErrGlobalConfigDisabled

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		assert.ErrorIs(t, err, domain.ErrGlobalConfigDisabled)
	})
}
