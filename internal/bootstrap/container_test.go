package bootstrap

import (
	"context"
	"testing"

	"character-chat-be/internal/config"
	"character-chat-be/internal/constant"
	"character-chat-be/internal/pkg/logger"
	"character-chat-be/internal/seeder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_MemoryDriverSeedsSystemCharacters(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:               constant.DatabaseDriverMemory,
			SeedSystemCharacters: true,
		},
	}

	c := NewContainer(nil, cfg, logger.NewNopLogger())
	require.NotNil(t, c.CharacterController)
	require.NotNil(t, c.ChatController)
	require.NotNil(t, c.HealthController)

	characters, err := c.CharacterService.List(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Len(t, characters, len(seeder.DefaultSystemCharacters))
	for _, ch := range characters {
		assert.True(t, ch.IsSystem)
	}
}

func TestNewContainer_MemoryDriverWithoutSeeding(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: constant.DatabaseDriverMemory},
	}

	c := NewContainer(nil, cfg, logger.NewNopLogger())

	characters, err := c.CharacterService.List(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Empty(t, characters)
}
