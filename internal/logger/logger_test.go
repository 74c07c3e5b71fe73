package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitEnvSelectsHandler(t *testing.T) {
	Init("dev")
	_, isText := GetLogger().Handler().(*slog.TextHandler)
	assert.True(t, isText, "dev gets the text handler")
	assert.True(t, GetLogger().Enabled(context.Background(), slog.LevelDebug))

	Init("prod")
	_, isJSON := GetLogger().Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "prod gets the JSON handler")
	assert.False(t, GetLogger().Enabled(context.Background(), slog.LevelDebug))

	Init("dev")
}
