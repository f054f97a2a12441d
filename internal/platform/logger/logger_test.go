// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/platform/constants"
	"github.com/taibuivan/aqar/internal/platform/logger"
)

/*
TestNew_LevelNames verifies that only the alert level is renamed and that
every record carries the application name.
*/
func TestNew_LevelNames(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"alert", constants.LevelAlert, "ALERT"},
		{"error", slog.LevelError, "ERROR"},
		{"warn", slog.LevelWarn, "WARN"},
		{"info", slog.LevelInfo, "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buffer bytes.Buffer
			log := logger.New(&buffer, slog.LevelInfo)

			log.Log(context.Background(), tt.level, "event")

			var record map[string]any
			require.NoError(t, json.Unmarshal(buffer.Bytes(), &record))
			assert.Equal(t, tt.want, record["level"])
			assert.Equal(t, constants.AppName, record["app"])
		})
	}
}

func TestNew_RespectsMinimumLevel(t *testing.T) {
	var buffer bytes.Buffer
	log := logger.New(&buffer, slog.LevelWarn)

	log.Info("dropped")
	assert.Empty(t, buffer.String())

	log.Log(context.Background(), constants.LevelAlert, "kept")
	assert.Contains(t, buffer.String(), `"level":"ALERT"`)
}
