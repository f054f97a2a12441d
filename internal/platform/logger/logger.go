// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logger builds the process-wide structured logger.

Output is JSON on the given writer. Records logged at [constants.LevelAlert]
carry the level name "ALERT" instead of slog's default "ERROR+4", so log
pipelines can filter tolerated data-quality problems by name.
*/
package logger

import (
	"io"
	"log/slog"

	"github.com/taibuivan/aqar/internal/platform/constants"
)

// LevelAlertName is the rendered name of [constants.LevelAlert].
const LevelAlertName = "ALERT"

// New returns a JSON logger writing to writer at the given minimum level,
// tagged with the application name.
func New(writer io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameLevels,
	})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func renameLevels(groups []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey || len(groups) != 0 {
		return attr
	}
	if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == constants.LevelAlert {
		attr.Value = slog.StringValue(LevelAlertName)
	}
	return attr
}
