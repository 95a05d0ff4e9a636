// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides verbosity-gated logging on top of [log/slog],
// with a push/pop severity scope so that operations probing multiple
// configurations can temporarily suppress expected failures.
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown.
var UserLevel = defaultUserLevel

// levelStack holds the levels saved by [PushLevel], restored by [PopLevel].
var levelStack []slog.Level

// PushLevel saves the current [UserLevel] and sets it to the given level.
// It is used to temporarily suppress (or enable) messages around a scope,
// typically while probing an operation that is expected to fail.
// Every PushLevel must be matched by a [PopLevel].
func PushLevel(level slog.Level) {
	levelStack = append(levelStack, UserLevel)
	UserLevel = level
}

// PopLevel restores the [UserLevel] saved by the most recent [PushLevel].
// It does nothing if there is no matching PushLevel.
func PopLevel() {
	n := len(levelStack)
	if n == 0 {
		return
	}
	UserLevel = levelStack[n-1]
	levelStack = levelStack[:n-1]
}

// Enabled reports whether messages at the given level are shown
// under the current [UserLevel].
func Enabled(level slog.Level) bool {
	return level >= UserLevel
}

// Debug logs the given message at [slog.LevelDebug] if enabled.
func Debug(msg string, args ...any) {
	if Enabled(slog.LevelDebug) {
		slog.Debug(msg, args...)
	}
}

// Info logs the given message at [slog.LevelInfo] if enabled.
func Info(msg string, args ...any) {
	if Enabled(slog.LevelInfo) {
		slog.Info(msg, args...)
	}
}

// Warn logs the given message at [slog.LevelWarn] if enabled.
func Warn(msg string, args ...any) {
	if Enabled(slog.LevelWarn) {
		slog.Warn(msg, args...)
	}
}

// Error logs the given message at [slog.LevelError] if enabled.
func Error(msg string, args ...any) {
	if Enabled(slog.LevelError) {
		slog.Error(msg, args...)
	}
}
