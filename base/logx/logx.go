// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-facing log level and
// slog logger construction used by the blade command.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the config file or the BLADE_LOG_LEVEL variable.
var UserLevel = defaultUserLevel

type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewLogger returns a new text [slog.Logger] writing to w that
// filters messages by the current [UserLevel], including
// later changes to it.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: userLeveler{}}))
}

// ParseLevel parses the given level name (debug, info, warn, error),
// case insensitively. An empty string is the default level.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return defaultUserLevel, nil
	}
	var lv slog.Level
	err := lv.UnmarshalText([]byte(strings.ToUpper(s)))
	if err != nil {
		return defaultUserLevel, fmt.Errorf("logx: invalid log level %q", s)
	}
	return lv, nil
}

// SetLevel parses the given level name and sets [UserLevel] to it.
func SetLevel(s string) error {
	lv, err := ParseLevel(s)
	if err != nil {
		return err
	}
	UserLevel = lv
	return nil
}
