// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in printed messages.
// Color is also only used if the output supports it.
var UseColor = true

// Output is the terminal output that the color functions style for.
var Output = termenv.NewOutput(os.Stdout)

// SetOutput sets [Output] to the given writer, using the given
// color profile, or detecting it if profile is -1.
func SetOutput(w io.Writer, profile termenv.Profile) {
	if profile < 0 {
		Output = termenv.NewOutput(w)
		return
	}
	Output = termenv.NewOutput(w, termenv.WithProfile(profile))
}

func colorize(s string, c termenv.ANSIColor) string {
	if !UseColor {
		return s
	}
	return Output.String(s).Foreground(c).String()
}

// SuccessColor returns s in the color for success messages.
func SuccessColor(s string) string {
	return colorize(s, termenv.ANSIGreen)
}

// ErrorColor returns s in the color for error messages.
func ErrorColor(s string) string {
	return colorize(s, termenv.ANSIRed)
}

// WarnColor returns s in the color for warning messages.
func WarnColor(s string) string {
	return colorize(s, termenv.ANSIYellow)
}

// CmdColor returns s in the color for commands and file names.
func CmdColor(s string) string {
	return colorize(s, termenv.ANSICyan)
}
