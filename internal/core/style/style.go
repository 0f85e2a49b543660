// Package style defines the terminal style roles used by citr's output
// helpers. Styles are carried in an immutable Set that is passed to whatever
// needs to print; toggling colors returns a new Set instead of mutating
// shared state.
package style

import "github.com/fatih/color"

// Set groups the style roles used in citr's output. A Set is immutable once
// created, and every role is explicitly enabled or disabled on creation so
// the set does not follow fatih/color's global color detection.
type Set struct {
	// ErrorMark styles the error symbol.
	ErrorMark *color.Color
	// InfoMark styles the info symbol.
	InfoMark *color.Color
	// Title styles message titles.
	Title *color.Color
	// Dim styles secondary text such as source locations.
	Dim *color.Color
	// Accent styles primary values such as the executable token.
	Accent *color.Color
	// Header styles section headers.
	Header *color.Color
	// Token styles listed tokens.
	Token *color.Color

	colored bool
}

// Default returns the colored style set, unless fatih/color has detected a
// non-TTY or NO_COLOR environment, in which case it returns Plain().
func Default() Set {
	if color.NoColor {
		return Plain()
	}
	return colored()
}

// Plain returns a style set that emits no escape sequences.
func Plain() Set {
	return newSet(false)
}

func colored() Set {
	return newSet(true)
}

func newSet(colored bool) Set {
	s := Set{
		ErrorMark: color.New(color.FgRed),
		InfoMark:  color.New(color.FgHiBlue),
		Title:     color.New(color.Bold),
		Dim:       color.New(color.Faint),
		Accent:    color.New(color.FgMagenta, color.Bold),
		Header:    color.New(color.FgCyan, color.Bold),
		Token:     color.New(color.FgWhite),
		colored:   colored,
	}
	for _, role := range []*color.Color{s.ErrorMark, s.InfoMark, s.Title, s.Dim, s.Accent, s.Header, s.Token} {
		if colored {
			role.EnableColor()
		} else {
			role.DisableColor()
		}
	}
	return s
}

// Colored reports whether the set emits escape sequences.
func (s Set) Colored() bool { return s.colored }

// Toggle returns the opposite set: colored for plain, plain for colored. The
// receiver is left untouched.
func (s Set) Toggle() Set {
	return newSet(!s.colored)
}
