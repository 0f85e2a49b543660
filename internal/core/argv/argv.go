// Package argv classifies a raw process argument vector. It performs purely
// positional, lexical classification: tokens are routed by their first
// character and by their position relative to the double-dash marker.
// It is not an option-grammar parser; no flag declarations, types or arity
// are involved.
package argv

import (
	"errors"

	"github.com/nightconcept/citrine-go/internal/core/strlist"
)

// Classification is the result of scanning an argument vector once, left to
// right. Every token except the executable and well-placed double dashes
// lands in exactly one of the three lists, in input order.
type Classification struct {
	// Execfile is the first token of the vector, the program's own
	// invocation path.
	Execfile string

	// Command is reserved for future sub-command detection. Classify never
	// populates it.
	Command string

	// Args holds the positional arguments: tokens whose first character is
	// not '-'.
	Args *strlist.List[string]

	// CmdOptions holds option tokens scanned after a double dash.
	CmdOptions *strlist.List[string]

	// ProgramOptions holds option tokens scanned before any double dash.
	ProgramOptions *strlist.List[string]
}

// Release frees the backing storage of all three lists. The Classification
// must not be appended to afterwards; calling Release more than once is
// harmless.
func (c *Classification) Release() {
	c.Args.Release()
	c.CmdOptions.Release()
	c.ProgramOptions.Release()
}

// Scanner classifies argument vectors. The zero value uses the default
// initial capacity and growable lists.
type Scanner struct {
	// InitialCapacity is the starting capacity of each token list. Zero or
	// less selects strlist.DefaultCapacity.
	InitialCapacity int

	// Fixed makes the token lists fixed-capacity: more than InitialCapacity
	// tokens of any single class then yields a fatal AllocError instead of
	// growing. Off by default.
	Fixed bool
}

// Classify scans argv with default settings. argv[0] must be the executable
// path; argv must not be empty.
func Classify(argv []string) (*Classification, error) {
	return Scanner{}.Classify(argv)
}

// Classify scans argv once, left to right, routing each token:
//
//   - A token not starting with '-' is a positional argument, recorded in
//     Args regardless of the current mode.
//   - The exact token "--" flips the scan from program-option mode to
//     command-option mode. It is consumed, never stored. Encountering it
//     after a positional argument has already been recorded is a user error.
//   - Any other token starting with '-' (including a bare "-") is an option,
//     routed to CmdOptions after a double dash and to ProgramOptions before.
//
// A vector holding only the executable yields a Classification with empty
// lists and no error. On error the partially populated Classification is
// returned alongside it so the caller can inspect or Release it.
func (s Scanner) Classify(vector []string) (*Classification, error) {
	if len(vector) == 0 {
		return nil, errors.New("argv: empty argument vector")
	}

	c := &Classification{Execfile: vector[0]}
	if len(vector) == 1 {
		return c, nil
	}

	c.Args = s.newList()
	c.CmdOptions = s.newList()
	c.ProgramOptions = s.newList()

	cmdMode := false
	for _, tok := range vector[1:] {
		if len(tok) == 0 || tok[0] != '-' {
			if err := c.Args.Append(tok); err != nil {
				return c, &AllocError{List: "arguments", Err: err}
			}
			continue
		}
		if len(tok) == 2 && tok[1] == '-' {
			if c.Args.Len() > 0 {
				return c, &DoubleDashError{
					Token:   tok,
					LastArg: c.Args.At(c.Args.Len() - 1),
				}
			}
			// Only one transition matters; a second "--" with no
			// positionals recorded is harmless.
			cmdMode = true
			continue
		}
		list, name := c.ProgramOptions, "program options"
		if cmdMode {
			list, name = c.CmdOptions, "command options"
		}
		if err := list.Append(tok); err != nil {
			return c, &AllocError{List: name, Err: err}
		}
	}
	return c, nil
}

func (s Scanner) newList() *strlist.List[string] {
	if s.Fixed {
		return strlist.NewFixed[string](s.InitialCapacity)
	}
	return strlist.New[string](s.InitialCapacity)
}
