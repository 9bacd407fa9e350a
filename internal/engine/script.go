package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Script is a prerecorded InputSource. Commands are keyed by poll number
// starting at 1, which equals the tick number for every non-terminal tick.
// Entries are kept as spans, so a long hold costs no more than a single tick.
type Script struct {
	spans []span
	polls int64
}

// span covers polls from..to inclusive.
type span struct {
	from, to int64
	cmd      core.Command
}

// NewScript creates an empty script.
func NewScript() *Script {
	return &Script{}
}

// At sets the command for the given poll number.
func (s *Script) At(tick int64, cmd core.Command) *Script {
	return s.Hold(tick, tick, cmd)
}

// Hold sets cmd for every poll in [from, to]. Later entries override
// earlier ones where they overlap.
func (s *Script) Hold(from, to int64, cmd core.Command) *Script {
	s.spans = append(s.spans, span{from: from, to: to, cmd: cmd})
	return s
}

// Poll returns the scripted command for this poll.
func (s *Script) Poll() core.Command {
	s.polls++
	for i := len(s.spans) - 1; i >= 0; i-- {
		if sp := s.spans[i]; s.polls >= sp.from && s.polls <= sp.to {
			return sp.cmd
		}
	}
	return core.CommandNone
}

// ParseScript parses a comma-separated list of "cmd@tick" or
// "cmd@from-to" entries, e.g. "up@5,down@40-60,left@90".
func ParseScript(spec string) (*Script, error) {
	s := NewScript()
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return s, nil
	}

	for _, entry := range strings.Split(spec, ",") {
		name, at, ok := strings.Cut(strings.TrimSpace(entry), "@")
		if !ok {
			return nil, fmt.Errorf("engine: script entry %q: missing @tick", entry)
		}
		cmd, ok := core.ParseCommand(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("engine: script entry %q: unknown command %q", entry, name)
		}

		fromStr, toStr, isRange := strings.Cut(at, "-")
		from, err := strconv.ParseInt(fromStr, 10, 64)
		if err != nil || from < 1 {
			return nil, fmt.Errorf("engine: script entry %q: bad tick %q", entry, fromStr)
		}
		to := from
		if isRange {
			to, err = strconv.ParseInt(toStr, 10, 64)
			if err != nil || to < from {
				return nil, fmt.Errorf("engine: script entry %q: bad range end %q", entry, toStr)
			}
		}
		s.Hold(from, to, cmd)
	}
	return s, nil
}
