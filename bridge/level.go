package bridge

import (
	"fmt"
	"strings"

	"github.com/embedkit/hostlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	VerboseLevel = core.VerboseLevel
	NoticeLevel  = core.NoticeLevel
	WarningLevel = core.WarningLevel
)

// ParseLevel converts a string to a Level. Unknown input maps to
// NoticeLevel, the conventional host default.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "verbose":
		return VerboseLevel
	case "notice":
		return NoticeLevel
	case "warning":
		return WarningLevel
	default:
		return NoticeLevel
	}
}

// ParseLevelStrict converts a string to a Level, reporting unknown input
// instead of defaulting
func ParseLevelStrict(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel, nil
	case "verbose":
		return VerboseLevel, nil
	case "notice":
		return NoticeLevel, nil
	case "warning":
		return WarningLevel, nil
	default:
		return NoticeLevel, fmt.Errorf("unknown level %q", s)
	}
}
