package core

// Level represents the severity of a forwarded log message
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// VerboseLevel for verbose operational information
	VerboseLevel
	// NoticeLevel for normal but significant conditions (host default)
	NoticeLevel
	// WarningLevel for conditions that need attention
	WarningLevel
)

// String returns the lowercase label the sink receives
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case VerboseLevel:
		return "verbose"
	case NoticeLevel:
		return "notice"
	case WarningLevel:
		return "warning"
	default:
		return "unknown"
	}
}

// IsValid reports whether l is one of the four defined levels
func (l Level) IsValid() bool {
	return l >= DebugLevel && l <= WarningLevel
}
