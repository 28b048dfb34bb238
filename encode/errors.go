package encode

import "fmt"

type ErrorKind int

const (
	EmptyTrack ErrorKind = iota
	EmptyDictionary
	WidthOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyTrack:
		return "empty track"
	case EmptyDictionary:
		return "empty dictionary"
	case WidthOverflow:
		return "width overflow"
	default:
		return "unknown"
	}
}

type EncodingError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding failed (%v): %v", e.Kind, e.Msg)
}

func newError(kind ErrorKind, format string, args ...any) *EncodingError {
	return &EncodingError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
