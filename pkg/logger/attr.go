package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the failing operation (a type name, "type" or "derive")
// under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Kind records a failure kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Args records call arguments under the key "args", one group member per
// argument keyed by position. Values are rendered with %v so that records stay
// printable for any argument type.
func Args(args []any) slog.Attr {
	as := make([]slog.Attr, 0, len(args))
	for i, a := range args {
		as = append(as, slog.String(strconv.Itoa(i), fmt.Sprintf("%v", a)))
	}
	return slog.Attr{Key: "args", Value: slog.GroupValue(as...)}
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Document records a document index under the key "document".
func Document(index int) slog.Attr {
	return slog.Int("document", index)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
