package logger

import "log/slog"

// Attribute helpers keep log keys consistent across the library.

// Error records a single error under the key "error". A nil err yields an
// empty Attr, which slog drops.
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

// Selector records a field or form selector under the key "selector".
func Selector(s string) slog.Attr {
	return slog.String("selector", s)
}

// RuleName records a validation rule name under the key "rule".
func RuleName(name string) slog.Attr {
	return slog.String("rule", name)
}

// GroupName records a required-group name under the key "group".
func GroupName(name string) slog.Attr {
	return slog.String("group", name)
}
