package utils

import (
	"cmp"
	"fmt"
	"time"
)

// Range bounds a value from either side; a nil edge means unbounded.
type Range[T cmp.Ordered] struct {
	Min *T
	Max *T
}

func (r Range[T]) Contains(v T) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// XError carries a reason plus arbitrary metadata for surfaces (websocket
// events, logs) that want more than a flat string.
type XError struct {
	Reason string
	Meta   any
}

func (xe XError) ToError() error {
	return fmt.Errorf("xerror: %v\nmeta: %v", xe.Reason, xe.Meta)
}

// FileTimestamp renders t in the compact form used for artifact filenames,
// e.g. transcription_20250101_130500.txt.
func FileTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
