package stt

import "testing"

func TestAPIModelForSize(t *testing.T) {
	tests := []struct {
		size string
		want string
	}{
		{"tiny", "whisper-1"},
		{"base", "whisper-1"},
		{"small", "whisper-1"},
		{"medium", "whisper-1"},
		{"large", "whisper-1"},
		{"whisper-1", "whisper-1"},
		{"", "whisper-1"},
	}

	for _, tt := range tests {
		if got := APIModelForSize(tt.size); got != tt.want {
			t.Errorf("Expected %s for size %q, got %s", tt.want, tt.size, got)
		}
	}
}
