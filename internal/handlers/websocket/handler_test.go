package websocket

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func TestParseBinaryFrame(t *testing.T) {
	payload := make([]byte, 8, 12)
	binary.LittleEndian.PutUint32(payload[0:4], 16000)
	binary.LittleEndian.PutUint16(payload[4:6], 1)
	payload = append(payload, 0x01, 0x02, 0x03, 0x04)

	now := time.Now()
	frame, err := parseBinaryFrame(payload, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if frame.SampleRate != 16000 {
		t.Errorf("Expected sample rate 16000, got %d", frame.SampleRate)
	}
	if frame.Channels != 1 {
		t.Errorf("Expected 1 channel, got %d", frame.Channels)
	}
	if !bytes.Equal(frame.Data, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("Expected PCM payload to survive the header split, got %v", frame.Data)
	}
	if !frame.Timestamp.Equal(now) {
		t.Errorf("Expected timestamp %v, got %v", now, frame.Timestamp)
	}
}

func TestParseBinaryFrameTooShort(t *testing.T) {
	_, err := parseBinaryFrame([]byte{0x01, 0x02, 0x03}, time.Now())
	if err == nil {
		t.Error("Expected error for payload shorter than the header")
	}
}

func TestParseBinaryFrameHeaderOnly(t *testing.T) {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:4], 44100)
	binary.LittleEndian.PutUint16(payload[4:6], 2)

	frame, err := parseBinaryFrame(payload, time.Now())
	if err != nil {
		t.Fatalf("Expected no error for header-only frame, got %v", err)
	}
	if len(frame.Data) != 0 {
		t.Errorf("Expected empty PCM data, got %d bytes", len(frame.Data))
	}
	if frame.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", frame.SampleRate)
	}
	if frame.Channels != 2 {
		t.Errorf("Expected 2 channels, got %d", frame.Channels)
	}
}
