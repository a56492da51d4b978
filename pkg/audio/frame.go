package audio

import (
	"encoding/binary"
	"errors"
	"time"
)

// Frame is one slice of captured PCM16 audio together with its capture
// parameters. Frames move between the websocket layer, the ring buffer and
// the WAV assembler.
type Frame struct {
	Data       []byte
	Timestamp  time.Time
	SampleRate int32
	Channels   int16
}

const frameHeaderSize = 8 + 4 + 2 + 4 // timestamp + sampleRate + channels + dataLen

var errFrameTooShort = errors.New("audio frame payload too short")

// MarshalBinary encodes the frame for ring storage:
// timestamp(8) + sampleRate(4) + channels(2) + dataLen(4) + data, all
// little endian.
func (f *Frame) MarshalBinary() ([]byte, error) {
	buf := make([]byte, frameHeaderSize+len(f.Data))

	binary.LittleEndian.PutUint64(buf[0:8], uint64(f.Timestamp.UnixNano()))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(f.SampleRate))
	binary.LittleEndian.PutUint16(buf[12:14], uint16(f.Channels))
	binary.LittleEndian.PutUint32(buf[14:18], uint32(len(f.Data)))
	copy(buf[frameHeaderSize:], f.Data)

	return buf, nil
}

// UnmarshalBinary decodes a frame previously encoded with MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < frameHeaderSize {
		return errFrameTooShort
	}

	f.Timestamp = time.Unix(0, int64(binary.LittleEndian.Uint64(data[0:8])))
	f.SampleRate = int32(binary.LittleEndian.Uint32(data[8:12]))
	f.Channels = int16(binary.LittleEndian.Uint16(data[12:14]))

	dataLen := int(binary.LittleEndian.Uint32(data[14:18]))
	if len(data[frameHeaderSize:]) < dataLen {
		return errFrameTooShort
	}
	f.Data = make([]byte, dataLen)
	copy(f.Data, data[frameHeaderSize:frameHeaderSize+dataLen])

	return nil
}
