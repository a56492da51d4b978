package audio

import (
	"errors"

	"github.com/smallnest/ringbuffer"
)

// FrameRing buffers capture frames in arrival order inside a fixed byte
// budget. When full it drops the oldest frames, so a stalled consumer costs
// history, never memory.
type FrameRing interface {
	Enqueue(frame Frame) error
	Dequeue() (Frame, bool)
	// Drain empties the ring and returns the remaining frames in order.
	Drain() []Frame
	Len() int
	Capacity() int
}

type frameRing struct {
	size int
	rb   *ringbuffer.RingBuffer
}

// NewRing creates a frame ring with the given byte capacity.
func NewRing(size int) FrameRing {
	return &frameRing{
		size: size,
		rb:   ringbuffer.New(size).SetBlocking(false),
	}
}

// Enqueue implements FrameRing.
func (r *frameRing) Enqueue(frame Frame) error {
	data, err := frame.MarshalBinary()
	if err != nil {
		return err
	}

	// frames are stored length-prefixed so variable-sized payloads can be
	// walked back out
	required := len(data) + 4
	if required > r.rb.Capacity() {
		return errors.New("audio frame too large for buffer")
	}

	for r.rb.Free() < required {
		if !r.dropOldest() {
			r.rb.Reset()
			break
		}
	}

	var prefix [4]byte
	prefix[0] = byte(len(data))
	prefix[1] = byte(len(data) >> 8)
	prefix[2] = byte(len(data) >> 16)
	prefix[3] = byte(len(data) >> 24)
	if _, err := r.rb.Write(prefix[:]); err != nil {
		return err
	}
	_, err = r.rb.Write(data)
	return err
}

// Dequeue implements FrameRing.
func (r *frameRing) Dequeue() (Frame, bool) {
	data, ok := r.readRecord()
	if !ok {
		return Frame{}, false
	}

	var frame Frame
	if err := frame.UnmarshalBinary(data); err != nil {
		return Frame{}, false
	}
	return frame, true
}

// Drain implements FrameRing.
func (r *frameRing) Drain() []Frame {
	frames := make([]Frame, 0)
	for {
		frame, ok := r.Dequeue()
		if !ok {
			return frames
		}
		frames = append(frames, frame)
	}
}

// Len implements FrameRing.
func (r *frameRing) Len() int {
	return r.rb.Length()
}

// Capacity implements FrameRing.
func (r *frameRing) Capacity() int {
	return r.size
}

func (r *frameRing) readRecord() ([]byte, bool) {
	if r.rb.IsEmpty() {
		return nil, false
	}

	sizeBytes := make([]byte, 4)
	n, err := r.rb.Read(sizeBytes)
	if err != nil || n != 4 {
		return nil, false
	}
	size := int(sizeBytes[0]) | int(sizeBytes[1])<<8 | int(sizeBytes[2])<<16 | int(sizeBytes[3])<<24

	data := make([]byte, size)
	n, err = r.rb.Read(data)
	if err != nil || n != size {
		return nil, false
	}
	return data, true
}

func (r *frameRing) dropOldest() bool {
	_, ok := r.readRecord()
	return ok
}
