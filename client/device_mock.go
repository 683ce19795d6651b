package client

import (
	"context"
	"sync"
)

// MockCaptureDevice simulates an audio input device for tests and local
// runs without real hardware.
type MockCaptureDevice struct {
	// SupportedTypes drives format negotiation; nil supports nothing.
	SupportedTypes map[string]bool
	// AcquireErr simulates a device-permission denial when set.
	AcquireErr error
	// LastConfig records the configuration passed to the last Acquire.
	LastConfig CaptureConfig
	// AcquireCalls counts Acquire invocations.
	AcquireCalls int
	// Stream is handed out by Acquire; created on first use when nil.
	Stream *MockCaptureStream
}

var _ CaptureDevice = (*MockCaptureDevice)(nil)

// Supports implements CaptureDevice.
func (d *MockCaptureDevice) Supports(mimeType string) bool {
	return d.SupportedTypes[mimeType]
}

// Acquire implements CaptureDevice.
func (d *MockCaptureDevice) Acquire(ctx context.Context, config CaptureConfig) (CaptureStream, error) {
	d.LastConfig = config
	d.AcquireCalls++
	if d.AcquireErr != nil {
		return nil, d.AcquireErr
	}
	if d.Stream == nil {
		d.Stream = NewMockCaptureStream()
	}
	return d.Stream, nil
}

// MockCaptureStream is a scriptable capture stream. Tests emit events in
// the order a real device would deliver them.
type MockCaptureStream struct {
	events chan CaptureEvent

	mu            sync.Mutex
	stopRequested bool
	released      bool
}

// NewMockCaptureStream creates a stream with room for buffered events.
func NewMockCaptureStream() *MockCaptureStream {
	return &MockCaptureStream{events: make(chan CaptureEvent, 64)}
}

// Events implements CaptureStream.
func (s *MockCaptureStream) Events() <-chan CaptureEvent {
	return s.events
}

// RequestStop implements CaptureStream.
func (s *MockCaptureStream) RequestStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRequested = true
}

// Release implements CaptureStream.
func (s *MockCaptureStream) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
}

// StopRequested reports whether the recorder asked the device to finish.
func (s *MockCaptureStream) StopRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopRequested
}

// Released reports whether the device track was freed.
func (s *MockCaptureStream) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// EmitChunk delivers one buffered audio chunk.
func (s *MockCaptureStream) EmitChunk(chunk []byte) {
	s.events <- CaptureEvent{Kind: EventChunkReceived, Chunk: chunk}
}

// EmitStopped signals completion and closes the event stream.
func (s *MockCaptureStream) EmitStopped() {
	s.events <- CaptureEvent{Kind: EventCaptureStopped}
	close(s.events)
}

// EmitError signals a capture failure and closes the event stream.
func (s *MockCaptureStream) EmitError(err error) {
	s.events <- CaptureEvent{Kind: EventDeviceError, Err: err}
	close(s.events)
}
