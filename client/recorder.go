package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

// RecordingState is the audio capture state machine's current state.
type RecordingState int

const (
	StateIdle RecordingState = iota
	StateRecording
	StateStopping
	StateProcessing
)

func (s RecordingState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateStopping:
		return "stopping"
	case StateProcessing:
		return "processing"
	}
	return "unknown"
}

// CaptureEventKind discriminates device events.
type CaptureEventKind int

const (
	// EventChunkReceived carries one buffered audio chunk.
	EventChunkReceived CaptureEventKind = iota
	// EventCaptureStopped signals that the device finished delivering all
	// buffered chunks after a stop request.
	EventCaptureStopped
	// EventDeviceError signals a capture failure.
	EventDeviceError
)

// CaptureEvent is one discrete, ordered device event.
type CaptureEvent struct {
	Kind  CaptureEventKind
	Chunk []byte
	Err   error
}

// CaptureConfig is the device configuration requested at start.
type CaptureConfig struct {
	Channels         int
	SampleRate       int
	EchoCancellation bool
	NoiseSuppression bool
	MimeType         string
}

// CaptureDevice abstracts the audio input device.
type CaptureDevice interface {
	// Supports reports whether the runtime can encode mimeType.
	Supports(mimeType string) bool
	// Acquire opens the input stream. A permission denial returns an error.
	Acquire(ctx context.Context, config CaptureConfig) (CaptureStream, error)
}

// CaptureStream is one active recording on the device.
type CaptureStream interface {
	// Events delivers capture events in arrival order. The channel is closed
	// after EventCaptureStopped or EventDeviceError is delivered.
	Events() <-chan CaptureEvent
	// RequestStop asks the device to finish. Buffered chunks keep arriving
	// until EventCaptureStopped.
	RequestStop()
	// Release frees the underlying device track.
	Release()
}

// Notifier surfaces blocking, non-retrying notifications to the user.
type Notifier interface {
	BlockingError(message string)
}

// Transcriber turns an assembled payload into text. Satisfied by APIClient.
type Transcriber interface {
	Transcribe(ctx context.Context, payload []byte, mimeType string, lang i18n.Language) (string, error)
}

// preferredMimeTypes is the ordered encoding preference list probed once at
// start. The first supported entry wins; if none are supported the fallback
// is used. The chosen type drives both the capture encoder and the filename
// extension hint sent with the upload.
var preferredMimeTypes = []string{"audio/webm", "audio/mp4", "audio/mpeg"}

const fallbackMimeType = "audio/webm"

const (
	captureChannels   = 1
	captureSampleRate = 16000
)

// Recorder is the client-side audio capture state machine. At most one
// recording cycle is active at a time: Start outside Idle and Stop outside
// Recording are no-ops. On every failure the machine returns to Idle and
// surfaces a blocking notification; partial or garbled text is never placed
// into the session's pending input.
type Recorder struct {
	device      CaptureDevice
	transcriber Transcriber
	session     *ConversationSession
	notifier    Notifier
	logger      *zap.Logger

	mu       sync.Mutex
	state    RecordingState
	mimeType string
	chunks   [][]byte
	stream   CaptureStream
	done     chan struct{}
}

// NewRecorder creates a recorder in the Idle state.
func NewRecorder(device CaptureDevice, transcriber Transcriber, session *ConversationSession, notifier Notifier, logger *zap.Logger) *Recorder {
	return &Recorder{
		device:      device,
		transcriber: transcriber,
		session:     session,
		notifier:    notifier,
		logger:      logger,
		state:       StateIdle,
	}
}

// State returns the machine's current state.
func (r *Recorder) State() RecordingState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// MimeType returns the encoding negotiated for the current or last cycle.
func (r *Recorder) MimeType() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mimeType
}

// Start acquires the device and begins capture. A no-op outside Idle.
func (r *Recorder) Start(ctx context.Context) {
	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return
	}

	// Format negotiation happens once, before the device is opened.
	mimeType := r.negotiateMimeType()

	stream, err := r.device.Acquire(ctx, CaptureConfig{
		Channels:         captureChannels,
		SampleRate:       captureSampleRate,
		EchoCancellation: true,
		NoiseSuppression: true,
		MimeType:         mimeType,
	})
	if err != nil {
		r.state = StateIdle
		r.mu.Unlock()
		r.logger.Error("Failed to acquire audio device", zap.Error(err))
		r.notifier.BlockingError("Could not access microphone. Please grant permission and try again.")
		return
	}

	done := make(chan struct{})
	r.state = StateRecording
	r.mimeType = mimeType
	r.chunks = nil
	r.stream = stream
	r.done = done
	r.mu.Unlock()

	r.logger.Info("Recording started", zap.String("mime_type", mimeType))
	go r.consume(ctx, stream, done)
}

// Stop requests the device to finish. A no-op outside Recording; buffered
// chunks continue to arrive until the device signals completion.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return
	}
	r.state = StateStopping
	stream := r.stream
	r.mu.Unlock()

	stream.RequestStop()
}

// Wait blocks until the in-flight capture cycle has fully completed. It
// returns immediately if no cycle has run.
func (r *Recorder) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (r *Recorder) negotiateMimeType() string {
	for _, mimeType := range preferredMimeTypes {
		if r.device.Supports(mimeType) {
			return mimeType
		}
	}
	return fallbackMimeType
}

// consume is the controller loop: it drains device events in order until
// the capture either stops cleanly or fails.
func (r *Recorder) consume(ctx context.Context, stream CaptureStream, done chan struct{}) {
	defer close(done)

	for event := range stream.Events() {
		switch event.Kind {
		case EventChunkReceived:
			if len(event.Chunk) > 0 {
				r.mu.Lock()
				r.chunks = append(r.chunks, event.Chunk)
				r.mu.Unlock()
			}
		case EventDeviceError:
			stream.Release()
			r.fail("Recording failed. Please try again.", event.Err)
			return
		case EventCaptureStopped:
			r.finish(ctx, stream)
			return
		}
	}
}

// finish assembles the payload and hands it to the transcription pipeline.
// All chunks have been delivered by the time the device signals completion,
// so assembly happens first and the track is released only afterwards.
func (r *Recorder) finish(ctx context.Context, stream CaptureStream) {
	r.mu.Lock()
	r.state = StateProcessing
	var size int
	for _, chunk := range r.chunks {
		size += len(chunk)
	}
	payload := make([]byte, 0, size)
	for _, chunk := range r.chunks {
		payload = append(payload, chunk...)
	}
	mimeType := r.mimeType
	r.chunks = nil
	r.mu.Unlock()

	stream.Release()

	r.logger.Info("Recording assembled",
		zap.Int("payload_bytes", len(payload)),
		zap.String("mime_type", mimeType))

	text, err := r.transcriber.Transcribe(ctx, payload, mimeType, r.session.Language())
	if err != nil {
		r.fail("Failed to transcribe audio. Please try again.", err)
		return
	}

	r.session.SetPendingInput(text)
	r.toIdle()
}

func (r *Recorder) fail(message string, err error) {
	r.logger.Error("Capture cycle failed", zap.Error(err))
	r.toIdle()
	r.notifier.BlockingError(message)
}

func (r *Recorder) toIdle() {
	r.mu.Lock()
	r.state = StateIdle
	r.stream = nil
	r.mu.Unlock()
}
