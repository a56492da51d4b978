package websocket

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/transcript"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/audio"
	"github.com/hukuitappei/voicetask/pkg/utils"
)

// Binary frames carry an 8 byte header before the PCM16 payload:
// sample rate uint32 LE, channels uint16 LE, 2 reserved bytes.
const binaryHeaderSize = 8

// defaultRingBytes bounds how much buffered audio one capture can hold.
const defaultRingBytes = 1024 * 1024

// CaptureHandler owns the live capture WebSocket endpoint
type CaptureHandler struct {
	logger               *Logger.Logger
	sessionService       session.SessionService
	transcriptionService transcript.TranscriptionService
	upgrader             websocket.Upgrader
}

// NewCaptureHandler creates a new capture handler
func NewCaptureHandler(
	logger *Logger.Logger,
	sessionService session.SessionService,
	transcriptionService transcript.TranscriptionService,
) *CaptureHandler {
	return &CaptureHandler{
		logger:               logger,
		sessionService:       sessionService,
		transcriptionService: transcriptionService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: Implement proper origin checking for production
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers WebSocket routes
func (h *CaptureHandler) RegisterRoutes(router gin.IRouter) {
	ws := router.Group("/ws")
	{
		ws.GET("/capture", h.HandleCapture)
	}
}

// HandleCapture runs one live capture connection. The session token rides
// the query string because browsers cannot set headers on WebSocket dials.
func (h *CaptureHandler) HandleCapture(c *gin.Context) {
	claims, err := h.sessionService.ValidateToken(c.Request.Context(), c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session id in token"})
		return
	}

	current, err := h.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if err == session.ErrSessionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.logger.Errorf("capture session load error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("capture upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Infof("capture connected for session %s (state %s)", sessionID, current.State)

	capture := &captureConn{
		handler:   h,
		conn:      conn,
		sessionID: sessionID,
		lifecycle: session.NewLifecycle(current.State),
	}
	capture.run()
}

// captureConn is the per-connection capture state. All reads and writes
// happen on the read loop goroutine, so no locking is needed.
type captureConn struct {
	handler   *CaptureHandler
	conn      *websocket.Conn
	sessionID uuid.UUID
	lifecycle *session.Lifecycle
	ring      audio.FrameRing
}

func (cc *captureConn) run() {
	defer cc.abortIfRecording()

	for {
		messageType, payload, err := cc.conn.ReadMessage()
		if err != nil {
			cc.handler.logger.Debugf("capture read ended for session %s: %v", cc.sessionID, err)
			return
		}

		switch messageType {
		case websocket.TextMessage:
			cc.handleControl(payload)
		case websocket.BinaryMessage:
			cc.handleFrame(payload)
		default:
			cc.handler.logger.Warnf("unknown ws message type %d from session %s", messageType, cc.sessionID)
		}
	}
}

// abortIfRecording marks the session failed when the client drops
// mid-recording, so the next connection can start cleanly.
func (cc *captureConn) abortIfRecording() {
	if cc.lifecycle.State() != session.StateRecording {
		return
	}
	ctx := context.Background()
	if err := cc.lifecycle.Trigger(ctx, session.EventFail); err != nil {
		return
	}
	if err := cc.handler.sessionService.UpdateState(ctx, cc.sessionID, session.StateFailed); err != nil {
		cc.handler.logger.Warnf("error failing abandoned capture %s: %v", cc.sessionID, err)
	}
}

func (cc *captureConn) handleControl(payload []byte) {
	var msg ControlMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		cc.sendError(ErrCodeUnknownType, "control message is not valid JSON")
		return
	}

	switch msg.Type {
	case MessageTypeStart:
		cc.handleStart()
	case MessageTypeStop:
		cc.handleStop()
	default:
		cc.sendError(ErrCodeUnknownType, fmt.Sprintf("unhandled control type %q", msg.Type))
	}
}

func (cc *captureConn) handleStart() {
	ctx := context.Background()
	if err := cc.lifecycle.Trigger(ctx, session.EventStart); err != nil {
		cc.sendError(ErrCodeInvalidState, fmt.Sprintf("cannot start from state %s", cc.lifecycle.State()))
		return
	}

	// A fresh ring per take; leftovers from a failed run never leak in.
	cc.ring = audio.NewRing(defaultRingBytes)

	cc.persistState(ctx, session.StateRecording)
	cc.sendState(session.StateRecording)
}

func (cc *captureConn) handleFrame(payload []byte) {
	if cc.lifecycle.State() != session.StateRecording {
		cc.handler.logger.Debugf("dropping frame outside recording for session %s", cc.sessionID)
		return
	}

	frame, err := parseBinaryFrame(payload, time.Now())
	if err != nil {
		cc.sendError(ErrCodeBadFrame, err.Error())
		return
	}

	if err := cc.ring.Enqueue(frame); err != nil {
		cc.handler.logger.Warnf("frame enqueue failed for session %s: %v", cc.sessionID, err)
	}
}

func (cc *captureConn) handleStop() {
	ctx := context.Background()
	if err := cc.lifecycle.Trigger(ctx, session.EventStop); err != nil {
		cc.sendError(ErrCodeInvalidState, fmt.Sprintf("cannot stop from state %s", cc.lifecycle.State()))
		return
	}

	cc.persistState(ctx, session.StateTranscribing)
	cc.sendState(session.StateTranscribing)

	frames := cc.ring.Drain()
	if len(frames) == 0 {
		cc.fail(ctx, ErrCodeEmptyAudio, "no audio frames were captured")
		return
	}

	wav, err := audio.BuildWAV(frames)
	if err != nil {
		cc.fail(ctx, ErrCodeEmptyAudio, err.Error())
		return
	}

	result, err := cc.handler.transcriptionService.Transcribe(ctx, transcript.TranscribeRequest{
		Audio:    wav,
		Filename: fmt.Sprintf("recording_%s.wav", utils.FileTimestamp(time.Now())),
	})
	if err != nil {
		cc.fail(ctx, ErrCodeTranscription, err.Error())
		return
	}

	if err := cc.lifecycle.Trigger(ctx, session.EventAnalyze); err == nil {
		cc.persistState(ctx, session.StateAnalyzing)
		cc.sendState(session.StateAnalyzing)
	}

	if err := cc.lifecycle.Trigger(ctx, session.EventFinish); err != nil {
		cc.handler.logger.Warnf("capture finish transition failed for session %s: %v", cc.sessionID, err)
	}
	cc.persistState(ctx, session.StateDone)

	if err := cc.handler.sessionService.RecordUtterance(
		ctx, cc.sessionID, result.Transcript.Text, len(result.Tasks), len(result.Events),
	); err != nil {
		cc.handler.logger.Warnf("error recording utterance for session %s: %v", cc.sessionID, err)
	}

	cc.send(TranscriptMessage{
		Type:      MessageTypeTranscript,
		Result:    result,
		Timestamp: time.Now(),
	})
	cc.sendState(session.StateDone)
}

// fail moves the capture to the failed state and reports why.
func (cc *captureConn) fail(ctx context.Context, code, message string) {
	if err := cc.lifecycle.Trigger(ctx, session.EventFail); err != nil {
		cc.handler.logger.Warnf("capture fail transition error for session %s: %v", cc.sessionID, err)
	}
	cc.persistState(ctx, session.StateFailed)
	cc.sendError(code, message)
	cc.sendState(session.StateFailed)
}

func (cc *captureConn) persistState(ctx context.Context, state session.SessionState) {
	if err := cc.handler.sessionService.UpdateState(ctx, cc.sessionID, state); err != nil {
		cc.handler.logger.Warnf("error persisting capture state %s for session %s: %v", state, cc.sessionID, err)
	}
}

func (cc *captureConn) sendState(state session.SessionState) {
	cc.send(StateMessage{
		Type:      MessageTypeState,
		State:     state,
		Timestamp: time.Now(),
	})
}

func (cc *captureConn) sendError(code, message string) {
	cc.send(ErrorMessage{
		Type:      MessageTypeError,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func (cc *captureConn) send(v any) {
	if err := cc.conn.WriteJSON(v); err != nil {
		cc.handler.logger.Debugf("capture write failed for session %s: %v", cc.sessionID, err)
	}
}

// parseBinaryFrame splits a binary ws payload into its capture parameters
// and PCM data.
func parseBinaryFrame(payload []byte, now time.Time) (audio.Frame, error) {
	if len(payload) < binaryHeaderSize {
		return audio.Frame{}, fmt.Errorf("binary frame too short: %d bytes", len(payload))
	}

	return audio.Frame{
		Data:       payload[binaryHeaderSize:],
		Timestamp:  now,
		SampleRate: int32(binary.LittleEndian.Uint32(payload[0:4])),
		Channels:   int16(binary.LittleEndian.Uint16(payload[4:6])),
	}, nil
}
