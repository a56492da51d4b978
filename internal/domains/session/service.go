package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// Common errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidState    = errors.New("invalid session state")
)

// Claims represents JWT claims for a capture session
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// SessionService defines the interface for session business logic
type SessionService interface {
	// OpenSession verifies the access password (when one is configured)
	// and issues a session-scoped bearer token.
	OpenSession(ctx context.Context, req OpenSessionRequest) (*OpenSessionResponse, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionResponse, error)
	CloseSession(ctx context.Context, id uuid.UUID) error

	// Token validation
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// Capture bookkeeping used by the websocket pipeline
	UpdateState(ctx context.Context, id uuid.UUID, state SessionState) error
	RecordUtterance(ctx context.Context, id uuid.UUID, text string, tasks, events int) error
	History(ctx context.Context, id uuid.UUID, limit int64) ([]Utterance, error)
}

type sessionService struct {
	repository   SessionRepository
	logger       *Logger.Logger
	jwtSecret    string
	passwordHash string
	tokenTTL     time.Duration
}

// OpenSession implements SessionService
func (s *sessionService) OpenSession(ctx context.Context, req OpenSessionRequest) (*OpenSessionResponse, error) {
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
			return nil, ErrInvalidPassword
		}
	}

	session := NewSession()
	if err := s.repository.Save(session, s.tokenTTL); err != nil {
		s.logger.Errorf("error saving session: %v", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, expiresAt, err := s.generateToken(session.ID)
	if err != nil {
		s.logger.Errorf("error generating session token: %v", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Infof("session opened successfully: %s", session.ID)
	return &OpenSessionResponse{
		Session:   session.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetSession implements SessionService
func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.repository.Get(id)
	if err != nil {
		s.logger.Errorf("error getting session %s: %v", id, err)
		return nil, err
	}
	return session.ToResponse(), nil
}

// CloseSession implements SessionService
func (s *sessionService) CloseSession(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(id); err != nil {
		s.logger.Errorf("error closing session %s: %v", id, err)
		return err
	}

	s.logger.Infof("session closed: %s", id)
	return nil
}

// ValidateToken implements SessionService
func (s *sessionService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UpdateState implements SessionService
func (s *sessionService) UpdateState(ctx context.Context, id uuid.UUID, state SessionState) error {
	if !state.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	session, err := s.repository.Get(id)
	if err != nil {
		s.logger.Errorf("error getting session %s for state update: %v", id, err)
		return err
	}

	session.State = state
	session.UpdatedAt = time.Now()
	if err := s.repository.Save(session, s.tokenTTL); err != nil {
		s.logger.Errorf("error saving session %s: %v", id, err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// RecordUtterance implements SessionService
func (s *sessionService) RecordUtterance(ctx context.Context, id uuid.UUID, text string, tasks, events int) error {
	session, err := s.repository.Get(id)
	if err != nil {
		s.logger.Errorf("error getting session %s for utterance: %v", id, err)
		return err
	}

	session.LastTranscript = text
	session.Utterances++
	session.TasksDetected += tasks
	session.EventsDetected += events
	session.UpdatedAt = time.Now()

	if err := s.repository.Save(session, s.tokenTTL); err != nil {
		s.logger.Errorf("error saving session %s: %v", id, err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	utterance := Utterance{Text: text, Tasks: tasks, Events: events, RecordedAt: time.Now()}
	if err := s.repository.AppendUtterance(id, utterance); err != nil {
		s.logger.Warnf("error appending utterance for session %s: %v", id, err)
	}

	s.logger.Infof("utterance recorded for session %s (%d tasks, %d events)", id, tasks, events)
	return nil
}

// History implements SessionService
func (s *sessionService) History(ctx context.Context, id uuid.UUID, limit int64) ([]Utterance, error) {
	utterances, err := s.repository.Utterances(id, limit)
	if err != nil {
		s.logger.Errorf("error reading history for session %s: %v", id, err)
		return nil, fmt.Errorf("failed to read session history: %w", err)
	}
	return utterances, nil
}

// generateToken signs a session-scoped access token.
func (s *sessionService) generateToken(sessionID uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := &Claims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   sessionID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// NewSessionService creates a new session service
func NewSessionService(repository SessionRepository, logger *Logger.Logger, jwtSecret, passwordHash string, tokenTTL time.Duration) SessionService {
	if tokenTTL == 0 {
		tokenTTL = time.Hour
	}

	return &sessionService{
		repository:   repository,
		logger:       logger,
		jwtSecret:    jwtSecret,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
	}
}
