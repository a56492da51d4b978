package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hukuitappei/voicetask/pkg/Logger"
)

func TestLifecycleHappyPath(t *testing.T) {
	ctx := context.Background()
	lc := NewLifecycle(StateCreated)

	steps := []struct {
		event string
		state SessionState
	}{
		{EventStart, StateRecording},
		{EventStop, StateTranscribing},
		{EventAnalyze, StateAnalyzing},
		{EventFinish, StateDone},
	}

	for _, step := range steps {
		if err := lc.Trigger(ctx, step.event); err != nil {
			t.Fatalf("Expected %s to succeed, got %v", step.event, err)
		}
		if lc.State() != step.state {
			t.Fatalf("Expected state %q after %s, got %q", step.state, step.event, lc.State())
		}
	}
}

func TestLifecycleRejectsStopBeforeStart(t *testing.T) {
	lc := NewLifecycle(StateCreated)

	err := lc.Trigger(context.Background(), EventStop)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
	if lc.State() != StateCreated {
		t.Errorf("Expected state to stay created, got %q", lc.State())
	}
}

func TestLifecycleRejectsDoubleStart(t *testing.T) {
	ctx := context.Background()
	lc := NewLifecycle(StateCreated)

	if err := lc.Trigger(ctx, EventStart); err != nil {
		t.Fatalf("Expected first start to succeed, got %v", err)
	}
	if err := lc.Trigger(ctx, EventStart); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition on double start, got %v", err)
	}
}

func TestLifecycleFailAndRestart(t *testing.T) {
	ctx := context.Background()
	lc := NewLifecycle(StateCreated)

	if err := lc.Trigger(ctx, EventStart); err != nil {
		t.Fatalf("Expected start to succeed, got %v", err)
	}
	if err := lc.Trigger(ctx, EventFail); err != nil {
		t.Fatalf("Expected fail to succeed, got %v", err)
	}
	if lc.State() != StateFailed {
		t.Fatalf("Expected failed state, got %q", lc.State())
	}
	if err := lc.Trigger(ctx, EventStart); err != nil {
		t.Errorf("Expected restart after failure to succeed, got %v", err)
	}
}

func TestLifecycleResumesFromState(t *testing.T) {
	lc := NewLifecycle(StateRecording)

	if !lc.Can(EventStop) {
		t.Error("Expected stop to be legal from recording")
	}
	if lc.Can(EventStart) {
		t.Error("Expected start to be illegal from recording")
	}
}

func TestLifecycleUnknownStateFallsBack(t *testing.T) {
	lc := NewLifecycle(SessionState("warp"))

	if lc.State() != StateCreated {
		t.Errorf("Expected fallback to created, got %q", lc.State())
	}
}

type memorySessionRepo struct {
	sessions   map[uuid.UUID]*Session
	utterances map[uuid.UUID][]Utterance
	lastTTL    time.Duration
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{
		sessions:   make(map[uuid.UUID]*Session),
		utterances: make(map[uuid.UUID][]Utterance),
	}
}

func (r *memorySessionRepo) Save(session *Session, ttl time.Duration) error {
	copied := *session
	r.sessions[session.ID] = &copied
	r.lastTTL = ttl
	return nil
}

func (r *memorySessionRepo) Get(id uuid.UUID) (*Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepo) Delete(id uuid.UUID) error {
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepo) AppendUtterance(id uuid.UUID, utterance Utterance) error {
	r.utterances[id] = append(r.utterances[id], utterance)
	return nil
}

func (r *memorySessionRepo) Utterances(id uuid.UUID, limit int64) ([]Utterance, error) {
	all := r.utterances[id]
	if limit > 0 && int64(len(all)) > limit {
		all = all[int64(len(all))-limit:]
	}
	return all, nil
}

func TestOpenSessionWithoutPassword(t *testing.T) {
	repo := newMemorySessionRepo()
	service := NewSessionService(repo, Logger.NewNop(), "test-secret", "", time.Hour)
	ctx := context.Background()

	resp, err := service.OpenSession(ctx, OpenSessionRequest{})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a signed token")
	}
	if resp.Session.State != StateCreated {
		t.Errorf("Expected created state, got %q", resp.Session.State)
	}

	claims, err := service.ValidateToken(ctx, resp.Token)
	if err != nil {
		t.Fatalf("Expected token to validate, got %v", err)
	}
	if claims.SessionID != resp.Session.ID.String() {
		t.Errorf("Expected session ID %s in claims, got %s", resp.Session.ID, claims.SessionID)
	}
}

func TestOpenSessionPasswordCheck(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("あいことば"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Expected hashing to succeed, got %v", err)
	}

	repo := newMemorySessionRepo()
	service := NewSessionService(repo, Logger.NewNop(), "test-secret", string(hash), time.Hour)
	ctx := context.Background()

	if _, err := service.OpenSession(ctx, OpenSessionRequest{Password: "まちがい"}); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Expected ErrInvalidPassword, got %v", err)
	}

	if _, err := service.OpenSession(ctx, OpenSessionRequest{Password: "あいことば"}); err != nil {
		t.Errorf("Expected correct password to open, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewSessionService(newMemorySessionRepo(), Logger.NewNop(), "test-secret", "", time.Hour)

	if _, err := service.ValidateToken(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	issuer := NewSessionService(newMemorySessionRepo(), Logger.NewNop(), "secret-a", "", time.Hour)
	verifier := NewSessionService(newMemorySessionRepo(), Logger.NewNop(), "secret-b", "", time.Hour)

	resp, err := issuer.OpenSession(ctx, OpenSessionRequest{})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}

	if _, err := verifier.ValidateToken(ctx, resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken across secrets, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	ctx := context.Background()
	service := NewSessionService(newMemorySessionRepo(), Logger.NewNop(), "test-secret", "", -time.Minute)

	resp, err := service.OpenSession(ctx, OpenSessionRequest{})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}

	if _, err := service.ValidateToken(ctx, resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestRecordUtteranceUpdatesCounters(t *testing.T) {
	repo := newMemorySessionRepo()
	service := NewSessionService(repo, Logger.NewNop(), "test-secret", "", time.Hour)
	ctx := context.Background()

	resp, err := service.OpenSession(ctx, OpenSessionRequest{})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}
	id := resp.Session.ID

	if err := service.RecordUtterance(ctx, id, "会議の準備をする", 1, 0); err != nil {
		t.Fatalf("Expected utterance to record, got %v", err)
	}
	if err := service.RecordUtterance(ctx, id, "明日は定例会議", 0, 1); err != nil {
		t.Fatalf("Expected utterance to record, got %v", err)
	}

	session, err := service.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("Expected session lookup to succeed, got %v", err)
	}
	if session.Utterances != 2 {
		t.Errorf("Expected 2 utterances, got %d", session.Utterances)
	}
	if session.TasksDetected != 1 || session.EventsDetected != 1 {
		t.Errorf("Expected 1 task and 1 event detected, got %d and %d", session.TasksDetected, session.EventsDetected)
	}
	if session.LastTranscript != "明日は定例会議" {
		t.Errorf("Expected last transcript to be the newest, got %q", session.LastTranscript)
	}

	history, err := service.History(ctx, id, 10)
	if err != nil {
		t.Fatalf("Expected history to load, got %v", err)
	}
	if len(history) != 2 {
		t.Errorf("Expected 2 history entries, got %d", len(history))
	}
}

func TestUpdateStateRejectsUnknown(t *testing.T) {
	repo := newMemorySessionRepo()
	service := NewSessionService(repo, Logger.NewNop(), "test-secret", "", time.Hour)
	ctx := context.Background()

	resp, err := service.OpenSession(ctx, OpenSessionRequest{})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}

	if err := service.UpdateState(ctx, resp.Session.ID, SessionState("warp")); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}

	if err := service.UpdateState(ctx, resp.Session.ID, StateRecording); err != nil {
		t.Fatalf("Expected valid state update, got %v", err)
	}
	session, err := service.GetSession(ctx, resp.Session.ID)
	if err != nil {
		t.Fatalf("Expected session lookup to succeed, got %v", err)
	}
	if session.State != StateRecording {
		t.Errorf("Expected recording state, got %q", session.State)
	}
}

func TestCloseSession(t *testing.T) {
	repo := newMemorySessionRepo()
	service := NewSessionService(repo, Logger.NewNop(), "test-secret", "", time.Hour)
	ctx := context.Background()

	resp, err := service.OpenSession(ctx, OpenSessionRequest{})
	if err != nil {
		t.Fatalf("Expected open to succeed, got %v", err)
	}

	if err := service.CloseSession(ctx, resp.Session.ID); err != nil {
		t.Fatalf("Expected close to succeed, got %v", err)
	}
	if _, err := service.GetSession(ctx, resp.Session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after close, got %v", err)
	}
}
