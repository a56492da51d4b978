package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// Capture lifecycle events.
const (
	EventStart   = "start"
	EventStop    = "stop"
	EventAnalyze = "analyze"
	EventFinish  = "finish"
	EventFail    = "fail"
)

var ErrInvalidTransition = errors.New("invalid capture transition")

// Lifecycle enforces the capture state machine:
//
//	created -> recording -> transcribing -> analyzing -> done
//
// fail is reachable from every active state, and a finished (or
// failed) capture can start again within the same session.
type Lifecycle struct {
	machine *fsm.FSM
}

// NewLifecycle builds a lifecycle positioned at the given state, so a
// session reloaded from the store resumes where it left off.
func NewLifecycle(state SessionState) *Lifecycle {
	if !state.IsValid() {
		state = StateCreated
	}
	return &Lifecycle{
		machine: fsm.NewFSM(
			string(state),
			fsm.Events{
				{Name: EventStart, Src: []string{string(StateCreated), string(StateDone), string(StateFailed)}, Dst: string(StateRecording)},
				{Name: EventStop, Src: []string{string(StateRecording)}, Dst: string(StateTranscribing)},
				{Name: EventAnalyze, Src: []string{string(StateTranscribing)}, Dst: string(StateAnalyzing)},
				{Name: EventFinish, Src: []string{string(StateAnalyzing)}, Dst: string(StateDone)},
				{Name: EventFail, Src: []string{string(StateRecording), string(StateTranscribing), string(StateAnalyzing)}, Dst: string(StateFailed)},
			},
			fsm.Callbacks{},
		),
	}
}

// Trigger fires a lifecycle event, reporting illegal transitions as
// ErrInvalidTransition.
func (l *Lifecycle) Trigger(ctx context.Context, event string) error {
	if err := l.machine.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	return nil
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() SessionState {
	return SessionState(l.machine.Current())
}

// Can reports whether the event is legal from the current state.
func (l *Lifecycle) Can(event string) bool {
	return l.machine.Can(event)
}
