package stylist

import (
	"errors"
	"strings"
)

// Session is the per-connection state machine of the streaming stylist
// relay. It makes two behaviors explicit decisions rather than side
// effects: a partial answer interrupted by an error is discarded, and
// only one turn may be outstanding at a time.
//
//	Connecting --open--> Idle --turn--> Awaiting --start--> Streaming
//	Streaming --delta--> Streaming
//	Streaming --done--> Idle   (partial finalized into history)
//	any       --error--> Idle  (partial discarded)
type State int

const (
	StateConnecting State = iota
	StateIdle
	StateAwaiting
	StateStreaming
)

type EventKind int

const (
	EventOpen EventKind = iota
	EventTurn
	EventStart
	EventDelta
	EventDone
	EventError
)

// Event is the tagged variant driving the machine. Message/History are
// set for EventTurn, Content for EventDelta, Err for EventError.
type Event struct {
	Kind    EventKind
	Message string
	History []Turn
	Content string
	Err     string
}

// Frame is what goes over the wire, mirroring the relay protocol:
// connected, start, delta, done, error.
type Frame struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

var ErrBadTransition = errors.New("stylist: event not valid in current state")

type Session struct {
	state   State
	partial strings.Builder
	pending string // user message of the turn in flight
	history []Turn
}

func NewSession() *Session {
	return &Session{state: StateConnecting}
}

func (s *Session) State() State {
	return s.state
}

// Pending returns the user message of the turn in flight, if any.
func (s *Session) Pending() string {
	return s.pending
}

// History returns the finalized turns of this session. The turn in
// flight is not included until its done event.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Apply advances the machine and returns the frames to emit. A turn
// request while busy produces an error frame without changing state;
// transport-level misuse (events arriving in an impossible state)
// returns ErrBadTransition and the caller should drop the connection.
func (s *Session) Apply(ev Event) ([]Frame, error) {
	switch ev.Kind {

	case EventOpen:
		if s.state != StateConnecting {
			return nil, ErrBadTransition
		}
		s.state = StateIdle
		return []Frame{{Type: "connected", Message: "Connected to AI Stylist"}}, nil

	case EventTurn:
		if s.state != StateIdle {
			return []Frame{{Type: "error", Error: "a request is already in progress"}}, nil
		}
		if strings.TrimSpace(ev.Message) == "" {
			return []Frame{{Type: "error", Error: "empty message"}}, nil
		}
		// The client may replay its own view of the history; when it
		// does, it wins over the server-side copy.
		if len(ev.History) > 0 {
			s.history = append(s.history[:0:0], ev.History...)
		}
		s.pending = strings.TrimSpace(ev.Message)
		s.state = StateAwaiting
		return nil, nil

	case EventStart:
		if s.state != StateAwaiting {
			return nil, ErrBadTransition
		}
		s.partial.Reset()
		s.state = StateStreaming
		return []Frame{{Type: "start"}}, nil

	case EventDelta:
		if s.state != StateStreaming {
			return nil, ErrBadTransition
		}
		s.partial.WriteString(ev.Content)
		return []Frame{{Type: "delta", Content: ev.Content}}, nil

	case EventDone:
		if s.state != StateStreaming {
			return nil, ErrBadTransition
		}
		s.history = append(s.history,
			Turn{Role: "user", Content: s.pending},
			Turn{Role: "assistant", Content: s.partial.String()},
		)
		s.partial.Reset()
		s.pending = ""
		s.state = StateIdle
		return []Frame{{Type: "done"}}, nil

	case EventError:
		// Valid from any state. The partial buffer is discarded, not
		// finalized — an interrupted answer never enters history.
		s.partial.Reset()
		s.pending = ""
		s.state = StateIdle
		return []Frame{{Type: "error", Error: ev.Err}}, nil
	}

	return nil, ErrBadTransition
}
