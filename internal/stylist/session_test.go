package stylist

import (
	"errors"
	"testing"
)

func openSession(t *testing.T) *Session {
	t.Helper()

	s := NewSession()
	frames, err := s.Apply(Event{Kind: EventOpen})
	if err != nil {
		t.Fatalf("open: unexpected error: %v", err)
	}
	if len(frames) != 1 || frames[0].Type != "connected" {
		t.Fatalf("open: expected a single connected frame, got %+v", frames)
	}
	return s
}

func TestSession_StreamFinalizesIntoHistory(t *testing.T) {
	s := openSession(t)

	if _, err := s.Apply(Event{Kind: EventTurn, Message: "What should I wear?"}); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if s.State() != StateAwaiting {
		t.Fatalf("expected awaiting after turn, got %v", s.State())
	}

	frames, err := s.Apply(Event{Kind: EventStart})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(frames) != 1 || frames[0].Type != "start" {
		t.Fatalf("start: got %+v", frames)
	}

	for _, chunk := range []string{"Hello ", "world"} {
		frames, err = s.Apply(Event{Kind: EventDelta, Content: chunk})
		if err != nil {
			t.Fatalf("delta %q: %v", chunk, err)
		}
		if len(frames) != 1 || frames[0].Type != "delta" || frames[0].Content != chunk {
			t.Fatalf("delta %q: got %+v", chunk, frames)
		}
	}

	frames, err = s.Apply(Event{Kind: EventDone})
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if len(frames) != 1 || frames[0].Type != "done" {
		t.Fatalf("done: got %+v", frames)
	}
	if s.State() != StateIdle {
		t.Fatalf("expected idle after done, got %v", s.State())
	}

	hist := s.History()
	if len(hist) != 2 {
		t.Fatalf("expected user+assistant turns, got %d", len(hist))
	}
	if hist[0].Role != "user" || hist[0].Content != "What should I wear?" {
		t.Fatalf("unexpected user turn: %+v", hist[0])
	}
	if hist[1].Role != "assistant" || hist[1].Content != "Hello world" {
		t.Fatalf("unexpected assistant turn: %+v", hist[1])
	}
}

func TestSession_ErrorDiscardsPartial(t *testing.T) {
	s := openSession(t)

	if _, err := s.Apply(Event{Kind: EventTurn, Message: "hi"}); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if _, err := s.Apply(Event{Kind: EventStart}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Apply(Event{Kind: EventDelta, Content: "partial"}); err != nil {
		t.Fatalf("delta: %v", err)
	}

	frames, err := s.Apply(Event{Kind: EventError, Err: "boom"})
	if err != nil {
		t.Fatalf("error event: %v", err)
	}
	if len(frames) != 1 || frames[0].Type != "error" || frames[0].Error != "boom" {
		t.Fatalf("error event: got %+v", frames)
	}

	if s.State() != StateIdle {
		t.Fatalf("expected idle after error, got %v", s.State())
	}
	if len(s.History()) != 0 {
		t.Fatalf("interrupted answer must not enter history, got %+v", s.History())
	}
	if s.Pending() != "" {
		t.Fatalf("pending message should be cleared, got %q", s.Pending())
	}
}

func TestSession_RejectsTurnWhileBusy(t *testing.T) {
	s := openSession(t)

	if _, err := s.Apply(Event{Kind: EventTurn, Message: "first"}); err != nil {
		t.Fatalf("turn: %v", err)
	}

	frames, err := s.Apply(Event{Kind: EventTurn, Message: "second"})
	if err != nil {
		t.Fatalf("busy turn should not fail the session: %v", err)
	}
	if len(frames) != 1 || frames[0].Type != "error" || frames[0].Error != "a request is already in progress" {
		t.Fatalf("busy turn: got %+v", frames)
	}

	// The first turn is still the one in flight.
	if s.State() != StateAwaiting || s.Pending() != "first" {
		t.Fatalf("busy turn must not disturb the turn in flight: state=%v pending=%q", s.State(), s.Pending())
	}
}

func TestSession_RejectsEmptyMessage(t *testing.T) {
	s := openSession(t)

	frames, err := s.Apply(Event{Kind: EventTurn, Message: "   "})
	if err != nil {
		t.Fatalf("empty turn: %v", err)
	}
	if len(frames) != 1 || frames[0].Type != "error" {
		t.Fatalf("empty turn: got %+v", frames)
	}
	if s.State() != StateIdle {
		t.Fatalf("expected idle after rejected turn, got %v", s.State())
	}
}

func TestSession_ClientHistoryReplacesServerCopy(t *testing.T) {
	s := openSession(t)

	replay := []Turn{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	if _, err := s.Apply(Event{Kind: EventTurn, Message: "follow-up", History: replay}); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if _, err := s.Apply(Event{Kind: EventStart}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Apply(Event{Kind: EventDelta, Content: "ok"}); err != nil {
		t.Fatalf("delta: %v", err)
	}
	if _, err := s.Apply(Event{Kind: EventDone}); err != nil {
		t.Fatalf("done: %v", err)
	}

	hist := s.History()
	if len(hist) != 4 {
		t.Fatalf("expected replayed history plus new turn pair, got %d turns", len(hist))
	}
	if hist[0].Content != "earlier question" || hist[3].Content != "ok" {
		t.Fatalf("unexpected history order: %+v", hist)
	}
}

func TestSession_BadTransitions(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T) *Session
		ev    Event
	}{
		{
			name:  "open twice",
			setup: openSession,
			ev:    Event{Kind: EventOpen},
		},
		{
			name:  "start while idle",
			setup: openSession,
			ev:    Event{Kind: EventStart},
		},
		{
			name:  "delta while idle",
			setup: openSession,
			ev:    Event{Kind: EventDelta, Content: "x"},
		},
		{
			name:  "done while idle",
			setup: openSession,
			ev:    Event{Kind: EventDone},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.setup(t)
			if _, err := s.Apply(tc.ev); !errors.Is(err, ErrBadTransition) {
				t.Fatalf("expected ErrBadTransition, got %v", err)
			}
		})
	}
}
