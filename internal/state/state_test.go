package state

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name  string
	log   *[]string
	err   error
	ticks int
}

func (s *recordingState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Exit()  { *s.log = append(*s.log, "exit "+s.name) }
func (s *recordingState) Update(float64) error {
	s.ticks++
	return s.err
}
func (s *recordingState) Draw(*ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	if err := sm.Update(0.016); err != nil {
		t.Fatalf("empty machine must not fail: %v", err)
	}

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.SetState(b)
	want := []string{"enter a", "exit a", "enter b"}
	if len(log) != len(want) {
		t.Fatalf("unexpected transitions %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("unexpected transitions %v", log)
		}
	}
	if sm.Current() != b {
		t.Fatal("current state not updated")
	}
}

func TestStateMachineUpdateError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	sm := NewStateMachine()
	s := &recordingState{name: "s", log: &log, err: boom}
	sm.SetState(s)
	if err := sm.Update(0.016); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s.ticks != 1 {
		t.Fatalf("expected one tick, got %d", s.ticks)
	}
}
