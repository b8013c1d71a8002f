package system

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// Outcome is the match terminal state.
type Outcome string

const (
	Ongoing    Outcome = "ongoing"
	Player1Win Outcome = "player1_win"
	Player2Win Outcome = "player2_win"
	Draw       Outcome = "draw"
)

const (
	eventPlayer1Wins = "player1_wins"
	eventPlayer2Wins = "player2_wins"
	eventDraw        = "draw"
	eventReset       = "reset"
)

// Match tracks the lifecycle of one fight: ongoing until a terminal outcome,
// then back to ongoing on reset.
type Match struct {
	fsm *fsm.FSM
}

// NewMatch returns a match in the Ongoing state.
func NewMatch() *Match {
	terminal := []string{string(Player1Win), string(Player2Win), string(Draw)}
	return &Match{
		fsm: fsm.NewFSM(
			string(Ongoing),
			fsm.Events{
				{Name: eventPlayer1Wins, Src: []string{string(Ongoing)}, Dst: string(Player1Win)},
				{Name: eventPlayer2Wins, Src: []string{string(Ongoing)}, Dst: string(Player2Win)},
				{Name: eventDraw, Src: []string{string(Ongoing)}, Dst: string(Draw)},
				{Name: eventReset, Src: terminal, Dst: string(Ongoing)},
			},
			fsm.Callbacks{},
		),
	}
}

// Outcome returns the current state.
func (m *Match) Outcome() Outcome {
	if m == nil {
		return Ongoing
	}
	return Outcome(m.fsm.Current())
}

// Over reports whether a terminal outcome has been reached.
func (m *Match) Over() bool {
	return m.Outcome() != Ongoing
}

// Finish moves an ongoing match to outcome o. Finishing an already decided
// match is an error.
func (m *Match) Finish(o Outcome) error {
	if m == nil {
		return fmt.Errorf("match is nil")
	}
	var event string
	switch o {
	case Player1Win:
		event = eventPlayer1Wins
	case Player2Win:
		event = eventPlayer2Wins
	case Draw:
		event = eventDraw
	default:
		return fmt.Errorf("match: %q is not a terminal outcome", o)
	}
	if !m.fsm.Can(event) {
		return fmt.Errorf("match: cannot finish as %s from %s", o, m.fsm.Current())
	}
	return m.fsm.Event(context.Background(), event)
}

// Reset returns the match to Ongoing. Resetting an ongoing match is a no-op.
func (m *Match) Reset() error {
	if m == nil || !m.Over() {
		return nil
	}
	return m.fsm.Event(context.Background(), eventReset)
}
