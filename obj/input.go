package obj

// Intent is the per-tick key-state snapshot for one combatant. Human
// keyboards and the AI produce the same shape.
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Down   bool
	Sword  bool
	Shield bool
}

// MoveX is -1 for left, 0 for none or both, +1 for right.
func (in Intent) MoveX() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

// Actions counts the discrete actions (jump, down, sword, shield) pressed.
func (in Intent) Actions() int {
	n := 0
	for _, pressed := range []bool{in.Jump, in.Down, in.Sword, in.Shield} {
		if pressed {
			n++
		}
	}
	return n
}

// InputSource produces an intent for a combatant each tick. Returning false
// means "no override"; the caller then uses the neutral intent.
type InputSource interface {
	NextIntent(self, opponent CombatantView) (Intent, bool)
}

// InputFunc adapts a function to InputSource.
type InputFunc func(self, opponent CombatantView) (Intent, bool)

func (f InputFunc) NextIntent(self, opponent CombatantView) (Intent, bool) {
	return f(self, opponent)
}

// Resetter is implemented by input sources holding per-match state.
type Resetter interface {
	Reset()
}

// StaticInput always reports the same intent. Useful for scripted tests and
// idle dummies.
type StaticInput Intent

func (s StaticInput) NextIntent(CombatantView, CombatantView) (Intent, bool) {
	return Intent(s), true
}

// ScriptedInput replays a fixed sequence of intents, then holds the neutral
// intent.
type ScriptedInput struct {
	Steps []Intent
	next  int
}

func (s *ScriptedInput) NextIntent(CombatantView, CombatantView) (Intent, bool) {
	if s == nil || s.next >= len(s.Steps) {
		return Intent{}, false
	}
	in := s.Steps[s.next]
	s.next++
	return in, true
}

func (s *ScriptedInput) Reset() {
	if s == nil {
		return
	}
	s.next = 0
}
