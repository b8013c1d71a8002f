package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		outcome Outcome
	}{
		{"player1", Player1Win},
		{"player2", Player2Win},
		{"draw", Draw},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMatch()
			assert.Equal(t, Ongoing, m.Outcome())
			assert.False(t, m.Over())

			require.NoError(t, m.Finish(c.outcome))
			assert.Equal(t, c.outcome, m.Outcome())
			assert.True(t, m.Over())

			// a decided match stays decided
			assert.Error(t, m.Finish(Draw))
			assert.Equal(t, c.outcome, m.Outcome())

			require.NoError(t, m.Reset())
			assert.Equal(t, Ongoing, m.Outcome())
		})
	}
}

func TestMatchRejectsOngoingAsOutcome(t *testing.T) {
	m := NewMatch()
	assert.Error(t, m.Finish(Ongoing))
	assert.NoError(t, m.Reset(), "resetting an ongoing match is a no-op")
	assert.Equal(t, Ongoing, m.Outcome())
}
