package assets

import (
	"testing"
	"time"

	"github.com/milk9111/boxshadow/component"
	"github.com/stretchr/testify/assert"
)

func TestTonePCMLayout(t *testing.T) {
	tone := Tone{Wave: waveSine, StartFreq: 440, EndFreq: 440, Duration: time.Second, Volume: 1}
	pcm := tone.PCM(SampleRate)
	// 16-bit stereo
	assert.Equal(t, SampleRate*4, len(pcm))
}

func TestToneStaysInRange(t *testing.T) {
	for name, tone := range tones {
		t.Run(name, func(t *testing.T) {
			samples := tone.Samples(SampleRate)
			assert.NotEmpty(t, samples)
			for _, s := range samples {
				if s < -1 || s > 1 {
					t.Fatalf("sample %f out of range", s)
				}
			}
		})
	}
}

func TestSoundFor(t *testing.T) {
	cases := []struct {
		evt  component.CombatEventType
		want string
		ok   bool
	}{
		{component.EventHitLanded, SoundHit, true},
		{component.EventShieldBlocked, SoundShield, true},
		{component.EventCombatantDefeated, SoundDefeat, true},
		{component.EventFacingChanged, "", false},
	}
	for _, c := range cases {
		t.Run(string(c.evt), func(t *testing.T) {
			name, ok := SoundFor(c.evt)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, name)
			if ok {
				assert.Contains(t, tones, name)
			}
		})
	}
}
