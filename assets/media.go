package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/boxshadow/component"
)

// Sound names.
const (
	SoundHit    = "hit"
	SoundShield = "shield"
	SoundDefeat = "defeat"
	SoundJump   = "jump"
	SoundDash   = "dash"
)

var tones = map[string]Tone{
	SoundHit:    toneHit,
	SoundShield: toneShield,
	SoundDefeat: toneDefeat,
	SoundJump:   toneJump,
	SoundDash:   toneDash,
}

// SoundFor maps a combat event to the effect that announces it.
func SoundFor(t component.CombatEventType) (string, bool) {
	switch t {
	case component.EventHitLanded:
		return SoundHit, true
	case component.EventShieldBlocked:
		return SoundShield, true
	case component.EventCombatantDefeated:
		return SoundDefeat, true
	case component.EventJumped:
		return SoundJump, true
	case component.EventDashed:
		return SoundDash, true
	}
	return "", false
}

// Media plays effect sounds in response to combat events.
type Media struct {
	ctx    *audio.Context
	pcm    map[string][]byte
	Muted  bool
	Volume float64
}

// NewMedia renders every effect once and reuses the process audio context.
func NewMedia() *Media {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	m := &Media{
		ctx:    ctx,
		pcm:    make(map[string][]byte, len(tones)),
		Volume: 1,
	}
	for name, t := range tones {
		m.pcm[name] = t.PCM(ctx.SampleRate())
	}
	return m
}

// Play starts the named effect. Unknown names are logged and ignored.
func (m *Media) Play(name string) {
	if m == nil || m.Muted {
		return
	}
	b, ok := m.pcm[name]
	if !ok {
		log.Printf("assets: unknown sound %q", name)
		return
	}
	p := m.ctx.NewPlayerFromBytes(b)
	p.SetVolume(m.Volume)
	p.Play()
}

// HandleEvent is a component.CombatEventHandler.
func (m *Media) HandleEvent(evt component.CombatEvent) {
	if name, ok := SoundFor(evt.Type); ok {
		m.Play(name)
	}
}
