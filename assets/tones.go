package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// SampleRate matches the audio context the game creates.
const SampleRate = 44100

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// Tone is a single synthesized effect: a frequency sweep shaped by a linear
// attack/release envelope.
type Tone struct {
	Wave      waveform
	StartFreq float64
	EndFreq   float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Volume    float64
}

// effect tones
var (
	toneHit = Tone{
		Wave: waveSquare, StartFreq: 220, EndFreq: 90,
		Duration: 120 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 80 * time.Millisecond,
		Volume: 0.35,
	}
	toneShield = Tone{
		Wave: waveSine, StartFreq: 900, EndFreq: 700,
		Duration: 160 * time.Millisecond, Attack: 1 * time.Millisecond, Release: 140 * time.Millisecond,
		Volume: 0.4,
	}
	toneDefeat = Tone{
		Wave: waveSquare, StartFreq: 330, EndFreq: 55,
		Duration: 600 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 300 * time.Millisecond,
		Volume: 0.3,
	}
	toneJump = Tone{
		Wave: waveSine, StartFreq: 300, EndFreq: 520,
		Duration: 90 * time.Millisecond, Attack: 3 * time.Millisecond, Release: 40 * time.Millisecond,
		Volume: 0.2,
	}
	toneDash = Tone{
		Wave: waveNoise,
		Duration: 110 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 90 * time.Millisecond,
		Volume: 0.15,
	}
)

// Samples renders the tone as mono float samples in [-1, 1].
func (t Tone) Samples(sampleRate int) []float64 {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]float64, n)
	rng := rand.New(rand.NewSource(int64(n)))
	phase := 0.0
	for i := range buf {
		progress := float64(i) / float64(n)
		freq := t.StartFreq + (t.EndFreq-t.StartFreq)*progress
		switch t.Wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}
		phase += freq / float64(sampleRate)
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}
	applyEnvelope(buf, t.Attack, t.Release, sampleRate)
	for i := range buf {
		buf[i] *= t.Volume
	}
	return buf
}

// PCM renders the tone as 16-bit little-endian stereo, the layout ebiten's
// audio players take.
func (t Tone) PCM(sampleRate int) []byte {
	samples := t.Samples(sampleRate)
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

func applyEnvelope(buf []float64, attack, release time.Duration, sampleRate int) {
	total := len(buf)
	attackN := int(attack.Seconds() * float64(sampleRate))
	releaseN := int(release.Seconds() * float64(sampleRate))

	releaseStart := total - releaseN
	if releaseStart < attackN {
		releaseStart = attackN
	}

	for i := range buf {
		vol := 1.0
		if i < attackN && attackN > 0 {
			vol = float64(i) / float64(attackN)
		} else if i >= releaseStart && releaseN > 0 {
			vol = float64(total-i) / float64(releaseN)
		}
		buf[i] *= vol
	}
}
