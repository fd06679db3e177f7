package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a fixed-length sine wave
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone streams a sine at freq for duration
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope ramps volume linearly in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SoundType names a feedback cue
type SoundType int

const (
	SoundPress SoundType = iota
	SoundRelease
	SoundToggleOn
	SoundToggleOff
	soundCount
)

const (
	blipDuration = 40 * time.Millisecond
	blipAttack   = 3 * time.Millisecond
	blipRelease  = 25 * time.Millisecond
	chimeNote    = 60 * time.Millisecond
)

func blip(freq float64, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, blipDuration, rate), blipDuration, blipAttack, blipRelease, rate)
}

func chime(first, second float64, rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewTone(first, chimeNote, rate), chimeNote, blipAttack, chimeNote/2, rate)
	n2 := NewEnvelope(NewTone(second, chimeNote, rate), chimeNote, blipAttack, chimeNote/2, rate)
	return beep.Seq(n1, n2)
}

// Sound builds the streamer for t, nil for unknown types
func Sound(t SoundType, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer
	switch t {
	case SoundPress:
		s = blip(880, rate)
	case SoundRelease:
		s = blip(440, rate)
	case SoundToggleOn:
		s = chime(659.25, 987.77, rate)
	case SoundToggleOff:
		s = chime(987.77, 659.25, rate)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume)
}
