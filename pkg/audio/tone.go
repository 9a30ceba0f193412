package audio

import (
	"encoding/binary"
	"math"

	"github.com/plursight/daybreak/pkg/models"
)

// Synthesized tones use a fixed format so the audio context can be set
// up before any alarm rings.
const (
	toneSampleRate = 44100
	toneChannels   = 1
)

// envelope is a piecewise exponential gain ramp through the given
// (time, gain) points, the same shape the tones were designed with.
type envelope struct {
	times []float64
	gains []float64
}

func (e envelope) at(t float64) float64 {
	if len(e.times) == 0 || t <= e.times[0] {
		return e.gains[0]
	}
	for i := 1; i < len(e.times); i++ {
		if t <= e.times[i] {
			frac := (t - e.times[i-1]) / (e.times[i] - e.times[i-1])
			return e.gains[i-1] * math.Pow(e.gains[i]/e.gains[i-1], frac)
		}
	}
	return e.gains[len(e.gains)-1]
}

// Tone renders the PCM (signed 16-bit little endian, mono, 44.1 kHz)
// for the given alarm sound. Unknown kinds fall back to the beep.
func Tone(kind models.Sound) []byte {
	switch kind {
	case models.SoundChime:
		// Triangle wave gliding 660 Hz down to 440 Hz over 0.4 s,
		// soft attack, long decay.
		return render(0.6, envelope{
			times: []float64{0, 0.02, 0.5},
			gains: []float64{0.0001, 0.25, 0.0001},
		}, func(t float64) float64 {
			return glide(t, 660, 440, 0.4)
		}, triangle)
	default:
		// Short 880 Hz sine blip.
		return render(0.3, envelope{
			times: []float64{0, 0.01, 0.25},
			gains: []float64{0.0001, 0.2, 0.0001},
		}, func(t float64) float64 {
			return 880
		}, sine)
	}
}

func glide(t, from, to, over float64) float64 {
	if t >= over {
		return to
	}
	return from + (to-from)*t/over
}

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4*math.Abs(p-0.5) - 1
}

// render integrates the (possibly gliding) frequency into a phase and
// shapes the oscillator with the envelope.
func render(seconds float64, env envelope, freq func(t float64) float64, osc func(phase float64) float64) []byte {
	n := int(seconds * toneSampleRate)
	out := make([]byte, 2*n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / toneSampleRate
		phase += freq(t) / toneSampleRate
		v := osc(phase) * env.at(t)
		sample := int16(math.Round(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[2*i:], uint16(sample))
	}
	return out
}
