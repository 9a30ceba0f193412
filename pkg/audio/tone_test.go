package audio

import (
	"encoding/binary"
	"testing"

	"github.com/plursight/daybreak/pkg/models"
)

func samples(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}
	return out
}

func TestToneRendersSound(t *testing.T) {
	tests := []struct {
		kind    models.Sound
		seconds float64
	}{
		{models.SoundBeep, 0.3},
		{models.SoundChime, 0.6},
		{models.Sound("unknown"), 0.3}, // falls back to the beep
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			pcm := Tone(tt.kind)

			wantBytes := 2 * int(tt.seconds*toneSampleRate)
			if len(pcm) != wantBytes {
				t.Errorf("len = %d bytes, want %d", len(pcm), wantBytes)
			}

			peak := int16(0)
			for _, s := range samples(pcm) {
				if s > peak {
					peak = s
				}
			}
			// The envelopes top out well below full scale; the tone must
			// be audible but never clip.
			if peak < 1000 {
				t.Errorf("peak %d is near-silent", peak)
			}
			if peak > 10000 {
				t.Errorf("peak %d exceeds the envelope ceiling", peak)
			}
		})
	}
}

func TestToneStartsAndEndsQuiet(t *testing.T) {
	for _, kind := range []models.Sound{models.SoundBeep, models.SoundChime} {
		s := samples(Tone(kind))
		if first := s[0]; first > 50 || first < -50 {
			t.Errorf("%s: first sample %d should be near zero", kind, first)
		}
		if last := s[len(s)-1]; last > 50 || last < -50 {
			t.Errorf("%s: last sample %d should be near zero", kind, last)
		}
	}
}

func TestTonesDiffer(t *testing.T) {
	beep := Tone(models.SoundBeep)
	chime := Tone(models.SoundChime)
	if len(beep) == len(chime) {
		t.Error("beep and chime should have different durations")
	}
}
