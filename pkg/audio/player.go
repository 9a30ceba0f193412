// Package audio plays alarm tones through oto. Tones are synthesized,
// so no sound assets ship with the binary; a custom WAV can replace
// the ring tone.
package audio

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/plursight/daybreak/pkg/models"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxSampleRate int
	audioCtxChannels   int
	audioCtxReady      bool
)

// initContext initializes the global audio context once. The context is
// created with the format of the first sound played; later sounds must
// match it.
func initContext(sampleRate, channels int) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			// No audio device (e.g. headless session); playback
			// degrades to a no-op instead of crashing.
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxSampleRate = sampleRate
		audioCtxChannels = channels
		audioCtxReady = true
	})
}

// Player manages looping ring playback with cancellation support
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// Ring plays the tone for the alarm's sound in a loop until Stop is
// called. When settings name a custom WAV its PCM replaces the
// synthesized tone. Returns nil when no audio device is available.
func Ring(kind models.Sound, customWAV []byte) *Player {
	pcm, sampleRate, channels := ringPCM(kind, customWAV)
	initContext(sampleRate, channels)
	if !audioCtxReady || globalAudioCtx == nil {
		return nil
	}
	if sampleRate != audioCtxSampleRate || channels != audioCtxChannels {
		log.Printf("Ring tone format %dHz/%dch does not match audio context, using built-in tone", sampleRate, channels)
		pcm = Tone(kind)
	}

	p := &Player{stopChan: make(chan struct{})}
	go p.playLoop(pcm)
	return p
}

// PlayOnce plays the tone a single time, as feedback for the
// test-sound button. Fire and forget.
func PlayOnce(kind models.Sound) {
	pcm := Tone(kind)
	initContext(toneSampleRate, toneChannels)
	if !audioCtxReady || globalAudioCtx == nil {
		return
	}

	go func() {
		player := globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

func ringPCM(kind models.Sound, customWAV []byte) (pcm []byte, sampleRate, channels int) {
	if len(customWAV) > 0 {
		format, data, err := ParseWAV(customWAV)
		if err != nil {
			log.Printf("Failed to parse custom ring tone: %v", err)
		} else if format.BitDepth != 16 {
			log.Printf("Custom ring tone has unsupported bit depth %d, using built-in tone", format.BitDepth)
		} else {
			return data, format.SampleRate, format.Channels
		}
	}
	return Tone(kind), toneSampleRate, toneChannels
}

func (p *Player) playLoop(pcm []byte) {
	// Loop the ring until stopped
	for {
		p.player = globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
		p.player.Play()

		for p.player.IsPlaying() {
			select {
			case <-p.stopChan:
				p.player.Pause()
				p.player.Close()
				return
			case <-time.After(10 * time.Millisecond):
				// Continue checking
			}
		}

		if err := p.player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}

		// Brief gap between repeats, interruptible
		select {
		case <-p.stopChan:
			return
		case <-time.After(400 * time.Millisecond):
		}
	}
}

// Stop stops the playback. Safe on a nil Player and safe to call twice.
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)

		if p.player != nil {
			p.player.Pause()
		}
	}
}
