package window

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/pong/internal/config"
)

// SampleRate of the audio context.
const SampleRate = 44100

// amplitude is the peak of a tone at volume 1.
const amplitude = 0.8 * math.MaxInt16

// Beeper plays a short synthesised tone. It implements game.Sound.
type Beeper struct {
	ctx  *audio.Context
	tone []float64

	// The last rendered player, reused while volume and pan stay the same.
	player *audio.Player
	volume float64
	pan    float64
}

// NewBeeper synthesises the tone described by cfg.
func NewBeeper(ctx *audio.Context, cfg config.Sound) (*Beeper, error) {
	if ctx == nil {
		return nil, fmt.Errorf("window: no audio context")
	}
	if cfg.Frequency <= 0 || cfg.Duration <= 0 {
		return nil, fmt.Errorf("window: tone %gHz for %gs", cfg.Frequency, cfg.Duration)
	}
	return &Beeper{
		ctx:  ctx,
		tone: tone(cfg.Frequency, cfg.Duration, SampleRate),
	}, nil
}

// Play starts the tone from the beginning at the given volume (0..1) and
// pan (-1 left .. 1 right).
func (b *Beeper) Play(volume, pan float64) {
	if volume <= 0 {
		return
	}
	if b.player == nil || volume != b.volume || pan != b.pan {
		if b.player != nil {
			_ = b.player.Close()
		}
		b.player = b.ctx.NewPlayerFromBytes(stereoPCM(b.tone, volume, pan))
		b.volume, b.pan = volume, pan
	}
	if err := b.player.Rewind(); err != nil {
		return
	}
	b.player.Play()
}

// tone returns a sine wave at freq for dur seconds with an exponential decay,
// as samples in -1..1.
func tone(freq, dur float64, sampleRate int) []float64 {
	n := int(math.Round(float64(sampleRate) * dur))
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-3 * t / dur)
		samples[i] = math.Sin(2*math.Pi*freq*t) * envelope
	}
	return samples
}

// panGains splits a pan position into left and right channel gains. The
// centre plays both channels at full gain.
func panGains(pan float64) (left, right float64) {
	pan = max(-1, min(1, pan))
	return min(1, 1-pan), min(1, 1+pan)
}

// stereoPCM encodes samples as 16-bit little-endian interleaved stereo.
func stereoPCM(samples []float64, volume, pan float64) []byte {
	left, right := panGains(pan)
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		l := int16(s * amplitude * volume * left)
		r := int16(s * amplitude * volume * right)
		buf[i*4] = byte(l)
		buf[i*4+1] = byte(l >> 8)
		buf[i*4+2] = byte(r)
		buf[i*4+3] = byte(r >> 8)
	}
	return buf
}
