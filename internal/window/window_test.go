package window

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/physics"
)

func TestRendererRect(t *testing.T) {
	r := newRenderer(400, nil)

	x, y, w, h := r.rect(physics.Vec{X: 5, Y: 200}, physics.Vec{X: 10, Y: 80})
	assert.Equal(t, []float32{0, 160, 10, 80}, []float32{x, y, w, h})

	// A paddle pinned to the top of the field starts at screen row 0.
	_, y, _, _ = r.rect(physics.Vec{X: 595, Y: 360}, physics.Vec{X: 10, Y: 80})
	assert.Equal(t, float32(0), y)

	assert.Equal(t, 350.0, r.flip(50))
}

func TestRendererTextScale(t *testing.T) {
	r := newRenderer(400, text.NewGoXFace(basicfont.Face7x13))
	assert.InDelta(t, 16.0/13.0, r.scale(game.FontSize), 1e-9)
	assert.Equal(t, 1.0, r.scale(0))
}

func TestPrimaryAlign(t *testing.T) {
	assert.Equal(t, text.AlignStart, primaryAlign(game.AlignLeft))
	assert.Equal(t, text.AlignCenter, primaryAlign(game.AlignCenter))
	assert.Equal(t, text.AlignEnd, primaryAlign(game.AlignRight))
}

func TestBindings(t *testing.T) {
	bound := map[game.Key]bool{}
	for _, b := range bindings {
		bound[b.game] = true
	}
	for _, k := range []game.Key{game.KeyW, game.KeyS, game.KeyArrowUp, game.KeyArrowDown, game.KeySpace, game.KeyEscape} {
		assert.True(t, bound[k], "%s is not bound", k)
	}
}

func TestNewGame(t *testing.T) {
	cfg := config.Default()
	g := NewGame(cfg, nil)

	w, h := g.Layout(1200, 800)
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)
	assert.Equal(t, 1.0/120, g.dt)
	assert.Equal(t, game.ScreenMenu, g.state.Screen)
}

func TestTone(t *testing.T) {
	samples := tone(660, 0.08, SampleRate)
	require.Len(t, samples, int(SampleRate*0.08))

	assert.Equal(t, 0.0, samples[0])
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s), 1.0)
	}

	peak := func(from, to int) float64 {
		var p float64
		for _, s := range samples[from:to] {
			p = max(p, math.Abs(s))
		}
		return p
	}
	n := len(samples)
	assert.Greater(t, peak(0, n/4), peak(3*n/4, n), "tone decays")
}

func TestPanGains(t *testing.T) {
	cases := []struct {
		pan         float64
		left, right float64
	}{
		{0, 1, 1},
		{-1, 1, 0},
		{1, 0, 1},
		{0.5, 0.5, 1},
		{-3, 1, 0},
	}
	for _, c := range cases {
		l, r := panGains(c.pan)
		assert.Equal(t, c.left, l, "pan %v", c.pan)
		assert.Equal(t, c.right, r, "pan %v", c.pan)
	}
}

func TestStereoPCM(t *testing.T) {
	buf := stereoPCM([]float64{0, 1, -1}, 0.5, 1)
	require.Len(t, buf, 12)

	sample := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(buf[i*4:]))
		r := int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
		return l, r
	}

	l, r := sample(0)
	assert.Equal(t, []int16{0, 0}, []int16{l, r})

	half := amplitude * 0.5
	l, r = sample(1)
	assert.Equal(t, int16(0), l, "panned hard right")
	assert.Equal(t, int16(half), r)

	_, r = sample(2)
	assert.Equal(t, -int16(half), r)
}

func TestNewBeeperWithoutContext(t *testing.T) {
	_, err := NewBeeper(nil, config.Default().Sound)
	require.Error(t, err)
}
