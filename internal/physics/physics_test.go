package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 400))
	assert.Equal(t, 400.0, Clamp(401.5, 0, 400))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 400))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.001))
	assert.Equal(t, 1.0, Sign(0))
	assert.Equal(t, 1.0, Sign(200))
}

func TestBetweenIsStrict(t *testing.T) {
	assert.True(t, Between(200, 160, 240))
	assert.False(t, Between(160, 160, 240))
	assert.False(t, Between(240, 160, 240))
}

func TestVec(t *testing.T) {
	v := Vec{X: 300, Y: 200}.Add(Vec{X: 200, Y: -200}.Scale(0.5))
	assert.Equal(t, Vec{X: 400, Y: 100}, v)
}
