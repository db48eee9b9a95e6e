package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsIsStrict(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, Overlaps(a, Box{X: 9, Y: 9, W: 10, H: 10}))
	assert.False(t, Overlaps(a, Box{X: 10, Y: 0, W: 10, H: 10}), "touching edges")
	assert.False(t, Overlaps(a, Box{X: 0, Y: 10, W: 10, H: 10}), "touching edges")
	assert.False(t, Overlaps(a, Box{X: 5, Y: 5, W: 0, H: 4}), "empty box")
}

func TestOverlapsPadded(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 20, H: 20}
	b := Box{X: 15, Y: 0, W: 20, H: 20}

	assert.True(t, Overlaps(a, b))
	assert.True(t, OverlapsPadded(a, b, 2))
	assert.False(t, OverlapsPadded(a, b, 3), "padding 3 separates the boxes")
}

func TestInsetNeverGoesNegative(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 10}.Inset(8, 8)
	assert.True(t, b.Empty())
	assert.Zero(t, b.W)
}

func TestIsSupported(t *testing.T) {
	surface := Box{X: 100, Y: 400, W: 150, H: 32}

	tests := []struct {
		name string
		body Box
		want bool
	}{
		{"resting exactly", Box{X: 120, Y: 336, W: 64, H: 64}, true},
		{"within tolerance above", Box{X: 120, Y: 331, W: 64, H: 64}, true},
		{"within tolerance below", Box{X: 120, Y: 341, W: 64, H: 64}, true},
		{"too high", Box{X: 120, Y: 330, W: 64, H: 64}, false},
		{"past the left inset", Box{X: 46, Y: 336, W: 64, H: 64}, false},
		{"past the right inset", Box{X: 240, Y: 336, W: 64, H: 64}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSupported(tc.body, surface, 10, 5))
		})
	}
}

func TestLanding(t *testing.T) {
	surface := Box{X: 100, Y: 400, W: 150, H: 32}
	body := Box{X: 120, Y: 340, W: 64, H: 64} // feet at 404

	assert.True(t, Landing(body, 3, surface))
	assert.False(t, Landing(body, -1, surface), "rising bodies never land")

	deep := Box{X: 120, Y: 352, W: 64, H: 64} // feet at 416
	assert.False(t, Landing(deep, 3, surface))

	above := Box{X: 120, Y: 300, W: 64, H: 64} // feet at 364
	assert.False(t, Landing(above, 30, surface), "projected feet fall short")
	assert.True(t, Landing(above, 31, surface))
}

func TestHazardZone(t *testing.T) {
	top, err := NewPlatform(300, 400, 100, 0, PlatformOptions{Kind: KindDangerous, Thorns: true})
	require.NoError(t, err)
	zone, ok := HazardZone(top)
	require.True(t, ok)
	assert.Equal(t, Box{X: 300, Y: 368, W: 100, H: 32}, zone)

	below, err := NewPlatform(300, 400, 100, 32, PlatformOptions{Thorns: true, ThornsBelow: true})
	require.NoError(t, err)
	zone, ok = HazardZone(below)
	require.True(t, ok)
	assert.Equal(t, Box{X: 300, Y: 432, W: 100, H: 32}, zone)

	plain, err := NewPlatform(0, 0, 10, 10, PlatformOptions{})
	require.NoError(t, err)
	_, ok = HazardZone(plain)
	assert.False(t, ok)
}

func TestNewPlatformDefaults(t *testing.T) {
	p, err := NewPlatform(0, 0, 100, 0, PlatformOptions{Kind: KindHanging})
	require.NoError(t, err)
	assert.InDelta(t, DefaultPlatformHeight, p.H, 1e-9)
	assert.InDelta(t, DefaultChainLength, p.ChainLength, 1e-9)
	assert.True(t, p.ThornsOnTop)
	assert.Zero(t, p.Damage)

	thorny, err := NewPlatform(0, 0, 100, 32, PlatformOptions{Thorns: true})
	require.NoError(t, err)
	assert.Equal(t, 1, thorny.Damage)

	_, err = NewPlatform(0, 0, 0, 32, PlatformOptions{})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestParsePlatformKind(t *testing.T) {
	k, err := ParsePlatformKind("Hanging")
	require.NoError(t, err)
	assert.Equal(t, KindHanging, k)

	k, err = ParsePlatformKind("")
	require.NoError(t, err)
	assert.Equal(t, KindNormal, k)

	_, err = ParsePlatformKind("lava")
	assert.Error(t, err)
}
