package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/corridor/vmath"
)

func TestToScreen_PlayerAnchored(t *testing.T) {
	player := vmath.Vec3F{X: 3, Y: 1.5, Z: -10}
	x, y := ToScreen(player, player)
	assert.Equal(t, float32(ScreenWidth/2), x)
	assert.Equal(t, float32(ScreenHeight*playerAnchorY), y)
}

func TestToScreen_ForwardIsUp(t *testing.T) {
	player := vmath.Vec3F{Z: 8}
	_, py := ToScreen(player, player)

	ax, ay := ToScreen(vmath.Vec3F{X: -2, Z: -15}, player)
	assert.Less(t, ay, py, "markers ahead appear above the player")
	assert.Less(t, ax, float32(ScreenWidth/2), "negative X is left")
	assert.InDelta(t, float64(py-ay), 230.0, 1e-3)
}

func TestSpan(t *testing.T) {
	assert.Equal(t, float32(50), Span(5))
}

func TestRepeatFires(t *testing.T) {
	var fired []int
	for d := 0; d <= 18; d++ {
		if repeatFires(d) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, 12, 14, 16, 18}, fired)
}
