package surreal

import (
	"testing"

	"github.com/consensys/go-surreal/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestOrdinal_Numeric(t *testing.T) {
	for n := uint(0); n <= 6; n++ {
		assert.True(t, game.Numeric(OrdinalPosition(n)))
	}
}

// The embedding is strictly monotone, hence injective.
func TestOrdinal_Monotone(t *testing.T) {
	for a := uint(0); a <= 6; a++ {
		for b := a + 1; b <= 6; b++ {
			assert.True(t, FromOrdinal(a).Lt(FromOrdinal(b)),
				"expected ordinal %d < %d after embedding", a, b)
		}
	}
}

func TestOrdinal_ThreeLessFive(t *testing.T) {
	assert.True(t, FromOrdinal(3).Lt(FromOrdinal(5)))
	assert.False(t, FromOrdinal(5).Lt(FromOrdinal(3)))
}

func TestOrdinal_Injective(t *testing.T) {
	for a := uint(0); a <= 6; a++ {
		for b := uint(0); b <= 6; b++ {
			if a != b {
				assert.False(t, FromOrdinal(a).Equals(FromOrdinal(b)))
			}
		}
	}
}

// The canonical ordinal position and the chain encoding of the same natural
// are equivalent, though structurally different.
func TestOrdinal_AgreesWithChain(t *testing.T) {
	for n := uint(0); n <= 6; n++ {
		assert.True(t, game.Equiv(OrdinalPosition(n), game.Nat(n)))
	}
}

func TestOrdinal_Value(t *testing.T) {
	assert.Equal(t, "4", FromOrdinal(4).String())
}
