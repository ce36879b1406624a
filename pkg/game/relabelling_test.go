package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===================================================================
// Witness constructors
// ===================================================================

func TestRelabelling_Identity(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 3)
		//
		assert.True(t, IdentityRelabelling(x).Verify(x, x))
	}
}

func TestRelabelling_AddZero(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 3)
		//
		assert.True(t, AddZeroRelabelling(x).Verify(Add(x, Zero()), x))
	}
}

func TestRelabelling_MulZero(t *testing.T) {
	x := randomGame(rand.New(rand.NewSource(42)), 3)
	//
	assert.True(t, MulZeroRelabelling().Verify(Mul(x, Zero()), Zero()))
	assert.True(t, MulZeroRelabelling().Verify(Mul(Zero(), x), Zero()))
}

func TestRelabelling_NegNeg(t *testing.T) {
	x := randomGame(rand.New(rand.NewSource(7)), 3)
	//
	assert.True(t, NegNegRelabelling(x).Verify(Neg(Neg(x)), x))
}

func TestRelabelling_Inverse(t *testing.T) {
	x := Make([]*PreGame{Zero(), One()}, []*PreGame{Nat(2)})
	y := Make([]*PreGame{One(), Zero()}, []*PreGame{Nat(2)})
	//
	r, ok := FindRelabelling(x, y)
	require.True(t, ok)
	assert.True(t, r.Verify(x, y))
	assert.True(t, r.Inverse().Verify(y, x))
}

// ===================================================================
// Search
// ===================================================================

func TestRelabelling_Find_01(t *testing.T) {
	// Same position under a permutation of options
	x := Make([]*PreGame{Zero(), One()}, nil)
	y := Make([]*PreGame{One(), Zero()}, nil)
	//
	r, ok := FindRelabelling(x, y)
	require.True(t, ok)
	assert.True(t, r.Verify(x, y))
}

func TestRelabelling_Find_02(t *testing.T) {
	// Equivalent but differently shaped positions are NOT relabellings of
	// one another: {-1|1} ~ 0 yet no witness exists.
	x := Zero()
	y := Make([]*PreGame{Neg(One())}, []*PreGame{One()})
	//
	_, ok := FindRelabelling(x, y)
	assert.False(t, ok)
	assert.True(t, Equiv(x, y))
}

// Two different constructions of the number two: the sum 1+1 (after pruning
// its duplicated option) and the chain {1|}.
func TestRelabelling_Find_TwoShapes(t *testing.T) {
	x := Simplify(Add(One(), One()))
	y := Nat(2)
	//
	r, ok := FindRelabelling(x, y)
	require.True(t, ok, "expected %s and %s to be isomorphic", x, y)
	assert.True(t, r.Verify(x, y))
}

// ===================================================================
// Transport
// ===================================================================

// A relabelling is stronger than equivalence.
func TestRelabelling_ImpliesEquiv(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		x := randomGame(rnd, 2)
		y := randomGame(rnd, 2)
		//
		if _, ok := FindRelabelling(x, y); ok {
			assert.True(t, Equiv(x, y), "isomorphic positions %s, %s not equivalent", x, y)
		}
	}
}

// A relabelling transports the numeric predicate in both directions.
func TestRelabelling_PreservesNumeric(t *testing.T) {
	x := Simplify(Add(One(), One()))
	y := Nat(2)
	//
	_, ok := FindRelabelling(x, y)
	require.True(t, ok)
	assert.Equal(t, Numeric(x), Numeric(y))
	//
	// And on a non-numeric pair
	u := Make([]*PreGame{Zero(), Zero()}, []*PreGame{Zero()})
	v := Make([]*PreGame{Zero(), Zero()}, []*PreGame{Zero()})
	//
	_, ok = FindRelabelling(u, v)
	require.True(t, ok)
	assert.Equal(t, Numeric(u), Numeric(v))
}
