package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ===================================================================
// Additive identities
// ===================================================================

func TestAdd_ZeroIdentity(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 3)
		//
		assert.True(t, Equiv(Add(x, Zero()), x), "x + 0 ~ x failed on %s", x)
		assert.True(t, Equiv(Add(Zero(), x), x), "0 + x ~ x failed on %s", x)
	}
}

func TestAdd_NegInverse(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 2)
		//
		assert.True(t, Equiv(Add(x, Neg(x)), Zero()), "x + (-x) ~ 0 failed on %s", x)
	}
}

func TestAdd_NegInverse_Nat5(t *testing.T) {
	x := Nat(5)
	assert.True(t, Equiv(Add(x, Neg(x)), Zero()))
}

func TestAdd_Commutative(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		x := randomGame(rnd, 3)
		y := randomGame(rnd, 3)
		//
		assert.True(t, Equiv(Add(x, y), Add(y, x)), "x + y ~ y + x failed on %s, %s", x, y)
	}
}

func TestAdd_Associative(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		x := randomGame(rnd, 2)
		y := randomGame(rnd, 2)
		z := randomGame(rnd, 2)
		//
		assert.True(t, Equiv(Add(Add(x, y), z), Add(x, Add(y, z))),
			"(x+y)+z ~ x+(y+z) failed on %s, %s, %s", x, y, z)
	}
}

// ===================================================================
// Negation
// ===================================================================

func TestNeg_Involution(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 3)
		//
		assert.True(t, Equiv(Neg(Neg(x)), x))
	}
}

func TestNeg_Star(t *testing.T) {
	// Star is its own negation
	assert.True(t, Equiv(Neg(Star()), Star()))
}

// ===================================================================
// Subtraction
// ===================================================================

func TestSub_Self(t *testing.T) {
	x := Nat(3)
	assert.True(t, Equiv(Sub(x, x), Zero()))
}

// ===================================================================
// Multiplicative identities
// ===================================================================

func TestMul_ZeroAnnihilates(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 2)
		//
		assert.True(t, Equiv(Mul(x, Zero()), Zero()))
		assert.True(t, Equiv(Mul(Zero(), x), Zero()))
	}
}

func TestMul_OneIdentity(t *testing.T) {
	for n := uint(0); n <= 5; n++ {
		x := Nat(n)
		//
		assert.True(t, Equiv(Mul(x, One()), x), "x * 1 ~ x failed on %s", x)
		assert.True(t, Equiv(Mul(One(), x), x), "1 * x ~ x failed on %s", x)
	}
}

func TestMul_OneIdentity_Star(t *testing.T) {
	assert.True(t, Equiv(Mul(Star(), One()), Star()))
}

func TestMul_Commutative(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		x := randomGame(rnd, 2)
		y := randomGame(rnd, 2)
		//
		assert.True(t, Equiv(Mul(x, y), Mul(y, x)), "x*y ~ y*x failed on %s, %s", x, y)
	}
}

func TestMul_Associative(t *testing.T) {
	// Product trees grow multiplicatively, so operands are kept tiny.
	operands := []*PreGame{Zero(), One(), Star(), Neg(One()), Half()}
	//
	for _, x := range operands {
		for _, y := range operands {
			for _, z := range operands {
				lhs := Mul(Mul(x, y), z)
				rhs := Mul(x, Mul(y, z))
				//
				assert.True(t, Equiv(lhs, rhs), "(x*y)*z ~ x*(y*z) failed on %s, %s, %s", x, y, z)
			}
		}
	}
}

func TestMul_Distributive(t *testing.T) {
	operands := []*PreGame{Zero(), One(), Neg(One()), Half()}
	//
	for _, x := range operands {
		for _, y := range operands {
			for _, z := range operands {
				lhs := Mul(x, Add(y, z))
				rhs := Add(Mul(x, y), Mul(x, z))
				//
				assert.True(t, Equiv(lhs, rhs), "x*(y+z) ~ x*y + x*z failed on %s, %s, %s", x, y, z)
			}
		}
	}
}

func TestMul_TwoTimesTwo(t *testing.T) {
	assert.True(t, Equiv(Mul(Nat(2), Nat(2)), Nat(4)))
}
