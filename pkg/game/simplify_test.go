package game

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ===================================================================
// Structure
// ===================================================================

func TestSimplify_01(t *testing.T) {
	checkSimplify(t, Zero(), Zero())
}

func TestSimplify_02(t *testing.T) {
	// {0 1|} keeps only its best Left option
	x := Make([]*PreGame{Zero(), One()}, nil)
	checkSimplify(t, x, Make([]*PreGame{One()}, nil))
}

func TestSimplify_03(t *testing.T) {
	// Duplicated options collapse to the first
	x := Make([]*PreGame{Zero(), Zero()}, nil)
	checkSimplify(t, x, One())
}

func TestSimplify_04(t *testing.T) {
	// {|0 1} keeps only Right's best (least) option
	x := Make(nil, []*PreGame{Zero(), One()})
	checkSimplify(t, x, Make(nil, []*PreGame{Zero()}))
}

func TestSimplify_05(t *testing.T) {
	// 1+1 collapses to the chain shape of two
	checkSimplify(t, Add(One(), One()), Nat(2))
}

func TestSimplify_06(t *testing.T) {
	// Incomparable options are all retained: in {0 *|} neither option
	// dominates the other.
	x := Make([]*PreGame{Zero(), Star()}, nil)
	checkSimplify(t, x, x)
}

// ===================================================================
// Soundness
// ===================================================================

func TestSimplify_PreservesEquiv(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		x := randomGame(rand.New(rand.NewSource(seed)), 3)
		y := Simplify(x)
		//
		if !Equiv(x, y) {
			t.Errorf("simplification changed the value of %s to %s", x, y)
		}
		//
		if y.NodeCount() > x.NodeCount() {
			t.Errorf("simplification grew %s into %s", x, y)
		}
	}
}

func TestSimplify_PreservesNumeric(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		x := randomNumericGame(rand.New(rand.NewSource(seed)), 3)
		//
		if !Numeric(Simplify(x)) {
			t.Errorf("simplification broke numericity of %s", x)
		}
	}
}

// ===================================================================
// Helpers
// ===================================================================

func checkSimplify(t *testing.T, x *PreGame, expected *PreGame) {
	actual := Simplify(x)
	//
	opts := []cmp.Option{cmp.AllowUnexported(PreGame{}), cmpopts.EquateEmpty()}
	//
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("unexpected simplification of %s (-want +got):\n%s", x, diff)
	}
}
