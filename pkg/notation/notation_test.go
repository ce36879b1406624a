package notation

import (
	"testing"

	"github.com/consensys/go-surreal/pkg/game"
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestNotation_0(t *testing.T) {
	CheckOk(t, game.Zero(), "{|}")
}

func TestNotation_1(t *testing.T) {
	CheckOk(t, game.Zero(), "0")
}

func TestNotation_2(t *testing.T) {
	CheckOk(t, game.One(), "1")
}

func TestNotation_3(t *testing.T) {
	CheckOk(t, game.Star(), "*")
}

func TestNotation_4(t *testing.T) {
	CheckOk(t, game.Star(), "{0|0}")
}

func TestNotation_5(t *testing.T) {
	CheckOk(t, game.Half(), "1/2")
}

func TestNotation_6(t *testing.T) {
	CheckOk(t, game.Half(), "{0|1}")
}

func TestNotation_7(t *testing.T) {
	CheckOk(t, game.Neg(game.One()), "-1")
}

func TestNotation_8(t *testing.T) {
	e := game.Make([]*game.PreGame{game.Zero(), game.Star()}, nil)
	CheckOk(t, e, "{0 *|}")
}

func TestNotation_9(t *testing.T) {
	e := game.Make([]*game.PreGame{game.Star()}, []*game.PreGame{game.Nat(2)})
	CheckOk(t, e, "{ * | 2 }")
}

func TestNotation_10(t *testing.T) {
	inner := game.Make([]*game.PreGame{game.Zero()}, []*game.PreGame{game.Zero()})
	e := game.Make(nil, []*game.PreGame{inner})
	CheckOk(t, e, "{|{0|0}}")
}

// ============================================================================
// Negative Tests
// ============================================================================

// missing bar
func TestNotation_Err1(t *testing.T) {
	CheckErr(t, "{0}")
}

// unterminated braces
func TestNotation_Err2(t *testing.T) {
	CheckErr(t, "{0|")
}

// stray bar
func TestNotation_Err3(t *testing.T) {
	CheckErr(t, "{0|1|2}")
}

// trailing garbage
func TestNotation_Err4(t *testing.T) {
	CheckErr(t, "0 0")
}

// non-dyadic literal
func TestNotation_Err5(t *testing.T) {
	CheckErr(t, "1/3")
}

// malformed number
func TestNotation_Err6(t *testing.T) {
	CheckErr(t, "--1")
}

// empty input
func TestNotation_Err7(t *testing.T) {
	CheckErr(t, "")
}

// ============================================================================
// Helpers
// ============================================================================

func CheckOk(t *testing.T, expected *game.PreGame, input string) {
	actual, err := Parse(input)
	//
	if err != nil {
		t.Errorf("parsing %q failed: %v", input, err)
	} else if !game.Equiv(expected, actual) {
		t.Errorf("parsing %q gave %s, expected %s", input, actual, expected)
	}
}

func CheckErr(t *testing.T, input string) {
	if x, err := Parse(input); err == nil {
		t.Errorf("parsing %q unexpectedly succeeded with %s", input, x)
	}
}
