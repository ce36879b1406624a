package game

// Sub constructs the difference of two positions, defined as Add(x, Neg(y)).
func Sub(x *PreGame, y *PreGame) *PreGame {
	return Add(x, Neg(y))
}
