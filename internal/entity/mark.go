package entity

// Mark - the content of a board cell, and the token identifying a player.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	// PlayerTie is only ever a game result, never a cell value.
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - the other player, or EmptyCell for anything that is not a player.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}
