package multiverse

import "fmt"

/*
	Move is one piece displacement: the piece and the square it leaves, the
	square it lands on, and whatever sat there. Moves are plain comparable
	values so generators and caches can test equality with ==.
*/
type Move struct {
	Piece   Piece
	From    Coords
	To      Coords
	Capture Piece // zero Piece when nothing is captured
}

func NewMove(piece Piece, from, to Coords, capture Piece) Move {
	return Move{Piece: piece, From: from, To: to, Capture: capture}
}

// Physical reports whether the move stays on its source board.
func (m Move) Physical() bool {
	return m.From.Physical(m.To)
}

// Captures reports whether the move takes a piece.
func (m Move) Captures() bool {
	return !m.Capture.Empty()
}

func (m Move) String() string {
	if m.Captures() {
		return fmt.Sprintf("%s%sx%s", m.Piece, m.From, m.To)
	}
	return fmt.Sprintf("%s%s%s", m.Piece, m.From, m.To)
}
