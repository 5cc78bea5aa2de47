package multiverse

type PieceKind uint8

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Unicorn
	Dragon
)

var kindRunes = map[PieceKind]rune{
	Pawn:    'p',
	Knight:  'n',
	Bishop:  'b',
	Rook:    'r',
	Queen:   'q',
	King:    'k',
	Unicorn: 'u',
	Dragon:  'd',
}

var runeKinds = map[rune]PieceKind{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
	'u': Unicorn,
	'd': Dragon,
}

// KindFromRune maps a lowercase layout rune to its piece kind.
func KindFromRune(r rune) (PieceKind, bool) {
	k, ok := runeKinds[r]
	return k, ok
}

/*
	A piece is a kind and a color. Pieces have no identity of their own;
	they are attached to a board square, and the zero value means the
	square is empty.
*/
type Piece struct {
	Kind  PieceKind
	White bool
}

func NewPiece(kind PieceKind, white bool) Piece {
	return Piece{Kind: kind, White: white}
}

func (p Piece) Empty() bool {
	return p.Kind == NoPiece
}

// IsPieceOfColor reports whether the tile holds a piece of the given color.
func (p Piece) IsPieceOfColor(white bool) bool {
	return p.Kind != NoPiece && p.White == white
}

func (p Piece) String() string {
	if p.Empty() {
		return "."
	}

	r := kindRunes[p.Kind]
	if p.White {
		return string(r - 'a' + 'A')
	}
	return string(r)
}
