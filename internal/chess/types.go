// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// NumPieceKinds is the number of real piece kinds (pawn to king).
const NumPieceKinds = int(NumPieceValues - Pawn)

// PieceKinds lists the real piece kinds in board scan order.
var PieceKinds = [NumPieceKinds]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// pieceValues holds the material value of each piece kind in centipawns.
var pieceValues = [NumPieceValues]int{
	Empty:  0,
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// Value returns the material value of a piece kind. Coloured pieces are
// accepted and valued by their kind.
func (p Piece) Value() int {
	kind := p
	if p >= NumPieceValues {
		kind = ExtractPiece(p)
	}
	if kind < 0 || kind >= NumPieceValues {
		return 0
	}
	return pieceValues[kind]
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// ColourOffset returns the row step of a pawn of the given colour.
// White pawns move towards row 0, black pawns towards row 7.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// ColouredPieceName returns a readable name such as "White Knight".
func ColouredPieceName(colouredPiece Piece) string {
	if colouredPiece == Empty {
		return Empty.String()
	}
	return ExtractColour(colouredPiece).String() + " " + ExtractPiece(colouredPiece).String()
}
