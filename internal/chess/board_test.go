package chess

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := b.PieceAt(sq); got != Empty {
				t.Errorf("PieceAt(%s) = %v; want Empty", sq, got)
			}
		}
		if b.OccupancyAll() != 0 {
			t.Errorf("OccupancyAll() = %x; want 0", b.OccupancyAll())
		}
	})

	t.Run("initial state", func(t *testing.T) {
		if b.Castling != AllCastling {
			t.Errorf("Castling = %s; want KQkq", b.Castling)
		}
		if b.EnPassant != 0 {
			t.Errorf("EnPassant = %s; want -", SquaresToString(b.EnPassant))
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.EnPassant = SquareAt(4, 5).Mask()
	b.SetupInitialPosition()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"h1", W(Rook)},
		{"e2", W(Pawn)},
		{"e4", Empty},
		{"e7", B(Pawn)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"g8", B(Knight)},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq, err := ParseSquare(tt.square)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.PieceAt(sq); got != tt.want {
				t.Errorf("PieceAt(%s) = %s; want %s", tt.square, ColouredPieceName(got), ColouredPieceName(tt.want))
			}
		})
	}

	if got := b.Occupancy(White).Count(); got != 16 {
		t.Errorf("white pieces = %d; want 16", got)
	}
	if got := b.Occupancy(Black).Count(); got != 16 {
		t.Errorf("black pieces = %d; want 16", got)
	}
	if b.EnPassant != 0 {
		t.Error("SetupInitialPosition kept the en passant square")
	}
	if got := b.MaterialBalance(); got != 0 {
		t.Errorf("MaterialBalance() = %d; want 0", got)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBoardPlace(t *testing.T) {
	b := NewBoard()
	sq := SquareAt(3, 4)

	b.Place(sq, W(Knight))
	if got := b.PieceAt(sq); got != W(Knight) {
		t.Fatalf("PieceAt = %s; want White Knight", ColouredPieceName(got))
	}
	if got := b.Get(3, 4); got != W(Knight) {
		t.Errorf("Get(3, 4) = %s; want White Knight", ColouredPieceName(got))
	}

	// Placing over an occupied square replaces the piece
	b.Place(sq, B(Queen))
	if got := b.PieceAt(sq); got != B(Queen) {
		t.Errorf("PieceAt after replace = %s; want Black Queen", ColouredPieceName(got))
	}
	if b.PieceMask(White, Knight) != 0 {
		t.Error("replaced knight still in its mask")
	}

	b.Place(sq, Empty)
	if b.OccupancyAll() != 0 {
		t.Error("Place(Empty) did not clear the square")
	}
}

func TestBoardClearSquares(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	rank2 := Bitboard(0xFF) << (6 * BoardSize)
	b.ClearSquares(rank2)

	if b.PieceMask(White, Pawn) != 0 {
		t.Errorf("white pawns = %s; want none", SquaresToString(b.PieceMask(White, Pawn)))
	}
	if got := b.MaterialBalance(); got != -800 {
		t.Errorf("MaterialBalance() = %d; want -800", got)
	}
}

func TestBoardPieceMask(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	want := []string{"c1", "f1"}
	var got []string
	for _, sq := range b.PieceMask(White, Bishop).Squares() {
		got = append(got, sq.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("white bishops mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardMaterialBalance(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Square]Piece
		want   int
	}{
		{"empty", nil, 0},
		{"kings only", map[Square]Piece{4: B(King), 60: W(King)}, 0},
		{"white queen", map[Square]Piece{4: B(King), 60: W(King), 27: W(Queen)}, 900},
		{"black rook and pawn", map[Square]Piece{4: B(King), 60: W(King), 0: B(Rook), 8: B(Pawn)}, -600},
		{"minor pieces", map[Square]Piece{10: B(Bishop), 50: W(Knight)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			for sq, p := range tt.pieces {
				b.Place(sq, p)
			}
			if got := b.MaterialBalance(); got != tt.want {
				t.Errorf("MaterialBalance() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestBoardValidate(t *testing.T) {
	t.Run("overlapping masks", func(t *testing.T) {
		b := NewBoard()
		b.Pieces[White][0] = SquareAt(0, 6).Mask()
		b.Pieces[Black][3] = SquareAt(0, 6).Mask()
		err := b.Validate()
		if !stderrors.Is(err, errors.ErrInvalidBoard) {
			t.Errorf("Validate() = %v; want ErrInvalidBoard", err)
		}
	})

	t.Run("two en passant squares", func(t *testing.T) {
		b := NewBoard()
		b.EnPassant = SquareAt(0, 2).Mask() | SquareAt(1, 2).Mask()
		if err := b.Validate(); !stderrors.Is(err, errors.ErrInvalidBoard) {
			t.Errorf("Validate() = %v; want ErrInvalidBoard", err)
		}
	})
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.EnPassant = SquareAt(4, 5).Mask()

	copied := original.Copy()
	if diff := cmp.Diff(original, copied); diff != "" {
		t.Fatalf("Copy mismatch (-original +copy):\n%s", diff)
	}

	copied.Place(SquareAt(4, 4), W(Pawn))
	copied.Castling = NoCastling
	if original.PieceAt(SquareAt(4, 4)) != Empty {
		t.Error("modifying the copy changed the original's pieces")
	}
	if original.Castling != AllCastling {
		t.Error("modifying the copy changed the original's castling rights")
	}
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{QueensideRight(White), "Q"},
		{KingsideRight(Black), "k"},
	}

	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}

	if !AllCastling.Has(WhiteKingside | BlackKingside) {
		t.Error("AllCastling.Has(Kk) = false")
	}
	if WhiteKingside.Has(WhiteKingside | WhiteQueenside) {
		t.Error("K.Has(KQ) = true")
	}
}
