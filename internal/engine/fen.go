// Package engine provides move generation, move application, FEN
// import/export and game bookkeeping on top of chess.Board.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of space separated fields in a full FEN record.
const fenFieldCount = 6

// FEN field names used in parse errors.
const (
	fieldPlacement = "placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the FEN letter for a coloured piece:
// uppercase for white, lowercase for black.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Position is the result of parsing a full six-field FEN record.
type Position struct {
	Board         *chess.Board
	ToMove        chess.Colour
	HalfmoveClock uint
	Fullmove      uint
}

// ParseFEN parses the six space separated fields of a FEN record.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d: %w", fenFieldCount, len(parts), errors.ErrInvalidFEN)
	}

	board, err := ParsePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	pos := &Position{Board: board}
	if pos.ToMove, err = parseSideToMove(parts[1]); err != nil {
		return nil, err
	}
	if board.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return nil, err
	}
	if board.EnPassant, err = parseEnPassant(parts[3]); err != nil {
		return nil, err
	}
	if pos.HalfmoveClock, err = parseCounter(fieldHalfmove, parts[4]); err != nil {
		return nil, err
	}
	if pos.Fullmove, err = parseCounter(fieldFullmove, parts[5]); err != nil {
		return nil, err
	}

	return pos, nil
}

// ParsePlacement parses the piece placement field of a FEN string.
// Unrecognised characters, and anything other than 8 ranks of 8 files,
// are reported as a *errors.ParseError.
func ParsePlacement(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	row, col := 0, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return nil, shortRank(i+1, row, col)
			}
			row++
			col = 0
			if row >= chess.BoardSize {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Field:    fieldPlacement,
					Column:   i + 1,
					Expected: "at most 8 ranks",
					Got:      "'/'",
				}
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Field:    fieldPlacement,
					Column:   i + 1,
					Expected: "at most 8 files per rank",
					Got:      fmt.Sprintf("%q", c),
				}
			}
		default:
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Field:    fieldPlacement,
					Column:   i + 1,
					Expected: "piece letter, digit or '/'",
					Got:      fmt.Sprintf("%q", c),
				}
			}
			if col >= chess.BoardSize {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Field:    fieldPlacement,
					Column:   i + 1,
					Expected: "at most 8 files per rank",
					Got:      fmt.Sprintf("%q", c),
				}
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Place(chess.SquareAt(col, row), chess.MakeColouredPiece(colour, piece))
			col++
		}
	}

	if col != chess.BoardSize {
		return nil, shortRank(len(placement)+1, row, col)
	}
	if row != chess.BoardSize-1 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    fieldPlacement,
			Column:   len(placement) + 1,
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", row+1),
		}
	}
	return board, nil
}

// shortRank reports a rank that ended before its eighth file.
func shortRank(column, row, files int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    fieldPlacement,
		Column:   column,
		Expected: "8 files per rank",
		Got:      fmt.Sprintf("%d files in rank %d", files, chess.BoardSize-row),
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    fieldSide,
			Expected: "w or b",
			Got:      fmt.Sprintf("%q", field),
		}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}

	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= chess.WhiteKingside
		case 'Q':
			rights |= chess.WhiteQueenside
		case 'k':
			rights |= chess.BlackKingside
		case 'q':
			rights |= chess.BlackQueenside
		default:
			return chess.NoCastling, &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    fieldCastling,
				Column:   i + 1,
				Expected: "one of KQkq or -",
				Got:      fmt.Sprintf("%q", field[i]),
			}
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (chess.Bitboard, error) {
	if field == "-" {
		return 0, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    fieldEnPassant,
			Expected: "square name or -",
			Got:      fmt.Sprintf("%q", field),
		}
	}
	return sq.Mask(), nil
}

// parseCounter parses a non-negative decimal clock field.
func parseCounter(name, field string) (uint, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    name,
			Expected: "non-negative integer",
			Got:      fmt.Sprintf("%q", field),
		}
	}
	return uint(n), nil
}

// PlacementString converts a board to the piece placement field of a FEN.
func PlacementString(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, top rank first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(col, row)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// PositionToFEN converts a board and its bookkeeping to a six-field FEN.
func PositionToFEN(board *chess.Board, toMove chess.Colour, halfmoveClock, fullmove uint) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(chess.SquaresToString(board.EnPassant))
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", halfmoveClock, fullmove)

	return sb.String()
}
