package hashing

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// Zobrist keys, generated once from a fixed seed so fingerprints are
// stable between runs.
var (
	zobristPiece     [2][chess.NumPieceKinds][chess.NumSquares]uint64
	zobristEnPassant [chess.NumSquares]uint64
	zobristCastling  [16]uint64
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)
	for colour := range zobristPiece {
		for kind := range zobristPiece[colour] {
			for sq := range zobristPiece[colour][kind] {
				zobristPiece[colour][kind][sq] = rng.next()
			}
		}
	}
	for sq := range zobristEnPassant {
		zobristEnPassant[sq] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
}

// prng is a xorshift64* generator.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Fingerprint returns the Zobrist hash of the piece placement, the
// en-passant square and the castling rights. The side to move is not part
// of the board and is not hashed.
func Fingerprint(board *chess.Board) uint64 {
	var hash uint64
	for colour := range board.Pieces {
		for kind, bb := range board.Pieces[colour] {
			for bb != 0 {
				var sq chess.Square
				sq, bb = bb.PopLSB()
				hash ^= zobristPiece[colour][kind][sq]
			}
		}
	}
	for ep := board.EnPassant; ep != 0; {
		var sq chess.Square
		sq, ep = ep.PopLSB()
		hash ^= zobristEnPassant[sq]
	}
	hash ^= zobristCastling[board.Castling&chess.AllCastling]
	return hash
}
