/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package position

import (
	"math/bits"
	"math/rand"

	"github.com/frankkopp/chesscore/internal/piece"
	. "github.com/frankkopp/chesscore/internal/types"
)

// sideToMoveKey is the single random bit distinguishing the two turns
// (spec.md §4.5 zobrist key policy: "the side-to-move uses the LSB").
const sideToMoveKey Key = 1

// epKeys holds one deterministic random key per square, used for the
// en-passant zobrist contribution. Per DESIGN.md's Open Question 1
// decision, the ep *square* is hashed unconditionally whenever one is
// set, never the victim square and never only the file.
var epKeys [MaxSquares]Key

// zobristSeed is fixed so that independently constructed engine
// instances always agree (spec.md §8 "zobrist determinism").
const zobristSeed = 0x434845535343 // "CHESSC" in hex-ish, arbitrary fixed constant

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for i := range epKeys {
		epKeys[i] = Key(r.Uint64())
	}
}

// castleRightsKey derives the castle-eligibility zobrist contribution for
// p's square sq by shifting (rotating) its per-square piece key - "cheap
// and collision-acceptable" per spec.md §4.5.
func castleRightsKey(p *piece.Piece, sq Square) Key {
	return Key(bits.RotateLeft64(uint64(p.ZobristHashes[sq]), 1))
}
