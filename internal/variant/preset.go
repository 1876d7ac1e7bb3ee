/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package variant

import (
	"github.com/frankkopp/chesscore/internal/piece"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Placement is one occupied square of a starting position, in the
// structured GameState form spec.md §6 says the core accepts (FEN
// parsing itself is an out-of-scope collaborator).
type Placement struct {
	Id     PieceId
	Player Color
	Square Square
}

// Preset bundles everything needed to set up a Position for one named
// variant: the board shape, the piece definitions in play, the starting
// placement used when no FEN is supplied, and the rule flags.
type Preset struct {
	Name       string
	Dims       BDimensions
	PieceDefs  []*piece.Definition
	Start      []Placement
	Rules      GlobalRulesInternal
}

var registry = map[string]func() Preset{
	"standard":      Standard,
	"atomic":        Atomic,
	"horde":         Horde,
	"antichess":     Antichess,
	"kingofthehill": KingOfTheHill,
	"threecheck":    ThreeCheck,
	"fivecheck":     FiveCheck,
	"racingkings":   RacingKings,
}

// Lookup resolves a variant.GameMode tag (case-sensitive, as recorded in
// the registry keys above) to its Preset constructor, for the engine
// API's load_fen/set_state GameMode dispatch (spec.md §6).
func Lookup(name string) (Preset, bool) {
	ctor, ok := registry[name]
	if !ok {
		return Preset{}, false
	}
	return ctor(), true
}

func backRankOrder() [8]PieceId {
	return [8]PieceId{PidRook, PidKnight, PidBishop, PidQueen, PidKing, PidBishop, PidKnight, PidRook}
}

// classicalStart returns the placement for the standard 8x8 opening
// array, reused by Standard/Atomic/Antichess/KingOfTheHill/N-check.
func classicalStart() []Placement {
	order := backRankOrder()
	var placements []Placement
	for x := 0; x < 8; x++ {
		placements = append(placements,
			Placement{Id: order[x], Player: White, Square: SquareOf(File(x), 0)},
			Placement{Id: PidPawnWhite, Player: White, Square: SquareOf(File(x), 1)},
			Placement{Id: PidPawnBlack, Player: Black, Square: SquareOf(File(x), 6)},
			Placement{Id: order[x], Player: Black, Square: SquareOf(File(x), 7)},
		)
	}
	return placements
}

// Standard is plain chess on an 8x8 board.
func Standard() Preset {
	dims := NewRectangularDimensions(8, 8)
	return Preset{
		Name:      "standard",
		Dims:      dims,
		PieceDefs: standardPieceDefs(dims),
		Start:     classicalStart(),
		Rules:     NewGlobalRules(),
	}
}

// Atomic is plain chess with capture-triggered explosions (spec.md §8's
// Qxh7 scenario).
func Atomic() Preset {
	dims := NewRectangularDimensions(8, 8)
	return Preset{
		Name:      "atomic",
		Dims:      dims,
		PieceDefs: atomicPieceDefs(dims),
		Start:     classicalStart(),
		Rules:     NewGlobalRules(),
	}
}

// Antichess (giveaway) has no leader: the losing condition becomes
// stalemate or loss of all pieces, and captures are mandatory whenever
// available.
func Antichess() Preset {
	dims := NewRectangularDimensions(8, 8)
	rules := NewGlobalRules()
	rules.CapturingIsForced = true
	rules.StalematedPlayerLoses = true
	return Preset{
		Name:      "antichess",
		Dims:      dims,
		PieceDefs: noLeaderPieceDefs(dims),
		Start:     classicalStart(),
		Rules:     rules,
	}
}

// KingOfTheHill is plain chess where reaching either of the four centre
// squares with your king wins outright, expressed purely through
// win_squares (no special-cased control flow, per spec.md §9).
func KingOfTheHill() Preset {
	dims := NewRectangularDimensions(8, 8)
	centre := Bitboard{}.
		PushSquare(SquareOf(3, 3)).PushSquare(SquareOf(4, 3)).
		PushSquare(SquareOf(3, 4)).PushSquare(SquareOf(4, 4))
	rules := NewGlobalRules()
	rules.WinPositions[White] = centre
	rules.WinPositions[Black] = centre
	return Preset{
		Name:      "kingofthehill",
		Dims:      dims,
		PieceDefs: standardPieceDefs(dims),
		Start:     classicalStart(),
		Rules:     rules,
	}
}

func nCheck(name string, limit uint8) Preset {
	dims := NewRectangularDimensions(8, 8)
	rules := NewGlobalRules()
	rules.CheckLimit = limit
	return Preset{
		Name:      name,
		Dims:      dims,
		PieceDefs: standardPieceDefs(dims),
		Start:     classicalStart(),
		Rules:     rules,
	}
}

// ThreeCheck ends the game for whichever side has delivered check three
// times (spec.md §8 scenario 6).
func ThreeCheck() Preset { return nCheck("threecheck", 3) }

// FiveCheck is the five-check variant of the same mechanism.
func FiveCheck() Preset { return nCheck("fivecheck", 5) }

// Horde gives White a pawn mass and no king (spec.md §8 scenario 4's
// FEN), and Black the standard set. White has no leader piece on the
// board at all, so "leader captured" never fires for White; per §4.4
// the legality check falls back to "does that side have any pieces
// left", which is exactly Horde's win condition for Black.
func Horde() Preset {
	dims := NewRectangularDimensions(8, 8)
	var placements []Placement
	order := backRankOrder()
	for x := 0; x < 8; x++ {
		placements = append(placements,
			Placement{Id: order[x], Player: Black, Square: SquareOf(File(x), 7)},
			Placement{Id: PidPawnBlack, Player: Black, Square: SquareOf(File(x), 6)},
		)
	}
	for y := 0; y <= 3; y++ {
		for x := 0; x < 8; x++ {
			placements = append(placements, Placement{Id: PidPawnWhite, Player: White, Square: SquareOf(File(x), y)})
		}
	}
	// Rank 5 (index 4) holds pawns on files b, c, f and g only (a, d, e
	// and h stay empty), per the horde-start FEN "1PP2PP1".
	for _, x := range []int{1, 2, 5, 6} {
		placements = append(placements, Placement{Id: PidPawnWhite, Player: White, Square: SquareOf(File(x), 4)})
	}
	defs := standardPieceDefs(dims)
	return Preset{
		Name:      "horde",
		Dims:      dims,
		PieceDefs: defs,
		Start:     placements,
		Rules:     NewGlobalRules(),
	}
}

// RacingKings has no captures-that-matter win condition; both kings race
// to the back rank opposite White's home row, expressed as a shared
// win_squares set on the top rank (spec.md §8 scenario 5's FEN layout).
func RacingKings() Preset {
	dims := NewRectangularDimensions(8, 8)
	placements := []Placement{
		{Id: PidKing, Player: Black, Square: SquareOf(0, 1)},
		{Id: PidRook, Player: Black, Square: SquareOf(1, 1)},
		{Id: PidBishop, Player: Black, Square: SquareOf(2, 1)},
		{Id: PidKnight, Player: Black, Square: SquareOf(3, 1)},
		{Id: PidKnight, Player: White, Square: SquareOf(4, 1)},
		{Id: PidBishop, Player: White, Square: SquareOf(5, 1)},
		{Id: PidRook, Player: White, Square: SquareOf(6, 1)},
		{Id: PidKing, Player: White, Square: SquareOf(7, 1)},

		{Id: PidQueen, Player: Black, Square: SquareOf(0, 0)},
		{Id: PidRook, Player: Black, Square: SquareOf(1, 0)},
		{Id: PidBishop, Player: Black, Square: SquareOf(2, 0)},
		{Id: PidKnight, Player: Black, Square: SquareOf(3, 0)},
		{Id: PidKnight, Player: White, Square: SquareOf(4, 0)},
		{Id: PidBishop, Player: White, Square: SquareOf(5, 0)},
		{Id: PidRook, Player: White, Square: SquareOf(6, 0)},
		{Id: PidQueen, Player: White, Square: SquareOf(7, 0)},
	}
	backRank := Bitboard{}
	for x := 0; x < 8; x++ {
		backRank = backRank.PushSquare(SquareOf(File(x), 7))
	}
	rules := NewGlobalRules()
	rules.WinPositions[White] = backRank
	rules.WinPositions[Black] = backRank
	return Preset{
		Name: "racingkings",
		Dims: dims,
		// No castling rooks in this layout - rooks here are plain riders.
		PieceDefs: []*piece.Definition{newKingDef(), newQueenDef(), newRookDef(false), newBishopDef(), newKnightDef()},
		Start:     placements,
		Rules:     rules,
	}
}
