/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package variant supplies the GlobalRulesInternal value objects for the
// rule sets named in spec.md's purpose statement (standard, atomic,
// horde, antichess, king-of-the-hill, three/five-check, racing-kings).
// None of these are special-cased in move generation or search: each
// reduces to a combination of flags on GlobalRulesInternal plus, where
// relevant, flags on the PieceDefinitions themselves (explodes_on_capture
// for atomic, win_squares for king-of-the-hill/racing-kings).
package variant

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// GlobalRulesInternal is the per-Position rule configuration described in
// spec.md §3. It carries no behaviour of its own; Position and MoveGen
// branch on its fields instead of dispatching on a variant enum.
type GlobalRulesInternal struct {
	WinPositions          [2]Bitboard
	CapturingIsForced     bool
	StalematedPlayerLoses bool
	InvertWinConditions   bool
	RepetitionDraw        uint8
	CheckLimit            uint8
}

// DefaultRepetitionDraw is the number of times a position's zobrist key
// must recur on the properties stack before the search treats it as a
// draw (spec.md §4.7 preamble check 1).
const DefaultRepetitionDraw = 3

// NewGlobalRules returns the rule set with standard-chess defaults; each
// Preset overrides the fields its variant changes.
func NewGlobalRules() GlobalRulesInternal {
	return GlobalRulesInternal{RepetitionDraw: DefaultRepetitionDraw}
}
