/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package fen is the boundary collaborator spec.md §6 keeps outside the
// core: it turns a classical Forsyth-Edwards string plus a named variant
// into a position.GameState, the structured form internal/position
// actually builds a Position from. The core never parses text itself.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/frankkopp/chesscore/internal/piece"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Parse resolves variantName to its Preset and parses fenStr against that
// preset's dimensions and piece set, returning the GameState
// NewPositionFromGameState needs. Only the board/side-to-move/castling/
// en-passant fields affect the resulting Position; the trailing halfmove-
// clock and fullmove-number fields are validated but discarded - the
// board model has no 50-move-rule counter to feed them into.
func Parse(fenStr string, variantName string) (position.GameState, error) {
	preset, ok := variant.Lookup(variantName)
	if !ok {
		return position.GameState{}, fmt.Errorf("fen: unknown variant %q", variantName)
	}
	return ParsePreset(fenStr, preset)
}

// ParsePreset is Parse against an already-resolved variant.Preset, for
// callers (such as engine.LoadFen) that already hold one.
func ParsePreset(fenStr string, preset variant.Preset) (position.GameState, error) {
	fields := strings.Fields(strings.TrimSpace(fenStr))
	if len(fields) < 2 {
		return position.GameState{}, fmt.Errorf("fen: expected at least board and side-to-move fields, got %q", fenStr)
	}

	defsByChar, defsByUpperChar := indexDefs(preset.PieceDefs)

	placements, err := parseBoard(fields[0], preset.Dims, defsByChar, defsByUpperChar)
	if err != nil {
		return position.GameState{}, err
	}

	sideToMove, err := parseSideToMove(fields[1])
	if err != nil {
		return position.GameState{}, err
	}

	castling := "-"
	if len(fields) > 2 {
		castling = fields[2]
	}
	applyCastlingRights(placements, castling)

	epSquare, epVictim := SqNone, SqNone
	if len(fields) > 3 && fields[3] != "-" {
		epSquare = MakeSquare(fields[3])
		if epSquare == SqNone {
			return position.GameState{}, fmt.Errorf("fen: invalid en-passant field %q", fields[3])
		}
		epVictim = epVictimOf(epSquare, sideToMove)
	}

	// Fields 4 (halfmove clock) and 5 (fullmove number) are standard FEN
	// but have no home in PositionProperties; parse for validation only.
	if len(fields) > 4 {
		for _, f := range fields[4:min(len(fields), 6)] {
			if _, err := strconv.Atoi(f); err != nil {
				return position.GameState{}, fmt.Errorf("fen: invalid move-counter field %q", f)
			}
		}
	}

	states := make([]position.PlacementState, len(placements))
	for i, p := range placements {
		states[i] = p.PlacementState
	}

	return position.GameState{
		Dims:       preset.Dims,
		PieceDefs:  preset.PieceDefs,
		Placements: states,
		SideToMove: sideToMove,
		EpSquare:   epSquare,
		EpVictim:   epVictim,
		Rules:      preset.Rules,
	}, nil
}

// placement pairs a position.PlacementState with the definition it came
// from, kept around just long enough for applyCastlingRights to inspect
// CanCastle/IsCastleRook.
type placement struct {
	position.PlacementState
	def *piece.Definition
}

// indexDefs builds the two-pass lookup tables the FEN char-to-piece
// algorithm needs: an exact match (covers per-colour pawns, whose
// CharRep already differs by case) tried first, and an uppercase-
// normalised match (covers King/Queen/Rook/Bishop/Knight, whose CharRep
// is colour-neutral and whose FEN case instead denotes the player) as
// the fallback.
func indexDefs(defs []*piece.Definition) (map[rune]*piece.Definition, map[rune]*piece.Definition) {
	byChar := make(map[rune]*piece.Definition, len(defs))
	byUpper := make(map[rune]*piece.Definition, len(defs))
	for _, d := range defs {
		byChar[d.CharRep] = d
		byUpper[unicode.ToUpper(d.CharRep)] = d
	}
	return byChar, byUpper
}

// resolveChar maps one FEN board character to its piece definition and
// owning player: an exact CharRep match first (the per-colour pawn
// case, whose CharRep already differs by case), falling back to an
// uppercase-normalised match whose player comes from ch's own case (the
// shared-symbol King/Queen/Rook/Bishop/Knight case).
func resolveChar(ch rune, byChar, byUpper map[rune]*piece.Definition) (*piece.Definition, Color, bool) {
	upper := unicode.ToUpper(ch)
	if def, ok := byChar[ch]; ok {
		player := White
		if ch != upper {
			player = Black
		}
		return def, player, true
	}
	if def, ok := byUpper[upper]; ok {
		player := White
		if ch != upper {
			player = Black
		}
		return def, player, true
	}
	return nil, ColorNone, false
}

// parseBoard walks the "/"-separated board field from the top rank down,
// per the FEN convention, placing one entry per occupied square.
func parseBoard(board string, dims BDimensions, byChar, byUpper map[rune]*piece.Definition) ([]placement, error) {
	rows := strings.Split(board, "/")
	if len(rows) != dims.Height {
		return nil, fmt.Errorf("fen: board has %d ranks, variant needs %d", len(rows), dims.Height)
	}

	var placements []placement
	for i, row := range rows {
		rank := dims.Height - 1 - i
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '9' {
				file += int(ch - '0')
				continue
			}
			if file >= dims.Width {
				return nil, fmt.Errorf("fen: rank %d overflows board width %d", rank+1, dims.Width)
			}
			def, player, ok := resolveChar(ch, byChar, byUpper)
			if !ok {
				return nil, fmt.Errorf("fen: unrecognised piece character %q for this variant", ch)
			}
			sq := SquareOf(File(file), Rank(rank))
			placements = append(placements, placement{
				PlacementState: position.PlacementState{Id: def.Id, Player: player, Square: sq},
				def:            def,
			})
			file++
		}
		if file != dims.Width {
			return nil, fmt.Errorf("fen: rank %d has %d files, variant needs %d", rank+1, file, dims.Width)
		}
	}
	return placements, nil
}

func parseSideToMove(field string) (Color, error) {
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return ColorNone, fmt.Errorf("fen: invalid side-to-move field %q", field)
	}
}

// applyCastlingRights sets CastleEligible on the king and the relevant
// rook of each side named in the classical KQkq castling field. Ambiguous
// set-ups with more than one castle-eligible rook per wing (Chess960-style
// FENs) are out of scope; the outermost rook on the named wing is used.
func applyCastlingRights(placements []placement, castling string) {
	if castling == "-" {
		return
	}
	type wing struct {
		player   Color
		kingside bool
	}
	wings := map[rune]wing{
		'K': {White, true},
		'Q': {White, false},
		'k': {Black, true},
		'q': {Black, false},
	}
	for _, ch := range castling {
		w, ok := wings[ch]
		if !ok {
			continue
		}
		markKing(placements, w.player)
		markOutermostRook(placements, w.player, w.kingside)
	}
}

func markKing(placements []placement, player Color) {
	for i := range placements {
		if placements[i].Player == player && placements[i].def.IsLeader {
			placements[i].CastleEligible = true
		}
	}
}

func markOutermostRook(placements []placement, player Color, kingside bool) {
	best := -1
	for i := range placements {
		if placements[i].Player != player || !placements[i].def.IsCastleRook {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		if kingside && placements[i].Square.FileOf() > placements[best].Square.FileOf() {
			best = i
		}
		if !kingside && placements[i].Square.FileOf() < placements[best].Square.FileOf() {
			best = i
		}
	}
	if best != -1 {
		placements[best].CastleEligible = true
	}
}

// epVictimOf returns the square of the pawn that just made the double
// step past epSquare: one rank below for Black's just-played double push
// (sideToMove now White), one rank above for White's (sideToMove now
// Black).
func epVictimOf(epSquare Square, sideToMove Color) Square {
	rank := int(epSquare.RankOf())
	if sideToMove == White {
		return SquareOf(epSquare.FileOf(), Rank(rank-1))
	}
	return SquareOf(epSquare.FileOf(), Rank(rank+1))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
