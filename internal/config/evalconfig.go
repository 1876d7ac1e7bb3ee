//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the tunables of the evaluator and of move
// ordering, both variant-agnostic since pieces are declarative.
type evalConfiguration struct {
	Tempo int16

	UseLazyEval       bool
	LazyEvalThreshold int16

	// endgame detection: total non-leader material below this value
	// switches to the endgame PST and drops the castling bonus.
	EndgameMaterialThreshold int16

	CastlingBonus int16

	// move ordering
	MvvLvaBase  int32
	KillerScore int32
	PvMoveScore int32

	// null-move pruning eligibility
	NullMoveMinMaterial int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 34

	Settings.Eval.UseLazyEval = false
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.EndgameMaterialThreshold = 3000
	Settings.Eval.CastlingBonus = 60

	Settings.Eval.MvvLvaBase = 10000
	Settings.Eval.KillerScore = 9000
	Settings.Eval.PvMoveScore = 1 << 20

	Settings.Eval.NullMoveMinMaterial = 500
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {

}
