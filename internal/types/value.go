/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"strconv"
	"strings"
)

// Value is a centipawn score.
type Value int32

// Constants for values.
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 32_000
	ValueNA    Value = -ValueInf - 1
	ValueMax   Value = 30_000
	ValueMin   Value = -ValueMax
	MaxDepth         = 128
	// GameOverScore is added to +/- pv_index per §4.7 so that mates
	// closer to the root (smaller pv_index) score further from zero.
	GameOverScore          Value = -ValueMax
	ValueCheckMateThreshold Value = ValueMax - MaxDepth - 1
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IsValid reports whether v is within the representable centipawn range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a forced mate.
func (v Value) IsCheckMateValue() bool {
	return abs(int(v)) > int(ValueCheckMateThreshold) && abs(int(v)) <= int(ValueMax)
}

func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v.IsCheckMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		plies := int(ValueMax) - abs(int(v))
		sb.WriteString(strconv.Itoa((plies + 1) / 2))
	case v == ValueNA:
		sb.WriteString("N/A")
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}

// Key is a 64 bit zobrist hash key.
type Key uint64
