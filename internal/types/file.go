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

import "strconv"

// File is the x coordinate of a square, 0..15 (a..p).
type File int8

// Rank is the y coordinate of a square, 0..15 (1..16).
type Rank int8

const fileLabels string = "abcdefghijklmnop"

// IsValid reports whether f is within 0..15.
func (f File) IsValid() bool {
	return f >= 0 && f <= 15
}

// IsValid reports whether r is within 0..15.
func (r Rank) IsValid() bool {
	return r >= 0 && r <= 15
}

// String renders the file as a lower case letter a..p.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLabels[f])
}

// String renders the rank as a 1-based number 1..16.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return strconv.Itoa(int(r) + 1)
}
