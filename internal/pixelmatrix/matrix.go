// Package pixelmatrix turns a hex digest into the boolean grid of an
// identicon.
//
// Two layouts exist. Asymmetric reads one digest character per cell in
// order. Symmetric reads one character per fold (a column and its mirror)
// so every row reads the same left to right and right to left.
package pixelmatrix

import "strings"

// DefaultPixels is the default grid edge length.
const DefaultPixels = 5

// symmetricRowDivisor is the number of consecutive digest characters that
// share a row in the symmetric layout. It does not follow the grid size.
const symmetricRowDivisor = 3

// Matrix is an N×N grid indexed as m[row][column]. A true cell is filled.
type Matrix [][]bool

func newMatrix(pixels int) Matrix {
	m := make(Matrix, pixels)
	for row := range m {
		m[row] = make([]bool, pixels)
	}
	return m
}

// Size returns the edge length of the grid.
func (m Matrix) Size() int {
	return len(m)
}

// Filled returns the number of true cells.
func (m Matrix) Filled() int {
	n := 0
	for _, row := range m {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

// Rows renders each row as a string of '1' (filled) and '0' (clear).
func (m Matrix) Rows() []string {
	out := make([]string, len(m))
	for i, row := range m {
		var b strings.Builder
		for _, cell := range row {
			if cell {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		out[i] = b.String()
	}
	return out
}

// Cell reports whether the digest character at index i fills a cell.
//
// The hex digit d is scaled to d/10 and rounded half up, so digits 5
// through f fill and 0 through 4 do not. Indexes past the end of the
// digest and non-hex characters read as 0.
func Cell(hash string, i int) bool {
	if i < 0 || i >= len(hash) {
		return false
	}
	return hexValue(hash[i]) >= 5
}

func hexValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return 0
}

// Asymmetric fills cell i of pixels² with Cell(hash, i), at column
// i mod pixels and row i / pixels.
func Asymmetric(hash string, pixels int) Matrix {
	if pixels <= 0 {
		return Matrix{}
	}

	m := newMatrix(pixels)
	for i := 0; i < pixels*pixels; i++ {
		m[i/pixels][i%pixels] = Cell(hash, i)
	}
	return m
}

// Folds returns the column groups that share one digest character in the
// symmetric layout: for x from 0 to (pixels-1)/2 the pair {x, pixels-1-x},
// or just {x} for the center column of an odd grid.
func Folds(pixels int) [][]int {
	if pixels <= 0 {
		return nil
	}

	last := pixels - 1
	folds := make([][]int, 0, last/2+1)
	for x := 0; x <= last/2; x++ {
		if x == last-x {
			folds = append(folds, []int{x})
		} else {
			folds = append(folds, []int{x, last - x})
		}
	}
	return folds
}

// Symmetric builds a left-right mirrored grid.
//
// Character i of pixels² is written to every column of fold i mod
// len(folds) in row i/3. Rows at or past pixels fall outside the grid and
// are dropped. Cells no character reaches stay clear.
func Symmetric(hash string, pixels int) Matrix {
	if pixels <= 0 {
		return Matrix{}
	}

	folds := Folds(pixels)
	m := newMatrix(pixels)
	for i := 0; i < pixels*pixels; i++ {
		row := i / symmetricRowDivisor
		if row >= pixels {
			break
		}
		value := Cell(hash, i)
		for _, column := range folds[i%len(folds)] {
			m[row][column] = value
		}
	}
	return m
}

// Generate builds the symmetric or asymmetric grid for hash.
func Generate(hash string, pixels int, symmetric bool) Matrix {
	if symmetric {
		return Symmetric(hash, pixels)
	}
	return Asymmetric(hash, pixels)
}
