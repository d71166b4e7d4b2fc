package domain

import (
	"fmt"
	"strings"
)

// GridLen is the length of the flat grid encoding: 81 characters,
// row-major, '0' for an empty cell and '1'-'9' for a given.
const GridLen = 81

// ParseGrid decodes the flat 81-character grid encoding into a Board.
// Every non-zero cell is marked as a fixed given.
func ParseGrid(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != GridLen {
		return nil, fmt.Errorf("grid must be %d characters, got %d", GridLen, len(s))
	}
	var b Board
	for i := 0; i < GridLen; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("grid position %d: invalid character %q", i, c)
		}
		if c == '0' {
			continue
		}
		b.SetCell(i, c-'0')
		b.Fixed[i/9][i%9] = true
	}
	return &b, nil
}

// Grid encodes the board in the flat 81-character form.
func (b *Board) Grid() string {
	var sb strings.Builder
	sb.Grow(GridLen)
	for i := 0; i < GridLen; i++ {
		sb.WriteByte('0' + b.Cell(i))
	}
	return sb.String()
}

// Pretty renders the board as 9 lines of 9 digits, empty cells as '.'.
func (b *Board) Pretty() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
