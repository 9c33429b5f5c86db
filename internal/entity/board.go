package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinBoardSize     = 3
	MaxBoardSize     = 9
	DefaultBoardSize = 3

	rowSeparator = "/"
	emptySymbol  = '.'
)

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrMalformedBoard   = errors.New("malformed board")
)

// Move - a cell coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board - a square grid of marks.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Mark `json:"cells"`
}

func ValidateBoardSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	return nil
}

func NewBoard(size int) (Board, error) {
	if err := ValidateBoardSize(size); err != nil {
		return Board{}, err
	}

	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
	}

	return Board{Size: size, Cells: cells}, nil
}

// ParseBoard - reads a board written as rows separated by "/", where "." is an empty cell.
// Example: "XO./.X./..O".
func ParseBoard(notation string) (Board, error) {
	rows := strings.Split(strings.TrimSpace(notation), rowSeparator)

	board, err := NewBoard(len(rows))
	if err != nil {
		return Board{}, fmt.Errorf("%w: %w", ErrMalformedBoard, err)
	}

	for row, line := range rows {
		if len(line) != board.Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, row, len(line), board.Size)
		}

		for col, symbol := range line {
			switch {
			case symbol == emptySymbol:
				board.Cells[row][col] = EmptyCell
			case Mark(symbol).IsPlayer():
				board.Cells[row][col] = Mark(symbol)
			default:
				return Board{}, fmt.Errorf("%w: %q at %s", ErrInvalidMark, symbol, Move{Row: row, Col: col})
			}
		}
	}

	return board, nil
}

func (that Board) String() string {
	rows := make([]string, 0, that.Size)
	for _, line := range that.Cells {
		var sb strings.Builder
		for _, cell := range line {
			if cell == EmptyCell {
				sb.WriteRune(emptySymbol)
				continue
			}
			sb.WriteString(string(cell))
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, rowSeparator)
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size &&
		row < len(that.Cells) && col < len(that.Cells[row])
}

// At - returns the mark at (row, col), or EmptyCell when out of bounds.
func (that Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return EmptyCell
	}

	return that.Cells[row][col]
}

func (that Board) Set(row, col int, mark Mark) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: %s", ErrInvalidCell, Move{Row: row, Col: col})
	}

	if mark != EmptyCell && !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	that.Cells[row][col] = mark

	return nil
}

func (that Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.Cells[row][col] == EmptyCell
}

func (that Board) IsFull() bool {
	for _, line := range that.Cells {
		for _, cell := range line {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, line := range that.Cells {
		for _, cell := range line {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// Clone - returns a deep copy, so the caller's board is never mutated.
func (that Board) Clone() Board {
	cells := make([][]Mark, len(that.Cells))
	for row, line := range that.Cells {
		cells[row] = append([]Mark(nil), line...)
	}

	return Board{Size: that.Size, Cells: cells}
}

// Lines - every row, column and both diagonals.
func (that Board) Lines() [][]Move {
	lines := make([][]Move, 0, 2*that.Size+2)

	for row := 0; row < that.Size; row++ {
		line := make([]Move, 0, that.Size)
		for col := 0; col < that.Size; col++ {
			line = append(line, Move{Row: row, Col: col})
		}
		lines = append(lines, line)
	}

	for col := 0; col < that.Size; col++ {
		line := make([]Move, 0, that.Size)
		for row := 0; row < that.Size; row++ {
			line = append(line, Move{Row: row, Col: col})
		}
		lines = append(lines, line)
	}

	return append(lines, that.mainDiagonal(), that.antiDiagonal())
}

// LinesThrough - the lines that contain (row, col).
func (that Board) LinesThrough(row, col int) [][]Move {
	if !that.InBounds(row, col) {
		return nil
	}

	rowLine := make([]Move, 0, that.Size)
	colLine := make([]Move, 0, that.Size)
	for i := 0; i < that.Size; i++ {
		rowLine = append(rowLine, Move{Row: row, Col: i})
		colLine = append(colLine, Move{Row: i, Col: col})
	}

	lines := [][]Move{rowLine, colLine}
	if row == col {
		lines = append(lines, that.mainDiagonal())
	}
	if row+col == that.Size-1 {
		lines = append(lines, that.antiDiagonal())
	}

	return lines
}

// LineOwner - the mark filling the whole line, or EmptyCell.
func (that Board) LineOwner(line []Move) Mark {
	if len(line) == 0 {
		return EmptyCell
	}

	owner := that.At(line[0].Row, line[0].Col)
	if owner == EmptyCell {
		return EmptyCell
	}

	for _, cell := range line[1:] {
		if that.At(cell.Row, cell.Col) != owner {
			return EmptyCell
		}
	}

	return owner
}

func (that Board) mainDiagonal() []Move {
	line := make([]Move, 0, that.Size)
	for i := 0; i < that.Size; i++ {
		line = append(line, Move{Row: i, Col: i})
	}

	return line
}

func (that Board) antiDiagonal() []Move {
	line := make([]Move, 0, that.Size)
	for i := 0; i < that.Size; i++ {
		line = append(line, Move{Row: i, Col: that.Size - 1 - i})
	}

	return line
}
