package blockfall

// PieceType identifies one of the seven tetromino kinds. Its value is also
// the cell id the piece writes into the board.
type PieceType uint8

const (
	PieceZ PieceType = iota + 1
	PieceS
	PieceT
	PieceO
	PieceJ
	PieceL
	PieceI
)

const (
	pieceTypes   = 7
	maxShapeSize = 4
)

// String returns the conventional letter for the piece.
func (t PieceType) String() string {
	if t < PieceZ || t > PieceI {
		return "?"
	}
	return string("ZSTOJLI"[t-1])
}

// Shape is a square cell matrix of side Size (2, 3 or 4). Cells outside
// Size are always zero.
type Shape struct {
	Size  int
	Cells [maxShapeSize][maxShapeSize]uint8
}

var canonicalShapes = [pieceTypes + 1]Shape{
	PieceZ: {Size: 3, Cells: [4][4]uint8{
		{1, 1, 0},
		{0, 1, 1},
	}},
	PieceS: {Size: 3, Cells: [4][4]uint8{
		{0, 2, 2},
		{2, 2, 0},
	}},
	PieceT: {Size: 3, Cells: [4][4]uint8{
		{0, 3, 0},
		{3, 3, 3},
	}},
	PieceO: {Size: 2, Cells: [4][4]uint8{
		{4, 4},
		{4, 4},
	}},
	PieceJ: {Size: 3, Cells: [4][4]uint8{
		{5, 0, 0},
		{5, 5, 5},
	}},
	PieceL: {Size: 3, Cells: [4][4]uint8{
		{0, 0, 6},
		{6, 6, 6},
	}},
	PieceI: {Size: 4, Cells: [4][4]uint8{
		{},
		{7, 7, 7, 7},
	}},
}

// ShapeOf returns the spawn orientation of a piece type.
func ShapeOf(t PieceType) Shape {
	return canonicalShapes[t]
}

// Rotated returns the shape turned 90 degrees clockwise: transpose, then
// reverse each row.
func (s Shape) Rotated() Shape {
	r := Shape{Size: s.Size}
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			r.Cells[y][x] = s.Cells[s.Size-1-x][y]
		}
	}
	return r
}

// each calls fn for every occupied cell with its offset inside the matrix.
func (s Shape) each(fn func(x, y int, v uint8)) {
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			if v := s.Cells[y][x]; v != 0 {
				fn(x, y, v)
			}
		}
	}
}

// Piece is the active falling piece. X and Y are the board position of the
// top-left corner of its shape matrix.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

// spawnPiece builds a piece of type t centered at the spawn row.
func spawnPiece(t PieceType) Piece {
	shape := ShapeOf(t)
	return Piece{
		Type:  t,
		Shape: shape,
		X:     Cols/2 - shape.Size/2,
		Y:     SpawnRow,
	}
}
