// pkg/grid/grid.go
package grid

import (
	"math"

	"go-arena-shooter/internal/types"
)

// Grid — равномерная сетка ячеек поверх арены для широкой фазы поиска
// столкновений. Окружность вставляется во все ячейки, которые пересекает её
// ограничивающий квадрат, поэтому запрос может вернуть одну и ту же сущность
// несколько раз. Дедупликация — забота вызывающего кода.
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	buckets  [][]types.EntityID
}

// NewGrid создаёт сетку, покрывающую область width x height пикселей.
func NewGrid(width, height, cellSize float64) *Grid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		buckets:  make([][]types.EntityID, cols*rows),
	}
}

// Clear опустошает все ячейки, сохраняя выделенную под них память.
func (g *Grid) Clear() {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// InsertCircle регистрирует окружность во всех ячейках, накрытых её
// ограничивающим квадратом. Координаты за пределами сетки прижимаются к краю.
func (g *Grid) InsertCircle(id types.EntityID, x, y, r float64) {
	minCol, maxCol, minRow, maxRow := g.cellRange(x, y, r)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			idx := row*g.cols + col
			g.buckets[idx] = append(g.buckets[idx], id)
		}
	}
}

// QueryCircle вызывает visit для каждой записи в ячейках, накрытых окружностью
// запроса. Возврат false из visit прерывает обход. Записи могут повторяться,
// если сущность занимает несколько ячеек.
func (g *Grid) QueryCircle(x, y, r float64, visit func(id types.EntityID) bool) {
	minCol, maxCol, minRow, maxRow := g.cellRange(x, y, r)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, id := range g.buckets[row*g.cols+col] {
				if !visit(id) {
					return
				}
			}
		}
	}
}

func (g *Grid) cellRange(x, y, r float64) (minCol, maxCol, minRow, maxRow int) {
	minCol = clamp(int(math.Floor((x-r)/g.cellSize)), 0, g.cols-1)
	maxCol = clamp(int(math.Floor((x+r)/g.cellSize)), 0, g.cols-1)
	minRow = clamp(int(math.Floor((y-r)/g.cellSize)), 0, g.rows-1)
	maxRow = clamp(int(math.Floor((y+r)/g.cellSize)), 0, g.rows-1)
	return
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
