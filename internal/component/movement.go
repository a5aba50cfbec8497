// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, пиксели в секунду
type Velocity struct {
	DX, DY float64
}

// Direction — одно из четырёх кардинальных направлений стрельбы.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector возвращает единичный вектор направления.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}
