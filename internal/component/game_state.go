package component

// GamePhase — фаза игрового цикла
type GamePhase int

const (
	IntermissionPhase GamePhase = iota // передышка между волнами
	CombatPhase                        // активная волна
	GameOverPhase
)

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase      GamePhase
	PhaseTimer float64 // обратный отсчёт до конца передышки
}
