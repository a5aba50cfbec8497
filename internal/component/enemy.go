package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID         string  // ID из enemies.json
	MoveSpeed     float64 // Скорость преследования игрока
	Armor         int     // Плоское снижение входящего урона
	ContactDamage int     // Урон игроку при касании
	XPReward      int
}
