package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// WeaponMount — компонент игрока, управляющий стрельбой
type WeaponMount struct {
	WeaponID     string  // ID из weapons.json
	FireCooldown float64 // Оставшееся время до следующего выстрела
}
