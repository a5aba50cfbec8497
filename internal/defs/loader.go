// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// WeaponLibrary is a map to hold all weapon definitions, keyed by their ID.
var WeaponLibrary map[string]WeaponDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// WaveLibrary holds all wave definitions, keyed by wave number.
var WaveLibrary map[int]WaveDefinition

// LastDefinedWave is the highest wave number present in WaveLibrary.
var LastDefinedWave int

// LoadWeaponDefinitions reads the weapon configuration file and populates the WeaponLibrary.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[string]WeaponDefinition)
	for _, def := range weaponDefs {
		if def.Variant == VariantPierce && def.MaxPierce < 1 {
			log.Printf("Weapon %s has max_pierce %d, clamping to 1", def.ID, def.MaxPierce)
			def.MaxPierce = 1
		}
		if def.Variant == VariantExplosive && def.ExplosionRadius <= 0 {
			return fmt.Errorf("weapon %s is EXPLOSIVE but has no explosion_radius", def.ID)
		}
		WeaponLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponLibrary))
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d enemy definitions\n", len(EnemyLibrary))
	return nil
}

// LoadWaveDefinitions reads the wave configuration file and populates the WaveLibrary.
func LoadWaveDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waveDefs []WaveDefinition
	if err := json.Unmarshal(file, &waveDefs); err != nil {
		return fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}

	WaveLibrary = make(map[int]WaveDefinition)
	LastDefinedWave = 0
	for _, def := range waveDefs {
		if len(def.Entries) == 0 {
			return fmt.Errorf("wave %d has no spawn entries", def.Wave)
		}
		WaveLibrary[def.Wave] = def
		if def.Wave > LastDefinedWave {
			LastDefinedWave = def.Wave
		}
	}

	fmt.Printf("Loaded %d wave definitions\n", len(WaveLibrary))
	return nil
}

// LoadAll loads every definition library from the given data directory.
func LoadAll(dir string) error {
	if err := LoadWeaponDefinitions(filepath.Join(dir, "weapons.json")); err != nil {
		return err
	}
	if err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.json")); err != nil {
		return err
	}
	if err := LoadWaveDefinitions(filepath.Join(dir, "waves.json")); err != nil {
		return err
	}
	return nil
}
