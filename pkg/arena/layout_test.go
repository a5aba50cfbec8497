// pkg/arena/layout_test.go
package arena

import (
	"math"
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
)

func TestPylonLayoutIsReproducibleForASeed(t *testing.T) {
	first := PylonLayout(utils.NewPRNGService(99))
	second := PylonLayout(utils.NewPRNGService(99))

	if len(first) != len(second) {
		t.Fatalf("same seed produced different pylon counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pylon %d differs between identically seeded layouts: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPylonLayoutKeepsGapsAndWallClearance(t *testing.T) {
	pylons := PylonLayout(utils.NewPRNGService(7))

	if len(pylons) != config.BarrierCount {
		t.Fatalf("expected %d pylons on a roomy arena, got %d", config.BarrierCount, len(pylons))
	}

	minX, minY, maxX, maxY := config.ArenaBounds()
	margin := config.BarrierRadius * 2
	spawnX, spawnY := PlayerSpawn()

	for i, p := range pylons {
		if p.Radius != config.BarrierRadius {
			t.Fatalf("pylon %d has radius %f, expected %f", i, p.Radius, config.BarrierRadius)
		}
		if p.X < minX+margin || p.X > maxX-margin || p.Y < minY+margin || p.Y > maxY-margin {
			t.Fatalf("pylon %d at (%f, %f) is too close to the walls", i, p.X, p.Y)
		}
		if math.Hypot(p.X-spawnX, p.Y-spawnY) < config.BarrierMinGap {
			t.Fatalf("pylon %d crowds the player spawn", i)
		}
		for j := i + 1; j < len(pylons); j++ {
			if math.Hypot(p.X-pylons[j].X, p.Y-pylons[j].Y) < config.BarrierMinGap {
				t.Fatalf("pylons %d and %d are closer than the minimum gap", i, j)
			}
		}
	}
}

func TestPlayerSpawnIsTheArenaCenter(t *testing.T) {
	x, y := PlayerSpawn()
	if x != float64(config.ScreenWidth)/2 || y != float64(config.ScreenHeight)/2 {
		t.Fatalf("expected spawn at the screen center, got (%f, %f)", x, y)
	}
}
