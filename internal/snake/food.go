package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// FoodTick spawns one food object at a uniformly random cell.
// No occupancy check is made: food may land on the snake or on other food,
// and uneaten items accumulate.
func (g *Game) FoodTick() core.Position {
	p := core.Position{
		X: g.rng.Intn(g.cfg.Arena.Width),
		Y: g.rng.Intn(g.cfg.Arena.Height),
	}

	h := g.store.Create(core.KindFood)
	g.store.SetPosition(h, p)

	g.logger.Debug("food spawned", "pos", p, "round", g.round)
	return p
}

// FoodPositions returns the position of every live food object.
func (g *Game) FoodPositions() []core.Position {
	handles := g.store.Handles(core.KindFood)
	out := make([]core.Position, len(handles))
	for i, h := range handles {
		out[i] = g.store.Position(h)
	}
	return out
}
