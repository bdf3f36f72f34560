package entity

import (
	"github.com/samdwyer/slugdungeon/internal/gamedata"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// WeaponTargets returns every position reachable by a weapon of the given
// kind from origin: 1..range steps along each of the four orthogonal
// directions, 4*range positions in total. Range is unobstructed by terrain;
// bounds checking is the caller's job. A range of 0 yields no targets.
func WeaponTargets(def *gamedata.WeaponDef, origin world.Position) []world.Position {
	targets := make([]world.Position, 0, 4*def.Range)
	for i := 1; i <= def.Range; i++ {
		targets = append(targets,
			world.Position{Row: origin.Row + i, Col: origin.Col}, // down
			world.Position{Row: origin.Row - i, Col: origin.Col}, // up
			world.Position{Row: origin.Row, Col: origin.Col + i}, // right
			world.Position{Row: origin.Row, Col: origin.Col - i}, // left
		)
	}
	return targets
}

// ChooseMove picks a destination from candidates according to the behavior.
// Stationary slugs stay put. Seekers minimize and fleers maximize squared
// Euclidean distance to the player, ties broken by first occurrence in the
// candidate list. An empty candidate list always yields current.
func ChooseMove(behavior gamedata.Behavior, candidates []world.Position, current, player world.Position) world.Position {
	if len(candidates) == 0 {
		return current
	}
	switch behavior {
	case gamedata.BehaviorStationary:
		return current
	case gamedata.BehaviorSeek:
		return pickByDistance(candidates, player, func(d, best int) bool { return d < best })
	case gamedata.BehaviorFlee:
		return pickByDistance(candidates, player, func(d, best int) bool { return d > best })
	default:
		return current
	}
}

func pickByDistance(candidates []world.Position, player world.Position, better func(d, best int) bool) world.Position {
	chosen := candidates[0]
	best := chosen.SquaredDistance(player)
	for _, candidate := range candidates[1:] {
		if d := candidate.SquaredDistance(player); better(d, best) {
			chosen, best = candidate, d
		}
	}
	return chosen
}
