package puzzle

import (
	"errors"
	"fmt"
)

// Board symbols used by puzzle files and stored puzzle definitions.
// They replace the original numeric cell encoding; the numbers carried
// no meaning beyond being tags.
const (
	symFree       = '.'
	symObstacle   = '#'
	symColorTile  = 'C'
	symDoorSwitch = 'S'
	symDoorCell   = 'D'
)

// ParseRows builds a Grid from a symbol-row board description plus the
// agent specs. Every row must have the same length; exactly one color
// tile and one door switch must appear.
func ParseRows(rows []string, agents []AgentSpec) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty board")
	}

	cfg := Config{
		Width:  len(rows[0]),
		Height: len(rows),
		Agents: agents,
	}

	var tiles, switches int
	for y, row := range rows {
		if len(row) != cfg.Width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), cfg.Width)
		}
		for x, sym := range []byte(row) {
			p := Position{X: x, Y: y}
			switch sym {
			case symFree:
			case symObstacle:
				cfg.Obstacles = append(cfg.Obstacles, p)
			case symDoorCell:
				cfg.DoorBlocked = append(cfg.DoorBlocked, p)
			case symColorTile:
				cfg.ColorTile = p
				tiles++
			case symDoorSwitch:
				cfg.DoorSwitch = p
				switches++
			default:
				return nil, fmt.Errorf("unknown board symbol %q at (%d,%d)", sym, x, y)
			}
		}
	}
	if tiles != 1 {
		return nil, fmt.Errorf("board needs exactly one color tile, found %d", tiles)
	}
	if switches != 1 {
		return nil, fmt.Errorf("board needs exactly one door switch, found %d", switches)
	}

	return New(cfg)
}
