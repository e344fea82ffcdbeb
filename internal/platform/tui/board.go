package tui

import (
	"github.com/vovakirdan/roadjump/internal/road"
	"github.com/vovakirdan/roadjump/internal/run"
)

// tileSprite is a road tile placed on the terminal board.
type tileSprite struct {
	kind      road.BlockKind
	x         float64 // Left edge in columns
	discarded bool
}

func (t *tileSprite) SetPosition(x, _, _ float64) { t.x = x }

func (t *tileSprite) Discard() { t.discarded = true }

// tileSpawner creates sprites for solid tiles; gaps have no visual.
type tileSpawner struct {
	sprites []*tileSprite
}

func (s *tileSpawner) Spawn(kind road.BlockKind) (run.Renderable, bool) {
	if kind != road.Solid {
		return nil, false
	}
	sp := &tileSprite{kind: kind}
	s.sprites = append(s.sprites, sp)
	return sp, true
}

// Live returns the sprites of the current road, dropping discarded ones.
func (s *tileSpawner) Live() []*tileSprite {
	live := s.sprites[:0]
	for _, sp := range s.sprites {
		if !sp.discarded {
			live = append(live, sp)
		}
	}
	s.sprites = live
	return live
}

// stepLabel is the HUD step counter.
type stepLabel struct {
	text string
}

func (l *stepLabel) SetStepCount(text string) { l.text = text }

// startMenu is the start prompt shown in Init.
type startMenu struct {
	visible bool
}

func (m *startMenu) SetVisible(visible bool) { m.visible = visible }
