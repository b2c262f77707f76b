package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-canvas/internal/core"
)

// FromEbiten returns the key name the input adapter understands.
// Ebiten names arrows "ArrowUp" and so on and letters "W", which
// input.Translate accepts case-insensitively.
func FromEbiten(k ebiten.Key) string {
	return k.String()
}

// actionKeys maps control keys to actions. Everything else is offered to
// the input listener as a direction.
var actionKeys = map[ebiten.Key]core.Action{
	ebiten.KeyEnter:  core.ActionStart,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeySpace:  core.ActionPause,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyQ:      core.ActionQuit,
	ebiten.KeyEscape: core.ActionQuit,
}
