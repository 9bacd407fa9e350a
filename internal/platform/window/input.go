package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// keyboard samples the keyboard once per tick. Jump and duck follow the
// absolute key state, so holding Down keeps ducking; lane changes fire once
// per key press.
type keyboard struct{}

// Poll implements engine.InputSource.
func (keyboard) Poll() core.Command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		return core.CommandLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		return core.CommandRight
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp), ebiten.IsKeyPressed(ebiten.KeySpace), ebiten.IsKeyPressed(ebiten.KeyW):
		return core.CommandUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown), ebiten.IsKeyPressed(ebiten.KeyS):
		return core.CommandDown
	}
	return core.CommandNone
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func restartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}
