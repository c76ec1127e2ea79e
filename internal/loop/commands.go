package loop

import (
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
)

// heldKeys is the movement state last forwarded to the game.
type heldKeys struct {
	up   bool
	down bool
}

// translate converts a frame's input into game commands. Press and release
// commands are emitted on edges of the held state, since terminals only
// report key presses.
func translate(in input.Input, held *heldKeys) []game.Command {
	var cmds []game.Command

	if in.Up != held.up {
		if in.Up {
			cmds = append(cmds, game.PressUp)
		} else {
			cmds = append(cmds, game.ReleaseUp)
		}
		held.up = in.Up
	}
	if in.Down != held.down {
		if in.Down {
			cmds = append(cmds, game.PressDown)
		} else {
			cmds = append(cmds, game.ReleaseDown)
		}
		held.down = in.Down
	}

	for _, k := range in.Keys {
		if cmd, ok := commandFor(k); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func commandFor(k input.Key) (game.Command, bool) {
	switch k {
	case input.KeySpace:
		return game.ToggleRunOrRestart, true
	case input.KeyRestart:
		return game.Restart, true
	case input.KeySound:
		return game.ToggleSound, true
	case input.KeyStrong:
		return game.SetCPUDifficulty(game.DifficultyStrong), true
	case input.KeyWeak:
		return game.SetCPUDifficulty(game.DifficultyWeak), true
	case input.KeyNarrow:
		return game.SetPaddleSize(game.PaddleNarrow), true
	case input.KeyNormal:
		return game.SetPaddleSize(game.PaddleNormal), true
	case input.KeyWide:
		return game.SetPaddleSize(game.PaddleWide), true
	}
	return game.Command{}, false
}
