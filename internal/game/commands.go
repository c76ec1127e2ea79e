package game

// CommandKind identifies an input command.
type CommandKind int

const (
	CmdPressUp CommandKind = iota
	CmdReleaseUp
	CmdPressDown
	CmdReleaseDown
	CmdToggleRun // Start, pause, resume, or restart after a win
	CmdRestart
	CmdToggleSound
	CmdSetDifficulty
	CmdSetPaddleSize
)

func (k CommandKind) String() string {
	switch k {
	case CmdPressUp:
		return "press_up"
	case CmdReleaseUp:
		return "release_up"
	case CmdPressDown:
		return "press_down"
	case CmdReleaseDown:
		return "release_down"
	case CmdToggleRun:
		return "toggle_run"
	case CmdRestart:
		return "restart"
	case CmdToggleSound:
		return "toggle_sound"
	case CmdSetDifficulty:
		return "set_difficulty"
	case CmdSetPaddleSize:
		return "set_paddle_size"
	default:
		return "unknown"
	}
}

// Command is a discrete input translated by a frontend. Difficulty and
// PaddleSize are only read for their respective kinds.
type Command struct {
	Kind       CommandKind
	Difficulty Difficulty
	PaddleSize PaddleSize
}

// Commands without arguments.
var (
	PressUp            = Command{Kind: CmdPressUp}
	ReleaseUp          = Command{Kind: CmdReleaseUp}
	PressDown          = Command{Kind: CmdPressDown}
	ReleaseDown        = Command{Kind: CmdReleaseDown}
	ToggleRunOrRestart = Command{Kind: CmdToggleRun}
	Restart            = Command{Kind: CmdRestart}
	ToggleSound        = Command{Kind: CmdToggleSound}
)

// SetCPUDifficulty returns a command selecting the CPU difficulty.
func SetCPUDifficulty(d Difficulty) Command {
	return Command{Kind: CmdSetDifficulty, Difficulty: d}
}

// SetPaddleSize returns a command selecting the human paddle size.
func SetPaddleSize(s PaddleSize) Command {
	return Command{Kind: CmdSetPaddleSize, PaddleSize: s}
}
