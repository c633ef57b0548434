package game

import "github.com/gdamore/tcell/v2"

// Command is a player action decoded from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdMoveNorth
	CmdMoveSouth
	CmdMoveWest
	CmdMoveEast
	CmdDescend
	CmdToggleOverview
)

// commandForKey maps a key event to a command.
func commandForKey(ev *tcell.EventKey) Command {
	return commandFor(ev.Key(), ev.Rune())
}

// commandFor maps a key and rune to a command. Arrow keys and vi keys move.
func commandFor(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		return CmdMoveNorth
	case tcell.KeyDown:
		return CmdMoveSouth
	case tcell.KeyLeft:
		return CmdMoveWest
	case tcell.KeyRight:
		return CmdMoveEast
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return CmdQuit
		case 'k':
			return CmdMoveNorth
		case 'j':
			return CmdMoveSouth
		case 'h':
			return CmdMoveWest
		case 'l':
			return CmdMoveEast
		case '>':
			return CmdDescend
		case 'm', 'M':
			return CmdToggleOverview
		}
	}
	return CmdNone
}
