package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/delve/dungeon"
)

// Styles used for map cells and the status line.
var (
	styleWall = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	styleFloor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	styleRoomFloor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleCorridor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("137"))

	styleDoor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("172")).
			Bold(true)

	styleStairs = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true)

	stylePath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	stylePlayer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	styleObject = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))

	styleRemembered = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))

	styleUnknown = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// cellKind identifies how a cell is styled.
type cellKind int

const (
	kindPlain cellKind = iota
	kindWall
	kindFloor
	kindRoomFloor
	kindCorridor
	kindDoor
	kindStairs
	kindPath
	kindPlayer
	kindObject
	kindRemembered
	kindUnknown
	kindHidden
)

// tileKind classifies a dungeon tile code.
func tileKind(code int) cellKind {
	switch code {
	case dungeon.Wall:
		return kindWall
	case dungeon.Floor:
		return kindFloor
	case dungeon.RoomFloor:
		return kindRoomFloor
	case dungeon.Corridor:
		return kindCorridor
	case dungeon.Door:
		return kindDoor
	case dungeon.Entrance, dungeon.Exit:
		return kindStairs
	default:
		return kindUnknown
	}
}

func (k cellKind) style() (lipgloss.Style, bool) {
	switch k {
	case kindWall:
		return styleWall, true
	case kindFloor:
		return styleFloor, true
	case kindRoomFloor:
		return styleRoomFloor, true
	case kindCorridor:
		return styleCorridor, true
	case kindDoor:
		return styleDoor, true
	case kindStairs:
		return styleStairs, true
	case kindPath:
		return stylePath, true
	case kindPlayer:
		return stylePlayer, true
	case kindObject:
		return styleObject, true
	case kindRemembered:
		return styleRemembered, true
	case kindUnknown:
		return styleUnknown, true
	}
	return lipgloss.Style{}, false
}
