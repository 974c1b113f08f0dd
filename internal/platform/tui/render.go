package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Pablify/Snake/internal/core"
	"github.com/Pablify/Snake/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// goldBlinkThreshold is the remaining-lifetime fraction below which gold
// food starts blinking.
const goldBlinkThreshold = 0.3

const helpLine = "arrows/wasd move  p pause  r restart  m sound  esc menu  q quit"

// Render draws one frame of the session into the screen buffer. blinkOn
// alternates across frames and drives the gold food blink.
func Render(s *core.Screen, snap game.Snapshot, blinkOn bool) {
	s.Clear()

	boardW := snap.GridW + 2
	boardH := snap.GridH + 2
	if s.Width() < boardW || s.Height() < boardH+2 {
		renderTooSmall(s, boardW, boardH+2)
		return
	}

	ox := (s.Width() - boardW) / 2
	oy := 1

	renderHUD(s, snap, ox, boardW)
	s.DrawBox(ox, oy, boardW, boardH)

	if snap.State != game.StateMenu {
		renderBoard(s, snap, ox+1, oy+1, blinkOn)
	}

	switch snap.State {
	case game.StateMenu:
		renderMenu(s, snap, ox, oy, boardW, boardH)
	case game.StatePaused:
		renderCenteredLines(s, oy+boardH/2-1, []string{"P A U S E D", "p or esc to resume"})
	case game.StateGameOver:
		renderGameOver(s, snap, oy+boardH/2-2)
	}

	s.DrawTextColored((s.Width()-len(helpLine))/2, oy+boardH, helpLine, core.ColorGray)
}

func renderHUD(s *core.Screen, snap game.Snapshot, ox, boardW int) {
	wrap := "off"
	if snap.Wrap {
		wrap = "on"
	}
	sound := "on"
	if snap.Muted {
		sound = "off"
	}
	left := fmt.Sprintf("SNAKE  %s  wrap:%s  sound:%s", snap.Mode, wrap, sound)
	right := fmt.Sprintf("score:%d  best:%d", snap.Score, snap.Best)

	s.DrawTextColored(ox, 0, left, core.ColorCyan)
	s.DrawTextColored(ox+boardW-len(right), 0, right, core.ColorWhite)
}

func renderBoard(s *core.Screen, snap game.Snapshot, ox, oy int, blinkOn bool) {
	for i, c := range snap.Snake {
		if i == 0 {
			s.SetColored(ox+c.X, oy+c.Y, 'O', core.ColorBrightGreen)
		} else {
			s.SetColored(ox+c.X, oy+c.Y, 'o', core.ColorGreen)
		}
	}

	f := snap.Food
	if f == nil {
		return
	}
	switch f.Kind {
	case game.KindGold:
		if f.Remaining < goldBlinkThreshold && !blinkOn {
			return
		}
		s.SetColored(ox+f.Pos.X, oy+f.Pos.Y, '$', core.ColorBrightYellow)
	default:
		s.SetColored(ox+f.Pos.X, oy+f.Pos.Y, '*', core.ColorRed)
	}
}

func renderMenu(s *core.Screen, snap game.Snapshot, ox, oy, boardW, boardH int) {
	items := snap.Menu.Items
	top := oy + (boardH-len(items)-2)/2

	s.DrawTextCentered(top-2, "S N A K E")

	for i, item := range items {
		line := item.Label
		if item.Value != "" {
			line = fmt.Sprintf("%s: < %s >", item.Label, item.Value)
		}
		x := (s.Width() - len(line)) / 2
		if i == snap.Menu.Index {
			s.DrawTextColored(x-2, top+i, "▸ "+line, core.ColorBrightYellow)
		} else {
			s.DrawText(x, top+i, line)
		}
	}

	best := fmt.Sprintf("best: %d", snap.Best)
	s.DrawTextColored((s.Width()-len(best))/2, top+len(items)+1, best, core.ColorGray)
}

func renderGameOver(s *core.Screen, snap game.Snapshot, top int) {
	lines := []string{
		fmt.Sprintf("G A M E  O V E R  (%s)", snap.GameOverReason),
		fmt.Sprintf("score: %d   best: %d", snap.Score, snap.Best),
		"r restart   esc menu",
	}
	renderCenteredLines(s, top, lines)
}

func renderCenteredLines(s *core.Screen, top int, lines []string) {
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		s.DrawTextColored((s.Width()-len(line))/2, top+i, line, color)
	}
}

func renderTooSmall(s *core.Screen, needW, needH int) {
	msg := fmt.Sprintf("Terminal too small: need %dx%d", needW, needH)
	y := s.Height() / 2
	x := (s.Width() - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	s.DrawTextColored(x, y, msg, core.ColorRed)
}
