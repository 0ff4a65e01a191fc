package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pulopulo/constants"
	"github.com/lixenwraith/pulopulo/engine"
)

// TerminalSurface draws on a tcell screen
type TerminalSurface struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalSurface wraps screen; a nil screen is created from the
// environment on Init
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{
		screen: screen,
		style:  tcell.StyleDefault.Background(Background),
	}
}

// Screen returns the underlying screen, nil before Init when none was given
func (s *TerminalSurface) Screen() tcell.Screen {
	return s.screen
}

// Init acquires the terminal
func (s *TerminalSurface) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.SetStyle(s.style)
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal
func (s *TerminalSurface) Fini() {
	if s.screen != nil {
		s.screen.Fini()
	}
}

func (s *TerminalSurface) Clear() {
	s.screen.Clear()
}

// DrawBorder draws the board frame spanning columns 0..width and rows 0..height
func (s *TerminalSurface) DrawBorder(width, height int) {
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			var ch rune
			switch {
			case y == 0 && x == 0:
				ch = constants.BorderTopLeft
			case y == 0 && x == width:
				ch = constants.BorderTopRight
			case y == height && x == 0:
				ch = constants.BorderBottomLeft
			case y == height && x == width:
				ch = constants.BorderBottomRight
			case y == 0 || y == height:
				ch = constants.BorderHorizontal
			case x == 0 || x == width:
				ch = constants.BorderVertical
			default:
				continue
			}
			s.screen.SetContent(x, y, ch, nil, s.style)
		}
	}
}

func (s *TerminalSurface) DrawGlyph(x, y int, color engine.Color, glyph rune) {
	s.screen.SetContent(x, y, glyph, nil, PuyoStyle(color))
}

func (s *TerminalSurface) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, s.style)
	}
}

// MoveCursor parks the terminal cursor
func (s *TerminalSurface) MoveCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

func (s *TerminalSurface) Show() {
	s.screen.Show()
}

func (s *TerminalSurface) Sync() {
	s.screen.Sync()
}
