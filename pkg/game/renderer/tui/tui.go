// Package tui renders height grids in the terminal using coloured half-block
// characters, two grid rows per text line.
package tui

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"heightmap/pkg/engine/input"
	"heightmap/pkg/engine/terminal"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/renderer"
	"heightmap/pkg/game/state"
)

// HalfBlock draws the upper cell in the foreground colour and the lower cell
// in the background colour.
const HalfBlock = "▀"

// ReservedLines are the text lines kept free for everything but the map:
// title + blank (2), status + three help lines (4), blank + messages
// header (2), messages (5), prompt (1).
const ReservedLines = 14

// Minimum map size in grid cells
const (
	ViewportMinRows = 3
	ViewportMinCols = 3
)

// TUIRenderer implements the Renderer interface for terminal output
type TUIRenderer struct {
	out io.Writer

	// viewport overrides the terminal size when non-zero
	viewportRows, viewportCols int

	colorTitle  color.Style
	colorKey    color.Style
	colorSubtle color.Style
	colorDenied color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: w}
	t.Init()
	return t
}

// Init initializes the TUI color styles
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorKey = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// SetViewport fixes the map area to rows×cols grid cells instead of
// following the terminal size. Zero values restore the default.
func (t *TUIRenderer) SetViewport(rows, cols int) {
	t.viewportRows, t.viewportCols = rows, cols
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns how many grid rows and columns fit in the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	if t.viewportRows > 0 && t.viewportCols > 0 {
		return t.viewportRows, t.viewportCols
	}

	cols, rows = terminal.MapViewport(ReservedLines)
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	return rows, cols
}

// RenderFrame renders the title, map, status bar and messages pane
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	var b strings.Builder

	b.WriteString(t.colorTitle.Sprint(i18n.T("APP_TITLE")))
	b.WriteString("\n\n")

	t.writeMap(&b, s)
	t.writeStatusBar(&b, s)
	t.writeMessagesPane(&b, s)

	b.WriteString("\n> ")
	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) writeMap(b *strings.Builder, s *state.Session) {
	grid := s.Grid()
	if grid == nil {
		b.WriteString(t.colorDenied.Sprint(fmt.Sprint(s.Err())))
		b.WriteString("\n")
		return
	}

	rows, cols := t.GetViewportSize()
	dim := renderer.Fit(grid.Side(), cols, rows)
	img := renderer.Rasterize(grid, s.Settings().Palette, dim, dim)
	b.WriteString(HalfBlocks(img))
}

// HalfBlocks converts img to text, packing two pixel rows into each line.
// An odd last row is drawn on the terminal's own background.
func HalfBlocks(img *image.RGBA) string {
	var b strings.Builder
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			up := img.RGBAAt(x, y)
			fg := color.RGB(up.R, up.G, up.B)

			if y+1 < bounds.Max.Y {
				lo := img.RGBAAt(x, y+1)
				b.WriteString(color.NewRGBStyle(fg, color.RGB(lo.R, lo.G, lo.B, true)).Sprint(HalfBlock))
			} else {
				b.WriteString(color.NewRGBStyle(fg).Sprint(HalfBlock))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (t *TUIRenderer) writeStatusBar(b *strings.Builder, s *state.Session) {
	b.WriteString("\n")
	b.WriteString(renderer.StatusLine(s.Settings()))
	b.WriteString("\n")
	for _, line := range renderer.HelpLines(renderer.HelpWidth) {
		b.WriteString(t.FormatText(line))
		b.WriteString("\n")
	}
}

func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, s *state.Session) {
	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(i18n.T("MESSAGES")))
	b.WriteString("\n")
	for _, msg := range s.Messages() {
		b.WriteString("- ")
		b.WriteString(msg)
		b.WriteString("\n")
	}
}

// FormatText expands message markup, highlighting KEY{} spans
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.ExpandMarkup(msg, func(function, operand string) string {
		switch function {
		case "KEY":
			return t.colorKey.Sprint(operand)
		case "ERR":
			return t.colorDenied.Sprint(operand)
		default:
			return operand
		}
	})
}

// Run draws a frame, waits for a key press and applies it until the user quits
func (t *TUIRenderer) Run(s *state.Session, export renderer.ExportFunc) error {
	for {
		t.Clear()
		t.RenderFrame(s)

		in, err := input.ReadIntent()
		if err != nil {
			return err
		}
		if renderer.HandleIntent(s, in, export) {
			return nil
		}
	}
}
