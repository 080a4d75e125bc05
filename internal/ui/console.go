// Package ui renders the human-facing console output: questions, file
// confirmations, progress headings and the help/summary tables. Styling is
// dropped automatically when the writer is not a color terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette.
const (
	colorRed   = lipgloss.Color("#f55")
	colorGreen = lipgloss.Color("#5f5")
	colorGray  = lipgloss.Color("#888")
	colorBlue  = lipgloss.Color("#59f")
	colorPeach = lipgloss.Color("#fa8")
	colorPanel = lipgloss.Color("#141414")
)

// Tone selects the style of a table cell.
type Tone int

const (
	ToneMain Tone = iota
	ToneFaint
	ToneRed
	ToneAccent
)

// Cell is one styled table cell.
type Cell struct {
	Text string
	Tone Tone
}

// Console writes styled output to Out.
type Console struct {
	Out io.Writer
	r   *lipgloss.Renderer
}

// New creates a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{Out: out, r: lipgloss.NewRenderer(out)}
}

// Question styles a prompt question in red.
func (c *Console) Question(text string) string {
	return c.r.NewStyle().Foreground(colorRed).Render(text)
}

// Hint styles a secondary prompt fragment such as "[Y/n]: ".
func (c *Console) Hint(text string) string {
	return c.r.NewStyle().Foreground(colorGray).Render(text)
}

// Created reports a written file.
func (c *Console) Created(path string) {
	label := c.r.NewStyle().Foreground(colorGray).Render("Created file:")
	target := c.r.NewStyle().Foreground(colorGreen).Bold(true).Render(path)
	fmt.Fprintln(c.Out, label, target)
}

// Heading prints a bold green progress line.
func (c *Console) Heading(msg string) {
	fmt.Fprintln(c.Out, c.r.NewStyle().Foreground(colorGreen).Bold(true).Render(msg))
}

// Warn prints a warning line.
func (c *Console) Warn(msg string) {
	prefix := c.r.NewStyle().Foreground(colorRed).Bold(true).Render("warning:")
	fmt.Fprintln(c.Out, prefix, msg)
}

// Info prints an unstyled line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Table prints rows as a borderless table surrounded by blank lines. Every
// cell gets padding spaces on its left.
func (c *Console) Table(rows [][]Cell, padding int) {
	plain := make([][]string, len(rows))
	for i, row := range rows {
		plain[i] = make([]string, len(row))
		for j, cell := range row {
			plain[i][j] = cell.Text
		}
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := c.r.NewStyle().Background(colorPanel).PaddingLeft(padding)
			if row < 0 || row >= len(rows) || col >= len(rows[row]) {
				return s
			}
			return c.tone(s, rows[row][col].Tone)
		}).
		Rows(plain...)

	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, t.String())
	fmt.Fprintln(c.Out)
}

func (c *Console) tone(s lipgloss.Style, t Tone) lipgloss.Style {
	switch t {
	case ToneFaint:
		return s.Foreground(colorGray)
	case ToneRed:
		return s.Foreground(colorRed)
	case ToneAccent:
		return s.Foreground(colorPeach)
	default:
		return s.Foreground(colorBlue)
	}
}
