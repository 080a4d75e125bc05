package options

import (
	"io"

	"github.com/suf-labs/suf-gen/internal/ui"
)

// PrintHelp writes the usage table for name and every pair in table.
func PrintHelp(w io.Writer, name string, table Table) {
	cell := func(s string) ui.Cell { return ui.Cell{Text: s} }
	faint := func(s string) ui.Cell { return ui.Cell{Text: s, Tone: ui.ToneFaint} }
	empty := []ui.Cell{cell(""), cell(""), cell("")}

	rows := [][]ui.Cell{
		empty,
		empty,
		{faint("Usage:"), cell(""), cell("")},
		{{Text: name, Tone: ui.ToneAccent}, {Text: "NAME", Tone: ui.ToneRed}, cell("...ARGS")},
		empty,
		{faint("Arguments"), faint(""), cell("")},
		empty,
	}
	for _, p := range table {
		rows = append(rows, []ui.Cell{cell("--" + p.Long), cell("-" + p.Short), faint(p.Description)})
	}
	rows = append(rows, empty, empty)

	ui.New(w).Table(rows, 5)
}
