package generator

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/suf-labs/suf-gen/internal/ui"
)

const filesWritten = "%d files written to ./%s"

func init() {
	_ = message.Set(language.English, filesWritten,
		plural.Selectf(1, "%d",
			plural.One, "1 file written to ./%[2]s",
			plural.Other, "%[1]d files written to ./%[2]s",
		))
}

var printer = message.NewPrinter(language.English)

// Summary is what the closing message needs to know about a run.
type Summary struct {
	Name           string
	Suf            bool
	PackageManager string
	Files          int
}

// Finished prints the next-steps table and the file count.
func Finished(c *ui.Console, s Summary) {
	cell := func(text string) ui.Cell { return ui.Cell{Text: text, Tone: ui.ToneFaint} }
	empty := []ui.Cell{cell(""), cell(""), cell("")}
	row := func(cmd, msg string) []ui.Cell {
		return []ui.Cell{cell("run"), {Text: cmd, Tone: ui.ToneRed}, cell(msg)}
	}

	rows := [][]ui.Cell{empty}
	if s.Suf {
		rows = append(rows, row(s.PackageManager+" suf", "to init suf."))
	}
	rows = append(rows,
		row("cd "+s.Name, "to enter the project directory."),
		row(s.PackageManager+" start", "to start the project."),
		empty,
	)

	c.Table(rows, 5)
	c.Info(printer.Sprintf(filesWritten, s.Files, s.Name))
}
