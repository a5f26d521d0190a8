package heightmgr

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// tabWidth is the fixed expansion applied to tab characters before
// width calculation. Tabs become eight literal spaces, not stop-aligned
// columns; messages rarely contain tabs past column one.
const tabWidth = 8

// Measure reports how many display rows text needs at the given
// terminal width, and whether showing it requires overriding the
// region. echospace is the column budget available to a short message
// on the last screen row; a final line wider than it would collide
// with the prompt even when the total row count fits. regionHeight is
// the height the region has right now.
func Measure(text string, columns, echospace, regionHeight int) (rows int, override bool) {
	if columns <= 0 {
		return 1, false
	}
	text = ansi.Strip(text)
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))

	last := 0
	for _, line := range strings.Split(text, "\n") {
		w := runewidth.StringWidth(line)
		rows++
		if w > 0 {
			rows += (w - 1) / columns
			if w%columns == 0 {
				// A line exactly filling its rows still gets a wrap row.
				rows++
			}
		}
		last = w
	}

	remainder := last % columns
	override = remainder > echospace && rows >= regionHeight
	return rows, override
}
