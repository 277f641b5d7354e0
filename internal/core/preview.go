package core

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// FormatPreview writes the first n rows of d to w as an aligned table,
// prefixed with each row's position.
func FormatPreview(w io.Writer, d *Dataset, n int) error {
	head := d.Head(n)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "\t%s\n", strings.Join(head.Names(), "\t"))

	cells := make([]string, head.Width())
	for r := 0; r < head.Len(); r++ {
		for c, v := range head.Row(r) {
			if v.IsMissing() {
				cells[c] = "NaN"
			} else {
				cells[c] = v.String()
			}
		}
		fmt.Fprintf(tw, "%d\t%s\n", r, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
