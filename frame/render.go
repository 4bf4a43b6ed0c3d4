// SPDX-License-Identifier: MIT

package frame

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the frame as a light-style table: a label column followed by
// the feature columns. Intended for diagnostics and examples.
func (f *Frame) Render(w io.Writer) error {
	_, err := io.WriteString(w, f.String()+"\n")
	return err
}

// String renders the frame with go-pretty.
func (f *Frame) String() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(f.columns)+1)
	header = append(header, "")
	for _, name := range f.columns {
		header = append(header, name)
	}
	t.AppendHeader(header)

	c := len(f.columns)
	var row table.Row
	f.data.Do(func(i, j int, v float64) bool {
		if j == 0 {
			row = table.Row{f.index[i]}
		}
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		if j == c-1 {
			t.AppendRow(row)
		}
		return true
	})

	return t.Render()
}
