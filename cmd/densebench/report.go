package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
)

// renderTable prints the sweep results as a styled summary table.
func renderTable(w io.Writer, results []result) {
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return headerRowStyle
			}
			if row%2 == 0 {
				return oddRowStyle
			}
			return evenRowStyle
		}).
		Headers("ALGORITHM", "N", "BEST TIME", "THROUGHPUT")
	for _, r := range results {
		t.Row(r.algo,
			humanize.Comma(int64(r.n)),
			r.best.String(),
			humanize.SIWithDigits(r.flops, 2, "FLOP/s"))
	}
	fmt.Fprintln(w, t.Render())
}

// writeCSV mirrors the table into a machine-readable file.
func writeCSV(path string, results []result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"algo", "n", "best_ns", "flops"}); err != nil {
		return errors.Wrapf(err, "writing header to %q", path)
	}
	for _, r := range results {
		record := []string{
			r.algo,
			strconv.Itoa(r.n),
			strconv.FormatInt(r.best.Nanoseconds(), 10),
			strconv.FormatFloat(r.flops, 'g', -1, 64),
		}
		if err = w.Write(record); err != nil {
			return errors.Wrapf(err, "writing row to %q", path)
		}
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "flushing %q", path)
}
