package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// result is tabular command output with an optional structured form for JSON.
type result struct {
	header []string
	rows   [][]string
	data   any // Marshalled for json output; rows are used when nil.
}

func render(w io.Writer, format string, r result) error {
	switch format {
	case "json":
		return renderJSON(w, r)
	case "csv":
		return renderCSV(w, r)
	default:
		return renderTable(w, r)
	}
}

func renderTable(w io.Writer, r result) error {
	if len(r.rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(r.header))
	for i, h := range r.header {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range r.rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, r result) error {
	data := r.data
	if data == nil {
		records := make([]map[string]string, len(r.rows))
		for i, row := range r.rows {
			rec := make(map[string]string, len(r.header))
			for j, h := range r.header {
				rec[strings.ToLower(h)] = row[j]
			}
			records[i] = rec
		}
		data = records
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func renderCSV(w io.Writer, r result) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(r.header))
	for i, h := range r.header {
		header[i] = strings.ToLower(h)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(r.rows); err != nil {
		return err
	}
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		for _, field := range strings.Split(a, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", field, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
