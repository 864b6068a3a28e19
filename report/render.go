package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/meenmo/yieldcurve/utils"
)

const separator = "----------------------------------------------------"

// WriteTable renders the fixed-width comparison table. The table is built in
// memory first so w receives all of it or nothing.
func WriteTable(w io.Writer, res *Result) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Evaluation Date: %s\n", utils.LongDate(res.EvaluationDate))
	fmt.Fprintln(&buf, separator)

	header := fmt.Sprintf("%-12s", "Maturity")
	for i, m := range res.Methods {
		if i > 0 {
			header += " "
		}
		header += "| " + m.Label()
	}
	fmt.Fprintln(&buf, header)
	fmt.Fprintln(&buf, separator)

	for _, row := range res.Rows {
		line := fmt.Sprintf("%-11s", row.Tenor)
		for _, r := range row.Rates {
			line += fmt.Sprintf(" |  %-10.5f", r)
		}
		fmt.Fprintln(&buf, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(&buf, separator)

	_, err := w.Write(buf.Bytes())
	return err
}

type jsonRow struct {
	Maturity string             `json:"maturity"`
	Date     string             `json:"date"`
	Time     float64            `json:"time"`
	Rates    map[string]float64 `json:"rates"`
}

type jsonResult struct {
	EvaluationDate string    `json:"evaluation_date"`
	Compounding    string    `json:"compounding"`
	Rows           []jsonRow `json:"rows"`
}

// WriteJSON renders the result as a single JSON object keyed by method name.
func WriteJSON(w io.Writer, res *Result) error {
	out := jsonResult{
		EvaluationDate: res.EvaluationDate.Format(utils.DateLayout),
		Compounding:    res.Compounding.String(),
		Rows:           make([]jsonRow, 0, len(res.Rows)),
	}
	for _, row := range res.Rows {
		rates := make(map[string]float64, len(row.Rates))
		for i, r := range row.Rates {
			rates[res.Methods[i].String()] = r
		}
		out.Rows = append(out.Rows, jsonRow{
			Maturity: row.Tenor.String(),
			Date:     row.Maturity.Format(utils.DateLayout),
			Time:     row.Time,
			Rates:    rates,
		})
	}

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
