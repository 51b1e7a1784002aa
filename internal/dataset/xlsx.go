package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pable/go-snooker-metrics/internal/model"
)

// ReadWorkbook loads a dataset from a single XLSX workbook holding the four
// relations as sheets named players, tournaments, matches, and scores, each
// with a header row. The same validation as the CSV path applies.
func ReadWorkbook(path string) (model.Relations, error) {
	var b builder

	f, err := excelize.OpenFile(path)
	if err != nil {
		return b.rel, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string]string) // lower-cased name -> actual name
	for _, s := range f.GetSheetList() {
		sheets[strings.ToLower(s)] = s
	}

	for _, name := range []string{playersName, tournamentsName, matchesName, scoresName} {
		sheet, ok := sheets[name]
		if !ok {
			return b.rel, fmt.Errorf("workbook missing sheet %q", name)
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return b.rel, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			return b.rel, fmt.Errorf("sheet %q is empty", sheet)
		}
		header := newHeader(rows[0])
		if err := checkHeader(name, header); err != nil {
			return b.rel, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		each := b.handler(name)
		for n, fields := range rows[1:] {
			if len(fields) == 0 {
				continue // exported workbooks often carry trailing blank rows
			}
			if err := each(record{header: header, fields: fields}); err != nil {
				return b.rel, fmt.Errorf("sheet %q: row %d: %w", sheet, n+2, err)
			}
		}
	}

	if err := Validate(b.rel); err != nil {
		return b.rel, err
	}
	return b.rel, nil
}
