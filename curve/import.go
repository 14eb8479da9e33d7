package curve

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// ColumnIndex turns "A", "b", "AA" or a 1-based number into a 0-based
// column index.
func ColumnIndex(col string) (int, error) {
	col = strings.TrimSpace(col)

	if n, err := cast.ToIntE(col); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
		}

		return n - 1, nil
	}

	n, err := excelize.ColumnNameToNumber(strings.ToUpper(col))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
	}

	return n - 1, nil
}

// ImportXLSX reads an X/Y table from a worksheet. The first sheet is used
// unless WithSheet names another.
func ImportXLSX(file string, xCol, yCol int, option ...Option) ([]interp.Point, error) {
	opts := optionNew(option...)

	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	sheet := opts.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}

		sheet = sheets[0]
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	return pointsFromRows(rows, xCol, yCol, opts)
}

// ImportCSV reads an X/Y table from comma separated text.
func ImportCSV(r io.Reader, xCol, yCol int, option ...Option) ([]interp.Point, error) {
	opts := optionNew(option...)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	return pointsFromRows(rows, xCol, yCol, opts)
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[col])
}

// pointsFromRows skips opts.skipRows rows, then treats one non-numeric row
// as a header. The table ends at the first row with a blank X or Y.
func pointsFromRows(rows [][]string, xCol, yCol int, opts *Options) (ps []interp.Point, err error) {
	if xCol < 0 || yCol < 0 || xCol == yCol {
		err = fmt.Errorf("%w: x %d, y %d", ErrInvalidColumn, xCol, yCol)

		return
	}

	headerAllowed := !opts.withoutHead

	for idx := opts.skipRows; idx < len(rows); idx++ {
		xs, ys := cell(rows[idx], xCol), cell(rows[idx], yCol)
		if xs == "" || ys == "" {
			break
		}

		x, errX := cast.ToFloat64E(xs)
		y, errY := cast.ToFloat64E(ys)

		if errX != nil || errY != nil {
			if headerAllowed && len(ps) == 0 {
				headerAllowed = false

				continue
			}

			err = fmt.Errorf("%w: row %d (%q, %q)", ErrBadCell, idx+1, xs, ys)

			return
		}

		headerAllowed = false

		ps = append(ps, interp.Point{X: x, Y: y})
	}

	if len(ps) == 0 {
		err = ErrNoPoints
	}

	return
}
