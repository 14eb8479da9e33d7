package udf

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Args are the raw cell values of one call.
type Args []any

func isBlank(v any) bool {
	if v == nil {
		return true
	}

	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	return false
}

func (args Args) Has(idx int) bool {
	return idx < len(args) && !isBlank(args[idx])
}

func toFloat(v any) (float64, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v is not a number", ErrBadArg, v)
	}

	return f, nil
}

func (args Args) Float(idx int, name string) (float64, error) {
	if !args.Has(idx) {
		return 0, fmt.Errorf("%w: %s", ErrMissingArg, name)
	}

	f, err := toFloat(args[idx])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return f, nil
}

func (args Args) FloatOr(idx int, name string, def float64) (float64, error) {
	if !args.Has(idx) {
		return def, nil
	}

	return args.Float(idx, name)
}

func (args Args) StringOr(idx int, def string) string {
	if !args.Has(idx) {
		return def
	}

	return strings.TrimSpace(cast.ToString(args[idx]))
}

func (args Args) String(idx int, name string) (string, error) {
	if !args.Has(idx) {
		return "", fmt.Errorf("%w: %s", ErrMissingArg, name)
	}

	return args.StringOr(idx, ""), nil
}

// Floats flattens a range argument. Accepted shapes are []float64, a
// single row or column of cells, and comma separated text. Blank cells are
// skipped.
func (args Args) Floats(idx int, name string) ([]float64, error) {
	if !args.Has(idx) {
		return nil, fmt.Errorf("%w: %s", ErrMissingArg, name)
	}

	fs, err := toFloats(args[idx])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if len(fs) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrBadArg, name)
	}

	return fs, nil
}

func toFloats(v any) ([]float64, error) {
	switch vv := v.(type) {
	case []float64:
		return append([]float64{}, vv...), nil
	case []int:
		fs := make([]float64, 0, len(vv))
		for _, n := range vv {
			fs = append(fs, float64(n))
		}

		return fs, nil
	case []any:
		return cellsToFloats(vv)
	case []string:
		cells := make([]any, 0, len(vv))
		for _, s := range vv {
			cells = append(cells, s)
		}

		return cellsToFloats(cells)
	case [][]float64:
		cells := make([][]any, 0, len(vv))

		for _, row := range vv {
			cr := make([]any, 0, len(row))
			for _, f := range row {
				cr = append(cr, f)
			}

			cells = append(cells, cr)
		}

		return rangeToFloats(cells)
	case [][]any:
		return rangeToFloats(vv)
	case string:
		parts := strings.FieldsFunc(vv, func(r rune) bool {
			return r == ',' || r == ';'
		})

		cells := make([]any, 0, len(parts))
		for _, p := range parts {
			cells = append(cells, p)
		}

		return cellsToFloats(cells)
	}

	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}

	return []float64{f}, nil
}

func cellsToFloats(cells []any) (fs []float64, err error) {
	for _, c := range cells {
		if isBlank(c) {
			continue
		}

		var f float64

		if f, err = toFloat(c); err != nil {
			return
		}

		fs = append(fs, f)
	}

	return
}

// rangeToFloats accepts a range that is one row or one column wide.
func rangeToFloats(rows [][]any) ([]float64, error) {
	if len(rows) == 1 {
		return cellsToFloats(rows[0])
	}

	cells := make([]any, 0, len(rows))

	for _, row := range rows {
		switch len(row) {
		case 0:
			continue
		case 1:
			cells = append(cells, row[0])
		default:
			return nil, fmt.Errorf("%w: range must be a single row or column", ErrBadArg)
		}
	}

	return cellsToFloats(cells)
}
