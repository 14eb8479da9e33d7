// Package udf exposes the calculation packages as spreadsheet style
// functions that never panic and always return a tagged Result.
package udf

import (
	"strconv"
	"strings"
)

// Error markers prefix the text of a failed Result. Each function keeps
// the marker its callers already match on.
const (
	MarkerError     = "Error: "
	MarkerCellError = "#ERROR: "
)

// Result is a scalar, a list, or an error.
type Result struct {
	Value  float64
	Values []float64
	Err    error
	Marker string
}

func (r Result) IsError() bool {
	return r.Err != nil
}

// String renders the result the way a cell displays it.
func (r Result) String() string {
	if r.Err != nil {
		return r.Marker + r.Err.Error()
	}

	if r.Values != nil {
		ss := make([]string, 0, len(r.Values))
		for _, v := range r.Values {
			ss = append(ss, strconv.FormatFloat(v, 'g', -1, 64))
		}

		return strings.Join(ss, ", ")
	}

	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// Any returns a float64, a []any column or the error string.
func (r Result) Any() any {
	if r.Err != nil {
		return r.String()
	}

	if r.Values != nil {
		vs := make([]any, 0, len(r.Values))
		for _, v := range r.Values {
			vs = append(vs, v)
		}

		return vs
	}

	return r.Value
}

// Func computes a float64 or a []float64.
type Func func(ctx *Context, args Args) (any, error)

type Function struct {
	Name    string
	Marker  string
	MinArgs int
	MaxArgs int
	Usage   string
	Fn      Func
}
