// SPDX-License-Identifier: MIT

// Package report evaluates a set of quadrature rules over a set of
// partition counts and renders the results as a table.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/katalvlaran/quadrature/integrand"
	"github.com/katalvlaran/quadrature/quadrature"
)

// Row is one (method, n) evaluation. Err is set instead of Value when the
// rule rejected its arguments, e.g. Simpson with odd n.
type Row struct {
	Method   string
	N        int
	Value    float64
	Exact    float64
	HasExact bool
	AbsErr   float64
	Err      error
}

// Report is the outcome of one Run.
type Report struct {
	RunID     uuid.UUID
	Integrand string
	A, B      float64
	Rows      []Row
}

// Run evaluates every method for every n, in the given order. Argument
// failures of individual rules are kept on their Row; an unknown method
// name aborts the run.
func Run(methods []string, in integrand.Integrand, a, b float64, ns []int, opts ...quadrature.Option) (*Report, error) {
	rules := make([]quadrature.Integrator, len(methods))
	for i, name := range methods {
		m, err := quadrature.New(name, opts...)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		rules[i] = m
	}

	exact, exactErr := in.Exact(a, b)

	rep := &Report{
		RunID:     uuid.New(),
		Integrand: in.Name,
		A:         a,
		B:         b,
		Rows:      make([]Row, 0, len(methods)*len(ns)),
	}
	for i, rule := range rules {
		for _, n := range ns {
			row := Row{Method: methods[i], N: n}
			row.Value, row.Err = rule.Integrate(a, b, n, in.F)
			if row.Err == nil && exactErr == nil {
				row.Exact = exact
				row.HasExact = true
				row.AbsErr = math.Abs(row.Value - exact)
			}
			rep.Rows = append(rep.Rows, row)
		}
	}

	return rep, nil
}

// Failed counts rows carrying an error.
func (r *Report) Failed() int {
	var k int
	for _, row := range r.Rows {
		if row.Err != nil {
			k++
		}
	}
	return k
}

// WriteTable renders the rows as aligned columns.
func (r *Report) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# run %s: ∫ %s on [%g, %g]\n", r.RunID, r.Integrand, r.A, r.B); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tN\tVALUE\tEXACT\tABS ERR")
	for _, row := range r.Rows {
		if row.Err != nil {
			fmt.Fprintf(tw, "%s\t%d\terror: %v\t\t\n", row.Method, row.N, row.Err)
			continue
		}
		exact, absErr := "-", "-"
		if row.HasExact {
			exact = strconv.FormatFloat(row.Exact, 'f', 10, 64)
			absErr = strconv.FormatFloat(row.AbsErr, 'e', 3, 64)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.10f\t%s\t%s\n", row.Method, row.N, row.Value, exact, absErr)
	}

	return tw.Flush()
}
