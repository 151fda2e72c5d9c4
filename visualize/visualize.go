// SPDX-License-Identifier: MIT
//
// Package visualize renders a completed benchmark run's recorded colour
// history as a simple line chart (component N, an optional domain-stack
// addition). The CLI host plots colours used against the ordinal of each
// recorded snapshot, for every strategy alike. It uses
// gonum.org/v1/plot, the only plotting library anywhere in the retrieved
// corpus (gonum-gonum's fit package plots curve fits the same way: a
// plot.New plus one plotter.NewLine series, p.Add, p.Save).
//
// This package is invoked only when the CLI host's --chart-path flag is
// supplied (§11.D); the dispatcher and every strategy package remain free
// of any rendering dependency.
package visualize

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/chromatic/internal/xerr"
)

// Point is one (x, y) sample of a chart series. The CLI host sets x to the
// 0-based ordinal of a recorded snapshot and y to the colours used in it.
type Point struct {
	X float64
	Y float64
}

// chartWidth and chartHeight match the teacher corpus's own 10cm squares.
const (
	chartWidth  = 10 * vg.Centimeter
	chartHeight = 10 * vg.Centimeter
)

// SaveLineChart renders series as a single line plot titled title, with
// axis labels xLabel/yLabel, to path. The output format is inferred from
// path's extension (plot.Save's own convention; ".png" is the expected
// case here).
//
// Errors (wrapping xerr.ErrIOFailure): constructing the plot, the line
// series, or saving the file all failed.
func SaveLineChart(series []Point, title, xLabel, yLabel, path string) error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("visualize: constructing plot: %w", xerr.ErrIOFailure)
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(series))
	for i, s := range series {
		pts[i].X = s.X
		pts[i].Y = s.Y
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("visualize: building line series: %w", xerr.ErrIOFailure)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("visualize: saving %s: %w", path, xerr.ErrIOFailure)
	}
	return nil
}
