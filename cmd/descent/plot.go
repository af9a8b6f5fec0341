package main

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeTracePlot renders the per-iteration objective values as a line
// chart. The y axis switches to log scale when every value is positive,
// which is where convergence rates are actually visible.
func writeTracePlot(path, problem string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("no iterations recorded")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Gradient descent on %s", problem)
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "f(x)"

	logScale := true
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
		if v <= 0 || math.IsInf(v, 0) {
			logScale = false
		}
	}
	if logScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
