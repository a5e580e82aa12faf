// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/danielhkuo/glasanje/models"
)

const (
	ChartWidth  = 400
	ChartHeight = 300
	ChartTitle  = "Rezultati glasanja"
)

// RenderPieChart writes a PNG pie chart of vote shares. Options without
// votes get no slice; with no votes at all a single placeholder slice is drawn.
func RenderPieChart(w io.Writer, options []models.Option) error {
	var values []chart.Value
	for _, o := range options {
		if o.Votes > 0 {
			values = append(values, chart.Value{Label: o.Name, Value: float64(o.Votes)})
		}
	}
	if len(values) == 0 {
		values = []chart.Value{{Label: "Nema glasova", Value: 1}}
	}

	pie := chart.PieChart{
		Title:  ChartTitle,
		Width:  ChartWidth,
		Height: ChartHeight,
		Values: values,
	}

	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
