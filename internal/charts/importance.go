package charts

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"roomrate/server/internal/models"
)

const (
	chartWidthPx  = "700px"
	chartHeightPx = "420px"
	colorBar      = "#3b82f6"
)

// RenderImportances renders a bar chart of feature importances as a
// standalone HTML page. Weights are shown raw, in the order given.
func RenderImportances(importances []models.FeatureImportance) ([]byte, error) {
	names := make([]string, len(importances))
	values := make([]opts.BarData, len(importances))
	for i, fi := range importances {
		names[i] = fi.Feature
		values[i] = opts.BarData{Value: fi.Importance}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Feature Importances",
			Width:     chartWidthPx,
			Height:    chartHeightPx,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Top Feature Importances",
		}),
		charts.WithColorsOpts(opts.Colors{colorBar}),
	)
	bar.SetXAxis(names).AddSeries("Importance", values)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
