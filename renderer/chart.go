package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jmcampos/networth"
)

// ValueChart renders a PNG line chart of a value series. Returns raw PNG
// bytes.
func ValueChart(title string, s *networth.AlignedSeries) ([]byte, error) {
	if s == nil || s.Len() < 2 {
		return nil, fmt.Errorf("need at least 2 data points")
	}

	xValues := make([]time.Time, s.Len())
	yValues := make([]float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		on, v := s.At(i)
		xValues[i] = time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC)
		yValues[i] = v
	}

	series := chart.TimeSeries{
		Name: title,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
