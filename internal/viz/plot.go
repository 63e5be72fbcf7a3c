package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/ivp"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// Series extracts one state component from a trajectory for plotting.
func Series(states []ivp.State, component int) []float64 {
	data := make([]float64, len(states))
	for i := range states {
		if component < len(states[i]) {
			data[i] = states[i][component]
		}
	}
	return data
}

// Plot renders one series as an ASCII line chart.
func Plot(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// Compare overlays the numeric solution and the analytic reference in a
// single chart, numeric in red over the reference in blue.
func Compare(numeric, exact []float64, caption string) string {
	return asciigraph.PlotMany([][]float64{exact, numeric},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("exact", "numeric"),
	)
}
