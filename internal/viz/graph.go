package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/arrayviz/internal/demo"
)

// Graph plots every flat numeric list of at least two elements in the
// snapshot, before fields first. ok is false when there is nothing to plot.
func Graph(s demo.Snapshot, width, height int) (graph string, ok bool) {
	var (
		series  [][]float64
		legends []string
	)
	collect := func(prefix string, fields []demo.Field) {
		for _, f := range fields {
			nums, isNum := f.Value.Numbers()
			if !isNum || len(nums) < 2 {
				continue
			}
			series = append(series, nums)
			legends = append(legends, prefix+" "+f.Label)
		}
	}
	collect("before", s.Before)
	collect("after", s.After)

	if len(series) == 0 {
		return "", false
	}

	graph = asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(strings.Join(legends, " | ")),
	)
	return graph, true
}
