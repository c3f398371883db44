package filter

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func generateLineItems(vs []int) []opts.LineData {
	var items = make([]opts.LineData, 0)
	for _, v := range vs {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

// PlotLineACGT renders the per-cycle A C G T composition of the retained
// reads as an HTML line chart.
func (s *Stats) PlotLineACGT(path string) {
	var (
		line   = charts.NewLine()
		xaxis  [maxCycle]int
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "A C G T Distribution",
			Subtitle: "retained reads",
		}))

	for i := 0; i < maxCycle; i++ {
		xaxis[i] = i + 1
	}

	line.SetXAxis(xaxis).
		AddSeries("A", generateLineItems(s.A[:])).
		AddSeries("C", generateLineItems(s.C[:])).
		AddSeries("G", generateLineItems(s.G[:])).
		AddSeries("T", generateLineItems(s.T[:]))
	simpleUtil.CheckErr(line.Render(output))
}

// PlotQ30 renders the per-cycle Q30 fraction of the retained reads to a PNG.
func (s *Stats) PlotQ30(path string) error {
	var p = plot.New()
	p.Title.Text = "Q30 per cycle"
	p.X.Label.Text = "cycle"
	p.Y.Label.Text = "Q30 fraction"

	var points = plotter.XYs{}
	for i := 0; i < maxCycle; i++ {
		if s.Depth[i] == 0 {
			break
		}
		points = append(points, plotter.XY{
			X: float64(i + 1),
			Y: float64(s.Q30[i]) / float64(s.Depth[i]),
		})
	}

	line, _, err := plotter.NewLinePoints(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(1)
	line.Width = vg.Points(2)

	p.Add(line)
	p.Legend.Add("Q30", line)

	return p.Save(16*vg.Inch, 9*vg.Inch, path)
}
