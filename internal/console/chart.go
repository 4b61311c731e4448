package console

const (
	chartWidth   = 480
	chartHeight  = 280
	chartPadding = 40
	barGap       = 24
)

type Bar struct {
	Label  string
	Value  int
	X      int
	Y      int
	Width  int
	Height int
	// LabelX is the horizontal centre of the bar.
	LabelX int
}

// BarChart is an SVG bar chart laid out in a fixed viewport.
type BarChart struct {
	Title    string
	Width    int
	Height   int
	Baseline int
	Bars     []Bar
}

// NewBarChart scales bar heights to the largest value. Labels and values are
// paired by index; extra labels get a zero value.
func NewBarChart(title string, labels []string, values []int) BarChart {
	chart := BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		Baseline: chartHeight - chartPadding,
	}
	if len(labels) == 0 {
		return chart
	}

	maxValue := 0
	for _, v := range values {
		maxValue = max(maxValue, v)
	}

	plotWidth := chartWidth - 2*chartPadding
	plotHeight := chart.Baseline - chartPadding
	barWidth := (plotWidth - barGap*(len(labels)-1)) / len(labels)

	for i, label := range labels {
		value := 0
		if i < len(values) {
			value = max(values[i], 0)
		}
		height := 0
		if maxValue > 0 {
			height = value * plotHeight / maxValue
		}
		x := chartPadding + i*(barWidth+barGap)
		chart.Bars = append(chart.Bars, Bar{
			Label:  label,
			Value:  value,
			X:      x,
			Y:      chart.Baseline - height,
			Width:  barWidth,
			Height: height,
			LabelX: x + barWidth/2,
		})
	}
	return chart
}
