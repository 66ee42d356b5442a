package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LineChart renders one or two expense series as an ASCII line chart.
// It is deliberately dumb: callers hand it finished series and labels.
type LineChart struct {
	Title  string
	Width  int
	Height int

	series []series
	labels []string
}

type series struct {
	name   string
	points []float64
	color  lipgloss.Color
}

var seriesChars = []rune{'●', '■'}

// NewLineChart creates a chart with default dimensions.
func NewLineChart(title string) *LineChart {
	return &LineChart{Title: title, Width: 64, Height: 12}
}

// AddSeries appends a named series.
func (c *LineChart) AddSeries(name string, points []float64, color lipgloss.Color) *LineChart {
	c.series = append(c.series, series{name: name, points: points, color: color})
	return c
}

// WithLabels sets x-axis labels, one per data point.
func (c *LineChart) WithLabels(labels []string) *LineChart {
	c.labels = labels
	return c
}

// Render draws the chart as styled text.
func (c *LineChart) Render() string {
	if len(c.series) == 0 {
		return "no data"
	}

	min, max := c.bounds()
	if max == min {
		max = min + 1
	}

	yAxisWidth := 8
	plotWidth := c.Width - yAxisWidth
	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for idx, s := range c.series {
		c.plot(grid, s.points, min, max, seriesChars[idx%len(seriesChars)])
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(lipgloss.NewStyle().Bold(true).Render(c.Title))
		out.WriteString("\n")
	}
	axisStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	for i, row := range grid {
		yValue := max - float64(i)/float64(c.Height-1)*(max-min)
		out.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yAxisWidth, dollarLabel(yValue))))
		out.WriteString(" │")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth+1))
	out.WriteString("└")
	out.WriteString(strings.Repeat("─", plotWidth))
	out.WriteString("\n")
	out.WriteString(c.renderLabels(yAxisWidth+2, plotWidth))
	out.WriteString(c.renderLegend())
	return out.String()
}

func (c *LineChart) bounds() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range c.series {
		for _, p := range s.points {
			min = math.Min(min, p)
			max = math.Max(max, p)
		}
	}
	pad := (max - min) * 0.1
	return min - pad, max + pad
}

func (c *LineChart) plot(grid [][]rune, points []float64, min, max float64, char rune) {
	if len(points) == 0 {
		return
	}
	plotWidth := len(grid[0])
	toX := func(i int) int {
		if len(points) == 1 {
			return 0
		}
		return int(float64(i) / float64(len(points)-1) * float64(plotWidth-1))
	}
	toY := func(v float64) int {
		return c.Height - 1 - int((v-min)/(max-min)*float64(c.Height-1))
	}

	prevX, prevY := toX(0), toY(points[0])
	set(grid, prevX, prevY, char)
	for i := 1; i < len(points); i++ {
		x, y := toX(i), toY(points[i])
		connect(grid, prevX, prevY, x, y, char)
		set(grid, x, y, char)
		prevX, prevY = x, y
	}
}

func set(grid [][]rune, x, y int, char rune) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) {
		grid[y][x] = char
	}
}

// connect fills the gap between two plotted points, stepping one cell at
// a time along the longer axis.
func connect(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	steps := int(math.Max(math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0))))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		if grid[y][x] == ' ' {
			set(grid, x, y, char)
		}
	}
}

func (c *LineChart) renderLabels(indent, plotWidth int) string {
	if len(c.labels) < 2 {
		return ""
	}
	first, last := c.labels[0], c.labels[len(c.labels)-1]
	gap := plotWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	return strings.Repeat(" ", indent) + style.Render(first+strings.Repeat(" ", gap)+last) + "\n"
}

func (c *LineChart) renderLegend() string {
	if len(c.series) < 2 {
		return ""
	}
	items := make([]string, len(c.series))
	for i, s := range c.series {
		style := lipgloss.NewStyle().Foreground(s.color)
		items[i] = style.Render(string(seriesChars[i%len(seriesChars)])) + " " + s.name
	}
	return "\n" + strings.Join(items, "   ")
}

func dollarLabel(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("$%.1fK", v/1000)
	}
	return fmt.Sprintf("$%.0f", v)
}
