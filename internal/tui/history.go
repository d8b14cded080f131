package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/models"
	"github.com/julianstephens/daystreak/internal/tracker"
)

const historyWeeks = 12

type historyModel struct {
	tracker *tracker.Tracker
	chart   barchart.Model
	width   int
	height  int
}

func newHistoryModel(t *tracker.Tracker) historyModel {
	return historyModel{
		tracker: t,
		chart:   barchart.New(60, 12),
	}
}

func (h *historyModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

// rebuild recounts zero days per week for the trailing weeks and redraws
// the chart. Called whenever the collection may have changed.
func (h *historyModel) rebuild() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if h.height > 24 {
		chartHeight = 16
	}
	h.chart = barchart.New(chartWidth, chartHeight)

	today := dates.Today()
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekStart = weekStart.AddDate(0, 0, -7*(historyWeeks-1))

	var bars []barchart.BarData
	for w := 0; w < historyWeeks; w++ {
		start := weekStart.AddDate(0, 0, 7*w)

		count := 0
		for d := 0; d < 7; d++ {
			if h.tracker.Status(start.AddDate(0, 0, d)) == models.StatusZero {
				count++
			}
		}

		style := lipgloss.NewStyle().Foreground(colorZero)
		if count == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}

		bars = append(bars, barchart.BarData{
			Label: start.Format("01/02"),
			Values: []barchart.BarValue{
				{Name: "zero days", Value: float64(count), Style: style},
			},
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) view() string {
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Zero days per week"), "  ",
		mutedStyle.Render(fmt.Sprintf("last %d weeks", historyWeeks)),
	)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", h.chart.View(),
	))
}
