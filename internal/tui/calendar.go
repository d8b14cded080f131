package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/models"
	"github.com/julianstephens/daystreak/internal/tracker"
)

var dayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type calendarModel struct {
	tracker *tracker.Tracker
	cursor  time.Time // selected day, normalized
	month   time.Time // first day of the displayed month
	width   int
	height  int
}

func newCalendarModel(t *tracker.Tracker) calendarModel {
	today := dates.Today()
	return calendarModel{
		tracker: t,
		cursor:  today,
		month:   startOfMonth(today),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c calendarModel) update(msg tea.KeyMsg) calendarModel {
	switch {
	case key.Matches(msg, keys.Left):
		c.moveCursor(-1)
	case key.Matches(msg, keys.Right):
		c.moveCursor(1)
	case key.Matches(msg, keys.Up):
		c.moveCursor(-7)
	case key.Matches(msg, keys.Down):
		c.moveCursor(7)
	case key.Matches(msg, keys.PrevMonth):
		c.shiftMonth(-1)
	case key.Matches(msg, keys.NextMonth):
		c.shiftMonth(1)
	case key.Matches(msg, keys.Today):
		c.cursor = dates.Today()
		c.month = startOfMonth(c.cursor)
	case key.Matches(msg, keys.Zero):
		// Future dates are rejected inside the tracker and surface
		// through the notification sink.
		_ = c.tracker.SetStatus(c.cursor, models.StatusZero)
	case key.Matches(msg, keys.Reset):
		_ = c.tracker.SetStatus(c.cursor, models.StatusReset)
	case key.Matches(msg, keys.ClearDay):
		_ = c.tracker.ClearStatus(c.cursor)
	}
	return c
}

func (c *calendarModel) moveCursor(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
	c.month = startOfMonth(c.cursor)
}

func (c *calendarModel) shiftMonth(months int) {
	c.month = c.month.AddDate(0, months, 0)

	// Keep the cursor inside the displayed month, clamping to its last day.
	day := c.cursor.Day()
	if last := daysInMonth(c.month); day > last {
		day = last
	}
	c.cursor = time.Date(c.month.Year(), c.month.Month(), day, 0, 0, 0, 0, c.month.Location())
}

func (c calendarModel) view() string {
	today := dates.Today()

	var rows []string
	rows = append(rows, titleStyle.Render(c.month.Format("January 2006")))
	rows = append(rows, "")

	var header []string
	for _, label := range dayLabels {
		header = append(header, mutedStyle.Render(fmt.Sprintf("%4s", label)))
	}
	rows = append(rows, strings.Join(header, ""))

	cells := make([]string, 0, 7)
	for i := 0; i < int(c.month.Weekday()); i++ {
		cells = append(cells, strings.Repeat(" ", 4))
	}

	for d := 1; d <= daysInMonth(c.month); d++ {
		day := time.Date(c.month.Year(), c.month.Month(), d, 0, 0, 0, 0, c.month.Location())
		cells = append(cells, c.renderDay(day, today))
		if len(cells) == 7 {
			rows = append(rows, strings.Join(cells, ""))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		rows = append(rows, strings.Join(cells, ""))
	}

	rows = append(rows, "")
	rows = append(rows, legend())

	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (c calendarModel) renderDay(day, today time.Time) string {
	var style lipgloss.Style
	switch {
	case c.tracker.Status(day) == models.StatusZero:
		style = zeroDayStyle
	case c.tracker.Status(day) == models.StatusReset:
		style = resetDayStyle
	case day.After(today):
		style = futureDayStyle
	default:
		style = mutedStyle
	}

	if day.Equal(today) {
		style = style.Bold(true).Underline(true)
	}
	if day.Equal(c.cursor) {
		style = style.Reverse(true)
	}

	return " " + style.Render(fmt.Sprintf("%3d", day.Day()))
}

func legend() string {
	return strings.Join([]string{
		zeroDayStyle.Render("●") + mutedStyle.Render(" zero"),
		resetDayStyle.Render("●") + mutedStyle.Render(" reset"),
		mutedStyle.Render("● unset"),
	}, "  ")
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func daysInMonth(month time.Time) int {
	return startOfMonth(month).AddDate(0, 1, -1).Day()
}
