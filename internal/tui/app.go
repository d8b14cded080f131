package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystreak/internal/storage"
	"github.com/julianstephens/daystreak/internal/tracker"
)

type viewState int

const (
	viewCalendar viewState = iota
	viewHistory
)

// App is the root Bubble Tea model.
type App struct {
	tracker *tracker.Tracker
	events  *eventLog
	width   int
	height  int

	activeView viewState
	showHelp   bool

	calendar calendarModel
	history  historyModel

	confirmActive bool
	confirmWipe   *bool
	confirmForm   *huh.Form

	help   help.Model
	status string
}

func NewApp(store storage.Provider) (App, error) {
	events := &eventLog{}
	t, err := tracker.New(store, events)
	if err != nil {
		return App{}, err
	}

	h := help.New()
	h.ShowAll = false

	a := App{
		tracker:  t,
		events:   events,
		calendar: newCalendarModel(t),
		history:  newHistoryModel(t),
		help:     h,
	}
	// Surface a recovered load failure right away.
	a.status = events.take()
	return a, nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 8 // header + stats + status + footer
		a.calendar.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.history.rebuild()
		return a, nil

	case tea.KeyMsg:
		if a.confirmActive {
			return a.updateConfirm(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab):
			if a.activeView == viewCalendar {
				a.activeView = viewHistory
				a.history.rebuild()
			} else {
				a.activeView = viewCalendar
			}
			return a, nil
		case key.Matches(msg, keys.WipeAll):
			return a.showConfirm()
		}

		if a.activeView == viewCalendar {
			a.calendar = a.calendar.update(msg)
			if msg := a.events.take(); msg != "" {
				a.status = msg
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) showConfirm() (tea.Model, tea.Cmd) {
	confirmed := false
	a.confirmWipe = &confirmed
	a.confirmForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all data?").
				Description(fmt.Sprintf("This permanently deletes all %d logged day(s).", a.tracker.Len())).
				Affirmative("Reset").
				Negative("Cancel").
				Value(a.confirmWipe),
		),
	).WithShowHelp(false).WithShowErrors(false)

	a.confirmActive = true
	return a, a.confirmForm.Init()
}

func (a App) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		a.confirmActive = false
		a.confirmForm = nil
		return a, nil
	}

	form, cmd := a.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.confirmForm = f
	}

	if a.confirmForm.State == huh.StateCompleted {
		a.confirmActive = false
		if a.confirmWipe != nil && *a.confirmWipe {
			if err := a.tracker.ResetAll(); err != nil {
				a.status = fmt.Sprintf("Reset failed: %v", err)
			} else {
				a.status = a.events.take()
			}
			a.history.rebuild()
		}
		a.confirmForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) View() string {
	if a.confirmActive && a.confirmForm != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("daystreak"), "", a.confirmForm.View(),
		)
		return panelStyle.Render(content)
	}

	header := a.headerView()
	stats := a.statsView()

	var body string
	if a.activeView == viewCalendar {
		body = a.calendar.view()
	} else {
		body = a.history.view()
	}

	statusBar := ""
	if a.status != "" {
		statusBar = statusBarStyle.Render(a.status)
	}

	footer := a.help.View(keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, stats, body, statusBar, footer,
	)
}

func (a App) headerView() string {
	calTab := mutedStyle.Render("Calendar")
	histTab := mutedStyle.Render("History")
	if a.activeView == viewCalendar {
		calTab = titleStyle.Render("Calendar")
	} else {
		histTab = titleStyle.Render("History")
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("daystreak"), "  ", calTab, " · ", histTab,
	)
}

func (a App) statsView() string {
	s := a.tracker.Stats()

	current := fmt.Sprintf("Current streak: %s day(s)", statValueStyle.Render(fmt.Sprintf("%d", s.CurrentStreak)))
	best := fmt.Sprintf("Best: %s day(s)", statValueStyle.Render(fmt.Sprintf("%d", s.BestStreak)))
	if s.BestStreak > 0 {
		best += mutedStyle.Render(fmt.Sprintf(" (%s – %s)", s.BestStart, s.BestEnd))
	}
	totals := mutedStyle.Render(fmt.Sprintf("Months: %d   Years: %d", s.TotalMonths, s.TotalYears))

	return panelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		current, "   ", best, "   ", totals,
	))
}

// eventLog renders tracker notifications for the status line.
type eventLog struct {
	msg string
}

func (l *eventLog) Notify(e tracker.Event) {
	switch e.Kind {
	case tracker.EventDayUpdated:
		l.msg = fmt.Sprintf("Day %s updated", e.Day)
	case tracker.EventFutureDateRejected:
		l.msg = fmt.Sprintf("Cannot record the future date %s", e.Day)
	case tracker.EventDataReset:
		l.msg = "All data has been reset"
	case tracker.EventLoadFailed:
		l.msg = "Stored data could not be read; starting fresh"
	}
}

func (l *eventLog) take() string {
	msg := l.msg
	l.msg = ""
	return msg
}
