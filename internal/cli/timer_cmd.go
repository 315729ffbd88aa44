package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mfriesen/daybook/internal/cli/formatter"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/mfriesen/daybook/internal/timer"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Run the interactive work/break timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("timer needs an interactive terminal")
			}
			p := tea.NewProgram(newTimerModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// ── bubbletea model ──────────────────────────────────────────────────────────

// timerTickMsg drives the once-per-second re-render; the engine accrues on
// its own goroutine, the view just refreshes.
type timerTickMsg time.Time

// daySavedMsg carries the outcome of an async day save.
type daySavedMsg struct {
	err error
}

type timerKeyMap struct {
	Start key.Binding
	Pause key.Binding
	End   key.Binding
	Save  key.Binding
	Quit  key.Binding
}

func newTimerKeyMap() timerKeyMap {
	return timerKeyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		End:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end")),
		Save:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save day")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type timerModel struct {
	app    *App
	keys   timerKeyMap
	spin   spinner.Model
	saving bool

	// notice is a one-line status message under the counters, cleared on
	// the next state-changing keypress.
	notice string

	width  int
	height int
}

func newTimerModel(app *App) timerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)

	return timerModel{
		app:  app,
		keys: newTimerKeyMap(),
		spin: sp,
	}
}

func (m timerModel) Init() tea.Cmd {
	return timerTick()
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		return m, timerTick()

	case spinner.TickMsg:
		if !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case daySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(saveErrorMessage(msg.err).Error())
		} else {
			m.notice = formatter.StyleGreen.Render("Day saved.")
		}
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			// Only quit is honored while a save is in flight.
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		m.app.Engine.Start()
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.app.Engine.Pause()
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.End):
		work, brk := m.app.Engine.End()
		if work == 0 && brk == 0 {
			m.notice = formatter.Dim("Nothing to end.")
			return m, nil
		}
		sess, err := m.app.Sessions.Record(context.Background(), work, brk, time.Now())
		if err != nil {
			m.notice = formatter.StyleRed.Render(err.Error())
			return m, nil
		}
		m.notice = formatter.StyleGreen.Render(fmt.Sprintf(
			"Session recorded: %s work, %s break",
			formatter.FormatDuration(sess.WorkSeconds),
			formatter.FormatDuration(sess.BreakSeconds),
		))
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.saving = true
		m.notice = ""
		return m, tea.Batch(m.spin.Tick, saveDayCmd(m.app))
	}

	return m, nil
}

// saveDayCmd saves today's cumulative totals off the Update loop.
func saveDayCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		day := time.Now()
		work, brk := app.Sessions.DayTotals(ctx, day)

		snap := app.Engine.Snapshot()
		if snap.Status != domain.SessionCompleted {
			// A running timer's counters are not yet materialized into a
			// session; fold them in so the save reflects what is on screen.
			work += snap.WorkSeconds
			brk += snap.BreakSeconds
		}

		_, err := app.Sync.SaveDay(ctx, day, work, brk)
		return daySavedMsg{err: err}
	}
}

func (m timerModel) View() string {
	snap := m.app.Engine.Snapshot()
	dayWork, dayBreak := m.app.Sessions.DayTotals(context.Background(), time.Now())

	var b []string
	b = append(b, formatter.SessionStatusPill(snap.Status), "")
	b = append(b, fmt.Sprintf("Work   %s", counterStyle(snap.Status == domain.SessionActive).Render(formatter.FormatClock(snap.WorkSeconds))))
	b = append(b, fmt.Sprintf("Break  %s", counterStyle(snap.Status == domain.SessionPaused).Render(formatter.FormatClock(snap.BreakSeconds))))
	b = append(b, "")
	b = append(b, formatter.Dim(fmt.Sprintf("Today  %s work · %s break",
		formatter.FormatDuration(dayWork+sessionPart(snap, domain.SessionActive)),
		formatter.FormatDuration(dayBreak+sessionPart(snap, domain.SessionPaused)))))

	if m.saving {
		b = append(b, "", m.spin.View()+formatter.Dim("Saving day..."))
	} else if m.notice != "" {
		b = append(b, "", m.notice)
	}

	box := formatter.RenderBox("Daybook", lipgloss.JoinVertical(lipgloss.Left, b...))
	help := formatter.Dim(helpLine(m.keys))

	out := lipgloss.JoinVertical(lipgloss.Left, box, "", help)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

func counterStyle(running bool) lipgloss.Style {
	if running {
		return formatter.StyleBold
	}
	return formatter.StyleDim
}

// sessionPart returns the live counter to fold into the day totals so the
// "Today" line includes the not-yet-recorded running session.
func sessionPart(snap timer.Snapshot, status domain.SessionStatus) int {
	if snap.Status == domain.SessionCompleted {
		return 0
	}
	if status == domain.SessionActive {
		return snap.WorkSeconds
	}
	return snap.BreakSeconds
}

func helpLine(k timerKeyMap) string {
	bindings := []key.Binding{k.Start, k.Pause, k.End, k.Save, k.Quit}
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += "  "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line
}
