// Package tui provides the interactive Bubble Tea dashboard for firecast.
package tui

import (
	"fmt"
	"time"

	"firecast/internal/cli"
	"firecast/internal/engine"
	"firecast/internal/model"
	"firecast/internal/montecarlo"
	"firecast/internal/scenario"
	"firecast/internal/tui/components"
	"firecast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SimDoneMsg is sent when the Monte Carlo resimulation finishes.
type SimDoneMsg struct {
	Result  model.MonteCarloResult
	SimTime time.Duration
}

const (
	tabOverview = iota
	tabNetWorth
	tabMonteCarlo
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
)

// App is the root Bubble Tea model.
type App struct {
	// Inputs and deterministic results, computed up front
	in    model.PlanInputs
	proj  model.Projection
	sweep []model.SweepRow

	// Monte Carlo runs in the background
	mc        model.MonteCarloResult
	mcDone    bool
	mcRunning bool
	simTime   time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	spinner   spinner.Model
}

// NewApp creates a new TUI app model. The projection and sweep are
// cheap enough to compute synchronously; Monte Carlo starts in Init.
func NewApp(in model.PlanInputs) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		in:      in,
		proj:    engine.Project(in),
		sweep:   scenario.SavingRateSweep(in, scenario.DefaultSweepDeltas()),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		simulateCmd(a.in),
	)
}

func simulateCmd(in model.PlanInputs) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res := montecarlo.Simulate(in, montecarlo.Options{})
		return SimDoneMsg{Result: res, SimTime: time.Since(start)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit

		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil

		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil

		case "1", "2", "3":
			a.activeTab = int(msg.String()[0] - '1')
			return a, nil

		case "r":
			if a.mcRunning {
				return a, nil
			}
			a.mcRunning = true
			a.mcDone = false
			return a, tea.Batch(a.spinner.Tick, simulateCmd(a.in))

		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
					return a, nil
				}
			}
		}
		return a, nil

	case SimDoneMsg:
		a.mc = msg.Result
		a.simTime = msg.SimTime
		a.mcDone = true
		a.mcRunning = false
		return a, nil

	case spinner.TickMsg:
		if a.mcDone {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n  Resize or press q to quit.\n", a.width, minTerminalWidth)
	}

	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var body string
	switch a.activeTab {
	case tabOverview:
		body = a.viewOverview()
	case tabNetWorth:
		body = a.viewNetWorth()
	case tabMonteCarlo:
		body = a.viewMonteCarlo()
	}

	planSummary := fmt.Sprintf("age %d-%d · save %s", a.in.StartingAge, a.in.FinalAge, cli.FormatRate(a.in.SavingRate))

	return lipgloss.JoinVertical(lipgloss.Left,
		" "+titleStyle.Render("firecast"),
		components.RenderTabBar(a.activeTab),
		"",
		body,
		"",
		components.RenderStatusBar(a.contentWidth(), planSummary),
	)
}

func (a App) viewOverview() string {
	cw := a.contentWidth()
	p := a.proj

	status := "on track"
	if !p.Succeeded() {
		status = "falls short"
	}

	cards := []components.Metric{
		{Label: "Retirement age", Value: fmt.Sprintf("%d", p.RetirementAge), Note: fmt.Sprintf("%d years away", p.YearsToRetirement)},
		{Label: "Final net worth", Value: cli.FormatMoneyShort(p.FinalNetWorth()), Note: status},
		{Label: "Avg withdrawal rate", Value: cli.FormatRate(p.AvgWithdrawalRate)},
	}
	row := components.MetricCardRow(cards, cw)

	// Saving rate sweep: retirement age across the band
	body := ""
	for _, r := range a.sweep {
		marker := "  "
		if r.Delta == 0 {
			marker = "> "
		}
		body += fmt.Sprintf("%s%+3d pp  save %5s  retire %d  %s\n",
			marker, r.Delta, cli.FormatRate(r.SavingRate), r.RetirementAge, cli.FormatMoneyShort(r.FinalNetWorth))
	}
	sweepCard := components.ContentCard("Saving rate sweep", body, cw)

	return lipgloss.JoinVertical(lipgloss.Left, row, sweepCard)
}

func (a App) viewNetWorth() string {
	cw := a.contentWidth()
	p := a.proj

	chartH := a.height - 14
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 20 {
		chartH = 20
	}

	labels := make([]string, len(p.Ages))
	for i, age := range p.Ages {
		labels[i] = fmt.Sprintf("%d", age)
	}

	inner := components.CardInnerWidth(cw)
	chart := components.BarChart(p.NetWorth, labels, theme.Active.Accent, inner, chartH)
	nwCard := components.ContentCard(fmt.Sprintf("Net worth, age %d to %d", a.in.StartingAge, a.in.FinalAge), chart, cw)

	salary := components.Sparkline(p.Salary, theme.Active.Blue)
	expenses := components.Sparkline(p.Expenses, theme.Active.Yellow)
	seriesCard := components.ContentCard("Salary / Expenses",
		"salary   "+salary+"\nexpenses "+expenses, cw)

	return lipgloss.JoinVertical(lipgloss.Left, nwCard, seriesCard)
}

func (a App) viewMonteCarlo() string {
	cw := a.contentWidth()

	if !a.mcDone {
		return fmt.Sprintf("\n  %s Running %s trials...\n", a.spinner.View(), cli.FormatNumber(int64(montecarlo.DefaultRuns)))
	}

	cards := []components.Metric{
		{Label: "Success rate", Value: cli.FormatFraction(a.mc.SuccessRate), Note: fmt.Sprintf("%s trials in %s", cli.FormatNumber(int64(a.mc.Runs)), a.simTime.Round(time.Millisecond))},
		{Label: "Median final net worth", Value: cli.FormatMoneyShort(a.mc.MedianNetWorth)},
		{Label: "10th percentile", Value: cli.FormatMoneyShort(a.mc.Percentile10NetWorth)},
	}
	row := components.MetricCardRow(cards, cw)

	chartH := a.height - 16
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 16 {
		chartH = 16
	}

	counts, labels := components.Histogram(a.mc.AllNetWorths, 20)
	inner := components.CardInnerWidth(cw)
	chart := components.BarChart(counts, labels, theme.Active.Green, inner, chartH)
	distCard := components.ContentCard("Final net worth distribution", chart, cw)

	return lipgloss.JoinVertical(lipgloss.Left, row, distCard)
}
