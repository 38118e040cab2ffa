package browse

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("39")) // bright blue

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedJobTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	selectedJobSubtitleStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("252")).
					Background(lipgloss.Color("24"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(14)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				MarginBottom(1)
)

// browseModel is the bubbletea model for the stored-jobs browser.
type browseModel struct {
	jobs     []model.Job
	cursor   int
	view     viewState
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates the browser over the given jobs (most recent first).
func New(jobs []model.Job) tea.Model {
	return browseModel{jobs: jobs}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-3)
		m.ready = true
		if m.view == viewDetail {
			m.viewport.SetContent(m.detailContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.view == viewDetail {
				m.view = viewList
				return m, nil
			}
			return m, tea.Quit

		case "esc":
			m.view = viewList
			return m, nil

		case "up", "k":
			if m.view == viewList && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.view == viewList && m.cursor < len(m.jobs)-1 {
				m.cursor++
			}

		case "enter":
			if m.view == viewList && len(m.jobs) > 0 {
				m.view = viewDetail
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}

		case "o":
			if len(m.jobs) > 0 {
				openURL(m.jobs[m.cursor].Link)
			}
		}
	}

	if m.view == viewDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading…"
	}
	if m.view == viewDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m browseModel) listView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("jobpilot — %d saved jobs", len(m.jobs))))
	b.WriteString("\n")

	visible := m.height - 3
	if visible < 1 {
		visible = 1
	}
	// Keep the cursor in view: each job takes one line pair.
	perJob := 2
	start := 0
	if m.cursor*perJob >= visible {
		start = m.cursor - visible/perJob + 1
	}

	for i := start; i < len(m.jobs) && (i-start)*perJob < visible; i++ {
		j := m.jobs[i]
		title := j.Title
		subtitle := fmt.Sprintf("  %s · %s", j.Company.Name, j.Location.String())
		if i == m.cursor {
			b.WriteString(selectedJobTitleStyle.Render("▶ " + title))
			b.WriteString("\n")
			b.WriteString(selectedJobSubtitleStyle.Render(subtitle))
		} else {
			b.WriteString(jobTitleStyle.Render("  " + title))
			b.WriteString("\n")
			b.WriteString(jobSubtitleStyle.Render(subtitle))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("↑/↓ move · enter details · o open link · q quit"))
	return b.String()
}

func (m browseModel) detailView() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("↑/↓ scroll · o open link · esc back · q list"))
	return b.String()
}

func (m browseModel) detailContent() string {
	j := m.jobs[m.cursor]

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(j.Title))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Company", j.Company.Name)
	row("Location", j.Location.String())
	row("Link", j.Link)
	row("First seen", j.FirstSeen.Format("2006-01-02 15:04"))

	if j.Details != nil {
		row("Type", string(j.Details.EmploymentType))
		row("Seniority", j.Details.SeniorityLevel)
		row("Function", j.Details.JobFunction)
		row("Industries", j.Details.Industries)
		if j.Details.Description != "" {
			b.WriteString("\n")
			b.WriteString(j.Details.Description)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// openURL opens the link in the default browser, best effort.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

// Run starts the interactive browser.
func Run(jobs []model.Job) error {
	p := tea.NewProgram(New(jobs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
