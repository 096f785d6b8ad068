package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const progressBarWidth = 40

// pageMsg reports one composed page.
type pageMsg struct {
	Done  int
	Total int
}

// runDoneMsg reports the end of a generation run.
type runDoneMsg struct {
	Err error
}

// ProgressModel is the bubbletea model showing diary generation progress
// as a page-count bar.
type ProgressModel struct {
	Title string
	Done  int
	Total int

	err      error
	finished bool
	aborted  bool
}

// NewProgressModel creates a progress model expecting total pages.
func NewProgressModel(title string, total int) ProgressModel {
	return ProgressModel{Title: title, Total: total}
}

func (m ProgressModel) Init() tea.Cmd {
	return nil
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	case pageMsg:
		m.Done = msg.Done
		m.Total = msg.Total
	case runDoneMsg:
		m.err = msg.Err
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n\n")

	frac := 0.0
	if m.Total > 0 {
		frac = float64(m.Done) / float64(m.Total)
	}
	filled := int(frac * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}

	b.WriteString("  ")
	b.WriteString(styleBarFilled.Render(strings.Repeat("█", filled)))
	b.WriteString(styleBarEmpty.Render(strings.Repeat("░", progressBarWidth-filled)))
	b.WriteString(fmt.Sprintf(" %3.0f%%", frac*100))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  page %d of %d  ·  q to abort", m.Done, m.Total)))
	b.WriteString("\n")

	return b.String()
}

// Aborted reports whether the user quit before the run finished.
func (m ProgressModel) Aborted() bool { return m.aborted && !m.finished }

// Err returns the run error delivered with runDoneMsg.
func (m ProgressModel) Err() error { return m.err }
