package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-guard/internal/service"
	"github.com/MKhiriev/go-form-guard/models"
)

const recentLimit = 10

// RecentModel lists the latest submissions of the current form.
type RecentModel struct {
	ctx         context.Context
	formName    string
	submissions service.SubmissionService

	items   []models.Submission
	loading bool
	errMsg  string
}

func NewRecentModel(ctx context.Context, formName string, submissions service.SubmissionService) *RecentModel {
	return &RecentModel{
		ctx:         ctx,
		formName:    formName,
		submissions: submissions,
	}
}

// Init implements [tea.Model]. The list is reloaded every time the page is
// opened.
func (m *RecentModel) Init() tea.Cmd {
	return m.load()
}

func (m *RecentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageForm} }
		case key.Matches(msg, keys.reload):
			return m, m.load()
		}
	}

	return m, nil
}

func (m *RecentModel) load() tea.Cmd {
	m.loading = true

	ctx, formName, submissions := m.ctx, m.formName, m.submissions
	return func() tea.Msg {
		items, err := submissions.Recent(ctx, formName, recentLimit)
		return recentLoadedMsg{items: items, err: err}
	}
}

func (m *RecentModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	case len(m.items) == 0:
		b.WriteString("No submissions yet")
	default:
		b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-38s %-20s %s", "ID", "Saved at", "Fields")))
		b.WriteString("\n")
		for _, item := range m.items {
			b.WriteString(fmt.Sprintf("%-38s %-20s %d\n",
				fitText(item.SubmissionID, 38),
				item.CreatedAt.Local().Format(time.DateTime),
				len(item.Values),
			))
		}
	}

	return renderPage(
		"RECENT SUBMISSIONS: "+strings.ToUpper(m.formName),
		strings.TrimRight(b.String(), "\n"),
		"r: reload │ esc: back",
	)
}
