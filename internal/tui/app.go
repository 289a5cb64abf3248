package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-guard/models"
)

// closer is implemented by pages that hold resources beyond the program run.
type closer interface {
	Close()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit and the about overlay
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	version   string
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	closed        bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage, version string, buildInfo models.AppBuildInfo) *RootModel {
	return &RootModel{
		pages:     pages,
		current:   pages[startPage],
		version:   version,
		buildInfo: buildInfo,
	}
}

func (r *RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			r.close()
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case quitMsg:
		r.close()
		return r, tea.Quit
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r *RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.version, r.buildInfo)
	}
	if r.current == nil {
		return renderPage("FORMGUARD", "", "")
	}
	return r.current.View()
}

// close releases every page once.
func (r *RootModel) close() {
	if r.closed {
		return
	}
	r.closed = true

	for _, page := range r.pages {
		if c, ok := page.(closer); ok {
			c.Close()
		}
	}
}
