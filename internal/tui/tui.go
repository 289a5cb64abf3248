// Package tui renders a form definition as an interactive terminal screen.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-guard/internal/config"
	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/service"
)

type TUI struct {
	services *service.Services
	form     *form.Form
	cfg      config.App
	logger   *logger.Logger
}

func New(services *service.Services, f *form.Form, cfg config.App, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		form:     f,
		cfg:      cfg,
		logger:   log,
	}
}

// Run shows the form until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	root.close()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

func (t *TUI) newRoot(ctx context.Context) *RootModel {
	pages := map[string]tea.Model{
		pageForm:   NewFormModel(ctx, t.form, t.services.SubmissionService, t.cfg.CopyOnSubmit, t.logger),
		pageRecent: NewRecentModel(ctx, t.form.Name(), t.services.SubmissionService),
	}

	info := t.services.AppInfoService
	return NewRootModel(pages, pageForm, info.GetAppVersion(ctx), info.GetBuildInfo(ctx))
}
