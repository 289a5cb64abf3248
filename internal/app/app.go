package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-guard/internal/config"
	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/service"
	"github.com/MKhiriev/go-form-guard/internal/store"
	"github.com/MKhiriev/go-form-guard/internal/tui"
	"github.com/MKhiriev/go-form-guard/models"
)

var _ Runner = (*App)(nil)

type App struct {
	storages *store.Storages
	services *service.Services
	form     *form.Form
	ui       UI
	logger   *logger.Logger
}

// NewApp opens storage, builds the configured form and prepares the UI.
// Anything opened before a failing step is released again.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgStorageError, err)
	}

	def, err := form.LoadDefinition(cfg.App.FormFile)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("%s: %w", MsgFormError, err)
	}

	f, err := form.New(def, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("%s: %w", MsgFormError, err)
	}

	services := service.NewServices(storages, cfg.App, buildInfo, log)

	return &App{
		storages: storages,
		services: services,
		form:     f,
		ui:       tui.New(services, f, cfg.App, log),
		logger:   log,
	}, nil
}

// Run shows the UI until the user quits or ctx is cancelled, then closes
// the form and the storage.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("form", a.form.Name()).
		Str("version", a.services.AppInfoService.GetAppVersion(ctx)).
		Msg(MsgStarted)

	runErr := a.ui.Run(ctx)
	closeErr := a.Close()

	a.logger.Info().Msg(MsgStopped)

	return errors.Join(runErr, closeErr)
}

// Close releases the form and the database connection.
func (a *App) Close() error {
	a.form.Close()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg(MsgCloseStorageError)
		return err
	}
	return nil
}
