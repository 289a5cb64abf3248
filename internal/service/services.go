package service

import (
	"github.com/MKhiriev/go-form-guard/internal/config"
	"github.com/MKhiriev/go-form-guard/internal/crypto"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/store"
	"github.com/MKhiriev/go-form-guard/internal/validators"
	"github.com/MKhiriev/go-form-guard/models"
)

type Services struct {
	SubmissionService SubmissionService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	submissions := NewSubmissionService(storages.Submissions, validators.NewSubmissionValidator(), crypto.NewSecretHasher(), cfg.SubmitTimeout, logger)

	return &Services{
		SubmissionService: NewSubmissionLoggingService(logger).Wrap(submissions),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}
