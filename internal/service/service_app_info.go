package service

import (
	"context"

	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/models"
)

// unknownVersion is reported when the binary was built without linker flags.
const unknownVersion = "N/A"

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	if s.buildInfo.BuildVersion() == "" {
		return unknownVersion
	}
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
