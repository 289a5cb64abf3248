package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/models"
)

func TestGetAppVersion_ReturnsBuildVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-10-15", "abc123"), logger.Nop())

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "abc123", svc.GetBuildInfo(context.Background()).BuildCommit())
}

func TestGetAppVersion_WithoutLinkerFlags(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, unknownVersion, svc.GetAppVersion(context.Background()))
}
