package service

import "github.com/vperelygin/go-conf-sync/models"

// AppInfoService exposes build metadata for version reporting.
type AppInfoService struct {
	buildInfo models.AppBuildInfo
	version   string
}

// NewAppInfoService constructs the service. version comes from configuration
// and, when set, takes precedence over the linker-injected build version.
func NewAppInfoService(buildInfo models.AppBuildInfo, version string) *AppInfoService {
	return &AppInfoService{buildInfo: buildInfo, version: version}
}

// Version returns the effective application version string.
func (s *AppInfoService) Version() string {
	if s.version != "" {
		return s.version
	}
	if v := s.buildInfo.BuildVersion(); v != "" {
		return v
	}
	return "N/A"
}

// BuildInfo returns the raw build metadata.
func (s *AppInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
