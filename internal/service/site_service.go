package service

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/docstore"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage"
	"github.com/mmynk/drinkorder/pkg/api"
	"github.com/mmynk/drinkorder/pkg/api/apiconnect"
)

const serverTimeLayout = "2006-01-02 15:04:05"

// SiteService implements the Connect SiteService
type SiteService struct {
	apiconnect.UnimplementedSiteServiceHandler
	settings    *docstore.Store[models.SiteSettings]
	environment string
	now         func() time.Time
}

// NewSiteService creates a new SiteService. environment is reported by Health.
func NewSiteService(store storage.DocumentStore, environment string) *SiteService {
	return &SiteService{
		settings:    docstore.New(store, docstore.KeySiteSettings, models.DefaultSiteSettings),
		environment: environment,
		now:         time.Now,
	}
}

// Health reports that the server is up.
func (s *SiteService) Health(ctx context.Context, req *connect.Request[api.HealthRequest]) (*connect.Response[api.HealthResponse], error) {
	return connect.NewResponse(&api.HealthResponse{
		Status:      "healthy",
		ServerTime:  s.now().Format(serverTimeLayout),
		Environment: s.environment,
		GoVersion:   runtime.Version(),
	}), nil
}

// GetSettings returns the site settings.
func (s *SiteService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	slog.Info("GetSettings request received")

	settings, err := s.settings.Load(ctx)
	if err != nil {
		slog.Error("GetSettings failed", "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetSettingsResponse{
		Settings: &api.SiteSettings{SiteName: settings.SiteName, Description: settings.Description},
	}), nil
}

// UpdateSettings replaces the site settings.
func (s *SiteService) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	slog.Info("UpdateSettings request received")

	if req.Msg.Settings == nil {
		return nil, connectError(invalidInput("settings required"))
	}
	settings := &models.SiteSettings{
		SiteName:    strings.TrimSpace(req.Msg.Settings.SiteName),
		Description: strings.TrimSpace(req.Msg.Settings.Description),
	}
	if settings.SiteName == "" {
		return nil, connectError(invalidInput("site name required"))
	}

	if err := s.settings.Save(ctx, settings); err != nil {
		slog.Error("UpdateSettings failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Site settings updated", "site_name", settings.SiteName)

	return connect.NewResponse(&api.UpdateSettingsResponse{
		Settings: &api.SiteSettings{SiteName: settings.SiteName, Description: settings.Description},
	}), nil
}
