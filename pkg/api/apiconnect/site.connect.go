package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/pkg/api"
)

// SiteServiceName is the fully-qualified name of the SiteService service.
const SiteServiceName = "drinkorder.v1.SiteService"

// These constants are the fully-qualified names of the RPCs defined in this
// service, in the form /package.Service/Method.
const (
	SiteServiceHealthProcedure         = "/drinkorder.v1.SiteService/Health"
	SiteServiceGetSettingsProcedure    = "/drinkorder.v1.SiteService/GetSettings"
	SiteServiceUpdateSettingsProcedure = "/drinkorder.v1.SiteService/UpdateSettings"
)

// SiteServiceClient is a client for the drinkorder.v1.SiteService service.
type SiteServiceClient interface {
	Health(context.Context, *connect.Request[api.HealthRequest]) (*connect.Response[api.HealthResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewSiteServiceClient constructs a client for the drinkorder.v1.SiteService service. Requests
// are encoded with api.Codec.
func NewSiteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SiteServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &siteServiceClient{
		health: connect.NewClient[api.HealthRequest, api.HealthResponse](
			httpClient,
			baseURL+SiteServiceHealthProcedure,
			opts...,
		),
		getSettings: connect.NewClient[api.GetSettingsRequest, api.GetSettingsResponse](
			httpClient,
			baseURL+SiteServiceGetSettingsProcedure,
			opts...,
		),
		updateSettings: connect.NewClient[api.UpdateSettingsRequest, api.UpdateSettingsResponse](
			httpClient,
			baseURL+SiteServiceUpdateSettingsProcedure,
			opts...,
		),
	}
}

// siteServiceClient implements SiteServiceClient.
type siteServiceClient struct {
	health         *connect.Client[api.HealthRequest, api.HealthResponse]
	getSettings    *connect.Client[api.GetSettingsRequest, api.GetSettingsResponse]
	updateSettings *connect.Client[api.UpdateSettingsRequest, api.UpdateSettingsResponse]
}

// Health calls drinkorder.v1.SiteService.Health.
func (c *siteServiceClient) Health(ctx context.Context, req *connect.Request[api.HealthRequest]) (*connect.Response[api.HealthResponse], error) {
	return c.health.CallUnary(ctx, req)
}

// GetSettings calls drinkorder.v1.SiteService.GetSettings.
func (c *siteServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

// UpdateSettings calls drinkorder.v1.SiteService.UpdateSettings.
func (c *siteServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	return c.updateSettings.CallUnary(ctx, req)
}

// SiteServiceHandler is an implementation of the drinkorder.v1.SiteService service.
// SiteService reports health and serves site-wide settings.
type SiteServiceHandler interface {
	Health(context.Context, *connect.Request[api.HealthRequest]) (*connect.Response[api.HealthResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewSiteServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSiteServiceHandler(svc SiteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	siteServiceHealthHandler := connect.NewUnaryHandler(
		SiteServiceHealthProcedure,
		svc.Health,
		opts...,
	)
	siteServiceGetSettingsHandler := connect.NewUnaryHandler(
		SiteServiceGetSettingsProcedure,
		svc.GetSettings,
		opts...,
	)
	siteServiceUpdateSettingsHandler := connect.NewUnaryHandler(
		SiteServiceUpdateSettingsProcedure,
		svc.UpdateSettings,
		opts...,
	)
	return "/drinkorder.v1.SiteService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SiteServiceHealthProcedure:
			siteServiceHealthHandler.ServeHTTP(w, r)
		case SiteServiceGetSettingsProcedure:
			siteServiceGetSettingsHandler.ServeHTTP(w, r)
		case SiteServiceUpdateSettingsProcedure:
			siteServiceUpdateSettingsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSiteServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSiteServiceHandler struct{}

func (UnimplementedSiteServiceHandler) Health(context.Context, *connect.Request[api.HealthRequest]) (*connect.Response[api.HealthResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.SiteService.Health is not implemented"))
}

func (UnimplementedSiteServiceHandler) GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.SiteService.GetSettings is not implemented"))
}

func (UnimplementedSiteServiceHandler) UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.SiteService.UpdateSettings is not implemented"))
}
