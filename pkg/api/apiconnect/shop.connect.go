package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/pkg/api"
)

// ShopServiceName is the fully-qualified name of the ShopService service.
const ShopServiceName = "drinkorder.v1.ShopService"

// These constants are the fully-qualified names of the RPCs defined in this
// service, in the form /package.Service/Method.
const (
	ShopServiceListShopsProcedure          = "/drinkorder.v1.ShopService/ListShops"
	ShopServiceGetShopMenuProcedure        = "/drinkorder.v1.ShopService/GetShopMenu"
	ShopServiceGetDrinkOptionsProcedure    = "/drinkorder.v1.ShopService/GetDrinkOptions"
	ShopServiceUpdateDrinkOptionsProcedure = "/drinkorder.v1.ShopService/UpdateDrinkOptions"
)

// ShopServiceClient is a client for the drinkorder.v1.ShopService service.
type ShopServiceClient interface {
	ListShops(context.Context, *connect.Request[api.ListShopsRequest]) (*connect.Response[api.ListShopsResponse], error)
	GetShopMenu(context.Context, *connect.Request[api.GetShopMenuRequest]) (*connect.Response[api.GetShopMenuResponse], error)
	GetDrinkOptions(context.Context, *connect.Request[api.GetDrinkOptionsRequest]) (*connect.Response[api.GetDrinkOptionsResponse], error)
	UpdateDrinkOptions(context.Context, *connect.Request[api.UpdateDrinkOptionsRequest]) (*connect.Response[api.UpdateDrinkOptionsResponse], error)
}

// NewShopServiceClient constructs a client for the drinkorder.v1.ShopService service. Requests
// are encoded with api.Codec.
func NewShopServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ShopServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &shopServiceClient{
		listShops: connect.NewClient[api.ListShopsRequest, api.ListShopsResponse](
			httpClient,
			baseURL+ShopServiceListShopsProcedure,
			opts...,
		),
		getShopMenu: connect.NewClient[api.GetShopMenuRequest, api.GetShopMenuResponse](
			httpClient,
			baseURL+ShopServiceGetShopMenuProcedure,
			opts...,
		),
		getDrinkOptions: connect.NewClient[api.GetDrinkOptionsRequest, api.GetDrinkOptionsResponse](
			httpClient,
			baseURL+ShopServiceGetDrinkOptionsProcedure,
			opts...,
		),
		updateDrinkOptions: connect.NewClient[api.UpdateDrinkOptionsRequest, api.UpdateDrinkOptionsResponse](
			httpClient,
			baseURL+ShopServiceUpdateDrinkOptionsProcedure,
			opts...,
		),
	}
}

// shopServiceClient implements ShopServiceClient.
type shopServiceClient struct {
	listShops          *connect.Client[api.ListShopsRequest, api.ListShopsResponse]
	getShopMenu        *connect.Client[api.GetShopMenuRequest, api.GetShopMenuResponse]
	getDrinkOptions    *connect.Client[api.GetDrinkOptionsRequest, api.GetDrinkOptionsResponse]
	updateDrinkOptions *connect.Client[api.UpdateDrinkOptionsRequest, api.UpdateDrinkOptionsResponse]
}

// ListShops calls drinkorder.v1.ShopService.ListShops.
func (c *shopServiceClient) ListShops(ctx context.Context, req *connect.Request[api.ListShopsRequest]) (*connect.Response[api.ListShopsResponse], error) {
	return c.listShops.CallUnary(ctx, req)
}

// GetShopMenu calls drinkorder.v1.ShopService.GetShopMenu.
func (c *shopServiceClient) GetShopMenu(ctx context.Context, req *connect.Request[api.GetShopMenuRequest]) (*connect.Response[api.GetShopMenuResponse], error) {
	return c.getShopMenu.CallUnary(ctx, req)
}

// GetDrinkOptions calls drinkorder.v1.ShopService.GetDrinkOptions.
func (c *shopServiceClient) GetDrinkOptions(ctx context.Context, req *connect.Request[api.GetDrinkOptionsRequest]) (*connect.Response[api.GetDrinkOptionsResponse], error) {
	return c.getDrinkOptions.CallUnary(ctx, req)
}

// UpdateDrinkOptions calls drinkorder.v1.ShopService.UpdateDrinkOptions.
func (c *shopServiceClient) UpdateDrinkOptions(ctx context.Context, req *connect.Request[api.UpdateDrinkOptionsRequest]) (*connect.Response[api.UpdateDrinkOptionsResponse], error) {
	return c.updateDrinkOptions.CallUnary(ctx, req)
}

// ShopServiceHandler is an implementation of the drinkorder.v1.ShopService service.
// ShopService serves shops, menus and the drink option catalog.
type ShopServiceHandler interface {
	ListShops(context.Context, *connect.Request[api.ListShopsRequest]) (*connect.Response[api.ListShopsResponse], error)
	GetShopMenu(context.Context, *connect.Request[api.GetShopMenuRequest]) (*connect.Response[api.GetShopMenuResponse], error)
	GetDrinkOptions(context.Context, *connect.Request[api.GetDrinkOptionsRequest]) (*connect.Response[api.GetDrinkOptionsResponse], error)
	UpdateDrinkOptions(context.Context, *connect.Request[api.UpdateDrinkOptionsRequest]) (*connect.Response[api.UpdateDrinkOptionsResponse], error)
}

// NewShopServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewShopServiceHandler(svc ShopServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	shopServiceListShopsHandler := connect.NewUnaryHandler(
		ShopServiceListShopsProcedure,
		svc.ListShops,
		opts...,
	)
	shopServiceGetShopMenuHandler := connect.NewUnaryHandler(
		ShopServiceGetShopMenuProcedure,
		svc.GetShopMenu,
		opts...,
	)
	shopServiceGetDrinkOptionsHandler := connect.NewUnaryHandler(
		ShopServiceGetDrinkOptionsProcedure,
		svc.GetDrinkOptions,
		opts...,
	)
	shopServiceUpdateDrinkOptionsHandler := connect.NewUnaryHandler(
		ShopServiceUpdateDrinkOptionsProcedure,
		svc.UpdateDrinkOptions,
		opts...,
	)
	return "/drinkorder.v1.ShopService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ShopServiceListShopsProcedure:
			shopServiceListShopsHandler.ServeHTTP(w, r)
		case ShopServiceGetShopMenuProcedure:
			shopServiceGetShopMenuHandler.ServeHTTP(w, r)
		case ShopServiceGetDrinkOptionsProcedure:
			shopServiceGetDrinkOptionsHandler.ServeHTTP(w, r)
		case ShopServiceUpdateDrinkOptionsProcedure:
			shopServiceUpdateDrinkOptionsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedShopServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedShopServiceHandler struct{}

func (UnimplementedShopServiceHandler) ListShops(context.Context, *connect.Request[api.ListShopsRequest]) (*connect.Response[api.ListShopsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.ShopService.ListShops is not implemented"))
}

func (UnimplementedShopServiceHandler) GetShopMenu(context.Context, *connect.Request[api.GetShopMenuRequest]) (*connect.Response[api.GetShopMenuResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.ShopService.GetShopMenu is not implemented"))
}

func (UnimplementedShopServiceHandler) GetDrinkOptions(context.Context, *connect.Request[api.GetDrinkOptionsRequest]) (*connect.Response[api.GetDrinkOptionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.ShopService.GetDrinkOptions is not implemented"))
}

func (UnimplementedShopServiceHandler) UpdateDrinkOptions(context.Context, *connect.Request[api.UpdateDrinkOptionsRequest]) (*connect.Response[api.UpdateDrinkOptionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.ShopService.UpdateDrinkOptions is not implemented"))
}
