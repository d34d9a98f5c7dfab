package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/pkg/api"
)

// GroupOrderServiceName is the fully-qualified name of the GroupOrderService service.
const GroupOrderServiceName = "drinkorder.v1.GroupOrderService"

// These constants are the fully-qualified names of the RPCs defined in this
// service, in the form /package.Service/Method.
const (
	GroupOrderServiceCreateGroupOrderProcedure       = "/drinkorder.v1.GroupOrderService/CreateGroupOrder"
	GroupOrderServiceGetGroupOrderProcedure          = "/drinkorder.v1.GroupOrderService/GetGroupOrder"
	GroupOrderServiceListGroupOrdersProcedure        = "/drinkorder.v1.GroupOrderService/ListGroupOrders"
	GroupOrderServiceUpdateGroupOrderStatusProcedure = "/drinkorder.v1.GroupOrderService/UpdateGroupOrderStatus"
	GroupOrderServiceDeleteGroupOrderProcedure       = "/drinkorder.v1.GroupOrderService/DeleteGroupOrder"
	GroupOrderServiceAddOrderItemProcedure           = "/drinkorder.v1.GroupOrderService/AddOrderItem"
	GroupOrderServiceUpdateOrderItemProcedure        = "/drinkorder.v1.GroupOrderService/UpdateOrderItem"
	GroupOrderServiceRemoveOrderItemProcedure        = "/drinkorder.v1.GroupOrderService/RemoveOrderItem"
)

// GroupOrderServiceClient is a client for the drinkorder.v1.GroupOrderService service.
type GroupOrderServiceClient interface {
	CreateGroupOrder(context.Context, *connect.Request[api.CreateGroupOrderRequest]) (*connect.Response[api.CreateGroupOrderResponse], error)
	GetGroupOrder(context.Context, *connect.Request[api.GetGroupOrderRequest]) (*connect.Response[api.GetGroupOrderResponse], error)
	ListGroupOrders(context.Context, *connect.Request[api.ListGroupOrdersRequest]) (*connect.Response[api.ListGroupOrdersResponse], error)
	UpdateGroupOrderStatus(context.Context, *connect.Request[api.UpdateGroupOrderStatusRequest]) (*connect.Response[api.UpdateGroupOrderStatusResponse], error)
	DeleteGroupOrder(context.Context, *connect.Request[api.DeleteGroupOrderRequest]) (*connect.Response[api.DeleteGroupOrderResponse], error)
	AddOrderItem(context.Context, *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error)
	UpdateOrderItem(context.Context, *connect.Request[api.UpdateOrderItemRequest]) (*connect.Response[api.UpdateOrderItemResponse], error)
	RemoveOrderItem(context.Context, *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error)
}

// NewGroupOrderServiceClient constructs a client for the drinkorder.v1.GroupOrderService service. Requests
// are encoded with api.Codec.
func NewGroupOrderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupOrderServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &groupOrderServiceClient{
		createGroupOrder: connect.NewClient[api.CreateGroupOrderRequest, api.CreateGroupOrderResponse](
			httpClient,
			baseURL+GroupOrderServiceCreateGroupOrderProcedure,
			opts...,
		),
		getGroupOrder: connect.NewClient[api.GetGroupOrderRequest, api.GetGroupOrderResponse](
			httpClient,
			baseURL+GroupOrderServiceGetGroupOrderProcedure,
			opts...,
		),
		listGroupOrders: connect.NewClient[api.ListGroupOrdersRequest, api.ListGroupOrdersResponse](
			httpClient,
			baseURL+GroupOrderServiceListGroupOrdersProcedure,
			opts...,
		),
		updateGroupOrderStatus: connect.NewClient[api.UpdateGroupOrderStatusRequest, api.UpdateGroupOrderStatusResponse](
			httpClient,
			baseURL+GroupOrderServiceUpdateGroupOrderStatusProcedure,
			opts...,
		),
		deleteGroupOrder: connect.NewClient[api.DeleteGroupOrderRequest, api.DeleteGroupOrderResponse](
			httpClient,
			baseURL+GroupOrderServiceDeleteGroupOrderProcedure,
			opts...,
		),
		addOrderItem: connect.NewClient[api.AddOrderItemRequest, api.AddOrderItemResponse](
			httpClient,
			baseURL+GroupOrderServiceAddOrderItemProcedure,
			opts...,
		),
		updateOrderItem: connect.NewClient[api.UpdateOrderItemRequest, api.UpdateOrderItemResponse](
			httpClient,
			baseURL+GroupOrderServiceUpdateOrderItemProcedure,
			opts...,
		),
		removeOrderItem: connect.NewClient[api.RemoveOrderItemRequest, api.RemoveOrderItemResponse](
			httpClient,
			baseURL+GroupOrderServiceRemoveOrderItemProcedure,
			opts...,
		),
	}
}

// groupOrderServiceClient implements GroupOrderServiceClient.
type groupOrderServiceClient struct {
	createGroupOrder       *connect.Client[api.CreateGroupOrderRequest, api.CreateGroupOrderResponse]
	getGroupOrder          *connect.Client[api.GetGroupOrderRequest, api.GetGroupOrderResponse]
	listGroupOrders        *connect.Client[api.ListGroupOrdersRequest, api.ListGroupOrdersResponse]
	updateGroupOrderStatus *connect.Client[api.UpdateGroupOrderStatusRequest, api.UpdateGroupOrderStatusResponse]
	deleteGroupOrder       *connect.Client[api.DeleteGroupOrderRequest, api.DeleteGroupOrderResponse]
	addOrderItem           *connect.Client[api.AddOrderItemRequest, api.AddOrderItemResponse]
	updateOrderItem        *connect.Client[api.UpdateOrderItemRequest, api.UpdateOrderItemResponse]
	removeOrderItem        *connect.Client[api.RemoveOrderItemRequest, api.RemoveOrderItemResponse]
}

// CreateGroupOrder calls drinkorder.v1.GroupOrderService.CreateGroupOrder.
func (c *groupOrderServiceClient) CreateGroupOrder(ctx context.Context, req *connect.Request[api.CreateGroupOrderRequest]) (*connect.Response[api.CreateGroupOrderResponse], error) {
	return c.createGroupOrder.CallUnary(ctx, req)
}

// GetGroupOrder calls drinkorder.v1.GroupOrderService.GetGroupOrder.
func (c *groupOrderServiceClient) GetGroupOrder(ctx context.Context, req *connect.Request[api.GetGroupOrderRequest]) (*connect.Response[api.GetGroupOrderResponse], error) {
	return c.getGroupOrder.CallUnary(ctx, req)
}

// ListGroupOrders calls drinkorder.v1.GroupOrderService.ListGroupOrders.
func (c *groupOrderServiceClient) ListGroupOrders(ctx context.Context, req *connect.Request[api.ListGroupOrdersRequest]) (*connect.Response[api.ListGroupOrdersResponse], error) {
	return c.listGroupOrders.CallUnary(ctx, req)
}

// UpdateGroupOrderStatus calls drinkorder.v1.GroupOrderService.UpdateGroupOrderStatus.
func (c *groupOrderServiceClient) UpdateGroupOrderStatus(ctx context.Context, req *connect.Request[api.UpdateGroupOrderStatusRequest]) (*connect.Response[api.UpdateGroupOrderStatusResponse], error) {
	return c.updateGroupOrderStatus.CallUnary(ctx, req)
}

// DeleteGroupOrder calls drinkorder.v1.GroupOrderService.DeleteGroupOrder.
func (c *groupOrderServiceClient) DeleteGroupOrder(ctx context.Context, req *connect.Request[api.DeleteGroupOrderRequest]) (*connect.Response[api.DeleteGroupOrderResponse], error) {
	return c.deleteGroupOrder.CallUnary(ctx, req)
}

// AddOrderItem calls drinkorder.v1.GroupOrderService.AddOrderItem.
func (c *groupOrderServiceClient) AddOrderItem(ctx context.Context, req *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error) {
	return c.addOrderItem.CallUnary(ctx, req)
}

// UpdateOrderItem calls drinkorder.v1.GroupOrderService.UpdateOrderItem.
func (c *groupOrderServiceClient) UpdateOrderItem(ctx context.Context, req *connect.Request[api.UpdateOrderItemRequest]) (*connect.Response[api.UpdateOrderItemResponse], error) {
	return c.updateOrderItem.CallUnary(ctx, req)
}

// RemoveOrderItem calls drinkorder.v1.GroupOrderService.RemoveOrderItem.
func (c *groupOrderServiceClient) RemoveOrderItem(ctx context.Context, req *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error) {
	return c.removeOrderItem.CallUnary(ctx, req)
}

// GroupOrderServiceHandler is an implementation of the drinkorder.v1.GroupOrderService service.
// GroupOrderService manages group orders and their line items.
type GroupOrderServiceHandler interface {
	CreateGroupOrder(context.Context, *connect.Request[api.CreateGroupOrderRequest]) (*connect.Response[api.CreateGroupOrderResponse], error)
	GetGroupOrder(context.Context, *connect.Request[api.GetGroupOrderRequest]) (*connect.Response[api.GetGroupOrderResponse], error)
	ListGroupOrders(context.Context, *connect.Request[api.ListGroupOrdersRequest]) (*connect.Response[api.ListGroupOrdersResponse], error)
	UpdateGroupOrderStatus(context.Context, *connect.Request[api.UpdateGroupOrderStatusRequest]) (*connect.Response[api.UpdateGroupOrderStatusResponse], error)
	DeleteGroupOrder(context.Context, *connect.Request[api.DeleteGroupOrderRequest]) (*connect.Response[api.DeleteGroupOrderResponse], error)
	AddOrderItem(context.Context, *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error)
	UpdateOrderItem(context.Context, *connect.Request[api.UpdateOrderItemRequest]) (*connect.Response[api.UpdateOrderItemResponse], error)
	RemoveOrderItem(context.Context, *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error)
}

// NewGroupOrderServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGroupOrderServiceHandler(svc GroupOrderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	groupOrderServiceCreateGroupOrderHandler := connect.NewUnaryHandler(
		GroupOrderServiceCreateGroupOrderProcedure,
		svc.CreateGroupOrder,
		opts...,
	)
	groupOrderServiceGetGroupOrderHandler := connect.NewUnaryHandler(
		GroupOrderServiceGetGroupOrderProcedure,
		svc.GetGroupOrder,
		opts...,
	)
	groupOrderServiceListGroupOrdersHandler := connect.NewUnaryHandler(
		GroupOrderServiceListGroupOrdersProcedure,
		svc.ListGroupOrders,
		opts...,
	)
	groupOrderServiceUpdateGroupOrderStatusHandler := connect.NewUnaryHandler(
		GroupOrderServiceUpdateGroupOrderStatusProcedure,
		svc.UpdateGroupOrderStatus,
		opts...,
	)
	groupOrderServiceDeleteGroupOrderHandler := connect.NewUnaryHandler(
		GroupOrderServiceDeleteGroupOrderProcedure,
		svc.DeleteGroupOrder,
		opts...,
	)
	groupOrderServiceAddOrderItemHandler := connect.NewUnaryHandler(
		GroupOrderServiceAddOrderItemProcedure,
		svc.AddOrderItem,
		opts...,
	)
	groupOrderServiceUpdateOrderItemHandler := connect.NewUnaryHandler(
		GroupOrderServiceUpdateOrderItemProcedure,
		svc.UpdateOrderItem,
		opts...,
	)
	groupOrderServiceRemoveOrderItemHandler := connect.NewUnaryHandler(
		GroupOrderServiceRemoveOrderItemProcedure,
		svc.RemoveOrderItem,
		opts...,
	)
	return "/drinkorder.v1.GroupOrderService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroupOrderServiceCreateGroupOrderProcedure:
			groupOrderServiceCreateGroupOrderHandler.ServeHTTP(w, r)
		case GroupOrderServiceGetGroupOrderProcedure:
			groupOrderServiceGetGroupOrderHandler.ServeHTTP(w, r)
		case GroupOrderServiceListGroupOrdersProcedure:
			groupOrderServiceListGroupOrdersHandler.ServeHTTP(w, r)
		case GroupOrderServiceUpdateGroupOrderStatusProcedure:
			groupOrderServiceUpdateGroupOrderStatusHandler.ServeHTTP(w, r)
		case GroupOrderServiceDeleteGroupOrderProcedure:
			groupOrderServiceDeleteGroupOrderHandler.ServeHTTP(w, r)
		case GroupOrderServiceAddOrderItemProcedure:
			groupOrderServiceAddOrderItemHandler.ServeHTTP(w, r)
		case GroupOrderServiceUpdateOrderItemProcedure:
			groupOrderServiceUpdateOrderItemHandler.ServeHTTP(w, r)
		case GroupOrderServiceRemoveOrderItemProcedure:
			groupOrderServiceRemoveOrderItemHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedGroupOrderServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupOrderServiceHandler struct{}

func (UnimplementedGroupOrderServiceHandler) CreateGroupOrder(context.Context, *connect.Request[api.CreateGroupOrderRequest]) (*connect.Response[api.CreateGroupOrderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.CreateGroupOrder is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) GetGroupOrder(context.Context, *connect.Request[api.GetGroupOrderRequest]) (*connect.Response[api.GetGroupOrderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.GetGroupOrder is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) ListGroupOrders(context.Context, *connect.Request[api.ListGroupOrdersRequest]) (*connect.Response[api.ListGroupOrdersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.ListGroupOrders is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) UpdateGroupOrderStatus(context.Context, *connect.Request[api.UpdateGroupOrderStatusRequest]) (*connect.Response[api.UpdateGroupOrderStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.UpdateGroupOrderStatus is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) DeleteGroupOrder(context.Context, *connect.Request[api.DeleteGroupOrderRequest]) (*connect.Response[api.DeleteGroupOrderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.DeleteGroupOrder is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) AddOrderItem(context.Context, *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.AddOrderItem is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) UpdateOrderItem(context.Context, *connect.Request[api.UpdateOrderItemRequest]) (*connect.Response[api.UpdateOrderItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.UpdateOrderItem is not implemented"))
}

func (UnimplementedGroupOrderServiceHandler) RemoveOrderItem(context.Context, *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinkorder.v1.GroupOrderService.RemoveOrderItem is not implemented"))
}
