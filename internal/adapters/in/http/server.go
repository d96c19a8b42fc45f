// Package http exposes the fulfillment use cases over a REST API built on
// echo. Handlers do no business logic: they parse the request, build a
// command or query, and map the result. Authorization lives in the use
// case layer, not here.
package http

import (
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	addCartItemHandler     commands.AddCartItemCommandHandler
	updateCartItemHandler  commands.UpdateCartItemCommandHandler
	removeCartItemHandler  commands.RemoveCartItemCommandHandler
	clearCartHandler       commands.ClearCartCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	orderStatusHandler     commands.UpdateOrderStatusCommandHandler
	paymentStatusHandler   commands.UpdatePaymentStatusCommandHandler
	createConsignHandler   commands.CreateConsignmentCommandHandler
	updateConsignHandler   commands.UpdateConsignmentCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	driverLocationHandler  commands.UpdateDriverLocationCommandHandler
	setStockHandler        commands.SetStockCommandHandler
	getCartHandler         queries.GetCartQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderByNumber       queries.GetOrderByNumberQueryHandler
	getConsignmentsHandler queries.GetConsignmentsQueryHandler
	getConsignmentHandler  queries.GetConsignmentQueryHandler
	getInventoryHandler    queries.GetInventoryQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	AddCartItem      commands.AddCartItemCommandHandler
	UpdateCartItem   commands.UpdateCartItemCommandHandler
	RemoveCartItem   commands.RemoveCartItemCommandHandler
	ClearCart        commands.ClearCartCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	OrderStatus      commands.UpdateOrderStatusCommandHandler
	PaymentStatus    commands.UpdatePaymentStatusCommandHandler
	CreateConsign    commands.CreateConsignmentCommandHandler
	UpdateConsign    commands.UpdateConsignmentCommandHandler
	AssignDriver     commands.AssignDriverCommandHandler
	DriverLocation   commands.UpdateDriverLocationCommandHandler
	SetStock         commands.SetStockCommandHandler
	GetCart          queries.GetCartQueryHandler
	GetOrders        queries.GetOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetOrderByNumber queries.GetOrderByNumberQueryHandler
	GetConsignments  queries.GetConsignmentsQueryHandler
	GetConsignment   queries.GetConsignmentQueryHandler
	GetInventory     queries.GetInventoryQueryHandler
}

// NewServer creates the HTTP server facade.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		addCartItemHandler:     handlers.AddCartItem,
		updateCartItemHandler:  handlers.UpdateCartItem,
		removeCartItemHandler:  handlers.RemoveCartItem,
		clearCartHandler:       handlers.ClearCart,
		createOrderHandler:     handlers.CreateOrder,
		orderStatusHandler:     handlers.OrderStatus,
		paymentStatusHandler:   handlers.PaymentStatus,
		createConsignHandler:   handlers.CreateConsign,
		updateConsignHandler:   handlers.UpdateConsign,
		assignDriverHandler:    handlers.AssignDriver,
		driverLocationHandler:  handlers.DriverLocation,
		setStockHandler:        handlers.SetStock,
		getCartHandler:         handlers.GetCart,
		getOrdersHandler:       handlers.GetOrders,
		getOrderHandler:        handlers.GetOrder,
		getOrderByNumber:       handlers.GetOrderByNumber,
		getConsignmentsHandler: handlers.GetConsignments,
		getConsignmentHandler:  handlers.GetConsignment,
		getInventoryHandler:    handlers.GetInventory,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", ActorMiddleware())

	api.GET("/cart", s.GetCart)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", s.RemoveCartItem)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/number/:orderNumber", s.GetOrderByNumber)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PATCH("/orders/:orderId/payment-status", s.UpdatePaymentStatus)

	api.POST("/consignments", s.CreateConsignment)
	api.GET("/consignments", s.GetConsignments)
	api.GET("/consignments/:consignmentId", s.GetConsignment)
	api.PATCH("/consignments/:consignmentId", s.UpdateConsignment)
	api.POST("/consignments/:consignmentId/driver", s.AssignDriver)

	api.POST("/drivers/:driverId/location", s.UpdateDriverLocation)

	api.GET("/warehouses/:warehouseId/inventory", s.GetInventory)
	api.PUT("/warehouses/:warehouseId/inventory/:productId", s.SetStock)
}

// GetCart handles GET /api/v1/cart. Admins may inspect another buyer's
// cart via the buyerId query parameter.
func (s *Server) GetCart(ctx echo.Context) error {
	actor := actorFrom(ctx)

	buyerID := actor.ID()
	if raw := ctx.QueryParam("buyerId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		buyerID = parsed
	}

	query, err := queries.NewGetCartQuery(actor, buyerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartToResponse(cart))
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	actor := actorFrom(ctx)

	buyerID := actor.ID()
	if request.BuyerID != "" {
		parsed, err := kernel.UUIDFromString(request.BuyerID)
		if err != nil {
			return respondError(ctx, err)
		}
		buyerID = parsed
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := kernel.UUIDFromString(request.WarehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(actor, buyerID, productID, warehouseID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:itemId.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	var request UpdateCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(actorFrom(ctx), itemID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(actorFrom(ctx), itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	actor := actorFrom(ctx)

	buyerID := actor.ID()
	if raw := ctx.QueryParam("buyerId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		buyerID = parsed
	}

	cmd, err := commands.NewClearCartCommand(actor, buyerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	actor := actorFrom(ctx)

	buyerID := actor.ID()
	if request.BuyerID != "" {
		parsed, err := kernel.UUIDFromString(request.BuyerID)
		if err != nil {
			return respondError(ctx, err)
		}
		buyerID = parsed
	}

	deliveryAddressID, err := kernel.UUIDFromString(request.DeliveryAddressID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, buyerID, deliveryAddressID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = parsed
	}

	page, perPage, err := paging(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actorFrom(ctx), status, page, perPage)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, model := range orders {
		response = append(response, orderToResponse(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actorFrom(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(model))
}

// GetOrderByNumber handles GET /api/v1/orders/number/:orderNumber.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(actorFrom(ctx), ctx.Param("orderNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(model))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorFrom(ctx), orderID, target, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.orderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePaymentStatus handles PATCH /api/v1/orders/:orderId/payment-status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	var request UpdatePaymentStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	target, err := order.PaymentStatusFromString(request.PaymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(actorFrom(ctx), orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.paymentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateConsignment handles POST /api/v1/consignments.
func (s *Server) CreateConsignment(ctx echo.Context) error {
	var request CreateConsignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := kernel.UUIDFromString(request.WarehouseID)
	if err != nil {
		return respondError(ctx, err)
	}
	pickupAddressID, err := kernel.UUIDFromString(request.PickupAddressID)
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := optionalUUID(request.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	consignmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateConsignmentCommand(actorFrom(ctx), consignmentID,
		orderID, warehouseID, pickupAddressID, driverID, request.EstimatedDeliveryAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createConsignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": consignmentID.String()})
}

// GetConsignments handles GET /api/v1/consignments.
func (s *Server) GetConsignments(ctx echo.Context) error {
	orderID, err := optionalUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := optionalUUIDParam(ctx, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := optionalUUIDParam(ctx, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	status := consignment.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := consignment.StatusFromString(raw)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		status = parsed
	}

	page, perPage, err := paging(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetConsignmentsQuery(actorFrom(ctx),
		orderID, warehouseID, driverID, status, page, perPage)
	if err != nil {
		return respondError(ctx, err)
	}

	consignments, err := s.getConsignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Consignment, 0, len(consignments))
	for _, model := range consignments {
		response = append(response, consignmentToResponse(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetConsignment handles GET /api/v1/consignments/:consignmentId.
func (s *Server) GetConsignment(ctx echo.Context) error {
	consignmentID, err := kernel.UUIDFromString(ctx.Param("consignmentId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetConsignmentQuery(actorFrom(ctx), consignmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getConsignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, consignmentToResponse(model))
}

// UpdateConsignment handles PATCH /api/v1/consignments/:consignmentId.
func (s *Server) UpdateConsignment(ctx echo.Context) error {
	var request UpdateConsignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	consignmentID, err := kernel.UUIDFromString(ctx.Param("consignmentId"))
	if err != nil {
		return respondError(ctx, err)
	}

	target := consignment.StatusUnknown
	if request.Status != "" {
		parsed, statusErr := consignment.StatusFromString(request.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		target = parsed
	}

	var point *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		p, pointErr := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if pointErr != nil {
			return respondError(ctx, pointErr)
		}
		point = &p
	}

	cmd, err := commands.NewUpdateConsignmentCommand(actorFrom(ctx), consignmentID,
		target, request.Note, point, request.DeliveredAt, request.EstimatedDeliveryAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateConsignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/consignments/:consignmentId/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	consignmentID, err := kernel.UUIDFromString(ctx.Param("consignmentId"))
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(actorFrom(ctx), consignmentID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverLocation handles POST /api/v1/drivers/:driverId/location.
// The ping is fanned out to the driver's moving consignments best-effort,
// so the endpoint acknowledges rather than confirms.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	var request DriverLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return respondError(ctx, err)
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(actorFrom(ctx), driverID, point)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.driverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetInventory handles GET /api/v1/warehouses/:warehouseId/inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.Param("warehouseId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetInventoryQuery(actorFrom(ctx), warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	records, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryRecord, 0, len(records))
	for _, model := range records {
		response = append(response, inventoryToResponse(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetStock handles PUT /api/v1/warehouses/:warehouseId/inventory/:productId.
func (s *Server) SetStock(ctx echo.Context) error {
	var request SetStockRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	warehouseID, err := kernel.UUIDFromString(ctx.Param("warehouseId"))
	if err != nil {
		return respondError(ctx, err)
	}
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetStockCommand(actorFrom(ctx), warehouseID, productID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func optionalUUIDParam(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func paging(ctx echo.Context) (int, int, error) {
	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return 0, 0, err
	}
	perPage, err := intQueryParam(ctx, "perPage")
	if err != nil {
		return 0, 0, err
	}
	return page, perPage, nil
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
