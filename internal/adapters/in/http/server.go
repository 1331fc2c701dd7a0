// Package http exposes the application's operations over an echo HTTP server.
// Buyers are identified by the X-Buyer-ID header the API gateway injects
// after authentication; couriers address their read models by path
// parameter.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agrikart/internal/core/application/usecases/commands"
	"agrikart/internal/core/application/usecases/queries"
	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
	"agrikart/internal/core/domain/model/produce"
	"agrikart/internal/core/ports"
	"agrikart/internal/pkg/errs"
)

const buyerIDHeader = "X-Buyer-ID"

// sessionTTL bounds how long an abandoned assistant conversation survives.
const sessionTTL = 30 * time.Minute

// Server handles HTTP requests and coordinates between handlers and
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createCourierHandler     commands.CreateCourierCommandHandler
	addCartItemHandler       commands.AddCartItemCommandHandler

	// Query handlers
	nearbyOrdersHandler   queries.NearbyOrdersQueryHandler
	assignedOrdersHandler queries.AssignedOrdersQueryHandler

	// Conversation state for the messaging collaborator
	sessions ports.SessionStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	nearbyOrdersHandler queries.NearbyOrdersQueryHandler,
	assignedOrdersHandler queries.AssignedOrdersQueryHandler,
	sessions ports.SessionStore,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		createCourierHandler:     createCourierHandler,
		addCartItemHandler:       addCartItemHandler,
		nearbyOrdersHandler:      nearbyOrdersHandler,
		assignedOrdersHandler:    assignedOrdersHandler,
		sessions:                 sessions,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/couriers", s.CreateCourier)
	v1.GET("/couriers/:courierID/nearby-orders", s.GetNearbyOrders)
	v1.GET("/couriers/:courierID/assigned-orders", s.GetAssignedOrders)
	v1.POST("/cart/items", s.AddCartItem)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	v1.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	v1.GET("/sessions/:userID", s.GetSession)
	v1.PUT("/sessions/:userID", s.PutSession)
	v1.DELETE("/sessions/:userID", s.DeleteSession)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateCourier handles POST /api/v1/couriers - registers a logistics partner.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var request CreateCourierRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	coordinate, err := kernel.NewCoordinate(request.Latitude, request.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid coordinate: "+err.Error())
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(
		courierID, request.Name, request.Phone, request.Address, coordinate)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrValueIsRequired),
			errors.Is(handleErr, errs.ErrValueIsInvalid),
			errors.Is(handleErr, errs.ErrValueIsOutOfRange):
			return badRequest(ctx, "Invalid courier data: "+handleErr.Error())
		case isNotFound(handleErr):
			return notFound(ctx, "Courier not found")
		default:
			return internalError(ctx, "Failed to create courier")
		}
	}

	return ctx.JSON(http.StatusCreated, CreateCourierResponse{ID: courierID.String()})
}

// AddCartItem handles POST /api/v1/cart/items - adds a line to the buyer's cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	buyerID, err := buyerIdentity(ctx)
	if err != nil {
		return err
	}

	var request AddCartItemRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	produceID, err := kernel.UUIDFromString(request.ProduceID)
	if err != nil {
		return badRequest(ctx, "Invalid produce id")
	}

	cmd, err := commands.NewAddCartItemCommand(buyerID, produceID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart line: "+err.Error())
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if isNotFound(handleErr) {
			return notFound(ctx, "Produce not found")
		}
		return internalError(ctx, "Failed to add cart line")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders - turns the buyer's cart into an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	buyerID, err := buyerIdentity(ctx)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var stockErr *produce.InsufficientStockError
		switch {
		case errors.Is(handleErr, commands.ErrEmptyCart):
			return badRequest(ctx, "Cart is empty")
		case errors.As(handleErr, &stockErr):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: stockErr.Error(),
			})
		case isNotFound(handleErr):
			return notFound(ctx, "Buyer not found")
		default:
			return internalError(ctx, "Failed to create order")
		}
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	buyerID, err := buyerIdentity(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, buyerID)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if isNotFound(handleErr) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, request.Status)
	if err != nil {
		var statusErr *order.InvalidStatusError
		if errors.As(err, &statusErr) {
			return badRequest(ctx, statusErr.Error())
		}
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if isNotFound(handleErr) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNearbyOrders handles GET /api/v1/couriers/:courierID/nearby-orders.
func (s *Server) GetNearbyOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewNearbyOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.nearbyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, "Courier not found")
		}
		return internalError(ctx, "Failed to retrieve nearby orders")
	}

	response := make([]NearbyOrder, len(rows))
	for i, row := range rows {
		response[i] = NearbyOrder{
			ID:            row.OrderID.String(),
			Status:        row.Status,
			BuyerAddress:  row.BuyerAddress,
			FarmerName:    row.FarmerName,
			FarmerAddress: row.FarmerAddress,
			FarmerLat:     row.FarmerLat,
			FarmerLon:     row.FarmerLon,
			DistanceKm:    row.DistanceKm,
			Items:         orderItems(row.Items),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignedOrders handles GET /api/v1/couriers/:courierID/assigned-orders.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewAssignedOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.assignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve assigned orders")
	}

	response := make([]AssignedOrder, len(rows))
	for i, row := range rows {
		response[i] = AssignedOrder{
			ID:           row.OrderID.String(),
			Status:       row.Status,
			BuyerAddress: row.BuyerAddress,
			DistanceKm:   row.DistanceKm,
			AssignedAt:   row.AssignedAt,
			Items:        orderItems(row.Items),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSession handles GET /api/v1/sessions/:userID - reads the assistant's
// conversation state for a user.
func (s *Server) GetSession(ctx echo.Context) error {
	session, err := s.sessions.Get(ctx.Request().Context(), ctx.Param("userID"))
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return notFound(ctx, "Session not found")
		}
		return internalError(ctx, "Failed to read session")
	}

	return ctx.JSON(http.StatusOK, session)
}

// PutSession handles PUT /api/v1/sessions/:userID - stores the assistant's
// conversation state, resetting its expiry.
func (s *Server) PutSession(ctx echo.Context) error {
	var session ports.Session
	if err := ctx.Bind(&session); err != nil {
		return badRequest(ctx, "Invalid session body")
	}

	err := s.sessions.Set(ctx.Request().Context(), ctx.Param("userID"), session, sessionTTL)
	if err != nil {
		return internalError(ctx, "Failed to store session")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteSession handles DELETE /api/v1/sessions/:userID.
func (s *Server) DeleteSession(ctx echo.Context) error {
	if err := s.sessions.Delete(ctx.Request().Context(), ctx.Param("userID")); err != nil {
		return internalError(ctx, "Failed to delete session")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderItems(items []queries.NearbyOrderItem) []OrderItem {
	result := make([]OrderItem, len(items))
	for i, item := range items {
		result[i] = OrderItem{Name: item.Name, Quantity: item.Quantity}
	}
	return result
}

func buyerIdentity(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(buyerIDHeader)
	if header == "" {
		return kernel.UUID{}, ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing " + buyerIDHeader + " header",
		})
	}

	buyerID, err := kernel.UUIDFromString(header)
	if err != nil {
		return kernel.UUID{}, ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid " + buyerIDHeader + " header",
		})
	}

	return buyerID, nil
}

func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(request); err != nil {
		return badRequest(ctx, "Invalid request body: "+err.Error())
	}
	return nil
}

func isNotFound(err error) bool {
	var notFoundErr *errs.ObjectNotFoundError
	return errors.As(err, &notFoundErr)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
