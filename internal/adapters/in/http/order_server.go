package http

import (
	"net/http"
	"strconv"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/application/usecases/queries"
	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OrderServer exposes the order service's REST API.
type OrderServer struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelHandler       commands.CancelOrderCommandHandler
	deleteHandler       commands.DeleteOrderCommandHandler

	getAllHandler     queries.GetAllOrdersQueryHandler
	historyHandler    queries.GetOrderHistoryQueryHandler
	getByIDHandler    queries.GetOrderByIDQueryHandler
	getByTokenHandler queries.GetOrderByTokenQueryHandler
	getStatusHandler  queries.GetOrderStatusQueryHandler
}

// NewOrderServer creates the server with its command and query handlers.
func NewOrderServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	deleteHandler commands.DeleteOrderCommandHandler,
	getAllHandler queries.GetAllOrdersQueryHandler,
	historyHandler queries.GetOrderHistoryQueryHandler,
	getByIDHandler queries.GetOrderByIDQueryHandler,
	getByTokenHandler queries.GetOrderByTokenQueryHandler,
	getStatusHandler queries.GetOrderStatusQueryHandler,
) *OrderServer {
	return &OrderServer{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		cancelHandler:       cancelHandler,
		deleteHandler:       deleteHandler,
		getAllHandler:       getAllHandler,
		historyHandler:      historyHandler,
		getByIDHandler:      getByIDHandler,
		getByTokenHandler:   getByTokenHandler,
		getStatusHandler:    getStatusHandler,
	}
}

// RegisterRoutes mounts the order API under /api/v1/orders.
func (s *OrderServer) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/orders")
	g.POST("", s.Create, RequireOperation(identity.OpOrderCreate))
	g.GET("", s.List, RequireOperation(identity.OpOrderListAll))
	g.GET("/history", s.History, RequireOperation(identity.OpOrderHistory))
	g.GET("/:identifier", s.Get)
	g.GET("/:identifier/status", s.GetStatus, RequireOperation(identity.OpOrderGetStatus))
	g.PATCH("/:identifier/status", s.UpdateStatus, RequireOperation(identity.OpOrderSetStatus))
	g.POST("/:identifier/cancel", s.Cancel, RequireOperation(identity.OpOrderCancel))
	g.DELETE("/:identifier", s.Delete, RequireOperation(identity.OpOrderDelete))
}

// Create handles POST /api/v1/orders.
func (s *OrderServer) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		claimsFrom(c), bearerTokenFrom(c), req.LocationCode, items, req.DeliveryAddress)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromAggregate(created))
}

// List handles GET /api/v1/orders.
func (s *OrderServer) List(c echo.Context) error {
	result, err := s.getAllHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderResponse, 0, len(result))
	for _, summary := range result {
		response = append(response, orderFromSummary(summary))
	}
	return c.JSON(http.StatusOK, response)
}

// History handles GET /api/v1/orders/history.
func (s *OrderServer) History(c echo.Context) error {
	query, err := queries.NewGetOrderHistoryQuery(claimsFrom(c).UserID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.historyHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderResponse, 0, len(result))
	for _, summary := range result {
		response = append(response, orderFromSummary(summary))
	}
	return c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/orders/{identifier}. A numeric identifier is the
// internal sequence id and stays back-office; anything else is treated as a
// public token.
func (s *OrderServer) Get(c echo.Context) error {
	identifier := c.Param("identifier")

	if orderID, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		if !identity.Allowed(identity.OpOrderGetByID, claimsFrom(c).Role) {
			return writeError(c, errs.NewForbiddenError("lookup by id is restricted"))
		}

		query, queryErr := queries.NewGetOrderByIDQuery(orderID)
		if queryErr != nil {
			return writeError(c, queryErr)
		}

		result, queryErr := s.getByIDHandler.Handle(c.Request().Context(), query)
		if queryErr != nil {
			return writeError(c, queryErr)
		}
		return c.JSON(http.StatusOK, orderFromReadModel(result))
	}

	token, err := kernel.UUIDFromString(identifier)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	query, err := queries.NewGetOrderByTokenQuery(token)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getByTokenHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromReadModel(result))
}

// GetStatus handles GET /api/v1/orders/{token}/status.
func (s *OrderServer) GetStatus(c echo.Context) error {
	token, err := kernel.UUIDFromString(c.Param("identifier"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	query, err := queries.NewGetOrderStatusQuery(claimsFrom(c), token)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderStatusResponse{
		Token:      result.Token.String(),
		Status:     result.Status,
		TotalPrice: result.TotalPrice,
		CreatedAt:  result.CreatedAt,
	})
}

// UpdateStatus handles PATCH /api/v1/orders/{token}/status.
func (s *OrderServer) UpdateStatus(c echo.Context) error {
	token, err := kernel.UUIDFromString(c.Param("identifier"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	var req UpdateOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(token, newStatus)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// Cancel handles POST /api/v1/orders/{token}/cancel.
func (s *OrderServer) Cancel(c echo.Context) error {
	token, err := kernel.UUIDFromString(c.Param("identifier"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	cmd, err := commands.NewCancelOrderCommand(claimsFrom(c), token)
	if err != nil {
		return writeError(c, err)
	}

	cancelled, err := s.cancelHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// Delete handles DELETE /api/v1/orders/{id}.
func (s *OrderServer) Delete(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("identifier"), 10, 64)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
