package http

import (
	"net/http"
	"strconv"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/application/usecases/queries"
	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// DeliveryServer exposes the delivery service's REST API.
type DeliveryServer struct {
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	assignHandler         commands.AssignDeliveryCommandHandler
	updateStatusHandler   commands.UpdateDeliveryStatusCommandHandler
	deleteHandler         commands.DeleteDeliveryCommandHandler

	getAllHandler          queries.GetAllDeliveriesQueryHandler
	getDeliveryHandler     queries.GetDeliveryQueryHandler
	getByOrderTokenHandler queries.GetDeliveryByOrderTokenQueryHandler
}

// NewDeliveryServer creates the server with its command and query handlers.
func NewDeliveryServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignHandler commands.AssignDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	deleteHandler commands.DeleteDeliveryCommandHandler,
	getAllHandler queries.GetAllDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getByOrderTokenHandler queries.GetDeliveryByOrderTokenQueryHandler,
) *DeliveryServer {
	return &DeliveryServer{
		createDeliveryHandler:  createDeliveryHandler,
		assignHandler:          assignHandler,
		updateStatusHandler:    updateStatusHandler,
		deleteHandler:          deleteHandler,
		getAllHandler:          getAllHandler,
		getDeliveryHandler:     getDeliveryHandler,
		getByOrderTokenHandler: getByOrderTokenHandler,
	}
}

// RegisterRoutes mounts the delivery API under /api/v1/deliveries. The static
// /order segment must be registered alongside the :identifier routes; echo
// prefers the static match.
func (s *DeliveryServer) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/deliveries")
	g.POST("", s.Create, RequireOperation(identity.OpDeliveryCreate))
	g.GET("", s.List, RequireOperation(identity.OpDeliveryListAll))
	g.GET("/order/:order_token", s.GetByOrderToken, RequireOperation(identity.OpDeliveryGetByOrder))
	g.GET("/:identifier", s.Get, RequireOperation(identity.OpDeliveryGet))
	g.PATCH("/:identifier/assign", s.Assign, RequireOperation(identity.OpDeliveryAssign))
	g.PATCH("/:identifier/status", s.UpdateStatus, RequireOperation(identity.OpDeliveryUpdateStatus))
	g.DELETE("/:identifier", s.Delete, RequireOperation(identity.OpDeliveryDelete))
}

// Create handles POST /api/v1/deliveries. It is the manual counterpart of the
// fulfillment event consumer, for back-office repair.
func (s *DeliveryServer) Create(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderToken, err := kernel.UUIDFromString(req.OrderToken)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("order_token", err))
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderToken)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createDeliveryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, deliveryFromAggregate(created))
}

// List handles GET /api/v1/deliveries.
func (s *DeliveryServer) List(c echo.Context) error {
	result, err := s.getAllHandler.Handle(c.Request().Context(), queries.NewGetAllDeliveriesQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]DeliveryResponse, 0, len(result))
	for _, item := range result {
		response = append(response, deliveryFromReadModel(item))
	}
	return c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/deliveries/{identifier} with either the internal
// id or the public token.
func (s *DeliveryServer) Get(c echo.Context) error {
	query, err := s.deliveryLookupQuery(c.Param("identifier"))
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getDeliveryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryFromReadModel(result))
}

// GetByOrderToken handles GET /api/v1/deliveries/order/{order_token}.
func (s *DeliveryServer) GetByOrderToken(c echo.Context) error {
	orderToken, err := kernel.UUIDFromString(c.Param("order_token"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("order_token", err))
	}

	query, err := queries.NewGetDeliveryByOrderTokenQuery(orderToken)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getByOrderTokenHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryFromReadModel(result))
}

// Assign handles PATCH /api/v1/deliveries/{token}/assign.
func (s *DeliveryServer) Assign(c echo.Context) error {
	token, err := kernel.UUIDFromString(c.Param("identifier"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	var req AssignDeliveryRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	requestedStatus, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(
		bearerTokenFrom(c), token, req.DeliveryPersonID, requestedStatus)
	if err != nil {
		return writeError(c, err)
	}

	assigned, err := s.assignHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryFromAggregate(assigned))
}

// UpdateStatus handles PATCH /api/v1/deliveries/{token}/status.
func (s *DeliveryServer) UpdateStatus(c echo.Context) error {
	token, err := kernel.UUIDFromString(c.Param("identifier"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	var req UpdateDeliveryStatusRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	newStatus, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(claimsFrom(c), token, newStatus)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// Delete handles DELETE /api/v1/deliveries/{id}.
func (s *DeliveryServer) Delete(c echo.Context) error {
	deliveryID, err := strconv.ParseInt(c.Param("identifier"), 10, 64)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("identifier", err))
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *DeliveryServer) deliveryLookupQuery(identifier string) (queries.GetDeliveryQuery, error) {
	if deliveryID, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return queries.NewGetDeliveryByIDQuery(deliveryID)
	}

	token, err := kernel.UUIDFromString(identifier)
	if err != nil {
		return queries.GetDeliveryQuery{}, errs.NewValueIsInvalidErrorWithCause("identifier", err)
	}
	return queries.NewGetDeliveryByTokenQuery(token)
}
