package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/application/usecases/queries"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/core/ports"
	"laundromart/internal/generated/servers"
	"laundromart/internal/pkg/errs"
	"laundromart/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
//
// Every order endpoint identifies the acting profile through the X-Actor-Id
// header. The server resolves that ID to a role before dispatching, so the
// use case layer always receives a verified actor.
type Server struct {
	// Command handlers
	registerProfileHandler commands.RegisterProfileCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	approveOrderHandler    commands.ApproveOrderCommandHandler
	rejectOrderHandler     commands.RejectOrderCommandHandler
	claimOrderHandler      commands.ClaimOrderCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	advanceOrderHandler    commands.AdvanceOrderCommandHandler

	// Query handlers
	getProfileHandler       queries.GetProfileQueryHandler
	listOrdersHandler       queries.ListOrdersForActorQueryHandler
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler
	getHubsHandler          queries.GetHubsQueryHandler
	getOrderStatsHandler    queries.GetOrderStatsQueryHandler

	changeStream ports.ChangeStream

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerProfileHandler commands.RegisterProfileCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	listOrdersHandler queries.ListOrdersForActorQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getHubsHandler queries.GetHubsQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	changeStream ports.ChangeStream,
) *Server {
	return &Server{
		registerProfileHandler:  registerProfileHandler,
		createOrderHandler:      createOrderHandler,
		approveOrderHandler:     approveOrderHandler,
		rejectOrderHandler:      rejectOrderHandler,
		claimOrderHandler:       claimOrderHandler,
		assignDriverHandler:     assignDriverHandler,
		advanceOrderHandler:     advanceOrderHandler,
		getProfileHandler:       getProfileHandler,
		listOrdersHandler:       listOrdersHandler,
		getOrderTrackingHandler: getOrderTrackingHandler,
		getHubsHandler:          getHubsHandler,
		getOrderStatsHandler:    getOrderStatsHandler,
		changeStream:            changeStream,
		validate:                validator.New(),
	}
}

// errorResponse maps a use case error to its HTTP status code and writes the
// JSON error body. Unrecognized errors become 500 without leaking details.
func errorResponse(ctx echo.Context, err error) error {
	var status int
	var message string

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrClaimConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// resolveActor turns the X-Actor-Id header value into the acting profile.
func (s *Server) resolveActor(
	ctx echo.Context,
	actorID openapi_types.UUID,
) (queries.GetProfileQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(actorID[:])
	if err != nil {
		return queries.GetProfileQueryResponse{}, err
	}

	query, err := queries.NewGetProfileQuery(id)
	if err != nil {
		return queries.GetProfileQueryResponse{}, err
	}

	return s.getProfileHandler.Handle(ctx.Request().Context(), query)
}

// RegisterProfile handles POST /api/v1/profiles - registers a new profile.
func (s *Server) RegisterProfile(ctx echo.Context) error {
	var newProfile servers.NewProfile
	if err := ctx.Bind(&newProfile); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := errors.Join(
		s.validate.Var(string(newProfile.Email), "required,email"),
		s.validate.Var(newProfile.FullName, "required"),
		s.validate.Var(newProfile.Phone, "required"),
	); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid profile data: " + err.Error(),
		})
	}

	role, err := profile.RoleFromString(string(newProfile.Role))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterProfileCommand(
		kernel.NewUUID(),
		role,
		newProfile.FullName,
		string(newProfile.Email),
		newProfile.Phone,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetHubs handles GET /api/v1/hubs - retrieves the hub catalog.
func (s *Server) GetHubs(ctx echo.Context) error {
	query := queries.NewGetHubsQuery()

	hubs, err := s.getHubsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Hub, len(hubs))
	for i, laundryHub := range hubs {
		services := make([]servers.ServiceType, len(laundryHub.Services))
		for j, serviceType := range laundryHub.Services {
			services[j] = servers.ServiceType(serviceType.String())
		}

		response[i] = servers.Hub{
			Id:        laundryHub.ID.Bytes(),
			Name:      laundryHub.Name,
			Address:   laundryHub.Address,
			Phone:     laundryHub.Phone,
			Latitude:  laundryHub.Location.Latitude(),
			Longitude: laundryHub.Location.Longitude(),
			Services:  services,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the acting customer.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := errors.Join(
		s.validate.Var(newOrder.GarmentCount, "gte=1,lte=500"),
		s.validate.Var(newOrder.PickupAddress, "required"),
	); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	customerID, err := kernel.UUIDFromBytes(params.XActorId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	hubID, err := kernel.UUIDFromBytes(newOrder.HubId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	serviceType, err := order.ServiceTypeFromString(string(newOrder.ServiceType))
	if err != nil {
		return errorResponse(ctx, err)
	}

	specialInstructions := ""
	if newOrder.SpecialInstructions != nil {
		specialInstructions = *newOrder.SpecialInstructions
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		hubID,
		serviceType,
		newOrder.GarmentCount,
		newOrder.PickupAddress,
		specialInstructions,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.OrdersCreatedTotal.Inc()

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Id:          orderID.Bytes(),
		TotalAmount: serviceType.UnitPrice() * newOrder.GarmentCount,
	})
}

// ListOrders handles GET /api/v1/orders - lists orders visible to the actor.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, err := s.resolveActor(ctx, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var statusFilter *order.Status
	if params.Status != nil {
		status, statusErr := order.StatusFromString(string(*params.Status))
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersForActorQuery(actor.ID, actor.Role, statusFilter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/orders/stats - admin-only order book statistics.
func (s *Server) GetOrderStats(ctx echo.Context, params servers.GetOrderStatsParams) error {
	actor, err := s.resolveActor(ctx, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if actor.Role != profile.Admin {
		return errorResponse(ctx,
			errs.NewPermissionDeniedError(actor.Role.String(), "view order stats"))
	}

	stats, err := s.getOrderStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStats{
		StatusCounts:     stats.StatusCounts,
		DeliveredRevenue: stats.DeliveredRevenue,
		Commission:       stats.Commission,
	})
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(
	ctx echo.Context, orderId openapi_types.UUID, params servers.ApproveOrderParams,
) error {
	orderID, adminID, err := bindOrderActor(orderId, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, adminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(
	ctx echo.Context, orderId openapi_types.UUID, params servers.RejectOrderParams,
) error {
	orderID, adminID, err := bindOrderActor(orderId, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, adminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim - the acting driver
// attempts to take the order. Of concurrent claims exactly one succeeds; the
// rest receive 409.
func (s *Server) ClaimOrder(
	ctx echo.Context, orderId openapi_types.UUID, params servers.ClaimOrderParams,
) error {
	orderID, driverID, err := bindOrderActor(orderId, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrClaimConflict) {
			metrics.ClaimConflictsTotal.Inc()
		}
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign - the acting admin
// attaches a specific driver to an approved order.
func (s *Server) AssignDriver(
	ctx echo.Context, orderId openapi_types.UUID, params servers.AssignDriverParams,
) error {
	var body servers.AssignDriver
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, adminID, err := bindOrderActor(orderId, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, adminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrClaimConflict) {
			metrics.ClaimConflictsTotal.Inc()
		}
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - the assigned
// driver moves the order one step along the delivery chain, optionally
// reporting a location for the tracking log.
func (s *Server) AdvanceOrder(
	ctx echo.Context, orderId openapi_types.UUID, params servers.AdvanceOrderParams,
) error {
	var body servers.AdvanceOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, driverID, err := bindOrderActor(orderId, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var location *kernel.Location
	if body.Latitude != nil && body.Longitude != nil {
		loc, locErr := kernel.NewLocation(*body.Latitude, *body.Longitude)
		if locErr != nil {
			return errorResponse(ctx, locErr)
		}
		location = &loc
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, driverID, location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetOrderTracking(
	ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderTrackingParams,
) error {
	actor, err := s.resolveActor(ctx, params.XActorId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID, actor.ID, actor.Role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	events, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.TrackingEvent, len(events))
	for i, event := range events {
		trackingEvent := servers.TrackingEvent{
			Id:            event.ID.Bytes(),
			DriverId:      event.DriverID.Bytes(),
			StatusMessage: event.StatusMessage,
			CreatedAt:     event.CreatedAt,
		}
		if event.Location != nil {
			latitude := event.Location.Latitude()
			longitude := event.Location.Longitude()
			trackingEvent.Latitude = &latitude
			trackingEvent.Longitude = &longitude
		}
		response[i] = trackingEvent
	}

	return ctx.JSON(http.StatusOK, response)
}

// StreamOrderEvents handles GET /api/v1/orders/events - a server-sent event
// stream of committed order changes. The stream stays open until the client
// disconnects. Delivery is at-least-once; clients re-fetch on each event.
func (s *Server) StreamOrderEvents(ctx echo.Context) error {
	events, cancel := s.changeStream.Subscribe()
	defer cancel()

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	requestCtx := ctx.Request().Context()
	for {
		select {
		case <-requestCtx.Done():
			return nil
		case change, ok := <-events:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(change)
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(response, "data: %s\n\n", payload); err != nil {
				return err
			}
			response.Flush()
		}
	}
}

// bindOrderActor converts the order path parameter and the actor header into
// domain identifiers.
func bindOrderActor(
	orderId openapi_types.UUID, actorId openapi_types.UUID,
) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	actorID, err := kernel.UUIDFromBytes(actorId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, actorID, nil
}

// toOrderResponse maps an order read model onto the wire schema.
func toOrderResponse(o queries.ListOrdersForActorQueryResponse) servers.Order {
	response := servers.Order{
		Id:              o.ID.Bytes(),
		CustomerId:      o.CustomerID.Bytes(),
		HubId:           o.HubID.Bytes(),
		ServiceType:     servers.ServiceType(o.ServiceType.String()),
		GarmentCount:    o.GarmentCount,
		PickupAddress:   o.PickupAddress,
		TotalAmount:     o.TotalAmount,
		Status:          servers.OrderStatus(o.Status.String()),
		AdminApprovedAt: o.AdminApprovedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	if o.DriverID != nil {
		driverID := o.DriverID.Bytes()
		response.DriverId = &driverID
	}
	if o.SpecialInstructions != "" {
		specialInstructions := o.SpecialInstructions
		response.SpecialInstructions = &specialInstructions
	}

	return response
}
