// Package http adapts the generated ServerInterface onto the application's
// command and query handlers. The adapter parses transport identifiers,
// builds commands and translates domain errors into HTTP statuses; it holds
// no business rules of its own.
package http

import (
	"errors"
	"net/http"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/application/usecases/queries"
	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/generated/servers"
	"studyhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	takeOrderHandler           commands.TakeOrderCommandHandler
	transitionOrderHandler     commands.TransitionOrderCommandHandler
	openDisputeHandler         commands.OpenDisputeCommandHandler
	assignArbitratorHandler    commands.AssignArbitratorCommandHandler
	resolveDisputeHandler      commands.ResolveDisputeCommandHandler
	createRatingHandler        commands.CreateRatingCommandHandler
	addSpecializationHandler   commands.AddSpecializationCommandHandler
	recomputeStatisticsHandler commands.RecomputeStatisticsCommandHandler

	// Query handlers
	findCandidatesHandler      queries.FindCandidatesQueryHandler
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getExpertStatisticsHandler queries.GetExpertStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	openDisputeHandler commands.OpenDisputeCommandHandler,
	assignArbitratorHandler commands.AssignArbitratorCommandHandler,
	resolveDisputeHandler commands.ResolveDisputeCommandHandler,
	createRatingHandler commands.CreateRatingCommandHandler,
	addSpecializationHandler commands.AddSpecializationCommandHandler,
	recomputeStatisticsHandler commands.RecomputeStatisticsCommandHandler,
	findCandidatesHandler queries.FindCandidatesQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getExpertStatisticsHandler queries.GetExpertStatisticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		takeOrderHandler:           takeOrderHandler,
		transitionOrderHandler:     transitionOrderHandler,
		openDisputeHandler:         openDisputeHandler,
		assignArbitratorHandler:    assignArbitratorHandler,
		resolveDisputeHandler:      resolveDisputeHandler,
		createRatingHandler:        createRatingHandler,
		addSpecializationHandler:   addSpecializationHandler,
		recomputeStatisticsHandler: recomputeStatisticsHandler,
		findCandidatesHandler:      findCandidatesHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getExpertStatisticsHandler: getExpertStatisticsHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "healthy")
}

// CreateOrder handles POST /orders - publishes a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromBytes(body.ClientId[:])
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	subject := ""
	if body.Subject != nil {
		subject = *body.Subject
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, subject, body.WorkType,
		body.Complexity, body.Budget, body.Deadline,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetActiveOrders handles GET /orders/active - lists all non-terminal orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		item := servers.Order{
			Id:       o.ID.Bytes(),
			ClientId: o.ClientID.Bytes(),
			WorkType: o.WorkType,
			Status:   o.Status,
			Budget:   o.Budget,
			Deadline: o.Deadline,
		}
		if o.ExpertID != nil {
			expertID := o.ExpertID.Bytes()
			item.ExpertId = &expertID
		}
		if o.Subject != "" {
			subject := o.Subject
			item.Subject = &subject
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// FindCandidates handles GET /orders/{orderId}/candidates - ranks the
// verified experts eligible for the order.
func (s *Server) FindCandidates(ctx echo.Context, orderId openapi_types.UUID, params servers.FindCandidatesParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewFindCandidatesQuery(orderID, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	candidates, err := s.findCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.Candidate, len(candidates))
	for i, c := range candidates {
		response[i] = servers.Candidate{
			ExpertId:        c.ExpertID.Bytes(),
			Score:           c.Score,
			AverageRating:   c.AverageRating,
			SuccessRate:     c.SuccessRate,
			ExperienceYears: c.ExperienceYears,
			Workload:        c.Workload,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TakeOrder handles POST /orders/{orderId}/take - claims the order for an
// expert. Losing a concurrent claim surfaces as 409.
func (s *Server) TakeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.TakeOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	expertID, err := kernel.UUIDFromBytes(body.ExpertId[:])
	if err != nil {
		return badRequest(ctx, "Invalid expert id: "+err.Error())
	}

	cmd, err := commands.NewTakeOrderCommand(orderID, expertID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	claimed, err := s.takeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(claimed))
}

// TransitionOrder handles POST /orders/{orderId}/transition - applies a
// lifecycle event on behalf of the acting party.
func (s *Server) TransitionOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	roles := make([]order.Role, len(body.ActorRoles))
	for i, r := range body.ActorRoles {
		roles[i] = order.Role(r)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Event(body.Event), actorID, roles...)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	transitioned, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(transitioned))
}

// OpenDispute handles POST /orders/{orderId}/disputes - opens a conflict
// episode on the order. A second unresolved dispute surfaces as 409.
func (s *Server) OpenDispute(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.OpenDisputeRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	raisedBy, err := kernel.UUIDFromBytes(body.RaisedBy[:])
	if err != nil {
		return badRequest(ctx, "Invalid raiser id: "+err.Error())
	}

	cmd, err := commands.NewOpenDisputeCommand(
		kernel.NewUUID(), orderID, raisedBy, order.Role(body.RaisedRole), body.Reason,
	)
	if err != nil {
		return badRequest(ctx, "Invalid dispute data: "+err.Error())
	}

	opened, err := s.openDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDisputeResponse(opened))
}

// CreateRating handles POST /orders/{orderId}/rating - rates a completed
// order. Each order can be rated once.
func (s *Server) CreateRating(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RatingRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreateRatingCommand(kernel.NewUUID(), orderID, body.Value)
	if err != nil {
		return badRequest(ctx, "Invalid rating data: "+err.Error())
	}

	if _, err = s.createRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignArbitrator handles POST /disputes/{disputeId}/arbitrator.
func (s *Server) AssignArbitrator(ctx echo.Context, disputeId openapi_types.UUID) error {
	var body servers.AssignArbitratorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	disputeID, err := kernel.UUIDFromBytes(disputeId[:])
	if err != nil {
		return badRequest(ctx, "Invalid dispute id: "+err.Error())
	}
	arbitratorID, err := kernel.UUIDFromBytes(body.ArbitratorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid arbitrator id: "+err.Error())
	}

	cmd, err := commands.NewAssignArbitratorCommand(disputeID, arbitratorID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	assigned, err := s.assignArbitratorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponse(assigned))
}

// ResolveDispute handles POST /disputes/{disputeId}/resolution - records the
// arbitrator's verdict, closes the order and instructs compensation.
func (s *Server) ResolveDispute(ctx echo.Context, disputeId openapi_types.UUID) error {
	var body servers.ResolutionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	disputeID, err := kernel.UUIDFromBytes(disputeId[:])
	if err != nil {
		return badRequest(ctx, "Invalid dispute id: "+err.Error())
	}

	result := ""
	if body.Result != nil {
		result = *body.Result
	}

	cmd, err := commands.NewResolveDisputeCommand(disputeID, dispute.Outcome(body.Outcome), result)
	if err != nil {
		return badRequest(ctx, "Invalid resolution data: "+err.Error())
	}

	resolved, err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponse(resolved))
}

// AddSpecialization handles POST /experts/{expertId}/specializations.
func (s *Server) AddSpecialization(ctx echo.Context, expertId openapi_types.UUID) error {
	var body servers.NewSpecialization
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	expertID, err := kernel.UUIDFromBytes(expertId[:])
	if err != nil {
		return badRequest(ctx, "Invalid expert id: "+err.Error())
	}

	verified := false
	if body.Verified != nil {
		verified = *body.Verified
	}

	cmd, err := commands.NewAddSpecializationCommand(
		expertID, body.Subject, body.ExperienceYears, body.HourlyRate, verified,
	)
	if err != nil {
		return badRequest(ctx, "Invalid specialization data: "+err.Error())
	}

	added, err := s.addSpecializationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Specialization{
		ExpertId:        added.ExpertID().Bytes(),
		Subject:         added.Subject(),
		ExperienceYears: added.ExperienceYears(),
		HourlyRate:      added.HourlyRate(),
		Verified:        added.IsVerified(),
	})
}

// RecomputeStatistics handles POST /experts/{expertId}/statistics/recompute.
func (s *Server) RecomputeStatistics(ctx echo.Context, expertId openapi_types.UUID) error {
	expertID, err := kernel.UUIDFromBytes(expertId[:])
	if err != nil {
		return badRequest(ctx, "Invalid expert id: "+err.Error())
	}

	cmd, err := commands.NewRecomputeStatisticsCommand(expertID)
	if err != nil {
		return badRequest(ctx, "Invalid expert id: "+err.Error())
	}

	stats, err := s.recomputeStatisticsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ExpertStatistics{
		ExpertId:        stats.ExpertID().Bytes(),
		TotalOrders:     stats.TotalOrders(),
		CompletedOrders: stats.CompletedOrders(),
		AverageRating:   stats.AverageRating(),
		SuccessRate:     stats.SuccessRate(),
		TotalEarnings:   stats.TotalEarnings(),
	})
}

// GetExpertStatistics handles GET /experts/{expertId}/statistics.
func (s *Server) GetExpertStatistics(ctx echo.Context, expertId openapi_types.UUID) error {
	expertID, err := kernel.UUIDFromBytes(expertId[:])
	if err != nil {
		return badRequest(ctx, "Invalid expert id: "+err.Error())
	}

	query, err := queries.NewGetExpertStatisticsQuery(expertID)
	if err != nil {
		return badRequest(ctx, "Invalid expert id: "+err.Error())
	}

	stats, err := s.getExpertStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ExpertStatistics{
		ExpertId:        stats.ExpertID.Bytes(),
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
		AverageRating:   stats.AverageRating,
		SuccessRate:     stats.SuccessRate,
		TotalEarnings:   stats.TotalEarnings,
	})
}

func toOrderResponse(o *order.Order) servers.Order {
	response := servers.Order{
		Id:       o.ID().Bytes(),
		ClientId: o.ClientID().Bytes(),
		WorkType: o.WorkType(),
		Status:   o.Status().String(),
		Budget:   o.Budget(),
		Deadline: o.Deadline(),
	}
	if expertID := o.ExpertID(); expertID != nil {
		id := expertID.Bytes()
		response.ExpertId = &id
	}
	if subject := o.Subject(); subject != "" {
		response.Subject = &subject
	}
	if finalPrice := o.FinalPrice(); finalPrice != nil {
		price := *finalPrice
		response.FinalPrice = &price
	}
	return response
}

func toDisputeResponse(d *dispute.Dispute) servers.Dispute {
	response := servers.Dispute{
		Id:       d.ID().Bytes(),
		OrderId:  d.OrderID().Bytes(),
		RaisedBy: d.RaisedBy().Bytes(),
		Reason:   d.Reason(),
		Resolved: d.IsResolved(),
	}
	if arbitratorID := d.ArbitratorID(); arbitratorID != nil {
		id := arbitratorID.Bytes()
		response.ArbitratorId = &id
	}
	if outcome := d.Outcome(); outcome != nil {
		name := outcome.String()
		response.Outcome = &name
	}
	if result := d.Result(); result != "" {
		response.Result = &result
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case failure onto the HTTP status that describes
// it: missing aggregates are 404, lost races and duplicates are 409,
// violated business rules are 422, invalid values are 400 and everything
// else is 500.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrOrderNotAvailable),
		errors.Is(err, dispute.ErrDisputeAlreadyExists),
		errors.Is(err, expert.ErrRatingAlreadyExists),
		errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, expert.ErrExpertNotQualified),
		errors.Is(err, expert.ErrExpertOverloaded):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}
