// Package http exposes the return lifecycle over a JSON REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createReturnHandler  commands.CreateReturnCommandHandler
	updateReturnHandler  commands.UpdateReturnCommandHandler
	cancelReturnHandler  commands.CancelReturnCommandHandler
	fulfillReturnHandler commands.FulfillReturnCommandHandler
	receiveReturnHandler commands.ReceiveReturnCommandHandler

	// Query handlers
	getReturnHandler       queries.GetReturnQueryHandler
	getReturnBySwapHandler queries.GetReturnBySwapQueryHandler
	listReturnsHandler     queries.ListReturnsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createReturnHandler commands.CreateReturnCommandHandler,
	updateReturnHandler commands.UpdateReturnCommandHandler,
	cancelReturnHandler commands.CancelReturnCommandHandler,
	fulfillReturnHandler commands.FulfillReturnCommandHandler,
	receiveReturnHandler commands.ReceiveReturnCommandHandler,
	getReturnHandler queries.GetReturnQueryHandler,
	getReturnBySwapHandler queries.GetReturnBySwapQueryHandler,
	listReturnsHandler queries.ListReturnsQueryHandler,
) *Server {
	return &Server{
		createReturnHandler:    createReturnHandler,
		updateReturnHandler:    updateReturnHandler,
		cancelReturnHandler:    cancelReturnHandler,
		fulfillReturnHandler:   fulfillReturnHandler,
		receiveReturnHandler:   receiveReturnHandler,
		getReturnHandler:       getReturnHandler,
		getReturnBySwapHandler: getReturnBySwapHandler,
		listReturnsHandler:     listReturnsHandler,
	}
}

// RegisterRoutes attaches all return endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/returns", s.CreateReturn)
	api.GET("/returns", s.ListReturns)
	api.GET("/returns/:id", s.GetReturn)
	api.POST("/returns/:id", s.UpdateReturn)
	api.POST("/returns/:id/cancel", s.CancelReturn)
	api.POST("/returns/:id/fulfill", s.FulfillReturn)
	api.POST("/returns/:id/receive", s.ReceiveReturn)
	api.GET("/swaps/:swapId/return", s.GetReturnBySwap)
}

// CreateReturn handles POST /api/v1/returns - opens a new return.
func (s *Server) CreateReturn(ctx echo.Context) error {
	var req CreateReturnRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := optionalUUID(req.OrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}
	swapID, err := optionalUUID(req.SwapID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid swap id: "+err.Error())
	}
	shippingOptionID, err := optionalUUID(req.ReturnShipping.OptionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipping option id: "+err.Error())
	}

	items := make([]orderreturn.RequestedLine, 0, len(req.Items))
	for _, item := range req.Items {
		itemID, itemErr := kernel.UUIDFromString(item.ItemID)
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid item id: "+itemErr.Error())
		}
		reasonID, itemErr := optionalUUID(item.ReasonID)
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid reason id: "+itemErr.Error())
		}
		items = append(items, orderreturn.RequestedLine{
			ItemID:   itemID,
			Quantity: item.Quantity,
			ReasonID: reasonID,
			Note:     item.Note,
		})
	}

	cmd, err := commands.NewCreateReturnCommand(
		orderID,
		swapID,
		items,
		shippingOptionID,
		req.ReturnShipping.Price,
		req.RefundAmount,
		req.NoNotification,
		req.Metadata,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return data: "+err.Error())
	}

	ret, err := s.createReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(ret))
}

// ListReturns handles GET /api/v1/returns - retrieves a page of returns.
func (s *Server) ListReturns(ctx echo.Context) error {
	orderID, err := optionalUUIDParam(ctx.QueryParam("order_id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var status *string
	if raw := ctx.QueryParam("status"); raw != "" {
		status = &raw
	}

	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid page")
	}
	pageSize, err := intQueryParam(ctx, "page_size")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid page size")
	}

	query, err := queries.NewListReturnsQuery(orderID, status, page, pageSize)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid listing parameters: "+err.Error())
	}

	returns, err := s.listReturnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := ListReturnsResponse{
		Returns:  make([]ReturnResponse, len(returns)),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}
	for i, ret := range returns {
		response.Returns[i] = fromReadModel(ret)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReturn handles GET /api/v1/returns/:id - retrieves a single return.
func (s *Server) GetReturn(ctx echo.Context) error {
	returnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	query, err := queries.NewGetReturnQuery(returnID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	ret, err := s.getReturnHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(ret))
}

// GetReturnBySwap handles GET /api/v1/swaps/:swapId/return - retrieves
// the return originated by a swap.
func (s *Server) GetReturnBySwap(ctx echo.Context) error {
	swapID, err := kernel.UUIDFromString(ctx.Param("swapId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid swap id")
	}

	query, err := queries.NewGetReturnBySwapQuery(swapID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid swap id")
	}

	ret, err := s.getReturnBySwapHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(ret))
}

// UpdateReturn handles POST /api/v1/returns/:id - updates a mutable return.
func (s *Server) UpdateReturn(ctx echo.Context) error {
	returnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	var req UpdateReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateReturnCommand(returnID, req.Metadata, req.NoNotification, req.RefundAmount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid update data: "+err.Error())
	}

	ret, err := s.updateReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(ret))
}

// CancelReturn handles POST /api/v1/returns/:id/cancel - cancels a return.
func (s *Server) CancelReturn(ctx echo.Context) error {
	returnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	cmd, err := commands.NewCancelReturnCommand(returnID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	ret, err := s.cancelReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(ret))
}

// FulfillReturn handles POST /api/v1/returns/:id/fulfill - ships the
// return through its shipping method.
func (s *Server) FulfillReturn(ctx echo.Context) error {
	returnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	cmd, err := commands.NewFulfillReturnCommand(returnID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	ret, err := s.fulfillReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(ret))
}

// ReceiveReturn handles POST /api/v1/returns/:id/receive - registers the
// items that arrived at the warehouse.
func (s *Server) ReceiveReturn(ctx echo.Context) error {
	returnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid return id")
	}

	var req ReceiveReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]orderreturn.ReceivedLine, 0, len(req.Items))
	for _, item := range req.Items {
		itemID, itemErr := kernel.UUIDFromString(item.ItemID)
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid item id: "+itemErr.Error())
		}
		items = append(items, orderreturn.ReceivedLine{
			ItemID:   itemID,
			Quantity: item.Quantity,
		})
	}

	cmd, err := commands.NewReceiveReturnCommand(returnID, items, req.RefundAmount, req.AllowMismatch)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid receive data: "+err.Error())
	}

	ret, err := s.receiveReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(ret))
}

// commandError maps domain errors to HTTP status codes.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrOperationNotAllowed):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil //nolint:nilnil //absent optional parameter
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalUUIDParam(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil //absent optional parameter
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
