// Package http implements the inbound HTTP adapter on echo.
//
// The server translates wire requests into commands and queries, maps domain
// errors onto HTTP status codes and never contains business rules itself.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/selection"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ActingRoleHeader names the header carrying the caller's acting role.
// Role authorization is enforced by the gateway; the engine trusts the header
// but still validates the value.
const ActingRoleHeader = "X-Acting-Role"

const maxAttachmentBytes = 32 << 20

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	saveSelectionHandler     commands.SaveSelectionCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler
	assignEmployeeHandler    commands.AssignEmployeeCommandHandler

	// Query handlers
	classifyArtifactHandler      queries.ClassifyArtifactQueryHandler
	getSelectionHandler          queries.GetSelectionQueryHandler
	getStatusHistoryHandler      queries.GetStatusHistoryQueryHandler
	getRelevantAttachmentHandler queries.GetRelevantAttachmentQueryHandler
	getUsersByDepartmentHandler  queries.GetUsersByDepartmentQueryHandler
	getUncompletedOrdersHandler  queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	saveSelectionHandler commands.SaveSelectionCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	assignEmployeeHandler commands.AssignEmployeeCommandHandler,
	classifyArtifactHandler queries.ClassifyArtifactQueryHandler,
	getSelectionHandler queries.GetSelectionQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getRelevantAttachmentHandler queries.GetRelevantAttachmentQueryHandler,
	getUsersByDepartmentHandler queries.GetUsersByDepartmentQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		saveSelectionHandler:         saveSelectionHandler,
		requestTransitionHandler:     requestTransitionHandler,
		assignEmployeeHandler:        assignEmployeeHandler,
		classifyArtifactHandler:      classifyArtifactHandler,
		getSelectionHandler:          getSelectionHandler,
		getStatusHistoryHandler:      getStatusHistoryHandler,
		getRelevantAttachmentHandler: getRelevantAttachmentHandler,
		getUsersByDepartmentHandler:  getUsersByDepartmentHandler,
		getUncompletedOrdersHandler:  getUncompletedOrdersHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", RequireBearer)
	api.GET("/artifacts/classify", s.ClassifyArtifact)
	api.GET("/orders/:orderId/selection/:category", s.GetSelection)
	api.POST("/orders/:orderId/selection/:category", s.SaveSelection)
	api.POST("/orders/:orderId/status", s.UpdateStatus)
	api.GET("/orders/:orderId/status/history", s.GetStatusHistory)
	api.GET("/orders/:orderId/status/relevant-pdf", s.GetRelevantPDF)
	api.POST("/assignments", s.CreateAssignment)
	api.GET("/users/by-department/:department", s.GetUsersByDepartment)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
}

// RequireBearer rejects requests without a bearer credential. Token
// verification lives in the gateway; only presence is checked here.
func RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")) == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer credential",
			})
		}
		return next(ctx)
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ClassifyArtifact handles GET /api/v1/artifacts/classify - classifies a PDF artifact.
func (s *Server) ClassifyArtifact(ctx echo.Context) error {
	query, err := queries.NewClassifyArtifactQuery(ctx.QueryParam("ref"))
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.classifyArtifactHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	metrics.ClassificationsTotal.WithLabelValues(string(result.Artifact.Kind())).Inc()

	return ctx.JSON(http.StatusOK, ClassifyResponse{
		Kind:           result.Artifact.Kind(),
		ActiveTab:      result.ActiveTab,
		ActiveResultNo: result.ActiveResultNo,
		Artifact:       result.Artifact,
	})
}

// GetSelection handles GET /api/v1/orders/:orderId/selection/:category -
// returns all four role id sets.
func (s *Server) GetSelection(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}
	category, err := selection.CategoryFromString(ctx.Param("category"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetSelectionQuery(orderID, category)
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := s.getSelectionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SaveSelection handles POST /api/v1/orders/:orderId/selection/:category -
// persists exactly one role's row id set. The body must carry the acting
// role's payload key and no other.
func (s *Server) SaveSelection(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}
	category, err := selection.CategoryFromString(ctx.Param("category"))
	if err != nil {
		return badRequest(ctx, err)
	}
	acting, err := actingRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request SaveSelectionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	ids, err := request.roleIDs(acting)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSaveSelectionCommand(orderID, category, acting, ids)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.saveSelectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	metrics.SelectionSavesTotal.WithLabelValues(acting.String(), category.String()).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStatus handles POST /api/v1/orders/:orderId/status - runs the
// workflow transition saga. The request is multipart: a JSON "payload" part
// plus an optional binary "attachment" part; a plain JSON body is accepted
// when no file travels with the request.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	request, attachment, err := decodeStatusUpdate(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.StatusFromString(request.NewStatus)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := s.buildTransitionCommand(ctx, orderID, target, request)
	if err != nil {
		return badRequest(ctx, err)
	}

	if attachment != nil {
		cmd = cmd.WithAttachmentFile(*attachment)
	} else if request.AttachmentURL != "" {
		cmd = cmd.WithAttachmentURL(request.AttachmentURL)
	}

	if request.AssigneeID != "" {
		assigneeID, idErr := kernel.UUIDFromString(request.AssigneeID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		cmd = cmd.WithAssignee(assigneeID)
	}

	result, err := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		metrics.TransitionsTotal.WithLabelValues(target.String(), "error").Inc()
		return mapError(ctx, err)
	}
	metrics.TransitionsTotal.WithLabelValues(target.String(), "ok").Inc()

	response := StatusUpdateResponse{
		HistoryEntry:   historyEntryResponse(result.Entry),
		SelectionSaved: result.SelectionSaved,
		StatusChanged:  result.StatusChanged,
	}
	if result.AssignmentWarning != nil {
		response.AssignmentWarning = result.AssignmentWarning.Error()
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) buildTransitionCommand(
	ctx echo.Context,
	orderID kernel.UUID,
	target order.Status,
	request StatusUpdateRequest,
) (commands.RequestTransitionCommand, error) {
	if request.Freeform {
		return commands.NewFreeformTransitionCommand(orderID, target, request.Comment)
	}

	acting, err := actingRole(ctx)
	if err != nil {
		return commands.RequestTransitionCommand{}, err
	}

	categoryName := request.Category
	if categoryName == "" {
		categoryName = selection.CategoryGeneral.String()
	}
	category, err := selection.CategoryFromString(categoryName)
	if err != nil {
		return commands.RequestTransitionCommand{}, err
	}

	return commands.NewRequestTransitionCommand(orderID, target, acting, category, request.RowIDs, request.Comment)
}

// GetStatusHistory handles GET /api/v1/orders/:orderId/status/history.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = historyEntryResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRelevantPDF handles GET /api/v1/orders/:orderId/status/relevant-pdf -
// resolves the most recent relevant PDF attachment, optionally scoped to a
// department via the department query parameter.
func (s *Server) GetRelevantPDF(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	department := order.Unknown
	if raw := ctx.QueryParam("department"); raw != "" {
		department, err = order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	query, err := queries.NewGetRelevantAttachmentQuery(orderID, department)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getRelevantAttachmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	if result.URL == "" {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No PDF attachment recorded for this order",
		})
	}

	return ctx.JSON(http.StatusOK, RelevantPDFResponse{URL: result.URL})
}

// CreateAssignment handles POST /api/v1/assignments.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var request AssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}
	department, err := order.StatusFromString(request.Department)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignEmployeeCommand(orderID, userID, department)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUsersByDepartment handles GET /api/v1/users/by-department/:department.
func (s *Server) GetUsersByDepartment(ctx echo.Context) error {
	department, err := order.StatusFromString(ctx.Param("department"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetUsersByDepartmentQuery(department)
	if err != nil {
		return badRequest(ctx, err)
	}

	users, err := s.getUsersByDepartmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = UserResponse{
			ID:         user.ID.String(),
			Name:       user.Name,
			Department: user.Department.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order in Inquiry.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.Customer, request.ProductLine, request.Requirements)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:          o.ID.String(),
			Customer:    o.Customer,
			ProductLine: o.ProductLine,
			Status:      o.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// roleIDs extracts the acting role's id set from the request body and rejects
// bodies carrying any other role's key.
func (r SaveSelectionRequest) roleIDs(acting selection.Role) ([]string, error) {
	sets := map[selection.Role][]string{
		selection.RoleDesign:     r.DesignerSelectedRowIds,
		selection.RoleProduction: r.ProductionSelectedRowIds,
		selection.RoleMachining:  r.MachineSelectedRowIds,
		selection.RoleInspection: r.InspectionSelectedRowIds,
	}

	for role, ids := range sets {
		if role != acting && ids != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"body",
				errors.New("body may only carry the acting role's key "+acting.PayloadKey()),
			)
		}
	}

	ids := sets[acting]
	if ids == nil {
		return nil, errs.NewValueIsRequiredError(acting.PayloadKey())
	}
	return ids, nil
}

// decodeStatusUpdate reads the status update from either a multipart form
// (JSON "payload" part plus optional "attachment" file) or a plain JSON body.
func decodeStatusUpdate(ctx echo.Context) (StatusUpdateRequest, *commands.AttachmentFile, error) {
	var request StatusUpdateRequest

	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := ctx.Bind(&request); err != nil {
			return request, nil, errs.NewValueIsInvalidErrorWithCause("body", err)
		}
		return request, nil, nil
	}

	payload := ctx.FormValue("payload")
	if payload == "" {
		return request, nil, errs.NewValueIsRequiredError("payload")
	}
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		return request, nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	fileHeader, err := ctx.FormFile("attachment")
	if err != nil {
		// The attachment part is optional.
		return request, nil, nil
	}
	if fileHeader.Size > maxAttachmentBytes {
		return request, nil, errs.NewValueIsOutOfRangeError("attachment", fileHeader.Size, 0, maxAttachmentBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return request, nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxAttachmentBytes))
	if err != nil {
		return request, nil, err
	}

	return request, &commands.AttachmentFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     content,
	}, nil
}

func actingRole(ctx echo.Context) (selection.Role, error) {
	raw := ctx.Request().Header.Get(ActingRoleHeader)
	if raw == "" {
		return selection.RoleUnknown, errs.NewValueIsRequiredError(ActingRoleHeader)
	}
	return selection.RoleFromString(strings.ToUpper(raw))
}

func historyEntryResponse(entry history.Entry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:             entry.ID,
		OrderID:        entry.OrderID.String(),
		PreviousStatus: entry.PreviousStatus.String(),
		NewStatus:      entry.NewStatus.String(),
		Comment:        entry.Comment,
		AttachmentURL:  entry.AttachmentURL,
		CreatedAt:      entry.CreatedAt,
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// mapError translates application errors onto HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, commands.ErrEmptySelection):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case isValidationError(err):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func isValidationError(err error) bool {
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	return errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange)
}
