package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecordHandlerParams holds dependencies for RecordHandler, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// RecordHandler exposes the generic collections (restaurants, orders, menu items...).
type RecordHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler.
func NewRecordHandler(params RecordHandlerParams) *RecordHandler {
	return &RecordHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

func caller(c echo.Context) (usecase.Caller, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return usecase.Caller{}, false
	}
	role, _ := middleware.GetRole(c)

	return usecase.Caller{UserID: userID, Role: role}, true
}

// bindRecord reads a JSON object body, writing the 400 response on failure.
func bindRecord(c echo.Context) (map[string]any, bool, error) {
	var data map[string]any
	if err := c.Bind(&data); err != nil || data == nil {
		return nil, false, response.BindingError(c, "INVALID_INPUT", "Record body must be a JSON object")
	}

	return data, true, nil
}

// Create stores a record under a generated id.
func (h *RecordHandler) Create(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return missingUser(c)
	}

	data, ok, err := bindRecord(c)
	if !ok {
		return err
	}

	doc, err := h.documentUC.Create(c.Request().Context(), who, c.Param("collection"), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, doc)
}

// Get returns one record.
func (h *RecordHandler) Get(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return missingUser(c)
	}

	doc, err := h.documentUC.Get(c.Request().Context(), who, c.Param("collection"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// Update merges the body into an existing record.
func (h *RecordHandler) Update(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return missingUser(c)
	}

	data, ok, err := bindRecord(c)
	if !ok {
		return err
	}

	doc, err := h.documentUC.Update(c.Request().Context(), who, c.Param("collection"), c.Param("id"), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// Delete removes a record.
func (h *RecordHandler) Delete(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return missingUser(c)
	}

	if err := h.documentUC.Delete(c.Request().Context(), who, c.Param("collection"), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Query lists records of a collection.
//
//	?where=status:"open"&where=total:30&order_by=createdAt&direction=desc&limit=20
//
// Values of where are decoded as JSON when possible and taken as strings otherwise.
func (h *RecordHandler) Query(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return missingUser(c)
	}

	q, err := parseRecordQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	docs, err := h.documentUC.Query(c.Request().Context(), who, c.Param("collection"), q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, docs)
}

type queryError string

func (e queryError) Error() string { return string(e) }

func parseRecordQuery(c echo.Context) (entity.Query, error) {
	var q entity.Query

	for _, clause := range c.QueryParams()["where"] {
		field, raw, found := strings.Cut(clause, ":")
		if !found || field == "" {
			return q, queryError("where must be field:value")
		}
		q = q.Where(field, decodeQueryValue(raw))
	}

	if field := c.QueryParam("order_by"); field != "" {
		direction := entity.SortDirection(c.QueryParam("direction"))
		if direction == "" {
			direction = entity.SortAscending
		}
		q = q.Ordered(field, direction)
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return q, queryError("limit must be a non-negative integer")
		}
		q = q.Limited(limit)
	}

	return q, nil
}

func decodeQueryValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}

	return raw
}
