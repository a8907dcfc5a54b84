package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/holamundo/registry-api/internal/api/metrics"
	"github.com/holamundo/registry-api/internal/core/ports"
)

// FormHandler serves the form routes of every API family.
type FormHandler struct {
	create   ports.CreateFormHandler
	validate ports.ValidateFormHandler
	get      ports.GetFormHandler
	list     ports.ListFormsHandler
	now      func() time.Time
}

func NewFormHandler(
	create ports.CreateFormHandler,
	validate ports.ValidateFormHandler,
	get ports.GetFormHandler,
	list ports.ListFormsHandler,
) *FormHandler {
	return &FormHandler{create: create, validate: validate, get: get, list: list, now: time.Now}
}

// Create handles POST /api/v3/forms, /api/v2/forms and /api/forms.
//
// @Summary      Create a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createFormRequest  true   "Form details"
// @Success      201              {object}  formSummaryResponse
// @Failure      400              {object}  ValidationErrorResponse
// @Failure      401              {object}  ErrorResponse
// @Failure      403              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      422              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/v3/forms [post]
// @Router       /api/v2/forms [post]
// @Router       /api/forms [post]
func (h *FormHandler) Create(view func(*ports.FormResult) any) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createFormRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		key, err := idempotencyKey(c)
		if err != nil {
			return err
		}

		res, err := h.create.Handle(c.Request().Context(), toCreateFormInput(req, key))
		if err != nil {
			observeFailure(metrics.ResourceForms, err)
			return err
		}

		observeCreate(metrics.ResourceForms, res.Replayed, len(res.Warnings))
		markReplay(c, res.Replayed)
		return c.JSON(http.StatusCreated, view(res))
	}
}

// Validate handles POST /api/v3/forms/validate.
//
// @Summary      Validate a form without storing it
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      createFormRequest  true  "Form details"
// @Success      200   {object}  validationResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/v3/forms/validate [post]
func (h *FormHandler) Validate(c echo.Context) error {
	var req createFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.validate.Handle(c.Request().Context(), toCreateFormInput(req, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, validationResponse{
		Valid:       res.Valid(),
		Errors:      res.Errors(),
		Warnings:    res.Warnings(),
		ValidatedAt: h.now().UTC(),
	})
}

// Get handles GET /api/v3/forms/:id.
//
// @Summary      Get a form by id
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form id"
// @Success      200  {object}  formRecordResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v3/forms/{id} [get]
func (h *FormHandler) Get(c echo.Context) error {
	detail, err := h.get.Handle(c.Request().Context(), ports.GetFormInput{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFormRecord(*detail))
}

// List handles GET /api/v3/forms.
//
// @Summary      List forms
// @Tags         forms
// @Produce      json
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        page_size  query     int     false  "Page size (1-100, default 10)"
// @Param        category   query     string  false  "Case-insensitive category"
// @Success      200        {object}  listResponse[formListItem]
// @Failure      400        {object}  ErrorResponse
// @Router       /api/v3/forms [get]
func (h *FormHandler) List(c echo.Context) error {
	var q listFormsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.list.Handle(c.Request().Context(), ports.ListFormsInput{
		Page:     q.Page,
		PageSize: q.size(),
		Category: q.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFormList(res))
}
