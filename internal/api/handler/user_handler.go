package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/holamundo/registry-api/internal/api/metrics"
	"github.com/holamundo/registry-api/internal/core/ports"
)

// UserHandler serves the user routes of every API family. The families share
// the same use cases and only differ in the projection passed to Create.
type UserHandler struct {
	create   ports.CreateUserHandler
	validate ports.ValidateUserHandler
	get      ports.GetUserHandler
	list     ports.ListUsersHandler
	now      func() time.Time
}

func NewUserHandler(
	create ports.CreateUserHandler,
	validate ports.ValidateUserHandler,
	get ports.GetUserHandler,
	list ports.ListUsersHandler,
) *UserHandler {
	return &UserHandler{create: create, validate: validate, get: get, list: list, now: time.Now}
}

// Create handles POST /api/v3/users, /api/v2/users and /api/users.
//
// @Summary      Create a user
// @Description  Runs the user rules; warnings are returned with the created record, errors reject it.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createUserRequest  true   "User details"
// @Success      201              {object}  userSummaryResponse
// @Failure      400              {object}  ValidationErrorResponse
// @Failure      401              {object}  ErrorResponse
// @Failure      403              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      422              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /api/v3/users [post]
// @Router       /api/v2/users [post]
// @Router       /api/users [post]
func (h *UserHandler) Create(view func(*ports.UserResult) any) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createUserRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		key, err := idempotencyKey(c)
		if err != nil {
			return err
		}

		res, err := h.create.Handle(c.Request().Context(), toCreateUserInput(req, key))
		if err != nil {
			observeFailure(metrics.ResourceUsers, err)
			return err
		}

		observeCreate(metrics.ResourceUsers, res.Replayed, len(res.Warnings))
		markReplay(c, res.Replayed)
		return c.JSON(http.StatusCreated, view(res))
	}
}

// Validate handles POST /api/v3/users/validate.
//
// @Summary      Validate a user without storing it
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  validationResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/v3/users/validate [post]
func (h *UserHandler) Validate(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.validate.Handle(c.Request().Context(), toCreateUserInput(req, ""))
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

// Get handles GET /api/v3/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userRecordResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v3/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	detail, err := h.get.Handle(c.Request().Context(), ports.GetUserInput{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserRecord(*detail))
}

// List handles GET /api/v3/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        page_size  query     int     false  "Page size (1-100, default 10)"
// @Param        filter     query     string  false  "Case-insensitive match on name or email"
// @Success      200        {object}  listResponse[userListItem]
// @Failure      400        {object}  ErrorResponse
// @Router       /api/v3/users [get]
func (h *UserHandler) List(c echo.Context) error {
	var q listUsersQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.list.Handle(c.Request().Context(), ports.ListUsersInput{
		Page:     q.Page,
		PageSize: q.size(),
		Filter:   q.Filter,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserList(res))
}
