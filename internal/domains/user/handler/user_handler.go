package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domains/user"
	"bookstore-api/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /users/create
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, user.ErrStore) {
			response.InternalServerError(c, "failed to create user")
		} else {
			// Anything else coming out of the service is a
			// validation failure.
			response.BadRequest(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, created.ToResponse())
}
