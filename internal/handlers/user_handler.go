package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(s *services.UserService) *UserHandler {
	return &UserHandler{UserService: s}
}

// List is the GET /auth/users endpoint. ?role= is answered by the database.
func (h *UserHandler) List(c *gin.Context) {
	var (
		users []models.User
		err   error
	)
	if role := c.Query("role"); role != "" {
		users, err = h.UserService.ListByRole(c.Request.Context(), strings.ToUpper(role))
	} else {
		users, err = h.UserService.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, "Failed to list users", err)
		return
	}
	respondList(c, views.Users, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dtos.UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.UserService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.UserService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete user", err)
		return
	}
	c.Status(http.StatusNoContent)
}
