package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(s *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: s}
}

// List is the GET /company endpoint
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.CompanyService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list companies", err)
		return
	}
	respondList(c, views.Companies, companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	company, err := h.CompanyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get company", err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.CompanyService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to create company", err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.CompanyService.UpdateCompany(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, "Failed to update company", err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.CompanyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete company", err)
		return
	}
	c.Status(http.StatusNoContent)
}
