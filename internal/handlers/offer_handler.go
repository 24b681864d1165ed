package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type OfferHandler struct {
	OfferService *services.OfferService
}

func NewOfferHandler(s *services.OfferService) *OfferHandler {
	return &OfferHandler{OfferService: s}
}

func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.OfferService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list job offers", err)
		return
	}
	respondList(c, views.JobOffers, offers)
}

func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	offer, err := h.OfferService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get job offer", err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) Create(c *gin.Context) {
	var req dtos.JobOfferRequest
	if !bindJSON(c, &req) {
		return
	}
	offer, err := h.OfferService.Extend(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to create job offer", err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.JobOfferRequest
	if !bindJSON(c, &req) {
		return
	}
	offer, err := h.OfferService.UpdateOffer(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, "Failed to update job offer", err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	offer, err := h.OfferService.UpdateStatus(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		respondError(c, "Failed to update job offer status", err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.OfferService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete job offer", err)
		return
	}
	c.Status(http.StatusNoContent)
}
