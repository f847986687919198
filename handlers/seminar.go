package handlers

import (
	"net/http"

	"seminarly/models"
	"seminarly/services/seminar"

	"github.com/gin-gonic/gin"
)

type SeminarHandler struct {
	Service seminar.SeminarService
}

func NewSeminarHandler(svc seminar.SeminarService) *SeminarHandler {
	return &SeminarHandler{Service: svc}
}

func (h *SeminarHandler) ListSeminarsHandler(c *gin.Context) {
	seminars, err := h.Service.ListSeminars(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminars)
}

func (h *SeminarHandler) GetSeminarHandler(c *gin.Context) {
	s, err := h.Service.GetSeminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SeminarHandler) CreateSeminarHandler(c *gin.Context) {
	var input models.SeminarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Service.CreateSeminar(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SeminarHandler) UpdateSeminarHandler(c *gin.Context) {
	var req models.SeminarUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Service.UpdateSeminar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SeminarHandler) DeleteSeminarHandler(c *gin.Context) {
	if err := h.Service.DeleteSeminar(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
