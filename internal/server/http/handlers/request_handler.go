package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/server/http/dto"
)

// RequestHandler manages custom product inquiries.
type RequestHandler struct {
	facade RequestFacade
}

// NewRequestHandler constructs RequestHandler.
func NewRequestHandler(facade RequestFacade) *RequestHandler {
	return &RequestHandler{facade: facade}
}

// Submit handles POST /api/requests.
func (h *RequestHandler) Submit(c *gin.Context) {
	var req dto.CustomRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	request := &model.CustomRequest{
		Name:     req.Name,
		Email:    req.Email,
		Product:  req.Product,
		Category: req.Category,
		Details:  req.Details,
		Image:    req.Image,
	}
	if err := h.facade.SubmitRequest(c.Request.Context(), request); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Request submitted successfully!"})
}

// List handles GET /api/requests.
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.facade.Requests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CustomRequestResponse, 0, len(requests))
	for _, r := range requests {
		response = append(response, dto.CustomRequestResponse{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Product:   r.Product,
			Category:  r.Category,
			Details:   r.Details,
			Image:     r.Image,
			CreatedAt: r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}
