package adaptor

import (
	"net/http"

	"trip-booking/internal/dto/response"
	"trip-booking/pkg/utils"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check handles GET /health and GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	utils.ResponseJSON(w, http.StatusOK, response.HealthResponse{
		Status:  "ok",
		Service: h.service,
	})
}
