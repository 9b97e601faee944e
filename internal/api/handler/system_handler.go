package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcart/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcart/internal/constants"
	"github.com/RoyceAzure/lab/shopcart/internal/util/rj_api"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// @Summary service index
// @Tags system
// @Produce json
// @Success 200 {object} dto.IndexDTO "success"
// @Router / [get]
func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, dto.IndexDTO{
		Name:    constants.ServiceName,
		Version: constants.ServiceVersion,
		URL:     "/shopcarts",
	})
}

// @Summary health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthDTO "success"
// @Router /healthcheck [get]
func (h *SystemHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, dto.HealthDTO{
		Status:  http.StatusOK,
		Message: "Healthy",
	})
}
