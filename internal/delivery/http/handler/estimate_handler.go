package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-route-service/internal/estimator"
	"github.com/tourism-route-service/internal/pkg/utils"
	"github.com/tourism-route-service/internal/pkg/validator"
	"github.com/tourism-route-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// EstimateHandler - расчет дистанции и длительности без сохранения
type EstimateHandler struct {
	estimator estimator.Estimator
	logger    *zap.Logger
}

func NewEstimateHandler(est estimator.Estimator, logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{
		estimator: est,
		logger:    logger,
	}
}

// Estimate godoc
// @Summary Оценка маршрута
// @Description Дистанция (км) и длительность ("X sa Y dk") по упорядоченным точкам
// @Tags Estimate
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Точки маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.EstimateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/estimate [post]
func (h *EstimateHandler) Estimate(c *fiber.Ctx) error {
	var req dto.EstimateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	metrics, err := h.estimator.Estimate(c.UserContext(), req.Points)
	if err != nil {
		h.logger.Warn("Estimate failed",
			zap.String("strategy", h.estimator.Name()),
			zap.Int("points", len(req.Points)),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.EstimateResponse{
		DistanceKm:    metrics.DistanceKm,
		DurationLabel: metrics.DurationLabel,
		Strategy:      h.estimator.Name(),
	}, nil)
}
