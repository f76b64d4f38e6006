package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/utils"
	"github.com/tourism-route-service/internal/pkg/validator"
	"github.com/tourism-route-service/internal/usecase"
	"github.com/tourism-route-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler - прямое и обратное геокодирование
type GeocodeHandler struct {
	geocodingUC *usecase.GeocodingUseCase
	logger      *zap.Logger
}

func NewGeocodeHandler(geocodingUC *usecase.GeocodingUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodingUC: geocodingUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Поиск адреса
// @Description Первый результат геокодера в пределах страны сервиса
// @Tags Geocoding
// @Produce json
// @Param q query string true "Адрес (минимум 2 символа)"
// @Success 200 {object} utils.SuccessResponse{data=domain.GeoPoint}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/geocode/search [get]
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchGeocodeRequest
	req.Query = c.Query("q")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	point, err := h.geocodingUC.Forward(c.UserContext(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, point, nil)
}

// Reverse godoc
// @Summary Обратное геокодирование
// @Description Адрес для координат. Если адрес не найден, возвращаются координаты "lat, lng".
// @Tags Geocoding
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReverseGeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geocode/reverse [get]
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	address := h.geocodingUC.Reverse(c.UserContext(), *req.Lat, *req.Lng)

	return utils.SendSuccess(c, dto.ReverseGeocodeResponse{
		Lat:     *req.Lat,
		Lng:     *req.Lng,
		Address: address,
	}, nil)
}
