package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-route-service/internal/delivery/http/middleware"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/utils"
	"github.com/tourism-route-service/internal/pkg/validator"
	"github.com/tourism-route-service/internal/planner"
	"github.com/tourism-route-service/internal/usecase"
	"github.com/tourism-route-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - сохраненные маршруты
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	statsUC *usecase.RouteStatsUseCase
	logger  *zap.Logger
}

// NewRouteHandler создает новый экземпляр RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, statsUC *usecase.RouteStatsUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		statsUC: statsUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Список маршрутов
// @Description Публичный список маршрутов, новые первыми. Фильтры комбинируются.
// @Tags Routes
// @Produce json
// @Param city query string false "Подстрока города, без учета регистра"
// @Param minDistance query number false "Минимальная дистанция, км (включительно)"
// @Param durationContains query string false "Подстрока длительности"
// @Success 200 {array} domain.Route
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	var req dto.RouteListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	routes, err := h.routeUC.List(c.UserContext(), req.ToFilter())
	if err != nil {
		h.logger.Error("Failed to list routes", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(routes)
}

// Mine godoc
// @Summary Мои маршруты
// @Description Маршруты текущего пользователя или администратора
// @Tags Routes
// @Produce json
// @Success 200 {array} domain.Route
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/routes/mine [get]
func (h *RouteHandler) Mine(c *fiber.Ctx) error {
	routes, err := h.routeUC.ListMine(c.UserContext(), middleware.GetIdentity(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(routes)
}

// Stats godoc
// @Summary Статистика маршрутов
// @Description Количество, средняя дистанция, самый длинный маршрут, разбивка по городам
// @Tags Routes
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/stats [get]
func (h *RouteHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to get route stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(dto.StatsResponse{Success: true, Stats: stats})
}

// Get godoc
// @Summary Маршрут по id
// @Tags Routes
// @Produce json
// @Param id path string true "ID маршрута"
// @Success 200 {object} dto.RouteResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [get]
func (h *RouteHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.RouteResponse{Success: true, Route: route})
}

// GeoJSON godoc
// @Summary Маршрут в GeoJSON
// @Description FeatureCollection: маркеры start/end и линия маршрута
// @Tags Routes
// @Produce json
// @Param id path string true "ID маршрута"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/geojson [get]
func (h *RouteHandler) GeoJSON(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(planner.RouteFeatureCollection(route), "application/geo+json")
}

// Create godoc
// @Summary Сохранить маршрут
// @Description waypoints, startLocation и endLocation принимаются объектами или JSON-строками, distance - числом или строкой
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.CreateRouteRequest true "Маршрут"
// @Success 201 {object} dto.RouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Create(c.UserContext(), middleware.GetIdentity(c), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RouteResponse{Success: true, Route: route})
}

// Update godoc
// @Summary Изменить маршрут
// @Description Полная перезапись. Владелец и дата создания сохраняются.
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path string true "ID маршрута"
// @Param request body dto.UpdateRouteRequest true "Маршрут"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [post]
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateRouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	if _, err := h.routeUC.Update(c.UserContext(), middleware.GetIdentity(c), id, &req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendResult(c, "", nil)
}

// Delete godoc
// @Summary Удалить маршрут
// @Description Удаление отсутствующего маршрута считается успешным
// @Tags Routes
// @Produce json
// @Param id path string true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/delete [post]
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.routeUC.Delete(c.UserContext(), middleware.GetIdentity(c), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendResult(c, "", nil)
}
