package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tourism-route-service/internal/delivery/http/middleware"
	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/utils"
	"github.com/tourism-route-service/internal/pkg/validator"
	"github.com/tourism-route-service/internal/planner"
	"github.com/tourism-route-service/internal/usecase"
	"github.com/tourism-route-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// DraftResponse - состояние черновика. Warning заполнен, когда внешний сервис
// не ответил, а черновик остался прежним.
type DraftResponse struct {
	Success bool              `json:"success"`
	Data    *planner.Snapshot `json:"data"`
	Warning *errors.AppError  `json:"warning,omitempty"`
}

// PlannerHandler - серверные черновики маршрутов
type PlannerHandler struct {
	registry *planner.Registry
	routeUC  *usecase.RouteUseCase
	logger   *zap.Logger
}

func NewPlannerHandler(registry *planner.Registry, routeUC *usecase.RouteUseCase, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		registry: registry,
		routeUC:  routeUC,
		logger:   logger,
	}
}

// Open godoc
// @Summary Новый черновик
// @Tags Planner
// @Produce json
// @Success 201 {object} DraftResponse
// @Router /api/v1/planner [post]
func (h *PlannerHandler) Open(c *fiber.Ctx) error {
	session := h.registry.Open()
	return c.Status(fiber.StatusCreated).JSON(DraftResponse{Success: true, Data: session.Snapshot()})
}

// Get godoc
// @Summary Состояние черновика
// @Tags Planner
// @Produce json
// @Param id path string true "ID черновика"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id} [get]
func (h *PlannerHandler) Get(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c, session, nil)
}

// SetMode godoc
// @Summary Режим выбора точки
// @Description none - автоматический выбор: start, затем end, затем снова end
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "ID черновика"
// @Param request body dto.SelectionModeRequest true "Режим"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/mode [put]
func (h *PlannerHandler) SetMode(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectionModeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	mode, ok := planner.ParseSelectionMode(req.Mode)
	if !ok {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	session.SetSelectionMode(mode)

	return h.respond(c, session, nil)
}

// SetDetails godoc
// @Summary Описание черновика
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "ID черновика"
// @Param request body dto.DraftDetailsRequest true "Название, город, описание, сложность"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/details [put]
func (h *PlannerHandler) SetDetails(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DraftDetailsRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := session.SetDetails(req.Title, req.City, req.Description, req.Difficulty); err != nil {
		return utils.SendError(c, err)
	}

	return h.respond(c, session, nil)
}

// Click godoc
// @Summary Клик по карте
// @Description Назначает start или end, подписывает адресом и пересчитывает метрики
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "ID черновика"
// @Param request body dto.MapClickRequest true "Координаты"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/click [post]
func (h *PlannerHandler) Click(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.MapClickRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(errors.ReasonInvalidCoordinates))
	}

	_, err = session.HandleMapClick(c.UserContext(), *req.Lat, *req.Lng)
	return h.respond(c, session, err)
}

// Address godoc
// @Summary Ввод адреса
// @Description Геокодирует адрес и назначает его start или end
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "ID черновика"
// @Param request body dto.AddressInputRequest true "Роль и адрес"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/address [post]
func (h *PlannerHandler) Address(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddressInputRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	err = session.HandleAddressInput(c.UserContext(), domain.PointRole(req.Role), req.Query)
	return h.respond(c, session, err)
}

// SetWaypoints godoc
// @Summary Промежуточные точки
// @Description Заменяет точки между start и end
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "ID черновика"
// @Param request body dto.DraftWaypointsRequest true "Точки"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/waypoints [put]
func (h *PlannerHandler) SetWaypoints(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DraftWaypointsRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	err = session.SetWaypoints(c.UserContext(), req.Waypoints)
	return h.respond(c, session, err)
}

// Load godoc
// @Summary Загрузить маршрут в черновик
// @Tags Planner
// @Produce json
// @Param id path string true "ID черновика"
// @Param routeId path string true "ID маршрута"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/load/{routeId} [post]
func (h *PlannerHandler) Load(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	routeID, err := uuidParam(c, "routeId")
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Get(c.UserContext(), routeID)
	if err != nil {
		return utils.SendError(c, err)
	}

	err = session.LoadRoute(c.UserContext(), route)
	return h.respond(c, session, err)
}

// Submit godoc
// @Summary Сохранить черновик
// @Description После успешного сохранения черновик удаляется
// @Tags Planner
// @Produce json
// @Param id path string true "ID черновика"
// @Success 201 {object} dto.RouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planner/{id}/submit [post]
func (h *PlannerHandler) Submit(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Create(c.UserContext(), middleware.GetIdentity(c), session.ToCreateRequest())
	if err != nil {
		return utils.SendError(c, err)
	}

	h.registry.Discard(session.ID())
	h.logger.Info("Planner draft submitted",
		zap.String("draft_id", session.ID().String()),
		zap.String("route_id", route.ID.String()))

	return c.Status(fiber.StatusCreated).JSON(dto.RouteResponse{Success: true, Route: route})
}

// Discard godoc
// @Summary Удалить черновик
// @Tags Planner
// @Produce json
// @Param id path string true "ID черновика"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/planner/{id} [delete]
func (h *PlannerHandler) Discard(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	h.registry.Discard(id)
	return utils.SendResult(c, "", nil)
}

func (h *PlannerHandler) session(c *fiber.Ctx) (*planner.Session, error) {
	id, err := uuidParam(c, "id")
	if err != nil {
		return nil, err
	}
	return h.registry.Get(id)
}

// respond отдает снимок черновика. Сбои геокодера и маршрутизатора не меняют
// черновик и возвращаются как warning; остальные ошибки - как обычно.
func (h *PlannerHandler) respond(c *fiber.Ctx, session *planner.Session, err error) error {
	if err == nil {
		return c.JSON(DraftResponse{Success: true, Data: session.Snapshot()})
	}

	if !isCollaboratorFailure(err) {
		return utils.SendError(c, err)
	}

	h.logger.Info("Planner collaborator failure",
		zap.String("draft_id", session.ID().String()),
		zap.Error(err))

	warning, _ := errors.As(err)
	return c.JSON(DraftResponse{Success: true, Data: session.Snapshot(), Warning: warning})
}

func isCollaboratorFailure(err error) bool {
	return stderrors.Is(err, errors.ErrGeocodeNotFound) ||
		stderrors.Is(err, errors.ErrGeocodingUnavailable) ||
		stderrors.Is(err, errors.ErrRoutingUnavailable)
}
