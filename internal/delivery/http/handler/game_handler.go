package handler

import (
	"finquest/internal/delivery/http/dto"
	"finquest/internal/delivery/http/middleware"
	"finquest/internal/pkg/response"
	gameuc "finquest/internal/usecase/game"

	"github.com/gofiber/fiber/v3"
)

type GameHandler struct {
	uc gameuc.GameUsecase
}

func NewGameHandler(uc gameuc.GameUsecase) *GameHandler {
	return &GameHandler{uc: uc}
}

func (h *GameHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/map", h.GetMap)
}

func (h *GameHandler) GetMap(c fiber.Ctx) error {
	levels, err := h.uc.Map(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewLevelResponses(levels))
}
