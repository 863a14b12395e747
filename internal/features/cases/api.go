package cases

import (
	common_models "go-legal/internal/common/models"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CaseApi struct {
	controller *CaseController
	config     *config.Config
}

func NewCaseApi(controller *CaseController, config *config.Config) *CaseApi {
	return &CaseApi{
		controller: controller,
		config:     config,
	}
}

func (h *CaseApi) Setup(app *fiber.App) {
	cases := app.Group("/api/cases", middleware.AuthMiddleware(h.config.SkipAuth))

	cases.Post("/", middleware.RequireRoles(common_models.RoleAdmin, common_models.RoleAttorney, common_models.RoleParalegal), h.controller.CreateCase)
	cases.Get("/", h.controller.ListCases)
	cases.Get("/:id", h.controller.GetCase)
}
