package system

import (
	"context"
	"time"

	"go-legal/internal/database"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const pingTimeout = 2 * time.Second

type HealthController struct {
	DB *database.MongodbDB
}

func NewHealthController(db *database.MongodbDB) *HealthController {
	return &HealthController{DB: db}
}

// Health godoc
// @Summary      Service health
// @Description  Reports whether the database answers a ping
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/health [get]
func (c *HealthController) Health(ctx *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), pingTimeout)
	defer cancel()

	if err := c.DB.DB.Client().Ping(pingCtx, readpref.Primary()); err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{"status": "ok", "database": "ok"})
}

// GetCurrentUser godoc
// @Summary      Get current user info
// @Description  Get the current user's id and role from the JWT
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/me [get]
func (c *HealthController) GetCurrentUser(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	return ctx.JSON(fiber.Map{
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
}
