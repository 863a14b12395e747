package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-legal/internal/common/api"
	"go-legal/internal/config"
	"go-legal/internal/database"
	"go-legal/internal/features/appointment"
	"go-legal/internal/features/audit"
	"go-legal/internal/features/automation"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/lifecycle"
	"go-legal/internal/features/notification"
	"go-legal/internal/features/report"
	"go-legal/internal/features/sideeffect"
	"go-legal/internal/features/sync"
	"go-legal/internal/features/system"
	"go-legal/internal/features/task"
	"go-legal/internal/features/transition"
	"go-legal/internal/features/user"
	"go-legal/internal/features/workflow"
	"go-legal/internal/logger"
	"go-legal/internal/middleware"
	"go-legal/pkg/keylock"

	_ "go-legal/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route, logger *zap.Logger) {
	logger.Info("Registering routes", zap.Int("count", len(routes)))
	for _, route := range routes {
		logger.Debug("Setting up route", zap.String("api", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, mongodb *database.MongodbDB, caseRepo cases.CaseRepository, auditRepo audit.AuditRepository, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if indexed, ok := caseRepo.(interface{ EnsureIndexes(context.Context) error }); ok {
					if err := indexed.EnsureIndexes(ctx); err != nil {
						logger.Warn("Failed to ensure case indexes", zap.Error(err))
					}
				}
				if indexed, ok := auditRepo.(interface{ EnsureIndexes(context.Context) error }); ok {
					if err := indexed.EnsureIndexes(ctx); err != nil {
						logger.Warn("Failed to ensure audit indexes", zap.Error(err))
					}
				}
				if err := transition.EnsureIndexes(ctx, mongodb); err != nil {
					logger.Warn("Failed to ensure transition indexes", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

// StartRetryScheduler runs the side-effect outbox job for the life of the app.
func StartRetryScheduler(lc fx.Lifecycle, scheduler *sideeffect.RetryScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}

// @title           Case Lifecycle API
// @version         1.0
// @description     Phase transitions, approvals and follow-up work for legal cases.

// @contact.name    API Support

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Rule tables are validated once at startup
			workflow.NewDefaultStateMachine,
			keylock.New,
			notification.NewHub,

			// Initialize Repository
			audit.NewAuditRepository,
			user.NewUserRepository,
			cases.NewCaseRepository,
			task.NewTaskRepository,
			appointment.NewAppointmentRepository,
			notification.NewNotificationRepository,
			sideeffect.NewOutboxRepository,
			automation.NewAutomationRepository,
			lifecycle.NewEventRepository,
			transition.NewHistoryRepository,
			transition.NewApprovalRepository,

			audit.NewAuditService,
			user.NewUserService,
			cases.NewCaseService,
			task.NewTaskService,
			appointment.NewAppointmentService,
			notification.NewNotificationService,
			sideeffect.NewDispatcher,
			sideeffect.NewRetryScheduler,
			automation.NewEngine,
			automation.NewAutomationService,
			lifecycle.NewLifecycleService,
			transition.NewTransitionService,
			report.NewReportService,
			sync.NewWarehouseMirror,

			// Interface Adapters to break circular dependencies and satisfy Fx
			func(r user.UserRepository) audit.UserFinder { return r },
			func(s user.UserService) transition.UserFinder { return s },
			func(s audit.AuditService) cases.AuditLogger { return s },
			func(s audit.AuditService) transition.AuditLogger { return s },
			func(s audit.AuditService) automation.AuditLogger { return s },
			func(s lifecycle.LifecycleService) cases.IntakeHook { return s },
			func(e *automation.Engine) transition.EffectSource { return e },

			// Initialize Controller
			user.NewUserController,
			audit.NewAuditController,
			cases.NewCaseController,
			task.NewTaskController,
			appointment.NewAppointmentController,
			automation.NewAutomationController,
			lifecycle.NewLifecycleController,
			transition.NewTransitionController,
			report.NewReportController,
			system.NewHealthController,
			system.NewWebSocketController,

			// Initialize API Routes
			AsRoute(user.NewUserApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(cases.NewCaseApi),
			AsRoute(task.NewTaskApi),
			AsRoute(appointment.NewAppointmentApi),
			AsRoute(automation.NewAutomationApi),
			AsRoute(lifecycle.NewLifecycleApi),
			AsRoute(transition.NewTransitionApi),
			AsRoute(report.NewReportApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
			AsRoute(system.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			StartRetryScheduler,
			InitializeIndexes,
		),
	)

	app.Run()
}
