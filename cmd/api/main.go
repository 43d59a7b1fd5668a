package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "prestova-one/internal/common/api"
	"prestova-one/internal/config"
	"prestova-one/internal/database"
	"prestova-one/internal/features/approval"
	"prestova-one/internal/features/audit"
	"prestova-one/internal/features/auth"
	"prestova-one/internal/features/broadcast"
	"prestova-one/internal/features/department"
	"prestova-one/internal/features/email"
	"prestova-one/internal/features/file"
	"prestova-one/internal/features/notification"
	"prestova-one/internal/features/recap"
	"prestova-one/internal/features/request"
	"prestova-one/internal/features/settings"
	"prestova-one/internal/features/user"
	"prestova-one/internal/logger"
	"prestova-one/internal/middleware"
	"prestova-one/pkg/utils"

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
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
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
func InitializeIndexes(lc fx.Lifecycle, requestRepo request.RequestRepository, userRepo user.UserRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := requestRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure request indexes: %v", err)
				}
				if err := userRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure user indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// @title           Prestova One Approval API
// @version         1.0
// @description     HR request and multi-stage approval service.

// @host            localhost:8080
// @BasePath        /
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

			// Initialize Repository
			request.NewRequestRepository,
			user.NewUserRepository,
			department.NewDepartmentRepository,
			audit.NewAuditRepository,
			settings.NewSettingsRepository,
			email.NewEmailRepository,
			broadcast.NewBroadcastRepository,
			file.NewFileRepository,

			audit.NewAuditService,
			auth.NewAuthService,
			user.NewUserService,
			department.NewDepartmentService,
			settings.NewSettingsService,
			email.NewEmailService,
			broadcast.NewBroadcastService,
			file.NewFileService,
			request.NewRequestService,
			approval.NewApprovalService,
			recap.NewRecapService,
			notification.NewHub,

			// Interface Adapters to break circular dependencies and satisfy Fx
			func() request.FlowResolver { return approval.ResolveApprovalFlow },
			func(h *notification.Hub) approval.Notifier { return h },
			func(s broadcast.BroadcastService) approval.DecisionMailer { return s },

			// Initialize Controller
			auth.NewAuthController,
			user.NewUserController,
			department.NewDepartmentController,
			request.NewRequestController,
			approval.NewApprovalController,
			audit.NewAuditController,
			settings.NewSettingsController,
			broadcast.NewBroadcastController,
			file.NewFileController,
			recap.NewRecapController,
			notification.NewNotificationController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(department.NewDepartmentApi),
			AsRoute(request.NewRequestApi),
			AsRoute(approval.NewApprovalApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(settings.NewSettingsApi),
			AsRoute(broadcast.NewBroadcastApi),
			AsRoute(file.NewFileApi),
			AsRoute(recap.NewRecapApi),
			AsRoute(notification.NewNotificationApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, recapService recap.RecapService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return recapService.InitializeScheduler(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return recapService.StopScheduler()
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
