package main

import (
	"context"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/config"
	"prestova-one/internal/database"
	"prestova-one/internal/features/broadcast"
	"prestova-one/internal/features/department"
	"prestova-one/internal/features/email"
	"prestova-one/internal/features/settings"
	"prestova-one/internal/features/user"
	"prestova-one/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type seedUser struct {
	Username    string
	Password    string
	DisplayName string
	Email       string
	Role        common_models.Role
	Department  string // department code, resolved to an id during seeding
}

var seedDepartments = []struct {
	Name string
	Code string
}{
	{Name: "Operations", Code: "OPS"},
	{Name: "Human Resources", Code: "HRD"},
	{Name: "Finance", Code: "FIN"},
}

var seedUsers = []seedUser{
	{Username: "admin", Password: "admin123", DisplayName: "System Admin", Email: "admin@prestova.local", Role: common_models.RoleAdmin},
	{Username: "manager.ops", Password: "manager123", DisplayName: "Ops Manager", Email: "manager.ops@prestova.local", Role: common_models.RoleManager, Department: "OPS"},
	{Username: "gm", Password: "gm123", DisplayName: "General Manager", Email: "gm@prestova.local", Role: common_models.RoleGeneralManager},
	{Username: "hrd", Password: "hrd123", DisplayName: "HRD Officer", Email: "hrd@prestova.local", Role: common_models.RoleHRD},
	{Username: "finance", Password: "finance123", DisplayName: "Finance Officer", Email: "finance@prestova.local", Role: common_models.RoleFinance},
	{Username: "staff.ops", Password: "staff123", DisplayName: "Ops Staff", Email: "staff.ops@prestova.local", Role: common_models.RoleStaff, Department: "OPS"},
}

var seedBroadcastLists = []struct {
	Name       string
	Recipients []string
}{
	{Name: "decisions", Recipients: []string{"hrd@prestova.local", "finance@prestova.local"}},
	{Name: "hrd-recap", Recipients: []string{"hrd@prestova.local"}},
}

// Seed runs the database seeding
func Seed(
	lc fx.Lifecycle,
	departmentService department.DepartmentService,
	userService user.UserService,
	userRepo user.UserRepository,
	broadcastService broadcast.BroadcastService,
	broadcastRepo broadcast.BroadcastRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Starting database seeding...")

				// 1. Departments, keyed by code for the user pass
				departmentIDs := make(map[string]string)

				existing, err := departmentService.ListDepartments(ctx)
				if err != nil {
					logger.Fatal("Failed to list departments", zap.Error(err))
				}
				for _, dept := range existing {
					departmentIDs[dept.Code] = dept.ID.Hex()
				}

				for _, spec := range seedDepartments {
					if _, ok := departmentIDs[spec.Code]; ok {
						logger.Info("Department exists, skipping", zap.String("code", spec.Code))
						continue
					}
					dept, err := departmentService.CreateDepartment(ctx, spec.Name, spec.Code)
					if err != nil {
						logger.Fatal("Failed to create department", zap.String("code", spec.Code), zap.Error(err))
					}
					departmentIDs[spec.Code] = dept.ID.Hex()
					logger.Info("Department created", zap.String("name", spec.Name))
				}

				// 2. Users
				for _, spec := range seedUsers {
					if _, err := userRepo.FindByUsername(ctx, spec.Username); err == nil {
						logger.Info("User exists, skipping", zap.String("username", spec.Username))
						continue
					}

					input := user.CreateUserInput{
						Username:     spec.Username,
						Password:     spec.Password,
						DisplayName:  spec.DisplayName,
						Email:        spec.Email,
						Role:         spec.Role,
						DepartmentID: departmentIDs[spec.Department],
					}
					if _, err := userService.CreateUser(ctx, input); err != nil {
						logger.Fatal("Failed to create user", zap.String("username", spec.Username), zap.Error(err))
					}
					logger.Info("User created", zap.String("username", spec.Username), zap.String("role", string(spec.Role)))
				}

				// 3. Broadcast lists
				for _, spec := range seedBroadcastLists {
					if _, err := broadcastRepo.FindByName(ctx, spec.Name); err == nil {
						logger.Info("Broadcast list exists, skipping", zap.String("name", spec.Name))
						continue
					}
					if _, err := broadcastService.CreateList(ctx, spec.Name, spec.Recipients); err != nil {
						logger.Fatal("Failed to create broadcast list", zap.String("name", spec.Name), zap.Error(err))
					}
					logger.Info("Broadcast list created", zap.String("name", spec.Name))
				}

				logger.Info("Database seeding completed")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,

			department.NewDepartmentRepository,
			user.NewUserRepository,
			broadcast.NewBroadcastRepository,
			email.NewEmailRepository,
			settings.NewSettingsRepository,

			department.NewDepartmentService,
			user.NewUserService,
			settings.NewSettingsService,
			email.NewEmailService,
			broadcast.NewBroadcastService,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
