package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fieldops/cmd"
	httpin "fieldops/internal/adapters/in/http"
	"fieldops/internal/adapters/out/postgres/orderrepo"
	"fieldops/internal/adapters/out/postgres/technicianrepo"
	"fieldops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := mustCreateJobManager(&app, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryEntryDTO{},
		&technicianrepo.TechnicianDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := gormDB.Exec("CREATE SEQUENCE IF NOT EXISTS order_sequence_numbers").Error; err != nil {
		log.Fatalf("Failed to create order sequence: %v", err)
	}
}

func mustCreateJobManager(app *cmd.CompositionRoot, logger *slog.Logger) *jobs.JobManager {
	dispatchHandler, err := app.CreateDispatchPendingOrderCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create dispatch handler: %v", err)
	}

	return jobs.NewJobManager(
		dispatchHandler,
		app.CreateRefreshPerformanceCommandHandler(),
		app.CreateTechnicianUoWFactory(),
		logger,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignTechnicianCommandHandler(),
		app.CreateAcceptAssignmentCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateReassignTechnicianCommandHandler(),
		app.CreateSetTechnicianStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateBulkAssignOrdersCommandHandler(),
		app.CreateCreateTechnicianCommandHandler(),
		app.CreateSetTechnicianAvailabilityCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAssignableTechniciansQueryHandler(),
		app.CreateGetTechnicianAnalyticsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
