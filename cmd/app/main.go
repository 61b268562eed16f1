package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"returns/cmd"
	httpserver "returns/internal/adapters/in/http"
	"returns/internal/adapters/out/postgres/inventoryrepo"
	"returns/internal/adapters/out/postgres/orderrepo"
	"returns/internal/adapters/out/postgres/returnrepo"
	"returns/internal/adapters/out/postgres/shippingrepo"
	"returns/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		FulfillmentBaseURL: goDotEnvVariable("FULFILLMENT_BASE_URL"),
		FulfillmentAPIKey:  goDotEnvVariable("FULFILLMENT_API_KEY"),
		StaleReturnAge:     goDotEnvVariable("STALE_RETURN_AGE"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.SwapDTO{},
		&orderrepo.ClaimOrderDTO{},
		&shippingrepo.ShippingOptionDTO{},
		&shippingrepo.ShippingMethodDTO{},
		&inventoryrepo.ProductVariantDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	staleReturnAge, err := time.ParseDuration(configs.StaleReturnAge)
	if err != nil || staleReturnAge <= 0 {
		staleReturnAge = 7 * 24 * time.Hour
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetStaleReturnsQueryHandler(),
		staleReturnAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		app.CreateCreateReturnCommandHandler(),
		app.CreateUpdateReturnCommandHandler(),
		app.CreateCancelReturnCommandHandler(),
		app.CreateFulfillReturnCommandHandler(),
		app.CreateReceiveReturnCommandHandler(),
		app.CreateGetReturnQueryHandler(),
		app.CreateGetReturnBySwapQueryHandler(),
		app.CreateListReturnsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
