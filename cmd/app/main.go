package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"studyhub/cmd"
	_ "studyhub/docs"
	httpadapter "studyhub/internal/adapters/in/http"
	"studyhub/internal/adapters/out/postgres/disputerepo"
	"studyhub/internal/adapters/out/postgres/expertrepo"
	"studyhub/internal/adapters/out/postgres/orderrepo"
	"studyhub/internal/generated/servers"
	"studyhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		gormDB,
		app.CreateExpireOrdersCommandHandler(),
		app.CreateRecomputeStatisticsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&expertrepo.SpecializationDTO{},
		&expertrepo.StatisticsDTO{},
		&expertrepo.RatingDTO{},
		&disputerepo.DisputeDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTakeOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateOpenDisputeCommandHandler(),
		app.CreateAssignArbitratorCommandHandler(),
		app.CreateResolveDisputeCommandHandler(),
		app.CreateCreateRatingCommandHandler(),
		app.CreateAddSpecializationCommandHandler(),
		app.CreateRecomputeStatisticsCommandHandler(),
		app.CreateFindCandidatesQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetExpertStatisticsQueryHandler(),
	)

	e := echo.New()
	servers.RegisterHandlers(e, server)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to load OpenAPI specification")
		}
		return c.JSON(http.StatusOK, swagger)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
