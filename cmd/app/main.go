package main

import (
	"fmt"
	"log/slog"
	"os"

	"retailedge/cmd"
	httpin "retailedge/internal/adapters/in/http"
	"retailedge/internal/adapters/out/postgres/customerrepo"
	"retailedge/internal/adapters/out/postgres/orderrepo"
	"retailedge/internal/adapters/out/postgres/productrepo"
	"retailedge/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOrdersQueryHandler(), logger)
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

// mustConnectDB opens the database through lib/pq. The repositories inspect
// *pq.Error to translate unique violations, so the DriverName must stay
// "postgres" rather than the gorm default pgx.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: "postgres",
		DSN:        connStr,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateCreateCustomerCommandHandler(),
		app.CreateUpdateCustomerCommandHandler(),
		app.CreateDeleteCustomerCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetProductCategoriesQueryHandler(),
		app.CreateGetCustomerQueryHandler(),
		app.CreateGetCustomersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
