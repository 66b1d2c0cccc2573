package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pizzadelivery/cmd"
	inhttp "pizzadelivery/internal/adapters/in/http"
	"pizzadelivery/internal/adapters/out/postgres/orderrepo"
	"pizzadelivery/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	publisher := root.CreateFulfillmentPublisher()
	defer publisher.Close()

	startWebServer(&root, publisher, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		CatalogServiceURL:     goDotEnvVariable("CATALOG_SERVICE_URL"),
		IdentityServiceURL:    goDotEnvVariable("IDENTITY_SERVICE_URL"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaFulfillmentTopic: goDotEnvVariable("KAFKA_FULFILLMENT_TOPIC"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(root *cmd.CompositionRoot, publisher ports.EventPublisher, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Use(inhttp.TokenAuthMiddleware(root.CreateIdentityClient()))
	root.CreateOrderServer(publisher).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
