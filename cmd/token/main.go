package main

import (
	"flag"
	"fmt"
	"time"

	"weatherkit-report/auth"
	"weatherkit-report/datasource"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Prints a freshly signed WeatherKit token, e.g. for
//
//	curl -H "Authorization: Bearer $(go run ./cmd/token)" https://weatherkit.apple.com/api/v1/availability/35.68/139.76
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", zap.Error(err))
	}

	configFile := flag.String("config", "", "Path to an optional YAML configuration file")
	verbose := flag.Bool("v", false, "Log the token expiry to stderr")
	flag.Parse()

	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	now := time.Now()
	token, err := auth.NewIssuer(config.Identity).IssueAt(now)
	if err != nil {
		logger.Fatal("Failed to issue token", zap.Error(err))
	}

	if *verbose {
		logger.Info("Token issued",
			zap.String("service", config.Identity.ServiceID),
			zap.Time("expires", now.Add(auth.TokenLifetime)))
	}
	fmt.Println(token)
}
