package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/backend/api"
	"github.com/inkwell-app/backend/config"
	"github.com/inkwell-app/backend/database"
)

const appVersion = "0.1.0"

func main() {
	// Load environment variables from .env file when present
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	c := config.New()
	dbPath := config.DatabasePath(c)

	db, err := database.Open(dbPath)
	if err != nil {
		log.Error().Err(err).Str("path", dbPath).Msg("Error opening database")
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Schema init is idempotent and runs on every start
	if err := currentDB.Init(appVersion); err != nil {
		log.Error().Err(err).Msg("Error initializing database")
		os.Exit(1)
	}
	log.Info().Str("path", dbPath).Msg("Database initialized")

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
