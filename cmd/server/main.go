package main

import (
	"context"
	"fmt"

	"github.com/sunjoo-dev/movein-registry/internal/blob"
	"github.com/sunjoo-dev/movein-registry/internal/config"
	"github.com/sunjoo-dev/movein-registry/internal/crypto"
	"github.com/sunjoo-dev/movein-registry/internal/handler"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/server"
	"github.com/sunjoo-dev/movein-registry/internal/service"
	"github.com/sunjoo-dev/movein-registry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movein-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing storages")
		}
	}()

	cipherKey, err := cfg.App.DecodeCipherKey()
	if err != nil {
		log.Fatal().Err(err).Msg("error decoding cipher key")
	}

	cipher, err := crypto.NewCipher(cipherKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher")
	}

	objectStorage, err := blob.NewS3Storage(ctx, cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage")
	}

	services := service.NewServices(storages, objectStorage, cipher, *cfg, log)

	if err = services.UserService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error ensuring admin account")
	}

	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
