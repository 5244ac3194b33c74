// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/handler"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/server"
	"github.com/Tarekazabou/health-app/internal/service"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := getBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("healthtrack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetDebug(cfg.App.Debug)

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()
	log.Info().Str("backend", storages.Backend()).Msg("storage backend selected")

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.Commit).
		Str("address", cfg.Server.HTTPAddress).
		Msg("starting HealthTrack API")

	srv.RunServer()
}

func getBuildInfo() models.BuildInfo {
	info := models.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}

	if info.Version == "" {
		info.Version = "N/A"
	}

	if info.Date == "" {
		info.Date = "N/A"
	}

	if info.Commit == "" {
		info.Commit = "N/A"
	}

	return info
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
