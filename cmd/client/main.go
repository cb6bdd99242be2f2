package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/hd-notes/internal/adapter"
	"github.com/MKhiriev/hd-notes/internal/config"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/tui"
	"github.com/MKhiriev/hd-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("hd-notes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter)

	ui, err := tui.New(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err = ui.Run(context.Background(), buildInfo); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
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
