package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/ptp-tester/internal/adapter"
	"github.com/MKhiriev/ptp-tester/internal/client"
	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/service"
	"github.com/MKhiriev/ptp-tester/internal/store"
	"github.com/MKhiriev/ptp-tester/internal/tui"
	"github.com/MKhiriev/ptp-tester/internal/utils"
	"github.com/MKhiriev/ptp-tester/internal/workers"
	"github.com/MKhiriev/ptp-tester/models"
)

const role = "ptp-tester"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(role, os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogDir)
	if !cfg.App.Debug {
		log = log.Quiet()
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewClientStorages(cfg.Storage, log)
	paymentAdapter := adapter.NewHTTPPaymentAdapter(cfg.Adapter, log)
	dispatcher := workers.NewDispatcher(paymentAdapter, log)

	services := service.NewClientServices(
		storages,
		dispatcher,
		utils.NewUUIDGenerator(),
		cfg.Adapter,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ptp-tester: %v\n", err)
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
