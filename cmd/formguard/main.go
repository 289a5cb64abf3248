package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-guard/internal/app"
	"github.com/MKhiriev/go-form-guard/internal/config"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgConfigError, err)
		os.Exit(1)
	}

	// the level was checked while validating the config
	level, _ := logger.ParseLevel(cfg.Log.Level)
	log, logFile := logger.NewFileLogger("formguard", cfg.Log.File, level)
	defer logFile.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	application, err := app.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg(app.MsgInitError)
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgInitError, err)
		os.Exit(1)
	}

	if err = application.Run(ctx); err != nil {
		log.Err(err).Msg(app.MsgRunError)
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgRunError, err)
		os.Exit(1)
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
