package main

import (
	"fmt"

	"github.com/Acidburn0zzz/docsync/internal/client"
	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("docsync-client")

	app, err := client.NewApp(client.EnvTokenSource(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sync client error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("sync client run error")
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

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
