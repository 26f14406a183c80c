package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sivadev/folio/internal/api/rest"
	"github.com/sivadev/folio/internal/config"
	"github.com/sivadev/folio/internal/logging"
	"github.com/sivadev/folio/internal/service"
)

var (
	cfg    *config.Config
	logger *logging.Logger

	projectSvc *service.ProjectService
	contactSvc *service.ContactService
)

func initLogger() {
	logging.Configure(&logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	})
	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - portfolio site client",
	Long: `Folio is a terminal client for a portfolio website's REST API.
Browse projects, read and leave comments, and send contact messages
without opening a browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger()

	client := rest.New(cfg.APIBaseURL, rest.WithLogger(logger))
	projectSvc = service.NewProjectService(client)
	contactSvc = service.NewContactService(client)

	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(contactCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
