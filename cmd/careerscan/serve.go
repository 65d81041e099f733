package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qatth/careerscan/internal/config"
	"github.com/qatth/careerscan/internal/logger"
	"github.com/qatth/careerscan/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveSeedDemo   bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes CV scanning, role matching, job listings and account endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveSeedDemo, "seed-demo", false, "Create demo accounts when the registry is empty")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if serveSeedDemo {
		cfg.SeedDemo = true
	}
	if serveVerbose {
		cfg.Verbose = true
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
