package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/urfave/cli/v2"

	internalcli "github.com/storefrontqa/storefront-e2e/internal/cli"
	"github.com/storefrontqa/storefront-e2e/internal/config"
	"github.com/storefrontqa/storefront-e2e/internal/users"
)

var version = "0.1.0"

// ProvisionCommand returns the provision command
func ProvisionCommand() *cli.Command {
	return &cli.Command{
		Name:  "provision",
		Usage: "Log in each pool user and persist per-worker session state",
		Action: func(c *cli.Context) error {
			return internalcli.RunProvision(internalcli.ProvisionDependencies{
				Config: config.Load(),
			})
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the browsers the suite drives",
		Action: func(c *cli.Context) error {
			if err := playwright.Install(); err != nil {
				return fmt.Errorf("failed to install browsers: %w", err)
			}
			return nil
		},
	}
}

// DoctorCommand returns the doctor command
func DoctorCommand() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Print the resolved configuration and pool status",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			fmt.Printf("base URL:      %s\n", cfg.BaseURL)
			fmt.Printf("environment:   %s\n", cfg.EnvName)
			fmt.Printf("workers:       %d\n", cfg.Workers)
			fmt.Printf("worker index:  %d\n", cfg.WorkerIndex)
			fmt.Printf("headless:      %t\n", cfg.Headless)
			fmt.Printf("timeout:       %s\n", cfg.Timeout)
			fmt.Printf("auth dir:      %s\n", cfg.AuthDir)

			pool, err := users.Users(cfg.EnvName)
			if err != nil {
				return fmt.Errorf("failed to load user pool: %w", err)
			}
			fmt.Printf("pool size:     %d\n", len(pool))
			if internalcli.SessionsReady(cfg) {
				fmt.Println("sessions:      provisioned")
			} else {
				fmt.Println("sessions:      missing (run `storefront-e2e provision`)")
			}
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storefront-e2e",
		Usage:   "Test-suite management tool",
		Version: version,
		Commands: []*cli.Command{
			ProvisionCommand(),
			InstallCommand(),
			DoctorCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
