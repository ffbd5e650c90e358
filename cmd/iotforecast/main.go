package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const appName = "iotforecast"

func main() {
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "env file: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	kong.Parse(&cli,
		kong.Name(appName),
		kong.Description("Forecast the next 24 hours for one IoT weather station from a JSON batch of readings on stdin."),
		kong.UsageOnError(),
	)

	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr))
}

// loadEnvFile reads IOTFORECAST_ENV_FILE (default .env) into the process
// environment before flags are parsed. Variables already set win.
func loadEnvFile() error {
	path := os.Getenv("IOTFORECAST_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
