package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sriteja123gujjari/RentalManagement/internal/cli"
	"github.com/sriteja123gujjari/RentalManagement/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
