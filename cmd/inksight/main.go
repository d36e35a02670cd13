package main

import (
	"github.com/joho/godotenv"

	"InkSight/internal/cli"
)

func main() {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cli.Execute()
}
