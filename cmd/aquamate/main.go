// Package main содержит точку входа CLI-клиента AquaMate.
//
// Версия и дата сборки передаются через -ldflags:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildDate=$(date +%F)" ./cmd/aquamate
package main

import "github.com/IvanChernomyrdin/go-aquamate/internal/agent/cli"

var (
	// buildVersion по умолчанию "dev".
	buildVersion = "dev"
	// buildDate по умолчанию "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
