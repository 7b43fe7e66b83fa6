package main

import (
	"log"

	"github.com/gym-network-toolkit/portal/config"
	"github.com/gym-network-toolkit/portal/internal/app"
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	runAppFunc(cfg)
}
