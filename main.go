package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"soilsense/adapters/api"
	"soilsense/internal/config"
	"soilsense/internal/report"
	"soilsense/internal/validation"
)

// Root entry point runs the HTTP validation service; cmd/ holds the
// dedicated binaries.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	engine := validation.NewEngine()
	service := api.NewService(report.NewAssembler(engine))

	addr := ":" + cfg.Server.Port
	log.Printf("[SoilSense] listening on %s", addr)
	if err := http.ListenAndServe(addr, service.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
