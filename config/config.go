package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseConnectionString string
	CatalogFile              string
	PlanPageURL              string
	SingleSelection          bool
}

// Load reads .env when present and then the environment. Variables already
// set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DatabaseConnectionString: strings.TrimSpace(os.Getenv("DATABASE_CONNECTION_STRING")),
		CatalogFile:              strings.TrimSpace(os.Getenv("PLAN_CATALOG_FILE")),
		PlanPageURL:              strings.TrimSpace(os.Getenv("PLAN_PAGE_URL")),
	}

	if raw := strings.TrimSpace(os.Getenv("PLAN_SINGLE_SELECTION")); raw != "" {
		single, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("PLAN_SINGLE_SELECTION: %w", err)
		}
		config.SingleSelection = single
	}

	return config, nil
}
