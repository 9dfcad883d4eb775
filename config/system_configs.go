package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/krishnateja08/FII-DII-Pulse/model"
)

type SystemConfigs struct {
	Config *model.EnvConfig
	Market *model.MarketConfig
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	var envCfg model.EnvConfig
	if rawJson := os.Getenv("config"); rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	if envCfg.FetchWorkers <= 0 {
		envCfg.FetchWorkers = 4
	}

	market, err := LoadMarketConfig(envCfg.MarketDataFile)
	if err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config: &envCfg,
		Market: market,
	}, nil
}

// LoadMarketConfig reads the market data tables from path, falling back to
// the embedded defaults when no file is configured. A partial file only
// overrides the tables it sets, so a yearly holiday refresh does not have
// to restate the keyword lists.
func LoadMarketConfig(path string) (*model.MarketConfig, error) {
	cfg := DefaultMarketConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market data file: %w", err)
	}

	var override model.MarketConfig
	if err := json.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("failed to parse market data file: %w", err)
	}

	if len(override.Holidays) > 0 {
		cfg.Holidays = override.Holidays
	}
	if len(override.FiiKeywords) > 0 {
		cfg.FiiKeywords = override.FiiKeywords
	}
	if len(override.DiiKeywords) > 0 {
		cfg.DiiKeywords = override.DiiKeywords
	}
	if len(override.FallbackStocks) > 0 {
		cfg.FallbackStocks = override.FallbackStocks
	}
	if override.CutoffHour > 0 {
		cfg.CutoffHour = override.CutoffHour
		cfg.CutoffMinute = override.CutoffMinute
	}
	return cfg, nil
}
