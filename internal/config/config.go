package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jasklabor/internal/dp"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Run      RunConfig
	Model    ModelConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// RunConfig holds simulation run settings.
type RunConfig struct {
	Agents int
	Seed   int64
}

// ModelConfig holds the structural parameters. Field names mirror dp.Params;
// the three-action layout (stay / sector1 / sector2) is fixed here, matching
// the reference model.
type ModelConfig struct {
	Horizon         int
	GridSize        int     `mapstructure:"grid_size"`
	InterestRate    float64 `mapstructure:"interest_rate"`
	RiskAversion    float64 `mapstructure:"risk_aversion"`
	WageSD          float64 `mapstructure:"wage_sd"`
	Trend           float64
	TerminalDivisor float64 `mapstructure:"terminal_divisor"`
	Dispersion      float64

	StayIntercept float64 `mapstructure:"stay_intercept"`
	StayDrift     float64 `mapstructure:"stay_drift"`

	Sector1Return    float64 `mapstructure:"sector1_return"`
	Sector1Intercept float64 `mapstructure:"sector1_intercept"`
	Sector1Drift     float64 `mapstructure:"sector1_drift"`

	Sector2Return    float64 `mapstructure:"sector2_return"`
	Sector2Intercept float64 `mapstructure:"sector2_intercept"`
	Sector2Drift     float64 `mapstructure:"sector2_drift"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// JASKLABOR_ (e.g. JASKLABOR_RUN_AGENTS).
func Load() (Config, error) {
	v := viper.New()

	def := dp.DefaultParams()
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jasklabor", "jasklabor.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("run.agents", 5000)
	v.SetDefault("run.seed", 1)
	v.SetDefault("model.horizon", def.Horizon)
	v.SetDefault("model.grid_size", def.GridSize)
	v.SetDefault("model.interest_rate", def.InterestRate)
	v.SetDefault("model.risk_aversion", def.Rho)
	v.SetDefault("model.wage_sd", def.Sigma)
	v.SetDefault("model.trend", def.Trend)
	v.SetDefault("model.terminal_divisor", def.TerminalDivisor)
	v.SetDefault("model.dispersion", def.Dispersion)
	v.SetDefault("model.stay_intercept", def.Actions[0].Intercept)
	v.SetDefault("model.stay_drift", def.Actions[0].Drift)
	v.SetDefault("model.sector1_return", def.Actions[1].Return)
	v.SetDefault("model.sector1_intercept", def.Actions[1].Intercept)
	v.SetDefault("model.sector1_drift", def.Actions[1].Drift)
	v.SetDefault("model.sector2_return", def.Actions[2].Return)
	v.SetDefault("model.sector2_intercept", def.Actions[2].Intercept)
	v.SetDefault("model.sector2_drift", def.Actions[2].Drift)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKLABOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jasklabor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKLABOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// ModelParams converts the flat config into solver parameters.
func (c Config) ModelParams() dp.Params {
	m := c.Model
	return dp.Params{
		Horizon:         m.Horizon,
		GridSize:        m.GridSize,
		InterestRate:    m.InterestRate,
		Rho:             m.RiskAversion,
		Sigma:           m.WageSD,
		Trend:           m.Trend,
		TerminalDivisor: m.TerminalDivisor,
		Dispersion:      m.Dispersion,
		Actions: []dp.ActionSpec{
			{Name: "stay", Intercept: m.StayIntercept, Drift: m.StayDrift},
			{Name: "sector1", Wage: true, Return: m.Sector1Return, Intercept: m.Sector1Intercept, Drift: m.Sector1Drift},
			{Name: "sector2", Wage: true, Return: m.Sector2Return, Intercept: m.Sector2Intercept, Drift: m.Sector2Drift},
		},
	}
}
