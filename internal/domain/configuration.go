package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Configuration represents the complete input configuration file
type Configuration struct {
	Simulation SimulationParams `yaml:"simulation" json:"simulation"`
	Output     OutputSettings   `yaml:"output" json:"output"`
	Server     ServerSettings   `yaml:"server" json:"server"`
	Cache      CacheSettings    `yaml:"cache" json:"cache"`
	Logging    LoggingSettings  `yaml:"logging" json:"logging"`
}

// OutputSettings controls where and how reports are written
type OutputSettings struct {
	Format    string `yaml:"format" json:"format"`
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty"`
}

// ServerSettings configures the HTTP API
type ServerSettings struct {
	Addr         string        `yaml:"addr" json:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty" json:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty" json:"write_timeout,omitempty"`
}

// CacheSettings configures projection memoization.
// An empty RedisAddr keeps the cache in process memory.
type CacheSettings struct {
	RedisAddr  string        `yaml:"redis_addr,omitempty" json:"redis_addr,omitempty"`
	TTL        time.Duration `yaml:"ttl,omitempty" json:"ttl,omitempty"`
	MaxEntries int           `yaml:"max_entries,omitempty" json:"max_entries,omitempty"`
}

// LoggingSettings selects the log level (info, debug, trace)
type LoggingSettings struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
}

// GenerateAssumptions creates the assumptions list rendered in detailed reports
func (p SimulationParams) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Fund growth: %.2f%% annually, applied before the withdrawal", p.AnnualRate.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Withdrawal inflation: %.2f%% annually, first year unadjusted", p.InflationRate.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Horizon: %d years, no early stop when the fund is depleted", p.HorizonYears),
		"Yearly figures are rounded to whole currency units for display only",
	}
}
