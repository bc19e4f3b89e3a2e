package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/rpgo/withdrawal-simulator/internal/output"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxHorizonYears bounds the projection length accepted from callers.
const MaxHorizonYears = 500

// ErrInvalidHorizon is returned when horizon_years is outside 1..MaxHorizonYears.
var ErrInvalidHorizon = errors.New("horizon years out of range")

// Defaults applied to empty configuration fields.
const (
	DefaultFormat       = "console"
	DefaultServerAddr   = ":8080"
	DefaultLogLevel     = "info"
	DefaultCacheTTL     = 10 * time.Minute
	DefaultCacheSize    = 256
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

// Decimal places kept on inputs. Exact arithmetic grows the digit count every
// projected year, so input precision is bounded before any simulation runs.
const (
	RateScale   = 8
	AmountScale = 2
)

// Input hints carried over from the interactive form. Values outside them are
// accepted but reported by Warnings.
var (
	rateHintMax      = decimal.NewFromFloat(0.20)
	inflationHintMax = decimal.NewFromFloat(0.15)
)

const (
	horizonHintMin = 10
	horizonHintMax = 100
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file, applies defaults and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills empty output, server, cache and logging settings
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Output.Format == "" {
		config.Output.Format = DefaultFormat
	}
	if config.Server.Addr == "" {
		config.Server.Addr = DefaultServerAddr
	}
	if config.Server.ReadTimeout <= 0 {
		config.Server.ReadTimeout = DefaultReadTimeout
	}
	if config.Server.WriteTimeout <= 0 {
		config.Server.WriteTimeout = DefaultWriteTimeout
	}
	if config.Cache.TTL <= 0 {
		config.Cache.TTL = DefaultCacheTTL
	}
	if config.Cache.MaxEntries <= 0 {
		config.Cache.MaxEntries = DefaultCacheSize
	}
	if config.Logging.Level == "" {
		config.Logging.Level = DefaultLogLevel
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateParams(&config.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}

	if config.Output.Format != "" && !output.IsKnownFormat(config.Output.Format) {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, config.Output.Format)
	}

	if config.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache max entries cannot be negative")
	}

	return nil
}

// ValidateParams checks the one precondition the engine leaves to its callers: a
// positive horizon. Amounts and rates are free-form what-if inputs and are not
// rejected, but their precision is capped at AmountScale and RateScale places.
func (ip *InputParser) ValidateParams(params *domain.SimulationParams) error {
	if params.HorizonYears <= 0 || params.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidHorizon, params.HorizonYears, MaxHorizonYears)
	}
	params.InitialCapital = boundScale(params.InitialCapital, AmountScale)
	params.FirstWithdrawal = boundScale(params.FirstWithdrawal, AmountScale)
	params.AnnualRate = boundScale(params.AnnualRate, RateScale)
	params.InflationRate = boundScale(params.InflationRate, RateScale)
	return nil
}

// boundScale rounds d to places decimals when it carries more. Values already
// within the limit keep their exponent so short inputs stay short.
func boundScale(d decimal.Decimal, places int32) decimal.Decimal {
	if d.Exponent() >= -places {
		return d
	}
	return d.Round(places)
}

// Warnings lists inputs that fall outside the usual planning ranges.
func (ip *InputParser) Warnings(params *domain.SimulationParams) []string {
	var warnings []string
	if !params.InitialCapital.IsPositive() {
		warnings = append(warnings, "initial capital is not positive")
	}
	if params.FirstWithdrawal.IsNegative() {
		warnings = append(warnings, "first withdrawal is negative")
	}
	if params.AnnualRate.IsNegative() || params.AnnualRate.GreaterThan(rateHintMax) {
		warnings = append(warnings, "annual rate is outside 0-20%")
	}
	if params.InflationRate.IsNegative() || params.InflationRate.GreaterThan(inflationHintMax) {
		warnings = append(warnings, "inflation rate is outside 0-15%")
	}
	if params.HorizonYears < horizonHintMin || params.HorizonYears > horizonHintMax {
		warnings = append(warnings, fmt.Sprintf("horizon is outside %d-%d years", horizonHintMin, horizonHintMax))
	}
	return warnings
}

// CreateExampleConfiguration creates an example configuration with the simulator's default inputs
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := &domain.Configuration{
		Simulation: domain.SimulationParams{
			InitialCapital:  decimal.NewFromInt(1000000),
			FirstWithdrawal: decimal.NewFromInt(40000),
			AnnualRate:      decimal.NewFromFloat(0.07),
			InflationRate:   decimal.NewFromFloat(0.03),
			HorizonYears:    50,
		},
		Output: domain.OutputSettings{
			Format:    DefaultFormat,
			Directory: ".",
		},
	}
	ip.ApplyDefaults(config)
	return config
}

// SaveConfiguration writes config as YAML to filename
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// EncodeConfiguration writes config as YAML to w
func EncodeConfiguration(w io.Writer, config *domain.Configuration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}
