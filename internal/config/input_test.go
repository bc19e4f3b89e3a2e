package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/withdrawal-simulator/internal/calculation"
	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/rpgo/withdrawal-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeConfig(t, "simulation:\n"+
		"  initial_capital: 1000000\n"+
		"  first_withdrawal: 40000\n"+
		"  annual_rate: 0.07\n"+
		"  inflation_rate: 0.03\n"+
		"  horizon_years: 50\n"+
		"output:\n"+
		"  format: csv\n"+
		"cache:\n"+
		"  ttl: 30s\n")

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, config.Simulation.InitialCapital.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, config.Simulation.FirstWithdrawal.Equal(decimal.NewFromInt(40000)))
	assert.True(t, config.Simulation.AnnualRate.Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, config.Simulation.InflationRate.Equal(decimal.NewFromFloat(0.03)))
	assert.Equal(t, 50, config.Simulation.HorizonYears)
	assert.Equal(t, "csv", config.Output.Format)
	assert.Equal(t, 30*time.Second, config.Cache.TTL)

	// defaults
	assert.Equal(t, DefaultServerAddr, config.Server.Addr)
	assert.Equal(t, DefaultLogLevel, config.Logging.Level)
	assert.Equal(t, DefaultCacheSize, config.Cache.MaxEntries)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "simulation:\n\tinitial_capital: [oops\n")

	config, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidHorizon(t *testing.T) {
	path := writeConfig(t, "simulation:\n  initial_capital: 1000\n  horizon_years: 0\n")

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	t.Run("example is valid", func(t *testing.T) {
		assert.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))
	})

	t.Run("unknown format", func(t *testing.T) {
		config := parser.CreateExampleConfiguration()
		config.Output.Format = "docx"
		err := parser.ValidateConfiguration(config)
		assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	})

	t.Run("format alias accepted", func(t *testing.T) {
		config := parser.CreateExampleConfiguration()
		config.Output.Format = "verbose"
		assert.NoError(t, parser.ValidateConfiguration(config))
	})

	t.Run("horizon too long", func(t *testing.T) {
		config := parser.CreateExampleConfiguration()
		config.Simulation.HorizonYears = MaxHorizonYears + 1
		assert.ErrorIs(t, parser.ValidateConfiguration(config), ErrInvalidHorizon)
	})

	t.Run("degenerate amounts are accepted", func(t *testing.T) {
		config := parser.CreateExampleConfiguration()
		config.Simulation.InitialCapital = decimal.NewFromInt(-5)
		config.Simulation.AnnualRate = decimal.NewFromFloat(-0.5)
		assert.NoError(t, parser.ValidateConfiguration(config))
	})
}

func TestWarnings(t *testing.T) {
	parser := NewInputParser()

	example := parser.CreateExampleConfiguration()
	assert.Empty(t, parser.Warnings(&example.Simulation))

	params := domain.SimulationParams{
		InitialCapital:  decimal.Zero,
		FirstWithdrawal: decimal.NewFromInt(-1),
		AnnualRate:      decimal.NewFromFloat(0.25),
		InflationRate:   decimal.NewFromFloat(-0.01),
		HorizonYears:    5,
	}
	warnings := parser.Warnings(&params)
	assert.Len(t, warnings, 5)
	assert.Contains(t, warnings, "annual rate is outside 0-20%")
	assert.Contains(t, warnings, "horizon is outside 10-100 years")
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	original := parser.CreateExampleConfiguration()
	require.NoError(t, SaveConfiguration(original, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Simulation.AnnualRate.Equal(original.Simulation.AnnualRate))
	assert.True(t, loaded.Simulation.InitialCapital.Equal(original.Simulation.InitialCapital))
	assert.Equal(t, original.Simulation.HorizonYears, loaded.Simulation.HorizonYears)
	assert.Equal(t, original.Cache.TTL, loaded.Cache.TTL)
}

func TestEncodeConfiguration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeConfiguration(&buf, NewInputParser().CreateExampleConfiguration()))
	out := buf.String()
	assert.Contains(t, out, "simulation:\n  initial_capital: \"1000000\"")
	assert.Contains(t, out, "annual_rate: \"0.07\"")
	assert.Contains(t, out, "horizon_years: 50")
	assert.Contains(t, out, "format: console")
}

func TestParseTextInputs(t *testing.T) {
	params := ParseTextInputs(TextInputs{
		InitialCapital:  "$1,000,000",
		FirstWithdrawal: "$40,000",
		AnnualRate:      "7%",
		InflationRate:   "0.03",
		HorizonYears:    " 50 ",
	})
	assert.True(t, params.InitialCapital.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, params.FirstWithdrawal.Equal(decimal.NewFromInt(40000)))
	assert.True(t, params.AnnualRate.Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, params.InflationRate.Equal(decimal.NewFromFloat(0.03)))
	assert.Equal(t, 50, params.HorizonYears)

	garbage := ParseTextInputs(TextInputs{InitialCapital: "lots", AnnualRate: "high", HorizonYears: "forever"})
	assert.True(t, garbage.InitialCapital.IsZero())
	assert.True(t, garbage.AnnualRate.IsZero())
	assert.Equal(t, 0, garbage.HorizonYears)
	assert.ErrorIs(t, NewInputParser().ValidateParams(&garbage), ErrInvalidHorizon)
}

func TestValidateParams_BoundsPrecision(t *testing.T) {
	longRate := "0.07" + strings.Repeat("3", 296)
	longInflation := "0.03" + strings.Repeat("1", 296)
	params := domain.SimulationParams{
		InitialCapital:  decimal.RequireFromString("1000000.123456789"),
		FirstWithdrawal: decimal.RequireFromString("40000.005"),
		AnnualRate:      decimal.RequireFromString(longRate),
		InflationRate:   decimal.RequireFromString(longInflation),
		HorizonYears:    MaxHorizonYears,
	}
	require.NoError(t, NewInputParser().ValidateParams(&params))

	assert.GreaterOrEqual(t, params.AnnualRate.Exponent(), int32(-RateScale))
	assert.GreaterOrEqual(t, params.InflationRate.Exponent(), int32(-RateScale))
	assert.GreaterOrEqual(t, params.InitialCapital.Exponent(), int32(-AmountScale))
	assert.True(t, params.AnnualRate.Equal(decimal.RequireFromString("0.07333333")))
	assert.True(t, params.InflationRate.Equal(decimal.RequireFromString("0.03111111")))
	assert.True(t, params.InitialCapital.Equal(decimal.RequireFromString("1000000.12")))
	assert.True(t, params.FirstWithdrawal.Equal(decimal.RequireFromString("40000.01")))

	start := time.Now()
	result := calculation.NewProjectionEngine().Simulate(params)
	assert.Len(t, result.Series, MaxHorizonYears+1)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestValidateParams_KeepsShortInputs(t *testing.T) {
	params := NewInputParser().CreateExampleConfiguration().Simulation
	require.NoError(t, NewInputParser().ValidateParams(&params))
	assert.Equal(t, int32(-2), params.AnnualRate.Exponent())
	assert.Equal(t, "0.07", params.AnnualRate.String())
	assert.Equal(t, "1000000", params.InitialCapital.String())
}
