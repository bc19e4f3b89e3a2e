package config

import (
	"strconv"
	"strings"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
	money "github.com/rpgo/withdrawal-simulator/pkg/decimal"
)

// TextInputs holds raw, user-typed simulation inputs such as "$1,000,000" or "7%".
type TextInputs struct {
	InitialCapital  string
	FirstWithdrawal string
	AnnualRate      string
	InflationRate   string
	HorizonYears    string
}

// ParseTextInputs converts free-form text into simulation params.
// Unparseable fields become zero instead of failing; ValidateParams still
// rejects a zero horizon.
func ParseTextInputs(in TextInputs) domain.SimulationParams {
	years, err := strconv.Atoi(strings.TrimSpace(in.HorizonYears))
	if err != nil {
		years = 0
	}
	return domain.SimulationParams{
		InitialCapital:  money.ParseMoney(in.InitialCapital),
		FirstWithdrawal: money.ParseMoney(in.FirstWithdrawal),
		AnnualRate:      money.ParseRate(in.AnnualRate),
		InflationRate:   money.ParseRate(in.InflationRate),
		HorizonYears:    years,
	}
}
