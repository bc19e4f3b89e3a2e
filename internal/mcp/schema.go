package mcp

// SimulateInput defines the input for the simulate_withdrawals tool.
type SimulateInput struct {
	InitialCapital  float64 `json:"initial_capital" jsonschema:"Starting fund balance (C0) in currency units"`
	FirstWithdrawal float64 `json:"first_withdrawal" jsonschema:"Withdrawal taken at the end of year 1 (W1)"`
	AnnualRate      float64 `json:"annual_rate" jsonschema:"Nominal annual growth rate as a fraction (0.07 means 7%)"`
	InflationRate   float64 `json:"inflation_rate" jsonschema:"Annual withdrawal inflation rate as a fraction (0.03 means 3%)"`
	HorizonYears    int     `json:"horizon_years" jsonschema:"Number of simulated years (1 to 500)"`
	IncludeSeries   bool    `json:"include_series,omitempty" jsonschema:"Return the full year-by-year series"`
}

// SimulateOutput defines the output for the simulate_withdrawals tool.
type SimulateOutput struct {
	RealReturn          float64     `json:"real_return" jsonschema:"Annual rate minus inflation rate"`
	PerpetualMinCapital *float64    `json:"perpetual_min_capital,omitempty" jsonschema:"Capital that sustains the withdrawals forever; absent when the real return is not positive"`
	TerminalMinCapital  float64     `json:"terminal_min_capital" jsonschema:"Smallest capital found that keeps the final-year balance positive"`
	TerminalConverged   bool        `json:"terminal_converged" jsonschema:"Whether the terminal capital search converged"`
	FinalBalance        float64     `json:"final_balance" jsonschema:"Balance at the end of the horizon"`
	FinalWithdrawal     float64     `json:"final_withdrawal" jsonschema:"Withdrawal in the final year"`
	TotalWithdrawn      float64     `json:"total_withdrawn" jsonschema:"Sum of all withdrawals over the horizon"`
	DepletionYear       int         `json:"depletion_year,omitempty" jsonschema:"First year the balance is zero or negative"`
	Warnings            []string    `json:"warnings,omitempty" jsonschema:"Notes about the result"`
	Series              []YearPoint `json:"series,omitempty" jsonschema:"Year-by-year projection when include_series is set"`
}

// YearPoint is one row of the projection series.
type YearPoint struct {
	Year                  int     `json:"year"`
	Balance               float64 `json:"balance"`
	Withdrawal            float64 `json:"withdrawal"`
	CumulativeWithdrawals float64 `json:"cumulative_withdrawals"`
}
