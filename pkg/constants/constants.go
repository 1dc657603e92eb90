// Package constants provides shared constants for the credwise service.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Simulation bounds
const (
	// PayoffMonthsCap bounds the payoff simulation at 50 years so that
	// near-break-even payments cannot loop forever.
	PayoffMonthsCap = 600

	// MaxTermMonths is the longest loan term accepted as input (50 years).
	MaxTermMonths = 600

	// MaxProjectionYears is the longest savings projection accepted as input.
	MaxProjectionYears = 50
)

// Display truncation caps. Schedules and series can run to hundreds of
// points; only this many are returned to callers for rendering.
const (
	// PayoffSeriesLimit is the number of monthly payoff points returned.
	PayoffSeriesLimit = 24

	// SchedulePeriodsLimit is the number of per-period schedule rows returned.
	SchedulePeriodsLimit = 12

	// YearlySeriesLimit is the number of yearly rollup buckets returned.
	YearlySeriesLimit = 10
)

// Credit score range
const (
	// ScoreFloor is the lowest possible credit score.
	ScoreFloor = 300

	// ScoreCeiling is the highest possible credit score.
	ScoreCeiling = 850

	// ScoreSpan is the width of the credit score range.
	ScoreSpan = ScoreCeiling - ScoreFloor
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Server configuration defaults
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)
