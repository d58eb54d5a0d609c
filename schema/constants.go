package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StressStatus represents the qualitative band of a stress score.
	StressStatus string

	// ScoreSource represents where a daily stress score came from.
	ScoreSource string

	// TrendDirection represents the direction of a weekly trend.
	TrendDirection string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All stress status bands supported.
const (
	LowStress      StressStatus = "LOW"      // score <= 40
	ModerateStress StressStatus = "MODERATE" // score <= 65
	HighStress     StressStatus = "HIGH"     // score > 65
	UnknownStress  StressStatus = "UNKNOWN"  // no score
)

// All stress score sources supported.
const (
	DirectSource      ScoreSource = "direct"
	DerivedSource     ScoreSource = "derived"
	UnavailableSource ScoreSource = "unavailable"
)

// All trend directions supported.
const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendStable  TrendDirection = "stable"
	TrendUnknown TrendDirection = "unknown"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// DirectScoreKeys are the record fields probed, in priority order, for a
// numeric stress score reported directly by the provider.
var DirectScoreKeys = []string{
	"stress_score",
	"stress",
	"average_stress",
	"average_stress_level",
	"stress_level",
}

// DirectStatusKeys are the record fields probed, in priority order, for a
// qualitative stress label reported directly by the provider.
var DirectStatusKeys = []string{
	"day_summary",
	"status",
	"stress_status",
}

// StatusToScore maps provider stress labels to canonical numeric scores.
var StatusToScore = map[string]float64{
	"restored":     25,
	"relaxed":      30,
	"normal":       50,
	"engaged":      60,
	"stressed":     75,
	"high_stress":  85,
	"overstressed": 90,
}

// StressContributorKeys are the readiness contributor fields folded into the
// derived stress proxy, in component order. Contributors report "higher is
// better", so each value is inverted before averaging.
var StressContributorKeys = []string{
	"hrv_balance",
	"resting_heart_rate",
	"recovery_index",
	"sleep_balance",
	"previous_night",
}

// Population fallbacks when no personal baseline can be computed.
const (
	DefaultBaselineHRV = 40.0
	DefaultBaselineRHR = 60.0
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
