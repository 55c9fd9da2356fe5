package demand

import "time"

// Quality grades how much historical signal backs a stream's forecast.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// ClassifyQuality derives the confidence label for one stream from its total
// observed event count and the number of distinct days that had data.
func ClassifyQuality(total, daysWithData int) Quality {
	switch {
	case total >= 50 && daysWithData >= 14:
		return QualityHigh
	case total >= 15 || daysWithData >= 7:
		return QualityMedium
	default:
		return QualityLow
	}
}

// HistoricalPoint is one calendar day in the trailing window that had at
// least one qualifying event. Days with zero events are simply absent.
type HistoricalPoint struct {
	Date  time.Time
	Count int
}

const (
	KindHistorical = "historical"
	KindPredicted  = "predicted"
)

// SeriesPoint is one entry of a merged demand series: observed days first,
// then predicted days, both ascending by date.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Count float64 `json:"count"`
	Kind  string  `json:"kind"`
}

// Summary rolls predicted demand up over the three fixed sub-horizons. All
// three fields are populated regardless of the horizon the caller requested.
type Summary struct {
	Next7  float64 `json:"next_7_days"`
	Next14 float64 `json:"next_14_days"`
	Next30 float64 `json:"next_30_days"`
}

// StreamForecast bundles the merged series, rollups, and bookkeeping for one
// event stream.
type StreamForecast struct {
	Series          []SeriesPoint `json:"series"`
	Summary         Summary       `json:"summary"`
	Quality         Quality       `json:"quality"`
	TotalHistorical int           `json:"total_historical"`
	DaysWithData    int           `json:"days_with_data"`
}

// Prediction is the composite result of one demand-prediction call: one
// forecast per stream. It is built fresh per request and never persisted.
type Prediction struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	HorizonDays  int            `json:"horizon_days"`
	Appointments StreamForecast `json:"appointments"`
	Surgeries    StreamForecast `json:"surgeries"`
	NewPatients  StreamForecast `json:"new_patients"`
}
