package demand

import (
	"math"
	"time"
)

const (
	// historyWindowDays is the trailing lookback used to build historical series.
	historyWindowDays = 90
	// projectionDays is how far the forecast is always computed internally;
	// summaries cover the full projection even for shorter horizons.
	projectionDays = 30
	// minWeekdaySamples is the observation count below which a weekday's own
	// mean is too noisy and the global daily average is used instead.
	minWeekdaySamples = 3
)

const dateLayout = "2006-01-02"

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// forecast turns one stream's historical points into the predicted portion of
// its series plus the fixed-window rollups. Counts are bucketed by UTC day of
// week; a bucket with at least minWeekdaySamples observations predicts with
// its own mean, otherwise with the overall daily average. The projection
// always runs projectionDays out from tomorrow, but only the first horizon
// days are returned as points.
func forecast(points []HistoricalPoint, horizon int, today time.Time) ([]SeriesPoint, Summary) {
	var (
		bucketSums  [7]float64
		bucketSizes [7]int
		total       float64
	)
	for _, p := range points {
		wd := p.Date.UTC().Weekday()
		bucketSums[wd] += float64(p.Count)
		bucketSizes[wd]++
		total += float64(p.Count)
	}

	var overallDailyAvg float64
	if len(points) > 0 {
		overallDailyAvg = total / float64(len(points))
	}

	var byWeekday [7]float64
	for wd := range byWeekday {
		if bucketSizes[wd] >= minWeekdaySamples {
			byWeekday[wd] = round1(bucketSums[wd] / float64(bucketSizes[wd]))
		} else {
			byWeekday[wd] = round1(overallDailyAvg)
		}
	}

	predicted := make([]SeriesPoint, 0, horizon)
	var summary Summary
	var running float64

	day := today.AddDate(0, 0, 1)
	for i := 1; i <= projectionDays; i++ {
		v := byWeekday[day.Weekday()]
		if i <= horizon {
			predicted = append(predicted, SeriesPoint{
				Date:  day.Format(dateLayout),
				Count: v,
				Kind:  KindPredicted,
			})
		}
		running += v
		switch i {
		case 7:
			summary.Next7 = round1(running)
		case 14:
			summary.Next14 = round1(running)
		case 30:
			summary.Next30 = round1(running)
		}
		day = day.AddDate(0, 0, 1)
	}

	return predicted, summary
}
