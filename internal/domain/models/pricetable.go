package models

import (
	"math"
	"time"
)

// PriceTable maps ticker symbols to closing-price series aligned on a
// common set of trading dates. Tickers preserves request order; every
// series in Close has exactly len(Dates) entries and no missing cell.
type PriceTable struct {
	Dates   []time.Time
	Tickers []string
	Close   map[string][]float64
}

// NewPriceTable aligns per-ticker series on their shared trading dates.
// Dates missing a value for any ticker are dropped entirely (inner-join
// semantics). Tickers with an empty series are omitted, and a symbol
// requested more than once keeps its first occurrence only: a repeat
// would write the shared column twice.
func NewPriceTable(tickers []string, series map[string][]ClosePoint) *PriceTable {
	t := &PriceTable{Close: make(map[string][]float64)}

	byDay := make(map[string]map[int64]float64)
	for _, tk := range tickers {
		if _, seen := byDay[tk]; seen {
			continue
		}
		pts := series[tk]
		if len(pts) == 0 {
			continue
		}
		m := make(map[int64]float64, len(pts))
		for _, p := range pts {
			m[dayKey(p.Date)] = p.Close
		}
		byDay[tk] = m
		t.Tickers = append(t.Tickers, tk)
	}
	if len(t.Tickers) == 0 {
		return t
	}

	// Walk the first surviving ticker's dates in order and keep only days
	// every ticker has.
	for _, p := range series[t.Tickers[0]] {
		key := dayKey(p.Date)
		ok := true
		for _, tk := range t.Tickers {
			if _, found := byDay[tk][key]; !found {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		t.Dates = append(t.Dates, p.Date)
		for _, tk := range t.Tickers {
			t.Close[tk] = append(t.Close[tk], byDay[tk][key])
		}
	}

	return t
}

func dayKey(d time.Time) int64 {
	y, m, day := d.UTC().Date()
	return int64(y)*10000 + int64(m)*100 + int64(day)
}

// Empty reports whether the table holds no aligned rows.
func (t *PriceTable) Empty() bool {
	return t == nil || len(t.Tickers) == 0 || len(t.Dates) == 0
}

// LastClose returns the most recent aligned closing price per ticker.
func (t *PriceTable) LastClose() map[string]float64 {
	out := make(map[string]float64, len(t.Tickers))
	if t.Empty() {
		return out
	}
	last := len(t.Dates) - 1
	for _, tk := range t.Tickers {
		out[tk] = t.Close[tk][last]
	}
	return out
}

// CumulativeReturns derives the return series: value/first - 1 per ticker,
// on the same date index. The first row of every column is 0.
func (t *PriceTable) CumulativeReturns() *PriceTable {
	r := &PriceTable{
		Dates:   t.Dates,
		Tickers: t.Tickers,
		Close:   make(map[string][]float64, len(t.Tickers)),
	}
	for _, tk := range t.Tickers {
		src := t.Close[tk]
		if len(src) == 0 || src[0] == 0 {
			r.Close[tk] = make([]float64, len(src))
			continue
		}
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = v/src[0] - 1
		}
		r.Close[tk] = out
	}
	return r
}

// Rounded returns a copy with every price rounded to the given number of
// decimal places, for display.
func (t *PriceTable) Rounded(places int) *PriceTable {
	factor := math.Pow(10, float64(places))
	r := &PriceTable{
		Dates:   t.Dates,
		Tickers: t.Tickers,
		Close:   make(map[string][]float64, len(t.Tickers)),
	}
	for _, tk := range t.Tickers {
		src := t.Close[tk]
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = math.Round(v*factor) / factor
		}
		r.Close[tk] = out
	}
	return r
}
