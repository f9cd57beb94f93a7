package provider

import (
	"context"
	"errors"

	"github.com/Chinmay4285/Stock-Comparer/internal/metrics"
)

// ErrTickerNotFound indicates the data source has no record of the symbol.
var ErrTickerNotFound = errors.New("ticker not found")

// Provider supplies a normalized metric bundle for one ticker. Fields the
// source cannot supply must arrive absent, never defaulted to zero, so the
// classifier can tell missing data from bad data.
type Provider interface {
	FetchMetrics(ctx context.Context, ticker string) (*metrics.Bundle, error)
}
