package dashboard

import "errors"

var (
	// ErrUnknownTab is returned for a tab identifier outside the tab strip.
	ErrUnknownTab = errors.New("unknown tab")
	// ErrUnknownTimeframe is returned for a horizon that is not offered.
	ErrUnknownTimeframe = errors.New("unknown timeframe")
)
