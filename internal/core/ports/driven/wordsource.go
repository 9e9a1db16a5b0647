package driven

import "context"

// WordSource supplies the raw word list, one candidate word per line.
type WordSource interface {
	// ReadWords returns every line at location in order.
	// An error means the list could not be obtained at all; individual bad
	// lines are returned as-is and filtered by the core.
	ReadWords(ctx context.Context, location string) ([]string, error)
}
