package models

import "fmt"

// GenerationError means the language-model endpoint was unreachable,
// returned a non-success status, or produced no completions.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return fmt.Sprintf("text generation: %v", e.Err) }
func (e *GenerationError) Unwrap() error { return e.Err }

// FeedError means the news feed source was unreachable or malformed.
// An empty article set is not a FeedError.
type FeedError struct {
	Err error
}

func (e *FeedError) Error() string { return fmt.Sprintf("news feed: %v", e.Err) }
func (e *FeedError) Unwrap() error { return e.Err }

// PriceDataError means no requested ticker yielded a usable closing-price
// series. A failing subset of tickers is tolerated and does not raise it.
type PriceDataError struct {
	Msg string
}

func (e *PriceDataError) Error() string { return "price data: " + e.Msg }

// ConfigError means a required credential or setting is absent. It is
// raised before any network call is attempted.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

// DeliveryError means the email service rejected the submission.
type DeliveryError struct {
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("delivery rejected with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("delivery: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
