package providers

import (
	"errors"
	"fmt"
)

// Kind classifies provider failures so callers can respond to each deliberately.
type Kind string

const (
	KindConfig   Kind = "config"
	KindUpstream Kind = "upstream"
	KindDecode   Kind = "decode"
)

// ErrProviderUnavailable is returned when no provider is wired.
var ErrProviderUnavailable = errors.New("injury provider unavailable")

// Error wraps a provider failure with its kind and the provider name.
type Error struct {
	Kind       Kind
	Provider   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := "provider error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s", e.Provider, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ConfigError reports missing or invalid provider configuration.
func ConfigError(provider string, err error) error {
	return &Error{Kind: KindConfig, Provider: provider, Err: err}
}

// UpstreamError reports a network failure or a non-success upstream response.
func UpstreamError(provider string, status int, err error) error {
	return &Error{Kind: KindUpstream, Provider: provider, StatusCode: status, Err: err}
}

// DecodeError reports a payload that could not be parsed.
func DecodeError(provider string, err error) error {
	return &Error{Kind: KindDecode, Provider: provider, Err: err}
}

// AsError attempts to unwrap err into a provider Error.
func AsError(err error) (*Error, bool) {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// KindOf returns the failure kind, treating unclassified errors as upstream failures.
func KindOf(err error) Kind {
	if pErr, ok := AsError(err); ok {
		return pErr.Kind
	}
	return KindUpstream
}
