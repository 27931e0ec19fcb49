// Package plugin lets a small, fixed set of known smart-contract calls
// render with domain-specific captions ("Transfer", "From", "To")
// instead of the generic "Arg 1 of 3", "Arg 2 of 3" fallback the
// formatter otherwise produces for a Soroban invocation it doesn't
// recognize.
package plugin

import "github.com/withobsrvr/txscan/internal/xdrparse"

// Status reports the outcome of handing a contract call to a Plugin.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusError
)

// ErrPluginError is returned when a Plugin accepts a call via
// CheckPresence but then fails to produce a consistent pair count and
// pair set for it. The formatter treats this the same as
// StatusUnavailable: fall back to the generic argument dump.
var ErrPluginError = pluginErr("plugin rejected a call it claimed to recognize")

type pluginErr string

func (e pluginErr) Error() string { return string(e) }

// Plugin recognizes calls to one family of contracts and renders their
// arguments as domain-specific caption/value pairs. Implementations
// must be stateless between InitContract calls; the formatter may
// re-invoke InitContract for the same call on backward navigation.
type Plugin interface {
	// CheckPresence reports whether this plugin claims to understand
	// calls to contractID. It is consulted before InitContract so the
	// registry can pick the first matching plugin without committing to
	// decoding every argument first.
	CheckPresence(contractID string) bool

	// InitContract hands the plugin a fully decoded argument list for
	// one call to function on contractID. A StatusUnavailable or
	// StatusError result tells the formatter to fall back to the
	// generic rendering for this call.
	InitContract(contractID, function string, args []xdrparse.SCVal) (Status, error)

	// QueryPairCount reports how many caption/value pairs InitContract's
	// call will produce.
	QueryPairCount() (int, error)

	// QueryPair renders the index'th pair of the call passed to the most
	// recent InitContract.
	QueryPair(index int) (caption, value string, err error)
}

// Registry holds the plugins a Formatter consults for invoke-contract
// calls, tried in registration order.
type Registry struct {
	plugins []Plugin
}

// NewRegistry returns a Registry trying each plugin in order.
func NewRegistry(plugins ...Plugin) *Registry {
	return &Registry{plugins: plugins}
}

// Find returns the first registered plugin claiming contractID, or nil
// if none does.
func (r *Registry) Find(contractID string) Plugin {
	if r == nil {
		return nil
	}
	for _, p := range r.plugins {
		if p.CheckPresence(contractID) {
			return p
		}
	}
	return nil
}
