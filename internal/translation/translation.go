package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	DefaultTimeout          = 15 * time.Second
	DefaultBreakerThreshold = 5
	DefaultBreakerOpenTime  = 30 * time.Second
)

var errEmptyReply = errors.New("provider returned an empty translation")

// Backend is a single translation provider.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Error is returned inside a failed Result. It names the provider and wraps
// the underlying cause (network, quota, malformed reply, open breaker).
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translation via %s failed: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the outcome of one gateway call. Exactly one of Text or Err is
// meaningful: check OK before using Text.
type Result struct {
	Text     string
	Provider string
	Cached   bool
	Err      error
}

// OK reports whether the translation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// TextOr returns the translated text, or fallback when the call failed.
func (r Result) TextOr(fallback string) string {
	if r.OK() {
		return r.Text
	}
	return fallback
}

// Gateway is the process-wide translation handle. It is safe for concurrent
// use and holds no per-request state.
type Gateway struct {
	backend Backend
	cache   Cache
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// Option configures a Gateway.
type Option func(*gatewayOptions)

type gatewayOptions struct {
	cache            Cache
	timeout          time.Duration
	breakerThreshold uint32
	breakerOpenTime  time.Duration
}

// WithCache consults c before calling the backend and stores successful
// translations in it.
func WithCache(c Cache) Option {
	return func(o *gatewayOptions) { o.cache = c }
}

// WithTimeout bounds every backend call.
func WithTimeout(d time.Duration) Option {
	return func(o *gatewayOptions) { o.timeout = d }
}

// WithBreaker sets how many consecutive failures open the breaker and how
// long it stays open.
func WithBreaker(threshold uint32, openTime time.Duration) Option {
	return func(o *gatewayOptions) {
		o.breakerThreshold = threshold
		o.breakerOpenTime = openTime
	}
}

// NewGateway wraps backend. It is meant to be built once at startup and
// shared.
func NewGateway(backend Backend, opts ...Option) *Gateway {
	o := gatewayOptions{
		timeout:          DefaultTimeout,
		breakerThreshold: DefaultBreakerThreshold,
		breakerOpenTime:  DefaultBreakerOpenTime,
	}
	for _, opt := range opts {
		opt(&o)
	}

	threshold := o.breakerThreshold
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    backend.Name(),
		Timeout: o.breakerOpenTime,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("[Translator] Circuit breaker changed state",
				slog.String("provider", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &Gateway{
		backend: backend,
		cache:   o.cache,
		timeout: o.timeout,
		breaker: breaker,
	}
}

// Provider returns the backend name.
func (g *Gateway) Provider() string {
	return g.backend.Name()
}

// Translate translates text from source to target. It never returns a Go
// error; failures are reported through Result.Err as *Error.
func (g *Gateway) Translate(ctx context.Context, text, source, target string) Result {
	provider := g.backend.Name()
	if strings.TrimSpace(text) == "" {
		return Result{Text: text, Provider: provider}
	}

	key := CacheKey(source, target, text)
	if g.cache != nil {
		if cached, ok := g.cache.Get(ctx, key); ok {
			slog.Debug("[Translator] Cache hit", slog.String("provider", provider))
			return Result{Text: cached, Provider: provider, Cached: true}
		}
	}

	start := time.Now()
	out, err := g.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		translated, err := g.backend.Translate(callCtx, text, source, target)
		if err != nil {
			return nil, err
		}
		translated = strings.TrimSpace(translated)
		if translated == "" {
			return nil, errEmptyReply
		}
		return translated, nil
	})
	if err != nil {
		slog.Warn("[Translator] Translation failed",
			slog.String("provider", provider),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return Result{Provider: provider, Err: &Error{Provider: provider, Err: err}}
	}

	translated := out.(string)
	slog.Debug("[Translator] Translation succeeded",
		slog.String("provider", provider),
		slog.Duration("elapsed", time.Since(start)))

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, translated); err != nil {
			slog.Warn("[Translator] Failed to store translation in cache",
				slog.String("error", err.Error()))
		}
	}

	return Result{Text: translated, Provider: provider}
}

// Close releases the cache, if any.
func (g *Gateway) Close() error {
	if g.cache == nil {
		return nil
	}
	return g.cache.Close()
}
