package translator

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"babelcord/internals/lang"
)

// Breaker stops hammering a failing provider on every guild message. After
// five consecutive failures the circuit opens and calls fail fast until the
// provider has been quiet for a while.
type Breaker struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

func NewBreaker(inner Translator) *Breaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translator",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Breaker{inner: inner, cb: cb}
}

func (b *Breaker) Translate(ctx context.Context, text string, target lang.Language) (Result, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text, target)
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}
