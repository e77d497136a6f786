package middleware

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/metrics"
)

// HeaderIdempotencyKey is the request header carrying the client-chosen key.
const HeaderIdempotencyKey = "Idempotency-Key"

// IdempotencyGuard records request keys. Claim reports false when the key was
// already claimed.
type IdempotencyGuard interface {
	Claim(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
}

// Idempotency rejects a repeated Idempotency-Key within scope with
// domain.ErrDuplicateRequest. Authenticated callers get their own key space.
// Requests without the header pass through. When
// the guard is unreachable the request is processed anyway. A failed request
// releases its key so the client can retry.
func Idempotency(guard IdempotencyGuard, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" {
				return next(c)
			}

			claimScope := callerScope(c, scope)
			ctx := c.Request().Context()
			fresh, err := guard.Claim(ctx, claimScope, key)
			if err != nil {
				metrics.IdempotencyChecksTotal.WithLabelValues("error").Inc()
				log.Warn().Err(err).Str("scope", claimScope).Str("idempotency_key", key).Msg("idempotency check failed, processing anyway")
				return next(c)
			}
			if !fresh {
				metrics.IdempotencyChecksTotal.WithLabelValues("replay").Inc()
				log.Info().Str("scope", claimScope).Str("idempotency_key", key).Msg("duplicate request rejected")
				return domain.ErrDuplicateRequest
			}
			metrics.IdempotencyChecksTotal.WithLabelValues("fresh").Inc()

			if err := next(c); err != nil {
				if rerr := guard.Release(ctx, claimScope, key); rerr != nil {
					log.Warn().Err(rerr).Str("scope", claimScope).Str("idempotency_key", key).Msg("idempotency release failed")
				}
				return err
			}
			return nil
		}
	}
}

// callerScope appends the authenticated user id, when present, to scope.
func callerScope(c echo.Context, scope string) string {
	if id, ok := c.Get(ContextUserID).(int64); ok {
		return scope + ":" + strconv.FormatInt(id, 10)
	}
	return scope
}
