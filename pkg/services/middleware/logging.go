package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/haisum/smsinfo/pkg/logger"
)

// LoggingMiddleware returns an endpoint middleware that logs the
// duration of each invocation, and the resulting error, if any.
func LoggingMiddleware(logger logger.Logger, method string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				if err != nil {
					logger.Error("method", method, "transport_error", err, "took", time.Since(begin))
					return
				}
				logger.Info("method", method, "took", time.Since(begin))
			}(time.Now())
			return next(ctx, request)
		}
	}
}
