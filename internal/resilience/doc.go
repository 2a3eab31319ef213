// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes implementations of circuit breakers and retry logic to keep a
// pipeline run healthy when individual sources fail.
//
// The package supports:
//   - Circuit breakers for external endpoints (RSS feeds, NewsAPI)
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.FeedPollConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return pollFeed()
//	})
//
//	retryConfig := retry.DefaultConfig()
//	err := retry.WithBackoff(ctx, retryConfig, func() error {
//	    return performOperation()
//	})
package resilience
