package server

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/StudyGarden_Go/internal/logger"
)

const (
	// idempotencyCacheSize bounds the set of remembered request ids
	idempotencyCacheSize = 1024
	// idempotencyTTL is how long a request id suppresses replays
	idempotencyTTL = 30 * time.Second
)

// IdempotencyMiddleware suppresses accidental double submissions of mutating
// requests. The UI sends a fresh X-Request-ID per user action; replaying the
// same id within the TTL (a double click, a retry racing its original) is
// answered with 409 instead of mutating twice. Requests without the header
// pass through untouched.
func IdempotencyMiddleware() func(http.Handler) http.Handler {
	seen := expirable.NewLRU[string, struct{}](idempotencyCacheSize, nil, idempotencyTTL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, dup := seen.Get(requestID); dup {
				log := logger.FromContext(r.Context())
				log.Warn("Duplicate request suppressed", "request_id", requestID, "path", r.URL.Path)
				http.Error(w, ErrMsgDuplicateRequest, http.StatusConflict)
				return
			}
			seen.Add(requestID, struct{}{})

			next.ServeHTTP(w, r)
		})
	}
}
