package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// IdempotencyHeader names the client-chosen key for a retried submission.
	IdempotencyHeader = "Idempotency-Key"

	// ReplayedHeader is set on responses served from a stored submission.
	ReplayedHeader = "Idempotent-Replayed"

	replayTTL    = 24 * time.Hour
	replayPrefix = "idempotency:"
)

// storedSubmission is the recorded outcome of a keyed POST.
type storedSubmission struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// replayStore keeps recorded submissions in Redis.
type replayStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s replayStore) key(c *gin.Context, idempotencyKey string) string {
	return replayPrefix + c.Request.URL.Path + ":" + idempotencyKey
}

// load returns the stored submission, or nil when the key is unknown.
func (s replayStore) load(ctx context.Context, key string) (*storedSubmission, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stored storedSubmission
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// save records a submission unless one is already stored under key.
func (s replayStore) save(ctx context.Context, key string, stored storedSubmission) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return s.client.SetNX(ctx, key, data, s.ttl).Err()
}

// bodyRecorder tees the response body so it can be stored after the handler.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// replayable reports whether the finished request may be served again.
//
// Ride errors are usually sent with status 200, so the status alone does not
// say whether the request failed. Handlers mark storage failures with
// c.Error; those outcomes are never stored and a retry reaches the store
// again. Validation and not-found bodies depend only on the request and
// are stored like successes. 5xx responses are never stored.
func replayable(c *gin.Context) bool {
	if len(c.Errors) > 0 {
		return false
	}
	status := c.Writer.Status()
	return status >= http.StatusOK && status < http.StatusInternalServerError
}

// IdempotencyMiddleware replays the stored response when a POST is retried
// with the same Idempotency-Key, so a client retry does not insert a second
// ride. A nil client disables it, and Redis errors degrade to running the
// handler normally.
func IdempotencyMiddleware(redisClient *redis.Client) gin.HandlerFunc {
	if redisClient == nil {
		return func(c *gin.Context) { c.Next() }
	}
	store := replayStore{client: redisClient, ttl: replayTTL}

	return func(c *gin.Context) {
		idempotencyKey := c.GetHeader(IdempotencyHeader)
		if c.Request.Method != http.MethodPost || idempotencyKey == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := store.key(c, idempotencyKey)

		stored, err := store.load(ctx, key)
		if err != nil {
			c.Next()
			return
		}
		if stored != nil {
			c.Header(ReplayedHeader, "true")
			c.Data(stored.Status, stored.ContentType, stored.Body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		if !replayable(c) {
			return
		}
		_ = store.save(ctx, key, storedSubmission{
			Status:      c.Writer.Status(),
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
	}
}
