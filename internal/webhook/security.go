package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// maxTimestampSkew is the replay window: requests older or newer than
// this are rejected regardless of signature correctness.
const maxTimestampSkew = 300 * time.Second

// SecurityValidator validates webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
	now         func() time.Time
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
		now:         time.Now,
	}
}

// ValidateSlackSignature verifies a Slack request signature.
//
// The expected value is "v0=" + hex(HMAC_SHA256(secret, "v0:<ts>:<body>")).
// The timestamp must be within the replay window in both directions;
// comparison is constant-time and a length mismatch is a plain failure.
func (v *SecurityValidator) ValidateSlackSignature(body []byte, signature, timestamp string) error {
	if v.config.SigningSecret == "" {
		return fmt.Errorf("webhook signing secret not configured")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp header: %w", err)
	}

	skew := v.now().Unix() - ts
	if skew > int64(maxTimestampSkew.Seconds()) || -skew > int64(maxTimestampSkew.Seconds()) {
		return fmt.Errorf("timestamp outside replay window")
	}

	// Slack sends signature as "v0=<hex>"
	if !strings.HasPrefix(signature, "v0=") {
		return fmt.Errorf("invalid signature format")
	}

	providedSig, err := hex.DecodeString(signature[3:])
	if err != nil {
		return fmt.Errorf("invalid signature hex encoding: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(v.config.SigningSecret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)
	expectedSig := mac.Sum(nil)

	// Constant-time comparison on raw bytes; hmac.Equal treats a
	// length mismatch as a normal failure.
	if !hmac.Equal(providedSig, expectedSig) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

// Sign computes the signature header value for a body and timestamp.
// Used by tests to produce valid requests.
func (v *SecurityValidator) Sign(body []byte, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(v.config.SigningSecret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

// CheckRateLimit enforces rate limiting per source key.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter is a per-source token bucket with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 600
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
