package webhook

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-brain/internal/message"
	"ai-brain/internal/model"
)

// HandleSlackWebhook processes inbound Slack webhook deliveries.
//
// Order matters: the url_verification handshake is answered before any
// signature check because Slack performs it before the signing secret
// is necessarily provisioned. Everything else requires a valid
// signature within the replay window.
func (h *Handler) HandleSlackWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "slack webhook: failed to read body: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	env, err := h.parser.ParseEnvelope(body)
	if err != nil {
		h.l.Errorf(ctx, "slack webhook: malformed payload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// URL verification handshake: echo the challenge verbatim.
	if env.Type == EnvelopeURLVerification {
		c.JSON(http.StatusOK, gin.H{"challenge": env.Challenge})
		return
	}

	signature := c.GetHeader(HeaderSignature)
	timestamp := c.GetHeader(HeaderTimestamp)
	if signature == "" || timestamp == "" {
		h.l.Warnf(ctx, "slack webhook: missing signature headers")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}
	if err := h.security.ValidateSlackSignature(body, signature, timestamp); err != nil {
		h.l.Errorf(ctx, "slack webhook: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit("slack"); err != nil {
		h.l.Warnf(ctx, "slack webhook: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	if env.Type == EnvelopeEventCallback && env.Event != nil {
		contextID := h.resolveContextID(c, env)

		// Downstream outcome never changes the acknowledgement: a non-2xx
		// here would only trigger Slack's redelivery storm.
		out, err := h.messageUC.Ingest(ctx, model.Scope{UserID: "system_webhook"}, message.IngestInput{
			ContextID:  contextID,
			Event:      *env.Event,
			ReceivedAt: time.Now(),
		})
		switch {
		case err != nil:
			h.l.Errorf(ctx, "slack webhook: ingest failed: %v", err)
		case out.Dropped:
			h.l.Debugf(ctx, "slack webhook: event dropped channel=%s", env.Event.Channel)
		case out.Stored:
			h.l.Infof(ctx, "slack webhook: stored message channel=%s ts=%s", env.Event.Channel, env.Event.TS)
		}
	} else {
		h.l.Infof(ctx, "slack webhook: ignoring envelope type %q", env.Type)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleWebhookHealth answers the provider-facing health probe.
func (h *Handler) HandleWebhookHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// resolveContextID picks the tenant for an inbound event: explicit
// query param, then the workspace team_id, then the configured default.
func (h *Handler) resolveContextID(c *gin.Context, env *Envelope) string {
	if id := c.Query("context_id"); id != "" {
		return id
	}
	if env.TeamID != "" {
		return env.TeamID
	}
	return h.defaultContextID
}
