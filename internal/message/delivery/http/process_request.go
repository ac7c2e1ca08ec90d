package http

import (
	"github.com/gin-gonic/gin"

	"ai-brain/internal/message"
)

// processListReq binds and validates the list messages query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (r listReq) validate() error {
	if r.ContextID == "" {
		return message.ErrMissingContext
	}
	return nil
}
