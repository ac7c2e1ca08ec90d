package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-brain/internal/model"
	"ai-brain/pkg/response"
)

// List godoc
// @Summary     List stored Slack messages
// @Description Returns a paginated, channel-groupable page of normalized messages for a context.
// @Tags        Messages
// @Accept      json
// @Produce     json
// @Param       context_id query string true  "Context (workspace/tenant) ID"
// @Param       channel    query string false "Filter by channel ID"
// @Param       limit      query int    false "Page size (default: 50)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/messages [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Query(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, h.newListResp(out))
}
