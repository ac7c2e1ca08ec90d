package http

import (
	"github.com/gin-gonic/gin"

	"ai-brain/pkg/response"
)

// Configure godoc
// @Summary     Replace the channel selection for a context
// @Description Replaces the set of channels whose messages are retained for the given context.
// @Tags        Channels
// @Accept      json
// @Produce     json
// @Param       body body configureReq true "Channel selection"
// @Success     200 {object} response.Resp{data=configureResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/channels [POST]
func (h *handler) Configure(c *gin.Context) {
	ctx := c.Request.Context()

	var req configureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Configure(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Configure: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newConfigureResp(out))
}

// List godoc
// @Summary     List workspace channels
// @Description Returns the workspace channels annotated with selection state for the channel picker.
// @Tags        Channels
// @Accept      json
// @Produce     json
// @Param       context_id query string true "Context (workspace/tenant) ID"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/channels [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newListResp(out))
}
