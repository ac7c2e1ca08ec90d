package status

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-brain/internal/model"
	"ai-brain/pkg/response"
)

// Handler exposes the connection-status widget endpoint.
type Handler struct {
	checker *Checker
}

func NewHandler(checker *Checker) *Handler {
	return &Handler{checker: checker}
}

type statusResp struct {
	Source    string `json:"source"`
	ContextID string `json:"contextId"`
	Connected bool   `json:"connected"`
	Workspace string `json:"workspace,omitempty"`
	Detail    string `json:"detail,omitempty"`
	CheckedAt string `json:"checkedAt"`
	Cached    bool   `json:"cached"`
}

// HandleStatus godoc
// @Summary     Connection status for a data source
// @Description Returns the (cached) connection status of an integration for a context.
// @Tags        Status
// @Produce     json
// @Param       context_id query string true  "Context (workspace/tenant) ID"
// @Param       source     query string false "Data source (default: slack)"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/status [GET]
func (h *Handler) HandleStatus(c *gin.Context) {
	contextID := c.Query("context_id")
	if contextID == "" {
		response.Error(c, model.ErrMissingContextID, nil)
		return
	}

	source := model.DataSource(c.DefaultQuery("source", string(model.SourceSlack)))

	st, cached := h.checker.Check(c.Request.Context(), source, contextID)
	c.JSON(http.StatusOK, statusResp{
		Source:    string(st.Source),
		ContextID: st.ContextID,
		Connected: st.Connected,
		Workspace: st.Workspace,
		Detail:    st.Detail,
		CheckedAt: st.CheckedAt.UTC().Format(time.RFC3339),
		Cached:    cached,
	})
}
