package handlers

import (
	"net/http"

	"unifix/models"
	"unifix/services/notification"
	"unifix/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TriggerHandler receives relayed document change events and dispatches them
// through the notification router.
type TriggerHandler struct {
	Router *notification.Router
	Logger *zap.Logger
}

func NewTriggerHandler(router *notification.Router, logger *zap.Logger) *TriggerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriggerHandler{Router: router, Logger: logger}
}

type outcomeResponse struct {
	Handler string `json:"handler"`
	Error   string `json:"error,omitempty"`
}

// HandleEvent decodes one change event, runs every bound handler, and
// reports the invocation result. Any handler failure fails the invocation so
// the trigger platform may redeliver; handlers are edge-triggered and safe
// to reprocess.
func (h *TriggerHandler) HandleEvent(c *gin.Context) {
	var ev models.ChangeEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", err.Error())
		return
	}
	if ev.Collection == "" || ev.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", "collection and documentId are required")
		return
	}
	if ev.Kind != models.ChangeCreated && ev.Kind != models.ChangeUpdated {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", "kind must be created or updated")
		return
	}

	invocationID := uuid.NewString()
	logger := h.Logger.With(
		zap.String("invocationId", invocationID),
		zap.String("collection", ev.Collection),
		zap.String("documentId", ev.ID),
		zap.String("kind", string(ev.Kind)),
	)
	logger.Info("event received")

	outcomes := h.Router.Dispatch(c.Request.Context(), ev)

	results := make([]outcomeResponse, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		res := outcomeResponse{Handler: o.Name}
		if o.Err != nil {
			failed++
			res.Error = o.Err.Error()
		}
		results = append(results, res)
	}

	if failed > 0 {
		logger.Error("invocation failed", zap.Int("handlers", len(outcomes)), zap.Int("failed", failed))
		c.JSON(http.StatusInternalServerError, gin.H{
			"invocationId": invocationID,
			"outcomes":     results,
		})
		return
	}

	logger.Info("invocation handled", zap.Int("handlers", len(outcomes)))
	c.JSON(http.StatusOK, gin.H{
		"invocationId": invocationID,
		"outcomes":     results,
	})
}
