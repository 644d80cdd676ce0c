// Package handler exposes the leads HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadrank_backend/internal/leads/service"
	"leadrank_backend/internal/leads/transport"
	"leadrank_backend/internal/scheduler"
	"leadrank_backend/platform/httpkit"
	"leadrank_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc      *service.Service
	enqueuer scheduler.RescoreEnqueuer
	val      *validator.Validator
}

// New creates the handler. enqueuer may be nil when no queue is configured;
// async rescore requests are then rejected.
func New(svc *service.Service, enqueuer scheduler.RescoreEnqueuer, val *validator.Validator) *Handler {
	return &Handler{svc: svc, enqueuer: enqueuer, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("/rescore", h.Rescore)
	rg.POST("/:id/score", h.Score)
}

// List returns the caller's leads in outreach priority order.
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var query transport.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	leads, err := h.svc.ListRanked(c.Request.Context(), identity.OwnerID(), query.Limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, leads)
}

// Rescore triggers a batch rescore of the caller's leads. With ?async=true
// the run is queued and a 202 is returned; otherwise the run executes inline
// and the summary is returned.
func (h *Handler) Rescore(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	if c.Query("async") == "true" {
		if h.enqueuer == nil {
			httpkit.Error(c, http.StatusServiceUnavailable, "async rescore is not configured", nil)
			return
		}

		taskID, err := h.enqueuer.EnqueueLeadsRescore(c.Request.Context(), scheduler.LeadsRescorePayload{
			OwnerID: identity.OwnerID().String(),
		})
		if err != nil {
			httpkit.Error(c, http.StatusInternalServerError, "failed to queue rescore", nil)
			return
		}

		httpkit.JSON(c, http.StatusAccepted, transport.RescoreQueuedResponse{
			Success: true,
			Message: "rescore queued",
			TaskID:  taskID,
		})
		return
	}

	result, err := h.svc.Rescore(c.Request.Context(), identity.OwnerID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// Score recomputes and persists the scores of a single lead.
func (h *Handler) Score(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ScoreLead(c.Request.Context(), identity.OwnerID(), leadID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
