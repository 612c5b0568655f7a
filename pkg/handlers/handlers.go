package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/internal/config"
	"github.com/kazuyat/siege-roster/pkg/core/allocator"
	"github.com/kazuyat/siege-roster/pkg/core/services"
	"github.com/kazuyat/siege-roster/pkg/db"
)

// Store defines the database operations the route handlers need
type Store interface {
	GetMembers(ctx context.Context) ([]db.Member, error)
	UpsertMember(ctx context.Context, member *db.Member) (bool, error)
	InsertScheduleRun(run *db.ScheduleRun) error
}

// Handler contains dependencies for the route handlers
type Handler struct {
	DB     Store
	Cfg    *config.Config
	Logger *zap.Logger
}

// RegisterRoutes attaches the API routes to the router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/members", h.ListMembers)
		api.POST("/members", h.UpdateMember)
		api.POST("/schedule", h.BuildSchedule)
	}
}

type memberResponse struct {
	Name          string `json:"name"`
	Progress      string `json:"progress"`
	Power         string `json:"power"`
	Answer        string `json:"answer"`
	SpecificDates string `json:"specific_dates"`
	Cap           int    `json:"cap"`
	UpdatedAt     string `json:"updated_at"`
}

func toMemberResponse(m db.Member) memberResponse {
	return memberResponse{
		Name:          m.Name,
		Progress:      m.Progress,
		Power:         m.Power,
		Answer:        m.Answer,
		SpecificDates: m.SpecificDates,
		Cap:           m.Cap,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ListMembers returns all roster members sorted by name
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := services.ListMembers(c.Request.Context(), h.DB, h.Logger)
	if err != nil {
		h.Logger.Error("Failed to list members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load members"})
		return
	}

	responses := make([]memberResponse, len(members))
	for i, m := range members {
		responses[i] = toMemberResponse(m)
	}

	c.JSON(http.StatusOK, gin.H{"members": responses, "count": len(responses)})
}

// UpdateMember creates or updates a member row keyed by name
func (h *Handler) UpdateMember(c *gin.Context) {
	var req struct {
		Name          string   `json:"name"`
		Progress      string   `json:"progress"`
		Power         string   `json:"power"`
		Answer        string   `json:"answer"`
		SpecificDates []string `json:"specific_dates"`
		Cap           int      `json:"cap"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	result, err := services.UpdateMember(c.Request.Context(), h.DB, h.Logger, services.UpdateMemberInput{
		Name:          req.Name,
		Progress:      req.Progress,
		Power:         req.Power,
		Answer:        req.Answer,
		SpecificDates: req.SpecificDates,
		Cap:           req.Cap,
	})
	if err != nil {
		h.Logger.Error("Failed to save member", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save member"})
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"member": toMemberResponse(result.Member), "created": result.Created})
}

// BuildSchedule runs the allocation over the requested period
func (h *Handler) BuildSchedule(c *gin.Context) {
	var req struct {
		Start             string `json:"start"`
		End               string `json:"end"`
		Mode              string `json:"mode"`
		PreferConditional bool   `json:"prefer_conditional"`
		DryRun            bool   `json:"dry_run"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now().UTC()
	if req.Start != "" {
		parsed, err := time.Parse(allocator.DateLayout, req.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be formatted as " + allocator.DateLayout})
			return
		}
		start = parsed
	}

	end := start.AddDate(0, 0, h.Cfg.EventLengthDays-1)
	if req.End != "" {
		parsed, err := time.Parse(allocator.DateLayout, req.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be formatted as " + allocator.DateLayout})
			return
		}
		end = parsed
	}

	mode := allocator.Mode(req.Mode)
	if req.Mode == "" {
		mode = allocator.Mode(h.Cfg.DefaultMode)
	}
	if !mode.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'power' or 'equal'"})
		return
	}

	result, err := services.BuildSchedule(c.Request.Context(), h.DB, h.Cfg, h.Logger, services.BuildScheduleOptions{
		Start:             start,
		End:               end,
		Mode:              mode,
		PreferConditional: req.PreferConditional || h.Cfg.PreferConditional,
		DryRun:            req.DryRun,
	})
	if err != nil {
		h.Logger.Error("Failed to build schedule", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":  result.RunID,
		"dates":   result.Result.Dates,
		"fixed":   result.Result.Fixed,
		"rosters": result.Result.Rosters,
		"report":  services.BuildReport(result.Result),
	})
}
