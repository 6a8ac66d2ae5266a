package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"menu-engine/internal/generator"
	"menu-engine/internal/logger"
	"menu-engine/internal/metrics"
	"menu-engine/internal/notification"
	"menu-engine/internal/week"
)

const (
	defaultRunsLimit = 10
	maxRunsLimit     = 100
)

type batchRunner interface {
	Run(ctx context.Context, req generator.Request) (*generator.Report, error)
}

type runLister interface {
	Recent(ctx context.Context, limit int) ([]metrics.GenerationRun, error)
}

type pinger interface {
	PingContext(ctx context.Context) error
}

type generateQuery struct {
	WeekStart       string `form:"week_start"`
	WeekEnd         string `form:"week_end"`
	ForceRegenerate string `form:"force_regenerate"`
}

// GenerateResponse is the body returned by the trigger endpoints.
type GenerateResponse struct {
	Message             string                `json:"message"`
	RunID               string                `json:"run_id,omitempty"`
	WeekStart           string                `json:"week_start"`
	WeekEnd             string                `json:"week_end"`
	Results             []generator.Outcome   `json:"results"`
	TotalGenerated      int                   `json:"total_generated"`
	NotificationsSent   int                   `json:"notifications_sent"`
	NotificationResults []notification.Result `json:"notification_results"`
}

type GenerateHandler struct {
	runner batchRunner
	log    *logger.Logger
}

func NewGenerateHandler(runner batchRunner, log *logger.Logger) *GenerateHandler {
	return &GenerateHandler{runner: runner, log: log.With("handler", "GenerateHandler")}
}

// Generate runs the weekly batch synchronously and reports every target.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var q generateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_query", err)
		return
	}
	override, err := week.ParseOverride(q.WeekStart, q.WeekEnd)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_week", err)
		return
	}

	report, err := h.runner.Run(c.Request.Context(), generator.Request{
		Override: override,
		Force:    q.ForceRegenerate == "true",
	})
	if err != nil {
		h.log.Error("Weekly menu batch failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "batch_failed", err)
		return
	}

	generated, _, _ := report.Result.Counts()
	resp := GenerateResponse{
		Message:             "Weekly menu generation completed",
		RunID:               report.RunID,
		WeekStart:           report.Window.WeekStart(),
		WeekEnd:             report.Window.WeekEnd(),
		Results:             report.Result.Outcomes,
		TotalGenerated:      generated,
		NotificationsSent:   report.NotificationsSent,
		NotificationResults: report.NotificationResults,
	}
	if resp.Results == nil {
		resp.Results = []generator.Outcome{}
	}
	if resp.NotificationResults == nil {
		resp.NotificationResults = []notification.Result{}
	}
	RespondOK(c, resp)
}

type RunsHandler struct {
	runs runLister
}

func NewRunsHandler(runs runLister) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// List returns the most recent batch runs.
func (h *RunsHandler) List(c *gin.Context) {
	limit := defaultRunsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.runs.Recent(c.Request.Context(), limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "runs_failed", err)
		return
	}
	RespondOK(c, gin.H{"runs": runs})
}

type HealthHandler struct {
	db       pinger
	dataPath string
}

func NewHealthHandler(db pinger, dataPath string) *HealthHandler {
	return &HealthHandler{db: db, dataPath: dataPath}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	health := metrics.CheckHealth(c.Request.Context(), h.db, h.dataPath)
	status := http.StatusOK
	if health.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
