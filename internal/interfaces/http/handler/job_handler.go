package handler

import (
	"context"

	"github.com/erp/usability/internal/infrastructure/scheduler"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// JobRunner runs registered jobs on demand and reports their state
type JobRunner interface {
	RunNow(ctx context.Context, name string) (string, error)
	Status() []scheduler.JobState
}

// JobRunResponse reports a finished on-demand run
type JobRunResponse struct {
	Name   string `json:"name"`
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

// JobHandler exposes the scheduler
type JobHandler struct {
	BaseHandler
	runner JobRunner
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(runner JobRunner) *JobHandler {
	return &JobHandler{runner: runner}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("jobs", "/jobs").
		GET("", h.List).
		POST("/:name/run", h.Run).
		RegisterRoutes(rg)
}

// List godoc
// @Summary      List scheduled jobs
// @Tags         jobs
// @Produce      json
// @Success      200 {object} dto.Response{data=[]scheduler.JobState}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	h.Success(c, h.runner.Status())
}

// Run godoc
// @Summary      Run a job now and wait for it
// @Tags         jobs
// @Produce      json
// @Param        name path string true "Job name"
// @Success      200 {object} dto.Response{data=JobRunResponse}
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /jobs/{name}/run [post]
func (h *JobHandler) Run(c *gin.Context) {
	name := c.Param("name")
	runID, err := h.runner.RunNow(c.Request.Context(), name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, JobRunResponse{
		Name:   name,
		RunID:  runID,
		Status: string(scheduler.JobStatusSuccess),
	})
}
