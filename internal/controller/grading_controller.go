package controller

import (
	"errors"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/service"
	"quizcraft_backend/internal/util"
	"quizcraft_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type GradingController struct {
	Grading    *service.GradingService
	Results    *service.ResultService
	Statistics *service.StatisticsService
}

func NewGradingController(grading *service.GradingService, results *service.ResultService, statistics *service.StatisticsService) *GradingController {
	return &GradingController{Grading: grading, Results: results, Statistics: statistics}
}

type SubmitReq struct {
	ParticipantID string                       `json:"participantId" binding:"required"`
	Answers       map[string]model.AnswerValue `json:"answers"`
}

// @Summary Submit a participant's answers for grading
// @Tags grading
// @Accept json
// @Produce json
// @Param id path string true "test id"
// @Param body body SubmitReq true "submission"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/tests/{id}/submit [post]
func (c *GradingController) Submit(ctx *gin.Context) {
	testID := ctx.Param("id")

	var req SubmitReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Grading.Submit(testID, req.ParticipantID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrParticipantNotFound):
			monitoring.SubmissionsGraded.WithLabelValues("not_found").Inc()
			util.NotFoundMsg(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadySubmitted):
			monitoring.SubmissionsGraded.WithLabelValues("already_submitted").Inc()
			util.Conflict(ctx, err.Error())
		default:
			monitoring.SubmissionsGraded.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SubmissionsGraded.WithLabelValues("ok").Inc()
	c.Statistics.InvalidateStatistics(ctx.Request.Context(), testID)

	util.Success(ctx, result)
}

// @Summary Finalized result for one participant
// @Tags grading
// @Produce json
// @Param id path string true "test id"
// @Param participantId query string true "participant id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/tests/{id}/result [get]
func (c *GradingController) GetResult(ctx *gin.Context) {
	participantID := ctx.Query("participantId")
	if participantID == "" {
		util.BadRequest(ctx, "missing participantId")
		return
	}

	result, err := c.Results.GetResult(ctx.Param("id"), participantID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound), errors.Is(err, util.ErrParticipantNotFound):
			util.NotFoundMsg(ctx, err.Error())
		case errors.Is(err, util.ErrResultNotReady):
			// distinct from "not found": the attempt exists but is still open
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary Population statistics for a test
// @Tags grading
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id}/stats [get]
func (c *GradingController) GetTestStatistics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.Statistics.GetTestStatistics(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
