package controller

import (
	"errors"

	"quizcraft_backend/internal/service"
	"quizcraft_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ParticipantController struct {
	Service *service.ParticipantService
}

func NewParticipantController(svc *service.ParticipantService) *ParticipantController {
	return &ParticipantController{Service: svc}
}

func (c *ParticipantController) writeServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestNotFound), errors.Is(err, util.ErrParticipantNotFound):
		util.NotFoundMsg(ctx, err.Error())
	case errors.Is(err, util.ErrTestNotPrivate), errors.Is(err, util.ErrTestNotAccessible):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Invite a participant to a private test
// @Tags participants
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Param body body service.InviteReq true "participant"
// @Success 201 {object} util.Response
// @Router /api/tests/{id}/participants [post]
func (c *ParticipantController) Invite(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.InviteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.Invite(user.UserID, ctx.Param("id"), req)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"participant": p})
}

type BatchInviteReq struct {
	Participants []service.InviteReq `json:"participants" binding:"required,min=1,dive"`
}

// @Summary Invite participants in bulk
// @Tags participants
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Param body body BatchInviteReq true "participants"
// @Success 201 {object} util.Response
// @Router /api/tests/{id}/participants/batch [post]
func (c *ParticipantController) BatchInvite(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req BatchInviteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ps, err := c.Service.BatchInvite(user.UserID, ctx.Param("id"), req.Participants)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"participants": ps})
}

// @Summary List a test's participants with their response summaries
// @Tags participants
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id}/participants [get]
func (c *ParticipantController) ListParticipants(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ps, err := c.Service.ListParticipants(user.UserID, ctx.Param("id"))
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"participants": ps})
}

type JoinReq struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Join an open test as an anonymous participant
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "test id"
// @Param body body JoinReq true "email"
// @Success 201 {object} util.Response
// @Router /api/tests/{id}/participants/public [post]
func (c *ParticipantController) JoinPublic(ctx *gin.Context) {
	var req JoinReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.JoinPublic(ctx.Param("id"), req.Email)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"participantId": p.ID})
}

// @Summary Check whether an email is invited to a test
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "test id"
// @Param body body JoinReq true "email"
// @Success 200 {object} util.Response
// @Router /api/tests/{id}/participants/check [post]
func (c *ParticipantController) Check(ctx *gin.Context) {
	var req JoinReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.CheckByEmail(ctx.Param("id"), req.Email)
	if err != nil {
		c.writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"participantId": p.ID})
}
