package controller

import (
	"errors"
	"strconv"

	"quizcraft_backend/internal/service"
	"quizcraft_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Service *service.TestService
}

func NewTestController(svc *service.TestService) *TestController {
	return &TestController{Service: svc}
}

// @Summary Create a test
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.TestReq true "test definition"
// @Success 201 {object} util.Response
// @Router /api/tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.Service.CreateTest(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"testId": test.ID, "testCode": test.TestCode})
}

// @Summary List the caller's tests
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	tests, total, err := c.Service.ListTests(user.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"items": tests, "total": total})
}

// @Summary Get one test with its questions
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	test, qs, err := c.Service.GetTest(user.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"test": test, "questions": qs})
}

// @Summary Update a test
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Param body body service.TestReq true "test definition"
// @Success 200 {object} util.Response
// @Router /api/tests/{id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.Service.UpdateTest(user.UserID, ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, test)
}

// @Summary Delete a test and everything attached to it
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := ctx.Param("id")
	if err := c.Service.DeleteTest(user.UserID, id); err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

type SaveQuestionsReq struct {
	Questions []service.QuestionReq `json:"questions" binding:"required"`
}

// @Summary Replace a test's question set
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "test id"
// @Param body body SaveQuestionsReq true "questions in display order"
// @Success 200 {object} util.Response
// @Router /api/tests/{id}/questions [put]
func (c *TestController) SaveQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveQuestionsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.SaveQuestions(user.UserID, ctx.Param("id"), req.Questions); err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"message": "questions saved"})
}

// @Summary Resolve a join code to a test id
// @Tags take-test
// @Produce json
// @Param code path string true "join code, T-XXXXXX"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tests/code/{code} [get]
func (c *TestController) ResolveCode(ctx *gin.Context) {
	test, err := c.Service.ResolveTestCode(ctx.Param("code"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"testId": test.ID, "title": test.Title})
}

// @Summary Load a test for taking, answer key stripped
// @Tags take-test
// @Produce json
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id}/take-test [get]
func (c *TestController) TakeTest(ctx *gin.Context) {
	view, err := c.Service.GetTakeTestView(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFoundMsg(ctx, err.Error())
			return
		}
		if errors.Is(err, util.ErrTestNotAccessible) {
			util.Forbidden(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
