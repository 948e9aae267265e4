package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/models"
	"github.com/bhavika1504/my-finance-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler serves savings-goal CRUD.
type GoalHandler struct {
	DB *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{DB: db}
}

type goalReq struct {
	Name     string `json:"name" binding:"required,max=64"`
	Target   string `json:"target" binding:"required"`
	Deadline string `json:"deadline"` // YYYY-MM-DD, optional
}

type goalResp struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	TargetCent int64      `json:"target_cent"`
	Target     string     `json:"target"`
	SavedCent  int64      `json:"saved_cent"`
	Saved      string     `json:"saved"`
	Progress   float64    `json:"progress"` // 0..1
	Deadline   *time.Time `json:"deadline,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toGoalResp(g *models.Goal) goalResp {
	var progress float64
	if g.TargetCent > 0 {
		progress = float64(g.SavedCent) / float64(g.TargetCent)
		if progress > 1 {
			progress = 1
		}
	}
	return goalResp{
		ID:         g.ID,
		Name:       g.Name,
		TargetCent: g.TargetCent,
		Target:     util.FormatCent(g.TargetCent),
		SavedCent:  g.SavedCent,
		Saved:      util.FormatCent(g.SavedCent),
		Progress:   progress,
		Deadline:   g.Deadline,
		CreatedAt:  g.CreatedAt,
	}
}

func (h *GoalHandler) parseGoalReq(c *gin.Context) (*goalReq, int64, *time.Time, bool) {
	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return nil, 0, nil, false
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return nil, 0, nil, false
	}

	targetCent, err := util.CentFromString(req.Target)
	if err != nil || targetCent <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "target must be a positive amount")
		return nil, 0, nil, false
	}

	var deadline *time.Time
	if req.Deadline != "" {
		t, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "deadline must be YYYY-MM-DD")
			return nil, 0, nil, false
		}
		deadline = &t
	}

	return &req, targetCent, deadline, true
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	req, targetCent, deadline, ok := h.parseGoalReq(c)
	if !ok {
		return
	}

	goal := models.Goal{
		UserID:     user.ID,
		Name:       req.Name,
		TargetCent: targetCent,
		Deadline:   deadline,
	}

	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(&goal),
	})
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var goals []models.Goal
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]goalResp, 0, len(goals))
	for i := range goals {
		items = append(items, toGoalResp(&goals[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	req, targetCent, deadline, ok := h.parseGoalReq(c)
	if !ok {
		return
	}

	var goal models.Goal
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "goal not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	goal.Name = req.Name
	goal.TargetCent = targetCent
	goal.Deadline = deadline

	if err := h.DB.Save(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(&goal),
	})
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if err := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Goal{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}

type contributeReq struct {
	Amount string `json:"amount" binding:"required"`
}

// Contribute adds an amount to a goal's saved progress.
func (h *GoalHandler) Contribute(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req contributeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	amountCent, err := util.CentFromString(req.Amount)
	if err != nil || amountCent <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount must be positive")
		return
	}

	var goal models.Goal
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "goal not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	goal.SavedCent += amountCent
	if err := h.DB.Save(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(&goal),
	})
}
