package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/insight"
	"github.com/bhavika1504/my-finance-planner/internal/models"
	"github.com/bhavika1504/my-finance-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InsightHandler serves the future-savings simulator and alerts.
type InsightHandler struct {
	DB *gorm.DB
}

func NewInsightHandler(db *gorm.DB) *InsightHandler {
	return &InsightHandler{DB: db}
}

// simulator inputs come as plain amounts, e.g. ?current=120000&monthly=15000&years=10
func simulatorParams(c *gin.Context) (currentCent, monthlyCent int64, years int, ok bool) {
	var err error
	currentCent, err = util.CentFromString(c.DefaultQuery("current", "0"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid current amount")
		return 0, 0, 0, false
	}
	monthlyCent, err = util.CentFromString(c.DefaultQuery("monthly", "0"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid monthly amount")
		return 0, 0, 0, false
	}
	years, _ = strconv.Atoi(c.DefaultQuery("years", "10"))
	if years <= 0 || years > 50 {
		years = 10
	}
	return currentCent, monthlyCent, years, true
}

// GetProjection returns the year-by-year savings projection.
func (h *InsightHandler) GetProjection(c *gin.Context) {
	if user := currentUser(c); user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	currentCent, monthlyCent, years, ok := simulatorParams(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"years":  years,
		"points": insight.Projection(currentCent, monthlyCent, years),
	})
}

// GetPersona returns the projected future-self persona.
func (h *InsightHandler) GetPersona(c *gin.Context) {
	if user := currentUser(c); user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	currentCent, monthlyCent, years, ok := simulatorParams(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"persona": insight.FuturePersona(currentCent, monthlyCent, years),
	})
}

// GetAlerts generates alerts from the current month's transactions.
func (h *InsightHandler) GetAlerts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND created_at >= ?", user.ID, startOfMonth).
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"alerts": insight.MonthlyAlerts(txs, now),
	})
}
