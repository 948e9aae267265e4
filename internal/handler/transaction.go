package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/category"
	"github.com/bhavika1504/my-finance-planner/internal/models"
	"github.com/bhavika1504/my-finance-planner/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves manual entry and the read path.
type TransactionHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewTransactionHandler(db *gorm.DB, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TransactionHandler{
		DB:       db,
		PageSize: pageSize,
	}
}

type createTransactionReq struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=255"`
	Category    string `json:"category" binding:"max=32"`
}

type transactionResp struct {
	ID          uint      `json:"id"`
	AmountCent  int64     `json:"amount_cent"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		AmountCent:  t.AmountCent,
		Amount:      util.FormatCent(t.AmountCent),
		Description: t.Description,
		Category:    t.Category,
		Source:      t.Source,
		CreatedAt:   t.CreatedAt,
	}
}

// CreateTransaction records a single manually entered transaction.
// When no category is given it is detected from the description.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	amountCent, err := util.CentFromString(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	if err := util.ValidateAmountCent(amountCent); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	if err := util.ValidateDescription(req.Description); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "description too long")
		return
	}

	label := strings.TrimSpace(req.Category)
	if label == "" {
		label = category.Detect(req.Description)
	} else if !category.Valid(label) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown category")
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		AmountCent:  amountCent,
		Description: req.Description,
		Category:    label,
		Source:      models.SourceManual,
		CreatedAt:   time.Now(),
	}

	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(&tx),
	})
}

// ListTransactions lists the current user's transactions newest first,
// with optional date range and category filters, plus a summary over
// the filtered set.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}
	offset := (page - 1) * size

	var (
		startTime time.Time
		endTime   time.Time
		hasStart  bool
		hasEnd    bool
		err       error
	)

	if startStr := c.Query("start"); startStr != "" {
		startTime, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "start date must be YYYY-MM-DD")
			return
		}
		hasStart = true
	}
	if endStr := c.Query("end"); endStr != "" {
		endTime, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "end date must be YYYY-MM-DD")
			return
		}
		// end date is inclusive: compare against the next midnight
		endTime = endTime.Add(24 * time.Hour)
		hasEnd = true
	}

	// category multi-select: ?categories=Shopping,Utilities
	var catList []string
	if catStr := c.Query("categories"); catStr != "" {
		for _, p := range strings.Split(catStr, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				catList = append(catList, p)
			}
		}
	}

	base := h.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID)
	if hasStart {
		base = base.Where("created_at >= ?", startTime)
	}
	if hasEnd {
		base = base.Where("created_at < ?", endTime)
	}
	if len(catList) > 0 {
		base = base.Where("category IN ?", catList)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var txs []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]transactionResp, 0, len(txs))
	for i := range txs {
		items = append(items, toTransactionResp(&txs[i]))
	}

	// summary over the same filter
	var all []models.Transaction
	if err := base.Session(&gorm.Session{}).Find(&all).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "summary failed")
		return
	}

	var inflowCent, outflowCent int64
	byCategory := make(map[string]int64)
	for i := range all {
		t := &all[i]
		if t.AmountCent >= 0 {
			inflowCent += t.AmountCent
		} else {
			outflowCent += -t.AmountCent
		}
		byCategory[t.Category] += t.AmountCent
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
		"summary": gin.H{
			"inflow_cent":  inflowCent,
			"inflow":       util.FormatCent(inflowCent),
			"outflow_cent": outflowCent,
			"outflow":      util.FormatCent(outflowCent),
			"net_cent":     inflowCent - outflowCent,
			"net":          util.FormatCent(inflowCent - outflowCent),
			"by_category":  byCategory,
		},
	})
}

// GetMonthlyStats returns daily and per-category totals for one month.
func (h *TransactionHandler) GetMonthlyStats(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}

	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be YYYY-MM")
		return
	}

	startOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND created_at >= ? AND created_at < ?",
		user.ID, startOfMonth, endOfMonth).
		Order("created_at ASC").
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	type dayStat struct {
		Date        string `json:"date"`
		InflowCent  int64  `json:"inflow_cent"`
		OutflowCent int64  `json:"outflow_cent"`
		NetCent     int64  `json:"net_cent"`
	}

	type categoryStat struct {
		Category    string `json:"category"`
		InflowCent  int64  `json:"inflow_cent"`
		OutflowCent int64  `json:"outflow_cent"`
	}

	dailyMap := make(map[string]*dayStat)
	catMap := make(map[string]*categoryStat)
	var totalInflowCent, totalOutflowCent int64

	for i := range txs {
		tx := &txs[i]
		dateKey := tx.CreatedAt.Format("2006-01-02")

		ds, ok := dailyMap[dateKey]
		if !ok {
			ds = &dayStat{Date: dateKey}
			dailyMap[dateKey] = ds
		}
		cs, ok := catMap[tx.Category]
		if !ok {
			cs = &categoryStat{Category: tx.Category}
			catMap[tx.Category] = cs
		}

		if tx.AmountCent >= 0 {
			ds.InflowCent += tx.AmountCent
			cs.InflowCent += tx.AmountCent
			totalInflowCent += tx.AmountCent
		} else {
			ds.OutflowCent += -tx.AmountCent
			cs.OutflowCent += -tx.AmountCent
			totalOutflowCent += -tx.AmountCent
		}
	}

	dailyList := make([]dayStat, 0, len(dailyMap))
	for _, ds := range dailyMap {
		ds.NetCent = ds.InflowCent - ds.OutflowCent
		dailyList = append(dailyList, *ds)
	}
	catList := make([]categoryStat, 0, len(catMap))
	for _, cs := range catMap {
		catList = append(catList, *cs)
	}
	// map order is random, keep the response stable
	sort.Slice(dailyList, func(i, j int) bool { return dailyList[i].Date < dailyList[j].Date })
	sort.Slice(catList, func(i, j int) bool { return catList[i].Category < catList[j].Category })

	util.Success(c, util.Response{
		"month":         monthStr,
		"daily":         dailyList,
		"by_category":   catList,
		"total_inflow":  util.FormatCent(totalInflowCent),
		"total_outflow": util.FormatCent(totalOutflowCent),
		"net":           util.FormatCent(totalInflowCent - totalOutflowCent),
	})
}
