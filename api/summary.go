package api

import (
	"log"
	"time"

	"donation/middleware"
	"donation/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 财务汇总处理器
type SummaryHandler struct {
	entryService *service.EntryService
}

// NewSummaryHandler 创建财务汇总处理器
func NewSummaryHandler(entryService *service.EntryService) *SummaryHandler {
	return &SummaryHandler{entryService: entryService}
}

// GetSummary 获取财务汇总
// @Summary 获取财务汇总
// @Description 返回当前用户可见记录的今日、本月、累计合计及分类小计。汇总范围与列表可见范围一致
// @Tags 汇总
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Totals} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/entries/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	sess := middleware.GetCurrentSession(c)
	if sess == nil {
		Unauthorized(c, "未登录")
		return
	}

	entries, err := h.entryService.List(sess)
	if err != nil {
		log.Printf("查询汇总数据失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询汇总失败"))
		return
	}

	Success(c, service.CalculateTotals(entries, time.Now()))
}
