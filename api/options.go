package api

import (
	"donation/config"
	"donation/models"

	"github.com/gin-gonic/gin"
)

// OptionsHandler 表单选项处理器
type OptionsHandler struct {
	cfg *config.Config
}

// NewOptionsHandler 创建表单选项处理器
func NewOptionsHandler(cfg *config.Config) *OptionsHandler {
	return &OptionsHandler{cfg: cfg}
}

// GetOptions 获取录入表单选项
// @Summary 获取录入表单选项
// @Description 返回支付方式、奉献类别和运营商的可选值，供前端下拉框使用
// @Tags 汇总
// @Accept json
// @Produce json
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/options [get]
func (h *OptionsHandler) GetOptions(c *gin.Context) {
	Success(c, gin.H{
		"payment_methods": models.GetPaymentMethods(),
		"categories":      models.GetCategories(),
		"carriers":        h.cfg.Carriers,
	})
}
