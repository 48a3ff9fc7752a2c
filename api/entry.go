package api

import (
	"log"
	"strconv"
	"strings"
	"time"

	"donation/middleware"
	"donation/models"
	"donation/service"

	"github.com/gin-gonic/gin"
)

// EntryHandler 奉献记录处理器
type EntryHandler struct {
	entryService *service.EntryService
	notifier     *service.Notifier
}

// NewEntryHandler 创建奉献记录处理器
func NewEntryHandler(entryService *service.EntryService, notifier *service.Notifier) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		notifier:     notifier,
	}
}

// EntryRequest 创建/更新奉献记录请求
type EntryRequest struct {
	Date          string  `json:"date" binding:"required" example:"2026-08-30"`
	PayerName     string  `json:"payer_name" binding:"required" example:"João Silva"`
	Amount        float64 `json:"amount" binding:"required,gt=0" example:"50.00"`
	PaymentMethod string  `json:"payment_method" binding:"required" example:"pix"`
	Category      string  `json:"category" binding:"required" example:"tithe"`
	Email         string  `json:"email" binding:"omitempty" example:"joao@example.com"`
	Phone         string  `json:"phone" binding:"omitempty" example:"(11) 98765-4321"` // 完整格式化电话，服务端拆分
	AreaCode      string  `json:"area_code" binding:"omitempty" example:"11"`
	PhoneNumber   string  `json:"phone_number" binding:"omitempty" example:"987654321"`
	Operator      string  `json:"operator" binding:"omitempty" example:"Vivo"`
}

// CreateEntryResponse 创建响应：新记录 + 各通知渠道结果
type CreateEntryResponse struct {
	Entry         models.OwnEntry      `json:"entry"`
	Notifications service.NotifyResult `json:"notifications"`
}

// validate 绑定之外的业务校验，创建和更新共用
func (r *EntryRequest) validate() string {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return "日期格式错误，应为: 2006-01-02"
	}
	if len(strings.TrimSpace(r.PayerName)) < 2 {
		return "奉献人姓名至少 2 个字符"
	}
	if !models.IsValidPaymentMethod(r.PaymentMethod) {
		return "无效的支付方式: " + r.PaymentMethod
	}
	if !models.IsValidCategory(r.Category) {
		return "无效的奉献类别: " + r.Category
	}
	if r.Email != "" && !service.ValidateEmail(r.Email) {
		return "邮箱格式无效"
	}
	// 区号和号码单独给出时必须成对有效；完整电话走宽松拆分，不在此校验
	if (r.AreaCode != "" || r.PhoneNumber != "") && !service.ValidatePhone(r.AreaCode, r.PhoneNumber) {
		return "电话号码无效：区号 2 位数字，号码 8 或 9 位数字"
	}
	return ""
}

// CreateEntry 创建奉献记录
// @Summary 创建奉献记录
// @Description 录入一条新的奉献记录，创建成功后尽力而为地向奉献人发送回执通知（邮件/短信/WhatsApp），通知失败不影响记录本身
// @Tags 奉献记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EntryRequest true "奉献记录信息"
// @Success 200 {object} Response{data=CreateEntryResponse} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	sess := middleware.GetCurrentSession(c)
	if sess == nil {
		Unauthorized(c, "未登录")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	entry := models.Entry{
		Date:          req.Date,
		PayerName:     strings.TrimSpace(req.PayerName),
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Category:      req.Category,
		CreatedBy:     sess.Username,
		Email:         req.Email,
		AreaCode:      req.AreaCode,
		PhoneNumber:   req.PhoneNumber,
		Operator:      req.Operator,
	}

	if err := h.entryService.Create(&entry, req.Phone); err != nil {
		log.Printf("创建奉献记录失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建记录失败"))
		return
	}

	// 通知在记录落库之后派发，任何渠道失败只记入结果，不回滚
	notifications := h.notifier.Dispatch(&entry)
	for _, r := range []*service.ChannelResult{notifications.Email, notifications.SMS, notifications.WhatsApp} {
		if r != nil && r.Attempted && !r.Success {
			log.Printf("通知发送失败 (记录 %d, 渠道 %s): %s", entry.ID, r.Channel, r.Message)
		}
	}

	SuccessWithMessage(c, "记录创建成功", CreateEntryResponse{
		Entry:         entry.Own(),
		Notifications: notifications,
	})
}

// ListEntries 查询奉献记录列表
// @Summary 查询奉献记录列表
// @Description 按日期降序返回当前用户可见的奉献记录。管理员可见全部记录（含录入人），其他用户只能看到自己录入的
// @Tags 奉献记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ListResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
	sess := middleware.GetCurrentSession(c)
	if sess == nil {
		Unauthorized(c, "未登录")
		return
	}

	entries, err := h.entryService.List(sess)
	if err != nil {
		log.Printf("查询奉献记录失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询记录失败"))
		return
	}

	// 管理员视图带录入人列，普通视图没有这一列
	if models.CanAdminister(sess.Role) {
		Success(c, ListResponse{Total: len(entries), List: models.AnyEntries(entries)})
		return
	}
	Success(c, ListResponse{Total: len(entries), List: models.OwnEntries(entries)})
}

// GetEntry 查询单条奉献记录
// @Summary 查询单条奉献记录
// @Description 按 ID 查询一条奉献记录，非管理员只能查询自己录入的记录
// @Tags 奉献记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录 ID"
// @Success 200 {object} Response "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/entries/{id} [get]
func (h *EntryHandler) GetEntry(c *gin.Context) {
	sess := middleware.GetCurrentSession(c)
	if sess == nil {
		Unauthorized(c, "未登录")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的记录 ID")
		return
	}

	entry, err := h.entryService.GetByID(uint(id))
	if err != nil {
		if err == service.ErrEntryNotFound {
			NotFound(c, "记录不存在")
			return
		}
		log.Printf("查询奉献记录失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询记录失败"))
		return
	}

	// 越权访问与不存在同样返回 404，不暴露记录是否存在
	if !models.CanAdminister(sess.Role) {
		if entry.CreatedBy != sess.Username {
			NotFound(c, "记录不存在")
			return
		}
		Success(c, entry.Own())
		return
	}
	Success(c, entry.Any())
}

// UpdateEntry 更新奉献记录
// @Summary 更新奉献记录
// @Description 整体替换一条记录的可变字段，录入人和创建时间保持不变。仅管理员可用
// @Tags 奉献记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录 ID"
// @Param request body EntryRequest true "奉献记录信息"
// @Success 200 {object} Response "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的记录 ID")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		BadRequest(c, msg)
		return
	}

	// 完整电话在更新时同样宽松拆分
	areaCode, phoneNumber := req.AreaCode, req.PhoneNumber
	if areaCode == "" && req.Phone != "" {
		areaCode, phoneNumber = service.SplitPhone(req.Phone)
	}

	ok, err := h.entryService.Update(uint(id), service.EntryFields{
		Date:          req.Date,
		PayerName:     strings.TrimSpace(req.PayerName),
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Category:      req.Category,
		Email:         req.Email,
		AreaCode:      areaCode,
		PhoneNumber:   phoneNumber,
		Operator:      req.Operator,
	})
	if err != nil {
		log.Printf("更新奉献记录失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "更新记录失败"))
		return
	}
	if !ok {
		NotFound(c, "记录不存在")
		return
	}

	SuccessWithMessage(c, "记录更新成功", nil)
}

// DeleteEntry 删除奉献记录
// @Summary 删除奉献记录
// @Description 永久删除一条奉献记录。仅管理员可用
// @Tags 奉献记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录 ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的记录 ID")
		return
	}

	ok, err := h.entryService.Delete(uint(id))
	if err != nil {
		log.Printf("删除奉献记录失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "删除记录失败"))
		return
	}
	if !ok {
		NotFound(c, "记录不存在")
		return
	}

	SuccessWithMessage(c, "记录删除成功", nil)
}
