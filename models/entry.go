package models

import (
	"time"
)

// Entry 奉献记录模型
// Date 以 "2006-01-02" 文本存储：汇总的"本月"判断按月份前缀匹配（见 service.CalculateTotals）
// CreatedBy 只存用户名字符串，不与用户表做外键关联（用户是静态配置，不落库）
// 记录为硬删除，没有 DeletedAt 软删除列
type Entry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Date          string    `json:"date" gorm:"size:10;not null;index"`
	PayerName     string    `json:"payer_name" gorm:"size:100;not null"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod string    `json:"payment_method" gorm:"size:20;not null"`
	Category      string    `json:"category" gorm:"size:20;not null;index"`
	CreatedBy     string    `json:"created_by" gorm:"size:50;not null;index"`
	Email         string    `json:"email" gorm:"size:100"`
	AreaCode      string    `json:"area_code" gorm:"size:4"`
	PhoneNumber   string    `json:"phone_number" gorm:"size:12"`
	Operator      string    `json:"operator" gorm:"size:20"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Entry) TableName() string {
	return "entries"
}

// PaymentMethod 支付方式常量
const (
	PaymentCash     = "cash"     // 现金
	PaymentCard     = "card"     // 刷卡
	PaymentTransfer = "transfer" // 转账
	PaymentCheck    = "check"    // 支票
	PaymentPix      = "pix"      // Pix 即时支付
)

// Category 奉献类别常量
const (
	CategoryTithe    = "tithe"    // 什一奉献
	CategoryOffering = "offering" // 感恩奉献
	CategoryVisitor  = "visitor"  // 访客奉献
)

// GetPaymentMethods 获取所有支付方式
func GetPaymentMethods() []string {
	return []string{
		PaymentCash,
		PaymentCard,
		PaymentTransfer,
		PaymentCheck,
		PaymentPix,
	}
}

// GetCategories 获取所有奉献类别
func GetCategories() []string {
	return []string{
		CategoryTithe,
		CategoryOffering,
		CategoryVisitor,
	}
}

// IsValidPaymentMethod 校验支付方式是否合法
func IsValidPaymentMethod(m string) bool {
	for _, v := range GetPaymentMethods() {
		if v == m {
			return true
		}
	}
	return false
}

// IsValidCategory 校验奉献类别是否合法
func IsValidCategory(c string) bool {
	for _, v := range GetCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// OwnEntry 非管理员可见的记录视图：不包含 created_by 列
// 谁录入了别人的记录对普通用户不可见，在类型层面而不是运行时长度判断上区分
type OwnEntry struct {
	ID            uint      `json:"id"`
	Date          string    `json:"date"`
	PayerName     string    `json:"payer_name"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Category      string    `json:"category"`
	Email         string    `json:"email,omitempty"`
	AreaCode      string    `json:"area_code,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Operator      string    `json:"operator,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AnyEntry 管理员可见的记录视图：额外暴露 created_by 列
type AnyEntry struct {
	OwnEntry
	CreatedBy string `json:"created_by"`
}

// Own 转换为不含录入人的视图
func (e *Entry) Own() OwnEntry {
	return OwnEntry{
		ID:            e.ID,
		Date:          e.Date,
		PayerName:     e.PayerName,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		Category:      e.Category,
		Email:         e.Email,
		AreaCode:      e.AreaCode,
		PhoneNumber:   e.PhoneNumber,
		Operator:      e.Operator,
		CreatedAt:     e.CreatedAt,
	}
}

// Any 转换为含录入人的视图
func (e *Entry) Any() AnyEntry {
	return AnyEntry{
		OwnEntry:  e.Own(),
		CreatedBy: e.CreatedBy,
	}
}

// OwnEntries 批量转换
func OwnEntries(entries []Entry) []OwnEntry {
	out := make([]OwnEntry, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].Own())
	}
	return out
}

// AnyEntries 批量转换
func AnyEntries(entries []Entry) []AnyEntry {
	out := make([]AnyEntry, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].Any())
	}
	return out
}
