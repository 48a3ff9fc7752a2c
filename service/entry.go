package service

import (
	"errors"
	"fmt"

	"donation/database"
	"donation/models"

	"gorm.io/gorm"
)

// ErrEntryNotFound 记录不存在
var ErrEntryNotFound = errors.New("记录不存在")

// EntryService 奉献记录存取服务
// 每个操作一条短事务（gorm 默认自动提交），不做多行事务
type EntryService struct{}

// NewEntryService 创建奉献记录服务
func NewEntryService() *EntryService {
	return &EntryService{}
}

// EntryFields 更新操作的可变字段集合
// id、created_by、created_at 不在其中，创建后不再变更
type EntryFields struct {
	Date          string
	PayerName     string
	Amount        float64
	PaymentMethod string
	Category      string
	Email         string
	AreaCode      string
	PhoneNumber   string
	Operator      string
}

// Create 写入一条新记录，ID 由数据库分配
// fullPhone：完整格式化电话（如 "(11) 98765-4321"）。未单独给出区号时，
// 去掉非数字后 ≥11 位才拆分为区号+号码，不足 11 位时电话字段留空
func (s *EntryService) Create(entry *models.Entry, fullPhone string) error {
	if entry.AreaCode == "" && fullPhone != "" {
		entry.AreaCode, entry.PhoneNumber = SplitPhone(fullPhone)
	}

	if err := database.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("写入奉献记录失败: %w", err)
	}
	return nil
}

// List 按会话可见范围查询记录，date 降序、同日期按 id 降序（后录入的在前）
// 非管理员只能看到自己录入的记录；管理员看到全部
func (s *EntryService) List(sess *models.Session) ([]models.Entry, error) {
	query := database.DB.Model(&models.Entry{})
	if !models.CanAdminister(sess.Role) {
		query = query.Where("created_by = ?", sess.Username)
	}

	var entries []models.Entry
	if err := query.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("查询奉献记录失败: %w", err)
	}
	return entries, nil
}

// GetByID 按 ID 查询单条记录，不存在返回 ErrEntryNotFound
func (s *EntryService) GetByID(id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := database.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("查询奉献记录失败: %w", err)
	}
	return &entry, nil
}

// Update 整体替换可变字段
// id 不存在返回 (false, nil)：界面总是从在线列表选记录，这里只是并发删除时的兜底
func (s *EntryService) Update(id uint, fields EntryFields) (bool, error) {
	var entry models.Entry
	if err := database.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("查询奉献记录失败: %w", err)
	}

	updates := map[string]interface{}{
		"date":           fields.Date,
		"payer_name":     fields.PayerName,
		"amount":         fields.Amount,
		"payment_method": fields.PaymentMethod,
		"category":       fields.Category,
		"email":          fields.Email,
		"area_code":      fields.AreaCode,
		"phone_number":   fields.PhoneNumber,
		"operator":       fields.Operator,
	}

	if err := database.DB.Model(&entry).Updates(updates).Error; err != nil {
		return false, fmt.Errorf("更新奉献记录失败: %w", err)
	}
	return true, nil
}

// Delete 永久删除一条记录（无软删除）
// id 不存在时返回 (false, nil) 而不是错误，重复删除是幂等的
func (s *EntryService) Delete(id uint) (bool, error) {
	res := database.DB.Delete(&models.Entry{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("删除奉献记录失败: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
