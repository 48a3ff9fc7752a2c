package service

import (
	"testing"

	"donation/config"
	"donation/models"

	"github.com/stretchr/testify/assert"
)

// 所有渠道禁用的配置：走完整条派发路径但不产生任何网络请求
func disabledNotifyConfig() *config.Config {
	return &config.Config{}
}

func notifyEntry() *models.Entry {
	return &models.Entry{
		Date:          "2026-08-30",
		PayerName:     "João Silva",
		Amount:        50,
		PaymentMethod: models.PaymentPix,
		Category:      models.CategoryTithe,
		Email:         "joao@example.com",
		AreaCode:      "11",
		PhoneNumber:   "987654321",
	}
}

func TestNotifier_Dispatch_AllChannelsDisabled(t *testing.T) {
	n := NewNotifier(disabledNotifyConfig())

	result := n.Dispatch(notifyEntry())

	// 每个渠道都尝试了但都失败，派发本身不报错
	assert.NotNil(t, result.Email)
	assert.True(t, result.Email.Attempted)
	assert.False(t, result.Email.Success)
	assert.Contains(t, result.Email.Message, "未启用")

	assert.NotNil(t, result.SMS)
	assert.True(t, result.SMS.Attempted)
	assert.False(t, result.SMS.Success)

	assert.NotNil(t, result.WhatsApp)
	assert.True(t, result.WhatsApp.Attempted)
	assert.False(t, result.WhatsApp.Success)

	assert.False(t, result.AnySuccess)
}

func TestNotifier_Dispatch_NoContactInfo(t *testing.T) {
	n := NewNotifier(disabledNotifyConfig())

	entry := notifyEntry()
	entry.Email = ""
	entry.AreaCode = ""
	entry.PhoneNumber = ""

	result := n.Dispatch(entry)
	assert.Nil(t, result.Email)
	assert.Nil(t, result.SMS)
	assert.Nil(t, result.WhatsApp)
	assert.False(t, result.AnySuccess)
}

func TestNotifier_Dispatch_InvalidEmailSkipped(t *testing.T) {
	n := NewNotifier(disabledNotifyConfig())

	entry := notifyEntry()
	entry.Email = "invalido"

	result := n.Dispatch(entry)
	// 邮箱格式无效：记录了结果但没有真正尝试发送
	assert.NotNil(t, result.Email)
	assert.False(t, result.Email.Attempted)
	assert.False(t, result.Email.Success)
}

func TestNotifier_Dispatch_NonPixSkipsSMS(t *testing.T) {
	n := NewNotifier(disabledNotifyConfig())

	// 现金奉献：电话有效也不发短信/WhatsApp
	entry := notifyEntry()
	entry.PaymentMethod = models.PaymentCash

	result := n.Dispatch(entry)
	assert.Nil(t, result.SMS)
	assert.Nil(t, result.WhatsApp)
	assert.NotNil(t, result.Email)
}

func TestNotifier_Dispatch_InvalidPhoneSkipsSMS(t *testing.T) {
	n := NewNotifier(disabledNotifyConfig())

	entry := notifyEntry()
	entry.PhoneNumber = "123" // 位数不对

	result := n.Dispatch(entry)
	assert.Nil(t, result.SMS)
	assert.Nil(t, result.WhatsApp)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Dízimo", CategoryLabel(models.CategoryTithe))
	assert.Equal(t, "Oferta", CategoryLabel(models.CategoryOffering))
	assert.Equal(t, "Visitante", CategoryLabel(models.CategoryVisitor))
	assert.Equal(t, "mystery", CategoryLabel("mystery"))
}
