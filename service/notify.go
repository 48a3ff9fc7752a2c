package service

import (
	"donation/config"
	"donation/models"
)

// categoryLabels 类别代码到会众可读名称的映射（回执用，葡语）
var categoryLabels = map[string]string{
	models.CategoryTithe:    "Dízimo",
	models.CategoryOffering: "Oferta",
	models.CategoryVisitor:  "Visitante",
}

// CategoryLabel 获取类别的回执显示名，未知代码原样返回
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// ChannelResult 单个通知渠道的发送结果
type ChannelResult struct {
	Channel   string `json:"channel"`
	Attempted bool   `json:"attempted"`
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
}

// NotifyResult 一次通知派发的汇总结果
type NotifyResult struct {
	Email      *ChannelResult `json:"email,omitempty"`
	SMS        *ChannelResult `json:"sms,omitempty"`
	WhatsApp   *ChannelResult `json:"whatsapp,omitempty"`
	AnySuccess bool           `json:"any_success"`
}

// Notifier 通知派发器
// 记录创建成功后尽力而为地通知奉献人：各渠道独立校验、独立成败，
// 任何失败都只降级为警告，绝不回滚或阻塞已写入的记录
type Notifier struct {
	email    *EmailService
	sms      *SMSService
	whatsapp *WhatsAppService
}

// NewNotifier 创建通知派发器
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		email:    NewEmailService(&cfg.Email),
		sms:      NewSMSService(&cfg.SMS),
		whatsapp: NewWhatsAppService(&cfg.WhatsApp, &cfg.SMS),
	}
}

// Dispatch 对一条新记录派发通知
// 邮件：填了格式大致合法的邮箱就发
// 短信/WhatsApp：电话有效且支付方式为 pix 才发（即时到账才即时回执）
func (n *Notifier) Dispatch(entry *models.Entry) NotifyResult {
	var result NotifyResult

	if entry.Email != "" {
		r := &ChannelResult{Channel: "email"}
		if ValidateEmail(entry.Email) {
			r.Attempted = true
			if err := n.email.SendContributionReceipt(entry.Email, entry.PayerName, entry.Amount, entry.Category, entry.Date); err != nil {
				r.Message = err.Error()
			} else {
				r.Success = true
				r.Message = "邮件已发送"
			}
		} else {
			r.Message = "邮箱格式无效，跳过"
		}
		result.Email = r
	}

	phoneOK := ValidatePhone(entry.AreaCode, entry.PhoneNumber)
	if phoneOK && entry.PaymentMethod == models.PaymentPix {
		smsResult := &ChannelResult{Channel: "sms", Attempted: true}
		if err := n.sms.SendContributionSMS(entry.AreaCode, entry.PhoneNumber, entry.PayerName, entry.Amount, entry.Category); err != nil {
			smsResult.Message = err.Error()
		} else {
			smsResult.Success = true
			smsResult.Message = "短信已发送"
		}
		result.SMS = smsResult

		waResult := &ChannelResult{Channel: "whatsapp", Attempted: true}
		if err := n.whatsapp.SendContributionWhatsApp(entry.AreaCode, entry.PhoneNumber, entry.PayerName, entry.Amount, entry.Category, entry.Date); err != nil {
			waResult.Message = err.Error()
		} else {
			waResult.Success = true
			waResult.Message = "WhatsApp 消息已发送"
		}
		result.WhatsApp = waResult
	}

	result.AnySuccess = (result.Email != nil && result.Email.Success) ||
		(result.SMS != nil && result.SMS.Success) ||
		(result.WhatsApp != nil && result.WhatsApp.Success)
	return result
}
