package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"donation/config"
)

// Twilio Messages REST 接口
// SMS 和 WhatsApp 走同一个接口，区别只在 From/To 带不带 "whatsapp:" 前缀
const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// twilioMessageResponse Twilio 消息接口响应
// 成功时有 sid；失败时 message/code 描述错误
type twilioMessageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// sendTwilioMessage 调用 Twilio Messages 接口发送一条消息，返回消息 SID
func sendTwilioMessage(accountSID, authToken, from, to, body string) (string, error) {
	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, accountSID)
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(accountSID, authToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 Twilio 服务器失败: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}

	var msgResp twilioMessageResponse
	if err := json.Unmarshal(data, &msgResp); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}
	if msgResp.SID == "" {
		msg := msgResp.Message
		if msg == "" {
			msg = string(data)
		}
		return "", fmt.Errorf("Twilio 返回错误: %s", msg)
	}

	return msgResp.SID, nil
}

// SMSService 短信服务（Twilio）
type SMSService struct {
	cfg *config.SMSConfig
}

// NewSMSService 创建短信服务
func NewSMSService(cfg *config.SMSConfig) *SMSService {
	return &SMSService{cfg: cfg}
}

// SendContributionSMS 发送奉献确认短信
// 短信正文控制在 160 字符内；收件人是葡语会众，正文用葡语
func (s *SMSService) SendContributionSMS(areaCode, number, payerName string, amount float64, category string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("短信服务未启用，请配置 sms.enabled=true")
	}
	if !ValidatePhone(areaCode, number) {
		return fmt.Errorf("手机号码无效")
	}

	to := FormatE164(areaCode, number, s.cfg.CountryCode)
	body := fmt.Sprintf(
		"Olá %s! Agradecemos sua contribuição de R$ %.2f (%s). Que Deus abençoe! - Ministério Dechonai",
		payerName, amount, CategoryLabel(category),
	)

	_, err := sendTwilioMessage(s.cfg.AccountSID, s.cfg.AuthToken, s.cfg.FromNumber, to, body)
	return err
}

// WhatsAppService WhatsApp 服务
// 复用 Twilio 账号凭证，From/To 带 whatsapp: 前缀
type WhatsAppService struct {
	cfg *config.WhatsAppConfig
	sms *config.SMSConfig
}

// NewWhatsAppService 创建 WhatsApp 服务
func NewWhatsAppService(cfg *config.WhatsAppConfig, sms *config.SMSConfig) *WhatsAppService {
	return &WhatsAppService{cfg: cfg, sms: sms}
}

// SendContributionWhatsApp 发送奉献确认 WhatsApp 消息
func (s *WhatsAppService) SendContributionWhatsApp(areaCode, number, payerName string, amount float64, category, date string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("WhatsApp 服务未启用，请配置 whatsapp.enabled=true")
	}
	if !ValidatePhone(areaCode, number) {
		return fmt.Errorf("手机号码无效")
	}

	to := "whatsapp:" + FormatE164(areaCode, number, s.sms.CountryCode)
	body := fmt.Sprintf(`🙏 *Ministério Dechonai*

Olá %s!

✅ Sua contribuição foi registrada com sucesso:

📋 *Detalhes:*
• Categoria: %s
• Valor: R$ %.2f
• Data: %s

Que Deus abençoe abundantemente sua vida!

_Esta é uma mensagem automática de confirmação._`,
		payerName, CategoryLabel(category), amount, date)

	_, err := sendTwilioMessage(s.sms.AccountSID, s.sms.AuthToken, s.cfg.FromNumber, to, body)
	return err
}
