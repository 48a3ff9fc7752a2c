package service

import (
	"fmt"

	"donation/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
// 给奉献人发确认回执；收件人是葡语会众，正文用葡语
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendContributionReceipt 发送奉献确认邮件
func (s *EmailService) SendContributionReceipt(toEmail, payerName string, amount float64, category, date string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}

	subject := fmt.Sprintf("Confirmação de %s - Ministério Dechonai", CategoryLabel(category))
	body := s.generateReceiptBody(payerName, amount, category, date)

	return s.sendEmail(toEmail, subject, body)
}

// generateReceiptBody 生成回执邮件内容
func (s *EmailService) generateReceiptBody(payerName string, amount float64, category, date string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2c3e50, #34495e); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .detail-box { background: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; }
        .detail-box p { margin: 0 0 8px; }
        .verse { font-size: 14px; color: #666; font-style: italic; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🙏 Ministério Dechonai</h1>
        </div>
        <div class="content">
            <p>Olá, <strong>%s</strong>!</p>
            <p>Agradecemos sua contribuição! Que Deus multiplique essa semente plantada.</p>
            <div class="detail-box">
                <p><strong>Tipo:</strong> %s</p>
                <p><strong>Valor:</strong> R$ %.2f</p>
                <p><strong>Data:</strong> %s</p>
            </div>
            <p class="verse">
                "Cada um dê conforme determinou em seu coração, não com pesar ou por obrigação,
                pois Deus ama quem dá com alegria." - 2 Coríntios 9:7
            </p>
        </div>
        <div class="footer">
            <p>Este é um email automático. Por favor, não responda.</p>
        </div>
    </div>
</body>
</html>
`, payerName, CategoryLabel(category), amount, date)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
