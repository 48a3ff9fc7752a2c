package service

import (
	"fmt"
	"strings"
)

// onlyDigits 去掉所有非数字字符
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitPhone 把完整的格式化电话拆成区号 + 号码
// 例如 "(11) 98765-4321" -> ("11", "987654321")
// 去掉非数字后不足 11 位时不报错，直接返回空串
func SplitPhone(full string) (areaCode, number string) {
	digits := onlyDigits(full)
	if len(digits) < 11 {
		return "", ""
	}
	return digits[:2], digits[2:]
}

// ValidatePhone 校验区号和号码
// 区号 2 位数字；号码 8 或 9 位数字
func ValidatePhone(areaCode, number string) bool {
	areaCode = onlyDigits(areaCode)
	number = onlyDigits(number)

	if len(areaCode) != 2 {
		return false
	}
	if len(number) != 8 && len(number) != 9 {
		return false
	}
	return true
}

// ValidateEmail 轻量邮箱格式检查
// 只做能不能投递的粗判断，不追求 RFC 严格性
func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at:], ".")
}

// FormatE164 按国际格式拼电话号码，如 +5511987654321
func FormatE164(areaCode, number, countryCode string) string {
	return fmt.Sprintf("+%s%s%s", countryCode, onlyDigits(areaCode), onlyDigits(number))
}

// FormatPhoneDisplay 展示格式，如 (11) 98765-4321
func FormatPhoneDisplay(areaCode, number string) string {
	number = onlyDigits(number)
	switch len(number) {
	case 9:
		return fmt.Sprintf("(%s) %s-%s", areaCode, number[:5], number[5:])
	case 8:
		return fmt.Sprintf("(%s) %s-%s", areaCode, number[:4], number[4:])
	default:
		return fmt.Sprintf("(%s) %s", areaCode, number)
	}
}
