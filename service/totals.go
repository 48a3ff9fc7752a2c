package service

import (
	"time"

	"donation/models"
)

// CategoryTotals 按类别的小计
type CategoryTotals struct {
	Tithe    float64 `json:"tithe"`
	Offering float64 `json:"offering"`
	Visitor  float64 `json:"visitor"`
}

// Totals 汇总结果
type Totals struct {
	Today             float64        `json:"total_today"`
	Month             float64        `json:"total_month"`
	Overall           float64        `json:"total_overall"`
	MonthByCategory   CategoryTotals `json:"month_by_category"`
	OverallByCategory CategoryTotals `json:"overall_by_category"`
}

// CalculateTotals 计算记录列表的财务汇总，纯函数
// "今天"按存储日期与 now 的精确日匹配，"本月"按 "2006-01" 前缀匹配
// 金额直接用 float64 累加，只在展示层保留两位小数
func CalculateTotals(entries []models.Entry, now time.Time) Totals {
	today := now.Format("2006-01-02")
	monthPrefix := now.Format("2006-01")

	var t Totals
	for i := range entries {
		e := &entries[i]
		t.Overall += e.Amount
		addCategory(&t.OverallByCategory, e)

		if e.Date == today {
			t.Today += e.Amount
		}
		if len(e.Date) >= len(monthPrefix) && e.Date[:len(monthPrefix)] == monthPrefix {
			t.Month += e.Amount
			addCategory(&t.MonthByCategory, e)
		}
	}
	return t
}

func addCategory(ct *CategoryTotals, e *models.Entry) {
	switch e.Category {
	case models.CategoryTithe:
		ct.Tithe += e.Amount
	case models.CategoryOffering:
		ct.Offering += e.Amount
	case models.CategoryVisitor:
		ct.Visitor += e.Amount
	}
}
