package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"donation/middleware"
	"donation/models"
	"donation/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	entryService *service.EntryService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(entryService *service.EntryService) *ExportHandler {
	return &ExportHandler{entryService: entryService}
}

// visibleEntries 按当前会话可见范围查询记录，可选 start_date/end_date 过滤
// 日期存的是 ISO 格式字符串，字符串比较即日期比较
func (h *ExportHandler) visibleEntries(c *gin.Context) ([]models.Entry, *models.Session, bool) {
	sess := middleware.GetCurrentSession(c)
	if sess == nil {
		Unauthorized(c, "未登录")
		return nil, nil, false
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return nil, nil, false
		}
	}

	entries, err := h.entryService.List(sess)
	if err != nil {
		log.Printf("导出查询失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, nil, false
	}

	if startDate == "" && endDate == "" {
		return entries, sess, true
	}
	filtered := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if startDate != "" && e.Date < startDate {
			continue
		}
		if endDate != "" && e.Date > endDate {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, sess, true
}

// exportFilename 拼导出文件名，未给日期范围时用当天日期
func exportFilename(c *gin.Context, ext string) string {
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" && end == "" {
		return fmt.Sprintf("entries_%s.%s", time.Now().Format("2006-01-02"), ext)
	}
	return fmt.Sprintf("entries_%s_%s.%s", start, end, ext)
}

// ExportCSV 导出奉献记录为 CSV
// @Summary 导出奉献记录为 CSV
// @Description 导出当前用户可见的奉献记录为 CSV 文件，可选日期范围过滤。管理员导出含录入人列
// @Tags 导出
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2026-01-01)"
// @Param end_date query string false "结束日期 (2026-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	entries, sess, ok := h.visibleEntries(c)
	if !ok {
		return
	}
	isAdmin := models.CanAdminister(sess.Role)

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "日期", "奉献人", "金额", "支付方式", "类别", "邮箱", "电话", "运营商"}
	if isAdmin {
		headers = append(headers, "录入人")
	}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, entry := range entries {
		row := []string{
			fmt.Sprintf("%d", entry.ID),
			entry.Date,
			entry.PayerName,
			fmt.Sprintf("%.2f", entry.Amount),
			entry.PaymentMethod,
			entry.Category,
			entry.Email,
			service.FormatPhoneDisplay(entry.AreaCode, entry.PhoneNumber),
			entry.Operator,
		}
		if isAdmin {
			row = append(row, entry.CreatedBy)
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := exportFilename(c, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出奉献记录为 JSON
// @Summary 导出奉献记录为 JSON
// @Description 导出当前用户可见的奉献记录及汇总信息，可选日期范围过滤
// @Tags 导出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2026-01-01)"
// @Param end_date query string false "结束日期 (2026-12-31)"
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	entries, sess, ok := h.visibleEntries(c)
	if !ok {
		return
	}

	var totalAmount float64
	for _, entry := range entries {
		totalAmount += entry.Amount
	}

	var list interface{}
	if models.CanAdminister(sess.Role) {
		list = models.AnyEntries(entries)
	} else {
		list = models.OwnEntries(entries)
	}

	Success(c, gin.H{
		"start_date":   c.Query("start_date"),
		"end_date":     c.Query("end_date"),
		"total_count":  len(entries),
		"total_amount": totalAmount,
		"entries":      list,
	})
}

// ExportExcel 导出奉献记录为 Excel
// @Summary 导出奉献记录为 Excel
// @Description 导出当前用户可见的奉献记录为带样式的 xlsx 文件，末尾附合计行
// @Tags 导出
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2026-01-01)"
// @Param end_date query string false "结束日期 (2026-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	entries, sess, ok := h.visibleEntries(c)
	if !ok {
		return
	}
	isAdmin := models.CanAdminister(sess.Role)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "奉献记录"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	headers := []string{"ID", "日期", "奉献人", "金额", "支付方式", "类别", "邮箱", "电话", "运营商"}
	if isAdmin {
		headers = append(headers, "录入人")
	}
	lastCol := string(rune('A' + len(headers) - 1))

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 25)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 25)
	f.SetColWidth(sheetName, "H", lastCol, 18)

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount float64
	for i, entry := range entries {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.PayerName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), entry.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), entry.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), service.FormatPhoneDisplay(entry.AreaCode, entry.PhoneNumber))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), entry.Operator)
		if isAdmin {
			f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), entry.CreatedBy)
		}

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), dataStyle)
		totalAmount += entry.Amount
	}

	// 合计行
	summaryRow := len(entries) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(entries)))
	f.MergeCell(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow), summaryStyle)

	filename := exportFilename(c, "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		log.Printf("生成 Excel 失败: %v", err)
		InternalError(c, "生成 Excel 失败")
	}
}
