package api

import (
	"encoding/json"
	"strings"
	"testing"

	"donation/middleware"
	"donation/models"
	"donation/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExportHandler(service.NewEntryService())
	authorized := router.Group("", middleware.JWTAuth())
	authorized.GET("/export/csv", h.ExportCSV)
	authorized.GET("/export/json", h.ExportJSON)
	authorized.GET("/export/excel", h.ExportExcel)
	return router
}

func seedExportEntries(t *testing.T) {
	t.Helper()
	svc := service.NewEntryService()
	entries := []models.Entry{
		{Date: "2026-08-30", PayerName: "João Silva", Amount: 50, PaymentMethod: models.PaymentPix, Category: models.CategoryTithe, CreatedBy: "deacon01", AreaCode: "11", PhoneNumber: "987654321"},
		{Date: "2026-08-10", PayerName: "Maria Souza", Amount: 30, PaymentMethod: models.PaymentCash, Category: models.CategoryOffering, CreatedBy: "deacon01"},
		{Date: "2026-07-01", PayerName: "Pedro Costa", Amount: 20, PaymentMethod: models.PaymentCard, Category: models.CategoryVisitor, CreatedBy: "admin"},
	}
	for i := range entries {
		require.NoError(t, svc.Create(&entries[i], ""))
	}
}

func TestExportHandler_ExportCSV(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)
	router := setupExportRouter()
	seedExportEntries(t)

	w := doJSON(router, "GET", "/export/csv", tokenFor(t, cfg, "admin"), "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.String()
	// UTF-8 BOM 开头，Excel 才能正确显示中文
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	// 管理员导出带录入人列
	assert.Contains(t, body, "录入人")
	assert.Contains(t, body, "João Silva")
	assert.Contains(t, body, "(11) 98765-4321")
	assert.Contains(t, body, "deacon01")
}

func TestExportHandler_ExportCSV_NonAdmin(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)
	router := setupExportRouter()
	seedExportEntries(t)

	w := doJSON(router, "GET", "/export/csv", tokenFor(t, cfg, "deacon01"), "")
	assert.Equal(t, 200, w.Code)

	body := w.Body.String()
	// 普通用户导出没有录入人列，也看不到别人的记录
	assert.NotContains(t, body, "录入人")
	assert.NotContains(t, body, "Pedro Costa")
	assert.Contains(t, body, "João Silva")
}

func TestExportHandler_ExportJSON_DateRange(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)
	router := setupExportRouter()
	seedExportEntries(t)

	w := doJSON(router, "GET", "/export/json?start_date=2026-08-01&end_date=2026-08-31", tokenFor(t, cfg, "admin"), "")
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data struct {
			TotalCount  int     `json:"total_count"`
			TotalAmount float64 `json:"total_amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.TotalCount)
	assert.Equal(t, 80.0, resp.Data.TotalAmount)
}

func TestExportHandler_ExportJSON_BadDate(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)
	router := setupExportRouter()

	w := doJSON(router, "GET", "/export/json?start_date=31-08-2026", tokenFor(t, cfg, "admin"), "")
	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportExcel(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)
	router := setupExportRouter()
	seedExportEntries(t)

	w := doJSON(router, "GET", "/export/excel", tokenFor(t, cfg, "admin"), "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// xlsx 是 zip 容器，以 PK 开头
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestOptionsHandler_GetOptions(t *testing.T) {
	cfg := setupTestConfig(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewOptionsHandler(cfg)
	router.GET("/options", h.GetOptions)

	// 选项接口无需登录
	w := doJSON(router, "GET", "/options", "", "")
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data struct {
			PaymentMethods []string `json:"payment_methods"`
			Categories     []string `json:"categories"`
			Carriers       []string `json:"carriers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.PaymentMethods, models.PaymentPix)
	assert.Contains(t, resp.Data.Categories, models.CategoryTithe)
	assert.Equal(t, []string{"Vivo", "Claro"}, resp.Data.Carriers)
}
