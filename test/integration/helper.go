package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试需要一个跑起来的服务实例和一个预置的管理员账号:
//
//	go run ./cmd/adminctl -email admin@test.com -password Test12345
//	go run ./cmd/api
//	STOREFRONT_INTEGRATION=1 go test ./test/integration/...
const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// requireServer 未开启集成测试开关时跳过
func requireServer(t *testing.T) {
	t.Helper()
	if os.Getenv("STOREFRONT_INTEGRATION") == "" {
		t.Skip("跳过集成测试(设置STOREFRONT_INTEGRATION=1开启)")
	}
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProductData 商品响应数据
type ProductData struct {
	ID            uint   `json:"id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
	StockStatus   string `json:"stock_status"`
}

// AdjustmentData 库存调整响应数据
type AdjustmentData struct {
	AdjustmentID     uint   `json:"adjustment_id"`
	ProductID        uint   `json:"product_id"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
	StockStatus      string `json:"stock_status"`
}

// AlertData 告警响应数据
type AlertData struct {
	ID              uint   `json:"id"`
	ProductID       uint   `json:"product_id"`
	AlertType       string `json:"alert_type"`
	CurrentQuantity int    `json:"current_quantity"`
	Threshold       int    `json:"threshold"`
	IsResolved      bool   `json:"is_resolved"`
}

// doJSON 发送请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// GenerateTestSKU 生成唯一的测试SKU
func GenerateTestSKU(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// LoginTestAdmin 登录测试管理员并返回Token
// 账号通过adminctl预置,邮箱密码可用环境变量覆盖
func LoginTestAdmin(t *testing.T) string {
	t.Helper()

	email := os.Getenv("STOREFRONT_TEST_ADMIN_EMAIL")
	if email == "" {
		email = "admin@test.com"
	}
	password := os.Getenv("STOREFRONT_TEST_ADMIN_PASSWORD")
	if password == "" {
		password = "Test12345"
	}

	resp := PostJSON(t, BaseURL+"/admin/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, resp.Code, "管理员登录失败: %s", resp.Message)

	var data LoginData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析登录响应失败")

	return data.AccessToken
}

// CreateTestProduct 创建测试商品并返回商品信息
func CreateTestProduct(t *testing.T, token, name string, stock, lowThreshold, reorderLevel int) ProductData {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/admin/products", map[string]interface{}{
		"sku":                 GenerateTestSKU("ITEST"),
		"name":                name,
		"description":         "集成测试商品",
		"price":               9900,
		"stock_quantity":      stock,
		"low_stock_threshold": lowThreshold,
		"reorder_level":       reorderLevel,
	}, token)
	require.Equal(t, 0, resp.Code, "创建商品失败: %s", resp.Message)

	var data ProductData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析商品响应失败")
	require.NotZero(t, data.ID, "商品ID应该大于0")

	return data
}
