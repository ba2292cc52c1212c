package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/server/http/dto"
	"github.com/Amarhadpad/artistgrade/internal/server/http/middleware"
	testhelpers "github.com/Amarhadpad/artistgrade/internal/test"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{
		FullName:        "Jane Doe",
		Username:        "jane",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var user dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", user.Email)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.RegisterRequest{
		FullName: "Jane", Username: "jane", Email: "jane@example.com",
		Password: "secret", ConfirmPassword: "secret",
	})
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed json",
			facade: testhelpers.AuthFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "missing field",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterParams) (*model.User, error) {
				return nil, domainErrors.ErrMissingField
			}},
			body:   validBody,
			status: http.StatusBadRequest,
		},
		{
			name: "password mismatch",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterParams) (*model.User, error) {
				return nil, domainErrors.ErrPasswordMismatch
			}},
			body:   validBody,
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterParams) (*model.User, error) {
				return nil, domainErrors.ErrAlreadyExists
			}},
			body:   validBody,
			status: http.StatusConflict,
		},
		{
			name: "storage failure",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterParams) (*model.User, error) {
				return nil, errors.New("boom")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "jane@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected session header, got %q", got)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "artistgrade_session" && cookie.Value == "token" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected session cookie to be set")
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}}
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, jsonHeaders())
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/logout", NewAuthHandler(testhelpers.AuthFacadeStub{}).Logout, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}

func TestAuthHandlerCurrentUser(t *testing.T) {
	setup := func(c *gin.Context) { c.Set(middleware.UserIDContextKey, int64(7)) }
	resp := performRequest(t, http.MethodGet, "/current_user", NewAuthHandler(testhelpers.AuthFacadeStub{}).CurrentUser, setup, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.AuthFacadeStub{UserFn: func(context.Context, int64) (*model.User, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/current_user", NewAuthHandler(facade).CurrentUser, nil, nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	payload := dto.OrderRequest{
		FullName: "Jane Doe", Email: "jane@example.com", Phone: "555-0100",
		Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62701",
		CartItems:   []model.CartItem{{Name: "Canvas", Price: 20, Quantity: 2}},
		TotalAmount: 40,
	}
	body, _ := json.Marshal(payload)

	var captured *model.Order
	facade := testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, order *model.Order) (string, error) {
		captured = order
		return "ORD042", nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, nil, body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var created dto.OrderCreatedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Message != "Order saved successfully!" {
		t.Fatalf("unexpected message %q", created.Message)
	}
	if created.OrderID != "ORD042" {
		t.Fatalf("unexpected order id %q", created.OrderID)
	}
	if captured == nil || len(captured.CartItems) != 1 || captured.CartItems[0].Name != "Canvas" {
		t.Fatalf("unexpected captured order %+v", captured)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{FullName: "Jane"})
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "missing field", err: domainErrors.ErrMissingField, status: http.StatusBadRequest},
		{name: "negative amount", err: domainErrors.ErrInvalidAmount, status: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{CreateFn: func(context.Context, *model.Order) (string, error) {
				return "", tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, nil, body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{ListFn: func(context.Context) ([]model.Order, error) {
		return []model.Order{{OrderID: "ORD002"}, {OrderID: "ORD001"}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 2 || orders[0].OrderID != "ORD002" {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/ORD001", NewOrderHandler(testhelpers.OrderFacadeStub{}).Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.OrderFacadeStub{GetFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/orders/ORD404", NewOrderHandler(facade).Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	body, _ := json.Marshal(dto.OrderStatusRequest{Status: "Completed"})
	resp := performRequest(t, http.MethodPut, "/orders/ORD001/status", NewOrderHandler(testhelpers.OrderFacadeStub{}).UpdateStatus, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.Status != "Completed" {
		t.Fatalf("unexpected status %q", order.Status)
	}

	body, _ = json.Marshal(dto.OrderStatusRequest{Status: "Shipped"})
	resp = performRequest(t, http.MethodPut, "/orders/ORD001/status", NewOrderHandler(testhelpers.OrderFacadeStub{}).UpdateStatus, nil, body, jsonHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown status, got %d", resp.Code)
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/orders/ORD001", NewOrderHandler(testhelpers.OrderFacadeStub{}).Delete, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.OrderFacadeStub{DeleteFn: func(context.Context, string) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/orders/ORD404", NewOrderHandler(facade).Delete, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestProductHandlerCRUD(t *testing.T) {
	body, _ := json.Marshal(dto.ProductRequest{Name: "Canvas", Price: 20, Stock: 3})
	resp := performRequest(t, http.MethodPost, "/products", NewProductHandler(testhelpers.ProductFacadeStub{}).Create, nil, body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products", NewProductHandler(testhelpers.ProductFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products/1", NewProductHandler(testhelpers.ProductFacadeStub{}).Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products/abc", NewProductHandler(testhelpers.ProductFacadeStub{}).Get, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad id, got %d", resp.Code)
	}

	name := "Easel"
	updateBody, _ := json.Marshal(dto.ProductUpdateRequest{Name: &name})
	resp = performRequest(t, http.MethodPut, "/products/1", NewProductHandler(testhelpers.ProductFacadeStub{}).Update, nil, updateBody, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var product dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if product.Name != "Easel" {
		t.Fatalf("unexpected name %q", product.Name)
	}

	resp = performRequest(t, http.MethodDelete, "/products/1", NewProductHandler(testhelpers.ProductFacadeStub{}).Delete, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestProductHandlerNotFound(t *testing.T) {
	facade := testhelpers.ProductFacadeStub{GetFn: func(context.Context, int64) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/products/99", NewProductHandler(facade).Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestUserHandlerAdministration(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/users", NewUserHandler(testhelpers.UserFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var users []dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &users); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}

	resp = performRequest(t, http.MethodGet, "/users/1", NewUserHandler(testhelpers.UserFacadeStub{}).Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	fullName := "Jane Q. Doe"
	body, _ := json.Marshal(dto.UserUpdateRequest{FullName: &fullName})
	resp = performRequest(t, http.MethodPut, "/users/1", NewUserHandler(testhelpers.UserFacadeStub{}).Update, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/users/1", NewUserHandler(testhelpers.UserFacadeStub{}).Delete, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	facade := testhelpers.UserFacadeStub{DeleteFn: func(context.Context, int64) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/users/99", NewUserHandler(facade).Delete, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestRequestHandlerSubmit(t *testing.T) {
	body, _ := json.Marshal(dto.CustomRequestPayload{Name: "Jane", Email: "jane@example.com", Product: "Portrait"})
	resp := performRequest(t, http.MethodPost, "/requests", NewRequestHandler(testhelpers.RequestFacadeStub{}).Submit, nil, body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	facade := testhelpers.RequestFacadeStub{SubmitFn: func(context.Context, *model.CustomRequest) error {
		return domainErrors.ErrMissingField
	}}
	resp = performRequest(t, http.MethodPost, "/requests", NewRequestHandler(facade).Submit, nil, body, jsonHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRequestHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/requests", NewRequestHandler(testhelpers.RequestFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var requests []dto.CustomRequestResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &requests); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(requests) != 1 || requests[0].Product != "Portrait" {
		t.Fatalf("unexpected requests %+v", requests)
	}
}

func TestDashboardHandlerCounts(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/dashboard/counts", NewDashboardHandler(testhelpers.DashboardFacadeStub{}).Counts, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var counts dto.DashboardResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &counts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if counts.TotalProducts != 3 || counts.TotalOrders != 2 || counts.TotalUsers != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}

func multipartBody(t *testing.T, field, filename string, content []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return buf.Bytes(), writer.FormDataContentType()
}

func TestMediaHandlerUpload(t *testing.T) {
	body, contentType := multipartBody(t, "image", "art.png", []byte("png-bytes"))
	resp := performRequest(t, http.MethodPost, "/upload", NewMediaHandler(testhelpers.MediaFacadeStub{}).Upload, nil, body, map[string]string{"Content-Type": contentType})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var asset dto.MediaAssetResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &asset); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if asset.URL != "https://cdn.example.com/art.png" {
		t.Fatalf("unexpected url %q", asset.URL)
	}
}

func TestMediaHandlerUploadFailures(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/upload", NewMediaHandler(testhelpers.MediaFacadeStub{}).Upload, nil, []byte("not multipart"), jsonHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without file, got %d", resp.Code)
	}

	body, contentType := multipartBody(t, "image", "art.png", []byte("png-bytes"))
	facade := testhelpers.MediaFacadeStub{UploadFn: func(context.Context, string, string, []byte) (*model.MediaAsset, error) {
		return nil, errors.New("media unavailable")
	}}
	resp = performRequest(t, http.MethodPost, "/upload", NewMediaHandler(facade).Upload, nil, body, map[string]string{"Content-Type": contentType})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestMediaHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/images", NewMediaHandler(testhelpers.MediaFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var assets []dto.MediaAssetResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &assets); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(assets) != 1 || assets[0].PublicID != "shop/a" {
		t.Fatalf("unexpected assets %+v", assets)
	}
}
