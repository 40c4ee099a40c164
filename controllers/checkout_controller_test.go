package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/controllers"
	"github.com/undivisible/gizzmoelectronics.com/services"
)

// ---- concrete mock implementing services.CheckoutGateway ----

type mockGateway struct {
	calls int
	sess  *stripe.CheckoutSession
	err   error
}

func (m *mockGateway) CreateCheckoutSession(_ context.Context, _ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.sess, nil
}

func setupCheckoutRouter(gw *mockGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewCheckoutService(gw, "https://shop.example.com", zap.NewNop())
	c := controllers.NewCheckoutController(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/create-checkout-session", c.CreateCheckoutSession)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCheckoutSession_EmptyItems(t *testing.T) {
	gw := &mockGateway{}
	r := setupCheckoutRouter(gw)

	w := postJSON(r, "/api/create-checkout-session", `{"items":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "No items provided", resp["error"])
	assert.Equal(t, 0, gw.calls)
}

func TestCreateCheckoutSession_MissingItems(t *testing.T) {
	gw := &mockGateway{}
	r := setupCheckoutRouter(gw)

	w := postJSON(r, "/api/create-checkout-session", `{"customerEmail":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gw.calls)
}

func TestCreateCheckoutSession_ItemsNotASequence(t *testing.T) {
	gw := &mockGateway{}
	r := setupCheckoutRouter(gw)

	w := postJSON(r, "/api/create-checkout-session", `{"items":"widget"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gw.calls)
}

func TestCreateCheckoutSession_Success(t *testing.T) {
	gw := &mockGateway{sess: &stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}}
	r := setupCheckoutRouter(gw)

	w := postJSON(r, "/api/create-checkout-session",
		`{"items":[{"name":"Widget","price":10.00,"quantity":2}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", resp["url"])
	assert.Equal(t, 1, gw.calls)
}

func TestCreateCheckoutSession_GatewayFailure(t *testing.T) {
	gw := &mockGateway{err: &stripe.Error{Msg: "Rate limited"}}
	r := setupCheckoutRouter(gw)

	w := postJSON(r, "/api/create-checkout-session",
		`{"items":[{"name":"Widget","price":10.00}]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Rate limited", resp["error"])
}
