package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bakeryapi/internal/service"
	serviceMocks "bakeryapi/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderHandoff(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrderService)
	app := fiber.New()
	app.Post("/api/orders/handoff", CreateOrderHandoff(mockSvc))

	orderReq := service.OrderRequest{
		ProductID: uuid.New().String(),
		Name:      "Tunde",
		Location:  "12 Allen Avenue, Ikeja",
		Date:      "2026-09-05",
		Comments:  "Birthday, add candles",
	}

	post := func(t *testing.T, req service.OrderRequest) *http.Response {
		t.Helper()
		payload, err := json.Marshal(req)
		require.NoError(t, err)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/orders/handoff", bytes.NewReader(payload))
		httpReq.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(httpReq)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		expected := &service.OrderHandoff{
			URL:     "https://wa.me/2348000000000?text=hello",
			Message: "hello",
		}
		mockSvc.On("Handoff", mock.Anything, orderReq).Return(expected, nil).Once()

		resp := post(t, orderReq)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.OrderHandoff
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.Message, result.Message)

		u, err := url.Parse(result.URL)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", u.Host)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		invalid := orderReq
		invalid.Name = ""
		mockSvc.On("Handoff", mock.Anything, invalid).Return(nil, service.ErrValidation).Once()

		resp := post(t, invalid)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("product not found", func(t *testing.T) {
		mockSvc.On("Handoff", mock.Anything, orderReq).Return(nil, service.ErrNotFound).Once()

		resp := post(t, orderReq)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Handoff", mock.Anything, orderReq).Return(nil, errors.New("db error")).Once()

		resp := post(t, orderReq)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		httpReq := httptest.NewRequest(http.MethodPost, "/api/orders/handoff", bytes.NewReader([]byte("{not json")))
		httpReq.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(httpReq)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
