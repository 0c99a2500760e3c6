package service

import (
	"context"
	"database/sql"
	"net/url"
	"strings"
	"testing"

	"bakeryapi/internal/config"
	"bakeryapi/internal/model"
	repoMocks "bakeryapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderConfig() config.OrderConfig {
	return config.OrderConfig{
		WhatsAppPhone: "911234567890",
		BusinessName:  "RP Baking Treats",
	}
}

func TestOrderService_Handoff(t *testing.T) {
	ctx := context.Background()

	validReq := OrderRequest{
		ProductID: "prod-id",
		Name:      "Asha",
		Location:  "MG Road, Tower B",
		Date:      "2026-09-12",
		Comments:  "Happy Birthday, less sugar",
	}

	t.Run("composes the wa.me deep link", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductRepository)
		mRepo.On("FindByID", ctx, "prod-id").
			Return(&model.Product{ID: "prod-id", Name: "Dark Truffle"}, nil)
		svc := NewOrderService(testOrderConfig(), mRepo)

		out, err := svc.Handoff(ctx, validReq)
		require.NoError(t, err)

		u, err := url.Parse(out.URL)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", u.Host)
		assert.Equal(t, "/911234567890", u.Path)

		text := u.Query().Get("text")
		assert.Equal(t, out.Message, text)
		assert.Contains(t, text, "*New Order Request - RP Baking Treats*")
		assert.Contains(t, text, "*Product:* Dark Truffle")
		assert.Contains(t, text, "*Customer:* Asha")
		assert.Contains(t, text, "*Delivery Location:* MG Road, Tower B")
		assert.Contains(t, text, "*Expected Date:* 2026-09-12")
		assert.Contains(t, text, "*Instructions/Occasion:* Happy Birthday, less sugar")
	})

	t.Run("empty comments become None", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductRepository)
		mRepo.On("FindByID", ctx, "prod-id").
			Return(&model.Product{ID: "prod-id", Name: "Dark Truffle"}, nil)
		svc := NewOrderService(testOrderConfig(), mRepo)

		req := validReq
		req.Comments = ""
		out, err := svc.Handoff(ctx, req)

		require.NoError(t, err)
		assert.Contains(t, out.Message, "*Instructions/Occasion:* None")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		svc := NewOrderService(testOrderConfig(), new(repoMocks.MockProductRepository))

		for _, req := range []OrderRequest{
			{Name: "Asha", Location: "x", Date: "2026-09-12"},
			{ProductID: "p", Location: "x", Date: "2026-09-12"},
			{ProductID: "p", Name: "Asha", Date: "2026-09-12"},
			{ProductID: "p", Name: "Asha", Location: "x"},
		} {
			_, err := svc.Handoff(ctx, req)
			assert.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewOrderService(testOrderConfig(), mRepo)

		req := validReq
		req.ProductID = "missing"
		_, err := svc.Handoff(ctx, req)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unconfigured contact", func(t *testing.T) {
		svc := NewOrderService(config.OrderConfig{BusinessName: "RP Baking Treats"}, new(repoMocks.MockProductRepository))

		_, err := svc.Handoff(ctx, validReq)

		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "not configured"))
	})
}
