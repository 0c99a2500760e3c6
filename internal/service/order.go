package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"bakeryapi/internal/config"
	"bakeryapi/internal/repository"
)

// OrderRequest is the order form submitted by a storefront customer.
type OrderRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	Comments  string `json:"comments"`
}

// OrderHandoff is the composed outbound WhatsApp deep link. There is no order
// persistence: handing the message to the business contact is the checkout.
type OrderHandoff struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// OrderService composes wa.me deep links for the storefront order flow.
type OrderService interface {
	Handoff(ctx context.Context, req OrderRequest) (*OrderHandoff, error)
}

type orderService struct {
	cfg      config.OrderConfig
	products repository.ProductRepository
}

// NewOrderService constructs an OrderService addressing the configured
// business WhatsApp contact.
func NewOrderService(cfg config.OrderConfig, products repository.ProductRepository) OrderService {
	return &orderService{cfg: cfg, products: products}
}

func (s *orderService) Handoff(ctx context.Context, req OrderRequest) (*OrderHandoff, error) {
	switch {
	case req.ProductID == "":
		return nil, fmt.Errorf("%w: product_id is required", ErrValidation)
	case req.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case req.Location == "":
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	case req.Date == "":
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if s.cfg.WhatsAppPhone == "" {
		return nil, fmt.Errorf("whatsapp contact is not configured")
	}

	p, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comments := req.Comments
	if comments == "" {
		comments = "None"
	}

	divider := strings.Repeat("-", 34)
	message := strings.Join([]string{
		fmt.Sprintf("*New Order Request - %s*", s.cfg.BusinessName),
		divider,
		fmt.Sprintf("*Product:* %s", p.Name),
		fmt.Sprintf("*Customer:* %s", req.Name),
		fmt.Sprintf("*Delivery Location:* %s", req.Location),
		fmt.Sprintf("*Expected Date:* %s", req.Date),
		fmt.Sprintf("*Instructions/Occasion:* %s", comments),
		divider,
	}, "\n")

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + s.cfg.WhatsAppPhone,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}

	return &OrderHandoff{URL: link.String(), Message: message}, nil
}
