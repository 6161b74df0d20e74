package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway captures card payments through Mercado Pago. The engine
// only calls it for tarjeta payments; mock mode (PAYMENT_GATEWAY_MOCK)
// approves locally without touching the provider, for dev and CI.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if MockEnabled() {
		log.Printf("[card][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[card][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[card][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[card][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		resp := map[string]any{}
		if len(requestPayload) > 0 && json.Valid(requestPayload) {
			if err := json.Unmarshal(requestPayload, &resp); err != nil {
				resp = map[string]any{"request_payload_raw": string(requestPayload)}
			}
		}

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		resp["date_created"] = now
		resp["date_approved"] = now

		b, err := json.Marshal(resp)
		if err != nil {
			return "", "", nil, err
		}

		log.Printf("[card][gateway] mock capture success provider_payment_id=%s", id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[card][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[card][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[card][gateway] capture success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// CancelPayment voids a previously captured payment at the provider.
func (g *MercadoPagoGateway) CancelPayment(ctx context.Context, providerPaymentID string) error {
	if g != nil && g.mockMode {
		log.Printf("[card][gateway] mock cancel success provider_payment_id=%s", providerPaymentID)
		return nil
	}

	if g == nil || g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		log.Printf("[card][gateway] invalid provider payment id %q err=%v", providerPaymentID, err)
		return err
	}

	resp, err := g.client.Cancel(ctx, id)
	if err != nil {
		log.Printf("[card][gateway] sdk cancel failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return err
	}
	log.Printf("[card][gateway] cancel success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return nil
}

// MockEnabled reports whether the gateway should run in local-approve mode.
func MockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
