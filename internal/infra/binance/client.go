// Package binance is a minimal REST client for Binance USDⓈ-M futures:
// order creation, ticker price and exchange metadata. Order submissions
// are single-attempt; failures surface as *domain.ExchangeError and the
// caller decides whether the enclosing plan continues.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
)

const requestTimeout = 10 * time.Second

// Client talks to one Binance futures REST endpoint (mainnet or testnet).
type Client struct {
	baseURL      string
	recvWindowMS int
	signer       *Signer
	httpClient   *http.Client
	log          *slog.Logger
}

// NewClient creates a client for the given base URL and credentials.
func NewClient(baseURL, apiKey, secretKey string, recvWindowMS int, log *slog.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		recvWindowMS: recvWindowMS,
		signer:       NewSigner(apiKey, secretKey),
		httpClient:   &http.Client{Timeout: requestTimeout},
		log:          log,
	}
}

// CreateOrder submits one order. STOP_LIMIT maps to the futures API's
// STOP type (limit price + stopPrice).
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error) {
	params := url.Values{}
	params.Set("symbol", req.Symbol)
	params.Set("side", req.Side)
	params.Set("type", wireOrderType(req.Type))
	params.Set("quantity", formatFloat(req.Quantity))
	if req.Price > 0 {
		params.Set("price", formatFloat(req.Price))
	}
	if req.StopPrice > 0 {
		params.Set("stopPrice", formatFloat(req.StopPrice))
	}
	if req.Resting() {
		tif := req.TimeInForce
		if tif == "" {
			tif = domain.TimeInForceGTC
		}
		params.Set("timeInForce", tif)
	}
	if req.ClientOrderID != "" {
		params.Set("newClientOrderId", req.ClientOrderID)
	}

	var resp orderResponse
	if err := c.doSigned(ctx, http.MethodPost, pathOrder, params, &resp); err != nil {
		return domain.OrderResult{}, err
	}

	result := domain.OrderResult{
		OrderID:     strconv.FormatInt(resp.OrderID, 10),
		Symbol:      resp.Symbol,
		Side:        resp.Side,
		Type:        req.Type,
		OrigQty:     parseFloat(resp.OrigQty),
		ExecutedQty: parseFloat(resp.ExecutedQty),
		Status:      resp.Status,
	}
	// Market fills report avgPrice; resting orders report price.
	if p := parseFloat(resp.AvgPrice); p > 0 {
		result.Price = p
	} else {
		result.Price = parseFloat(resp.Price)
	}

	c.log.Info("order submitted",
		slog.String("order_id", result.OrderID),
		slog.String("symbol", result.Symbol),
		slog.String("side", result.Side),
		slog.String("type", result.Type),
		slog.String("status", result.Status))
	return result, nil
}

// TickerPrice returns the current price for a symbol.
func (c *Client) TickerPrice(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var resp tickerResponse
	if err := c.doPublic(ctx, pathTickerPrice, params, &resp); err != nil {
		return 0, err
	}
	price, err := strconv.ParseFloat(resp.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ticker price %q: %w", resp.Price, err)
	}
	return price, nil
}

// SymbolListed checks the exchange metadata for a tradable symbol.
func (c *Client) SymbolListed(ctx context.Context, symbol string) (bool, error) {
	var resp exchangeInfoResponse
	if err := c.doPublic(ctx, pathExchangeInfo, nil, &resp); err != nil {
		return false, err
	}
	for _, s := range resp.Symbols {
		if s.Symbol == symbol && s.Status == "TRADING" {
			return true, nil
		}
	}
	return false, nil
}

// Close wipes the credentials.
func (c *Client) Close() {
	c.signer.Wipe()
}

func (c *Client) doSigned(ctx context.Context, method, path string, params url.Values, out any) error {
	params.Set("recvWindow", strconv.Itoa(c.recvWindowMS))
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	query := params.Encode()
	query += "&signature=" + c.signer.Sign(query)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())
	return c.do(req, out)
}

func (c *Client) doPublic(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ExchangeError{Msg: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ExchangeError{Msg: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Msg != "" {
			return &domain.ExchangeError{Code: apiErr.Code, Msg: apiErr.Msg}
		}
		return &domain.ExchangeError{Msg: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.ExchangeError{Msg: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// wireOrderType maps the domain type to the futures API parameter.
func wireOrderType(t string) string {
	if t == domain.OrderTypeStopLimit {
		return domain.OrderTypeStop
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
