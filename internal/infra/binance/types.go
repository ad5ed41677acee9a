package binance

// Futures REST endpoints used by the client.
const (
	pathOrder        = "/fapi/v1/order"
	pathTickerPrice  = "/fapi/v1/ticker/price"
	pathExchangeInfo = "/fapi/v1/exchangeInfo"
)

// orderResponse is the /fapi/v1/order response. Monetary fields arrive
// as strings and are parsed at the boundary.
type orderResponse struct {
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	Price         string `json:"price"`
	AvgPrice      string `json:"avgPrice"`
	StopPrice     string `json:"stopPrice"`
}

// tickerResponse is the /fapi/v1/ticker/price response.
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// exchangeInfoResponse carries the subset of exchange metadata we read.
type exchangeInfoResponse struct {
	Symbols []struct {
		Symbol string `json:"symbol"`
		Status string `json:"status"`
	} `json:"symbols"`
}

// apiError is the error envelope Binance returns on non-2xx responses.
type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
