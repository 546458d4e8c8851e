package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps a soroban-rpc endpoint. soroban-rpc speaks plain JSON-RPC
// 2.0 over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new soroban-rpc client for the endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ContractEvent is the wire shape of one getEvents entry.
type ContractEvent struct {
	Type                     string   `json:"type"`
	Ledger                   uint32   `json:"ledger"`
	LedgerClosedAt           string   `json:"ledgerClosedAt"`
	ContractID               string   `json:"contractId"`
	ID                       string   `json:"id"`
	PagingToken              string   `json:"pagingToken"`
	Topic                    []string `json:"topic"`
	Value                    string   `json:"value"`
	InSuccessfulContractCall bool     `json:"inSuccessfulContractCall"`
	TxHash                   string   `json:"txHash"`
}

// EventFilter narrows getEvents to specific contracts.
type EventFilter struct {
	Type        string   `json:"type,omitempty"`
	ContractIDs []string `json:"contractIds,omitempty"`
}

// EventsPage is one page of getEvents results.
type EventsPage struct {
	Events       []ContractEvent `json:"events"`
	LatestLedger uint32          `json:"latestLedger"`
	Cursor       string          `json:"cursor,omitempty"`
}

type getEventsParams struct {
	StartLedger uint32            `json:"startLedger,omitempty"`
	EndLedger   uint32            `json:"endLedger,omitempty"`
	Filters     []EventFilter     `json:"filters,omitempty"`
	Pagination  *paginationParams `json:"pagination,omitempty"`
}

type paginationParams struct {
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// GetEvents fetches one page of contract events. When cursor is set the
// ledger bounds must be omitted per the getEvents contract.
func (c *Client) GetEvents(ctx context.Context, startLedger, endLedger uint32, contractIDs []string, cursor string, limit int) (EventsPage, error) {
	params := getEventsParams{}
	if cursor == "" {
		params.StartLedger = startLedger
		params.EndLedger = endLedger
	}
	if len(contractIDs) > 0 {
		params.Filters = []EventFilter{{Type: "contract", ContractIDs: contractIDs}}
	}
	params.Pagination = &paginationParams{Cursor: cursor, Limit: limit}

	var page EventsPage
	if err := c.call(ctx, "getEvents", params, &page); err != nil {
		return EventsPage{}, err
	}
	return page, nil
}

// LatestLedger returns the latest ledger sequence known to the endpoint.
func (c *Client) LatestLedger(ctx context.Context) (uint32, error) {
	var result struct {
		Sequence uint32 `json:"sequence"`
	}
	if err := c.call(ctx, "getLatestLedger", nil, &result); err != nil {
		return 0, err
	}
	return result.Sequence, nil
}

// Health checks the endpoint via getHealth.
func (c *Client) Health(ctx context.Context) error {
	var result struct {
		Status string `json:"status"`
	}
	if err := c.call(ctx, "getHealth", nil, &result); err != nil {
		return err
	}
	if result.Status != "healthy" {
		return fmt.Errorf("rpc status: %s", result.Status)
	}
	return nil
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params, result interface{}) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return fmt.Errorf("%s: parse response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: rpc error %d: %s", method, rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%s: parse result: %w", method, err)
		}
	}
	return nil
}
