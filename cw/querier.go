package cw

import (
	"fmt"

	"github.com/cwkit/cwkit-go/internal/codec"
)

// Querier runs read-only queries against other contracts.
type Querier interface {
	// QueryWasmSmart sends an encoded query message to contract and returns
	// the encoded response.
	QueryWasmSmart(contract string, msg []byte) ([]byte, error)
}

// QuerySmart encodes msg, queries contract and decodes the response into T.
func QuerySmart[T any](q Querier, contract string, msg any) (T, error) {
	var resp T

	req, err := codec.Marshal(msg)
	if err != nil {
		return resp, fmt.Errorf("query %s: %w", contract, err)
	}

	data, err := q.QueryWasmSmart(contract, req)
	if err != nil {
		return resp, fmt.Errorf("query %s: %w", contract, err)
	}

	if err := codec.Unmarshal(data, &resp); err != nil {
		return resp, fmt.Errorf("query %s: %w", contract, err)
	}
	return resp, nil
}

// WasmHandler answers smart queries for one mocked contract.
type WasmHandler func(msg []byte) ([]byte, error)

// MockQuerier dispatches smart queries to per-contract handlers.
type MockQuerier struct {
	handlers map[string]WasmHandler
}

var _ Querier = (*MockQuerier)(nil)

// NewMockQuerier creates a querier with no registered contracts.
func NewMockQuerier() *MockQuerier {
	return &MockQuerier{handlers: make(map[string]WasmHandler)}
}

// Register installs the handler for contract, replacing any previous one.
func (q *MockQuerier) Register(contract string, h WasmHandler) {
	q.handlers[contract] = h
}

func (q *MockQuerier) QueryWasmSmart(contract string, msg []byte) ([]byte, error) {
	h, ok := q.handlers[contract]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchContract, contract)
	}
	return h(msg)
}
