// Package ibc builds ICS-20 token transfer messages, with optional
// packet-forward or wasm hook memos, and decodes the sudo callbacks Neutron
// sends back to contracts.
package ibc

import (
	"errors"
	"fmt"

	"github.com/cwkit/cwkit-go/internal/codec"
)

// ErrInvalidMemo is returned when a memo has no variant or more than one.
var ErrInvalidMemo = errors.New("invalid ibc memo")

// Memo is the memo of a transfer: either a packet-forward instruction or a
// wasm hook call carrying a message of type M. Exactly one field is set.
type Memo[M any] struct {
	Forward *ForwardMemo `json:"forward,omitempty"`
	Wasm    *WasmMemo[M] `json:"wasm,omitempty"`
}

// ForwardMemo asks the receiving chain to forward the tokens on.
type ForwardMemo struct {
	Channel  string `json:"channel"`
	Port     string `json:"port"`
	Receiver string `json:"receiver"`
	Retries  uint8  `json:"retries"`
	Timeout  uint64 `json:"timeout"`
}

// WasmMemo asks the receiving chain to execute Contract with Msg.
type WasmMemo[M any] struct {
	Contract string `json:"contract"`
	Msg      M      `json:"msg"`
}

// NewForwardMemo creates a packet-forward memo.
func NewForwardMemo[M any](f ForwardMemo) Memo[M] {
	return Memo[M]{Forward: &f}
}

// NewWasmMemo creates a wasm hook memo.
func NewWasmMemo[M any](contract string, msg M) Memo[M] {
	return Memo[M]{Wasm: &WasmMemo[M]{Contract: contract, Msg: msg}}
}

// Encode returns the memo as the JSON string carried in a transfer.
func (m Memo[M]) Encode() (string, error) {
	if (m.Forward == nil) == (m.Wasm == nil) {
		return "", ErrInvalidMemo
	}
	data, err := codec.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMemo, err)
	}
	return string(data), nil
}

// ParseMemo decodes a memo produced by Encode.
func ParseMemo[M any](memo string) (Memo[M], error) {
	var m Memo[M]
	if err := codec.Unmarshal([]byte(memo), &m); err != nil {
		return Memo[M]{}, fmt.Errorf("%w: %v", ErrInvalidMemo, err)
	}
	if (m.Forward == nil) == (m.Wasm == nil) {
		return Memo[M]{}, ErrInvalidMemo
	}
	return m, nil
}
