package cw

import (
	"fmt"

	"github.com/cwkit/cwkit-go/internal/codec"
)

// CosmosMsg is a message a contract asks the host to dispatch. Exactly one
// field is set.
type CosmosMsg struct {
	Bank     *BankMsg     `json:"bank,omitempty"`
	Wasm     *WasmMsg     `json:"wasm,omitempty"`
	Stargate *StargateMsg `json:"stargate,omitempty"`
	Any      *AnyMsg      `json:"any,omitempty"`
}

// BankMsg moves native coins.
type BankMsg struct {
	Send *SendMsg `json:"send,omitempty"`
}

// SendMsg transfers coins from the contract to ToAddress.
type SendMsg struct {
	ToAddress string `json:"to_address"`
	Amount    []Coin `json:"amount"`
}

// WasmMsg calls into the wasm module.
type WasmMsg struct {
	Execute     *ExecuteMsg     `json:"execute,omitempty"`
	Instantiate *InstantiateMsg `json:"instantiate,omitempty"`
}

// ExecuteMsg executes a contract with an encoded message and attached funds.
type ExecuteMsg struct {
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
	Funds        []Coin `json:"funds"`
}

// InstantiateMsg creates a contract from stored code.
type InstantiateMsg struct {
	Admin  *string `json:"admin"`
	CodeID uint64  `json:"code_id"`
	Msg    []byte  `json:"msg"`
	Funds  []Coin  `json:"funds"`
	Label  string  `json:"label"`
}

// StargateMsg is a protobuf passthrough message understood by v1 hosts.
type StargateMsg struct {
	TypeURL string `json:"type_url"`
	Value   []byte `json:"value"`
}

// AnyMsg is a protobuf passthrough message understood by v2 hosts.
type AnyMsg struct {
	TypeURL string `json:"type_url"`
	Value   []byte `json:"value"`
}

// NewBankSend creates a bank send message.
func NewBankSend(toAddress string, amount []Coin) CosmosMsg {
	if amount == nil {
		amount = []Coin{}
	}
	return CosmosMsg{Bank: &BankMsg{Send: &SendMsg{ToAddress: toAddress, Amount: amount}}}
}

// WasmExecute encodes msg and builds an execute message for contract.
func WasmExecute(contract string, msg any, funds []Coin) (WasmMsg, error) {
	data, err := codec.Marshal(msg)
	if err != nil {
		return WasmMsg{}, fmt.Errorf("encode execute message for %s: %w", contract, err)
	}
	if funds == nil {
		funds = []Coin{}
	}
	return WasmMsg{Execute: &ExecuteMsg{ContractAddr: contract, Msg: data, Funds: funds}}, nil
}

// WasmInstantiate encodes msg and builds an instantiate message. An empty
// admin leaves the contract without one.
func WasmInstantiate(admin string, codeID uint64, msg any, funds []Coin, label string) (WasmMsg, error) {
	data, err := codec.Marshal(msg)
	if err != nil {
		return WasmMsg{}, fmt.Errorf("encode instantiate message for code %d: %w", codeID, err)
	}
	if funds == nil {
		funds = []Coin{}
	}

	m := &InstantiateMsg{CodeID: codeID, Msg: data, Funds: funds, Label: label}
	if admin != "" {
		m.Admin = &admin
	}
	return WasmMsg{Instantiate: m}, nil
}

// ToCosmosMsg wraps m.
func (m WasmMsg) ToCosmosMsg() CosmosMsg {
	return CosmosMsg{Wasm: &m}
}

// ToCosmosMsg wraps m.
func (m BankMsg) ToCosmosMsg() CosmosMsg {
	return CosmosMsg{Bank: &m}
}
