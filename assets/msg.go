package assets

import (
	"fmt"

	"github.com/cwkit/cwkit-go/cw"
)

// Asset is an amount of a token.
type Asset struct {
	Amount cw.Uint128
	Token  Token
}

// NewAsset creates an Asset.
func NewAsset(amount cw.Uint128, token Token) Asset {
	return Asset{Amount: amount, Token: token}
}

// Cw20ExecuteMsg is the subset of cw20 execute messages built here.
type Cw20ExecuteMsg struct {
	Transfer *Cw20Transfer `json:"transfer,omitempty"`
	Send     *Cw20Send     `json:"send,omitempty"`
}

// Cw20Transfer moves tokens to recipient.
type Cw20Transfer struct {
	Recipient string     `json:"recipient"`
	Amount    cw.Uint128 `json:"amount"`
}

// Cw20Send moves tokens to a contract and calls its receive hook with Msg.
type Cw20Send struct {
	Contract string     `json:"contract"`
	Amount   cw.Uint128 `json:"amount"`
	Msg      []byte     `json:"msg"`
}

// AddFundsToExecMsg attaches funds to an execute message. Native coins are
// attached directly. A single cw20 token turns the call into a cw20 send
// to the target contract that carries the original message. Any other
// combination fails with ErrWrongFundsCombination.
func AddFundsToExecMsg(execMsg cw.WasmMsg, funds []Asset) (cw.WasmMsg, error) {
	if execMsg.Execute == nil {
		return cw.WasmMsg{}, ErrWrongActionType
	}

	native := []cw.Coin{}
	var cw20 []Asset
	for _, a := range funds {
		if a.Token.IsNative() {
			native = append(native, cw.Coin{Denom: a.Token.denom, Amount: a.Amount})
		} else {
			cw20 = append(cw20, a)
		}
	}

	exec := execMsg.Execute

	if len(cw20) == 0 {
		return cw.WasmMsg{Execute: &cw.ExecuteMsg{
			ContractAddr: exec.ContractAddr,
			Msg:          exec.Msg,
			Funds:        native,
		}}, nil
	}

	if len(cw20) == 1 && len(native) == 0 {
		send := Cw20ExecuteMsg{Send: &Cw20Send{
			Contract: exec.ContractAddr,
			Amount:   cw20[0].Amount,
			Msg:      exec.Msg,
		}}
		return cw.WasmExecute(cw20[0].Token.address.String(), send, nil)
	}

	return cw.WasmMsg{}, fmt.Errorf("%w: %d native, %d cw20", ErrWrongFundsCombination, len(native), len(cw20))
}

// GetTransferMsg builds a message sending amount of token to recipient.
func GetTransferMsg(recipient cw.Addr, amount cw.Uint128, token Token) (cw.CosmosMsg, error) {
	if token.IsNative() {
		return cw.NewBankSend(recipient.String(), cw.Coins(amount, token.denom)), nil
	}

	msg, err := cw.WasmExecute(token.address.String(), Cw20ExecuteMsg{Transfer: &Cw20Transfer{
		Recipient: recipient.String(),
		Amount:    amount,
	}}, nil)
	if err != nil {
		return cw.CosmosMsg{}, err
	}
	return msg.ToCosmosMsg(), nil
}
