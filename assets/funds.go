package assets

import (
	"encoding/json"
	"fmt"

	"github.com/cwkit/cwkit-go/cw"
	"github.com/cwkit/cwkit-go/internal/codec"
)

// InfoResp describes the asset attached to a message.
type InfoResp struct {
	Sender      cw.Addr    `json:"sender"`
	AssetAmount cw.Uint128 `json:"asset_amount"`
	AssetToken  Token      `json:"asset_token"`
}

// Funds describes what a handler expects to be attached to a message.
//
//   - EmptyFunds() expects no coins.
//   - SingleFunds(nil, nil) expects exactly one native coin.
//   - SingleFunds(&sender, &amount) describes a cw20 receive hook, where
//     the message sender is the token contract.
//
// It encodes as "empty" or {"single":{"sender":...,"amount":...}}.
type Funds struct {
	single bool
	sender *string
	amount *cw.Uint128
}

// EmptyFunds expects no funds.
func EmptyFunds() Funds {
	return Funds{}
}

// SingleFunds expects a single asset.
func SingleFunds(sender *string, amount *cw.Uint128) Funds {
	return Funds{single: true, sender: sender, amount: amount}
}

func (f Funds) IsEmpty() bool {
	return !f.single
}

// Check matches info against f and reports the received asset.
func (f Funds) Check(api cw.Api, info cw.MessageInfo) (InfoResp, error) {
	if !f.single {
		if err := nonpayable(info); err != nil {
			return InfoResp{}, err
		}
		return InfoResp{Sender: info.Sender, AssetToken: NewNative("")}, nil
	}

	if f.sender == nil || f.amount == nil {
		c, err := oneCoin(info)
		if err != nil {
			return InfoResp{}, err
		}
		return InfoResp{Sender: info.Sender, AssetAmount: c.Amount, AssetToken: NewNative(c.Denom)}, nil
	}

	sender, err := api.AddrValidate(*f.sender)
	if err != nil {
		return InfoResp{}, fmt.Errorf("check funds sender: %w", err)
	}
	return InfoResp{Sender: sender, AssetAmount: *f.amount, AssetToken: NewCw20(info.Sender)}, nil
}

// oneCoin returns the only coin sent. It fails if zero or several coins
// were sent, or if the amount is zero.
func oneCoin(info cw.MessageInfo) (cw.Coin, error) {
	if len(info.Funds) != 1 {
		return cw.Coin{}, fmt.Errorf("%w: got %d", ErrNonSingleDenom, len(info.Funds))
	}
	if info.Funds[0].Amount.IsZero() {
		return cw.Coin{}, ErrZeroCoins
	}
	return info.Funds[0], nil
}

func nonpayable(info cw.MessageInfo) error {
	if len(info.Funds) != 0 {
		return ErrShouldNotAcceptFunds
	}
	return nil
}

type singleJSON struct {
	Sender *string     `json:"sender"`
	Amount *cw.Uint128 `json:"amount"`
}

type fundsJSON struct {
	Single *singleJSON `json:"single"`
}

// MarshalJSON encodes empty funds as "empty" and a single transfer as
// {"single":{...}}.
func (f Funds) MarshalJSON() ([]byte, error) {
	if !f.single {
		return json.Marshal("empty")
	}
	return json.Marshal(fundsJSON{Single: &singleJSON{Sender: f.sender, Amount: f.amount}})
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (f *Funds) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "empty" {
			return fmt.Errorf("%w: unknown funds variant %q", ErrWrongFundsCombination, s)
		}
		*f = EmptyFunds()
		return nil
	}

	var v fundsJSON
	if err := codec.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrWrongFundsCombination, err)
	}
	if v.Single == nil {
		return fmt.Errorf("%w: missing single", ErrWrongFundsCombination)
	}
	*f = SingleFunds(v.Single.Sender, v.Single.Amount)
	return nil
}
