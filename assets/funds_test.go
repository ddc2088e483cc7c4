package assets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwkit/cwkit-go/cw"
)

func TestFunds_CheckSingleNative(t *testing.T) {
	api := cw.MockApi()
	admin := api.AddrMake("admin")
	info := cw.MockInfo(admin, cw.Coins(cw.NewUint128(100), "cosm"))

	resp, err := SingleFunds(nil, nil).Check(api, info)
	require.NoError(t, err)
	assert.Equal(t, InfoResp{
		Sender:      admin,
		AssetAmount: cw.NewUint128(100),
		AssetToken:  NewNative("cosm"),
	}, resp)
}

func TestFunds_CheckSingleNativeErrors(t *testing.T) {
	api := cw.MockApi()
	admin := api.AddrMake("admin")

	tests := []struct {
		name  string
		funds []cw.Coin
		err   error
	}{
		{"no coins", nil, ErrNonSingleDenom},
		{"two coins", []cw.Coin{cw.NewCoin(1, "a"), cw.NewCoin(1, "b")}, ErrNonSingleDenom},
		{"zero amount", []cw.Coin{cw.NewCoin(0, "a")}, ErrZeroCoins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SingleFunds(nil, nil).Check(api, cw.MockInfo(admin, tt.funds))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFunds_CheckCw20(t *testing.T) {
	api := cw.MockApi()
	token := api.AddrMake("token")
	user := api.AddrMake("user").String()
	amount := cw.NewUint128(500)

	// The cw20 contract is the message sender of a receive hook.
	resp, err := SingleFunds(&user, &amount).Check(api, cw.MockInfo(token, nil))
	require.NoError(t, err)
	assert.Equal(t, InfoResp{
		Sender:      cw.Addr(user),
		AssetAmount: amount,
		AssetToken:  NewCw20(token),
	}, resp)

	bad := "bad"
	_, err = SingleFunds(&bad, &amount).Check(api, cw.MockInfo(token, nil))
	assert.ErrorIs(t, err, cw.ErrInvalidAddress)

	// Half-specified falls back to the native path.
	_, err = SingleFunds(&user, nil).Check(api, cw.MockInfo(token, nil))
	assert.ErrorIs(t, err, ErrNonSingleDenom)
}

func TestFunds_CheckEmpty(t *testing.T) {
	api := cw.MockApi()
	sender := api.AddrMake("sender")

	resp, err := EmptyFunds().Check(api, cw.MockInfo(sender, nil))
	require.NoError(t, err)
	assert.Equal(t, sender, resp.Sender)
	assert.True(t, resp.AssetAmount.IsZero())
	assert.Equal(t, NewNative(""), resp.AssetToken)

	_, err = EmptyFunds().Check(api, cw.MockInfo(sender, cw.Coins(cw.NewUint128(1), "a")))
	assert.ErrorIs(t, err, ErrShouldNotAcceptFunds)
}

func TestFunds_JSON(t *testing.T) {
	data, err := json.Marshal(EmptyFunds())
	require.NoError(t, err)
	assert.Equal(t, `"empty"`, string(data))

	data, err = json.Marshal(SingleFunds(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, `{"single":{"sender":null,"amount":null}}`, string(data))

	sender := "alice"
	amount := cw.NewUint128(9)
	data, err = json.Marshal(SingleFunds(&sender, &amount))
	require.NoError(t, err)
	assert.Equal(t, `{"single":{"sender":"alice","amount":"9"}}`, string(data))

	var f Funds
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, SingleFunds(&sender, &amount), f)

	require.NoError(t, json.Unmarshal([]byte(`"empty"`), &f))
	assert.True(t, f.IsEmpty())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"full"`), &f), ErrWrongFundsCombination)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{}`), &f), ErrWrongFundsCombination)
}
