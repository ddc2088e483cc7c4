package cw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBech32Api_AddrMake(t *testing.T) {
	api := MockApi()

	a := api.AddrMake("alice")
	b := api.AddrMake("alice")
	c := api.AddrMake("bob")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a.String(), "cosmwasm1"))

	validated, err := api.AddrValidate(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, validated)
}

func TestBech32Api_CanonicalRoundTrip(t *testing.T) {
	api := NewBech32Api("cosmos")

	canonical, err := api.AddrCanonicalize("cosmos1f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfd")
	require.NoError(t, err)
	assert.Len(t, canonical, 20)

	human, err := api.AddrHumanize(canonical)
	require.NoError(t, err)
	assert.Equal(t, Addr("cosmos1f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfd"), human)
}

func TestBech32Api_AddrValidate_Invalid(t *testing.T) {
	api := MockApi()
	valid := api.AddrMake("alice").String()

	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"wrong prefix", "cosmos1f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfd"},
		{"upper case", strings.ToUpper(valid)},
		{"bad checksum", valid[:len(valid)-1] + flipChar(valid[len(valid)-1])},
		{"no separator", "cosmwasm"},
		{"plain text", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := api.AddrValidate(tt.addr)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestBech32Api_AddrHumanize_Invalid(t *testing.T) {
	_, err := MockApi().AddrHumanize(nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestMockApi_Prefix(t *testing.T) {
	api := MockApi(WithBech32Prefix("osmo"))
	assert.True(t, strings.HasPrefix(api.AddrMake("x").String(), "osmo1"))
}

func flipChar(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}
