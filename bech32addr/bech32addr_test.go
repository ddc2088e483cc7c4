package bech32addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwkit/cwkit-go/cw"
)

const (
	addressCosmos  = "cosmos1f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfd"
	addressOsmosis = "osmo1f37v0rdvrred27tlqqcpkrqpzfv6ddr2pz60ll"
)

func TestSplitAndJoin(t *testing.T) {
	prefix, postfix, err := Split(addressCosmos)
	require.NoError(t, err)
	assert.Equal(t, "cosmos", prefix)
	assert.Equal(t, "f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfd", postfix)

	assert.Equal(t, addressCosmos, Join(prefix, postfix))
}

func TestSplit_NoDelimiter(t *testing.T) {
	_, _, err := Split("cosmosqqqq")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestConvert(t *testing.T) {
	osmo, err := Convert(addressCosmos, "osmo")
	require.NoError(t, err)
	assert.Equal(t, addressOsmosis, osmo)

	cosmos, err := Convert(osmo, "cosmos")
	require.NoError(t, err)
	assert.Equal(t, addressCosmos, cosmos)
}

func TestConvert_KeepsCanonicalBytes(t *testing.T) {
	from := cw.NewBech32Api("cosmwasm")
	to := cw.NewBech32Api("neutron")

	addr := from.AddrMake("contract")
	converted, err := Convert(string(addr), "neutron")
	require.NoError(t, err)

	want, err := from.AddrCanonicalize(string(addr))
	require.NoError(t, err)
	got, err := to.AddrCanonicalize(converted)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvert_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{"empty", ""},
		{"no delimiter", "cosmos"},
		{"bad checksum", "cosmos1f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfe"},
		{"mixed case", "Cosmos1f37v0rdvrred27tlqqcpkrqpzfv6ddr2feflfd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.address, "osmo")
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}
