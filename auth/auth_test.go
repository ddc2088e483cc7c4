package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwkit/cwkit-go/cw"
)

type testAddrs struct {
	api    cw.Bech32Api
	admin  cw.Addr
	worker cw.Addr
	alice  cw.Addr
	bob    cw.Addr
	sender cw.Addr
}

func newTestAddrs() testAddrs {
	api := cw.MockApi()
	return testAddrs{
		api:    api,
		admin:  api.AddrMake("admin"),
		worker: api.AddrMake("worker"),
		alice:  api.AddrMake("alice"),
		bob:    api.AddrMake("bob"),
		sender: api.AddrMake("sender"),
	}
}

func (x testAddrs) workerPtr() *string {
	s := string(x.worker)
	return &s
}

func strs(addrs ...cw.Addr) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = string(a)
	}
	return out
}

func TestSimple(t *testing.T) {
	x := newTestAddrs()

	require.NoError(t, Simple(x.admin).Assert(x.admin))
	assert.ErrorIs(t, Simple(x.admin).Assert(x.sender), ErrUnauthorized)
}

func TestOptional(t *testing.T) {
	x := newTestAddrs()

	a, err := Optional(x.api, x.workerPtr())
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.worker))
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)

	unset, err := Optional(x.api, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, unset.Assert(x.worker), ErrUnauthorized)
	assert.ErrorIs(t, unset.Assert(""), ErrUnauthorized)
}

func TestSpecified(t *testing.T) {
	x := newTestAddrs()

	a, err := Specified(x.api, strs(x.alice, x.sender))
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.sender))

	a, err = Specified(x.api, strs(x.alice, x.bob))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)
}

func TestSimpleOptional(t *testing.T) {
	x := newTestAddrs()

	a, err := SimpleOptional(x.api, x.admin, x.workerPtr())
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.admin))
	require.NoError(t, a.Assert(x.worker))
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)
}

func TestSimpleSpecified(t *testing.T) {
	x := newTestAddrs()

	a, err := SimpleSpecified(x.api, x.admin, strs(x.alice, x.sender))
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.admin))
	require.NoError(t, a.Assert(x.sender))

	a, err = SimpleSpecified(x.api, x.admin, strs(x.alice, x.bob))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)
}

func TestOptionalSpecified(t *testing.T) {
	x := newTestAddrs()

	a, err := OptionalSpecified(x.api, x.workerPtr(), strs(x.alice, x.sender))
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.worker))
	require.NoError(t, a.Assert(x.sender))

	a, err = OptionalSpecified(x.api, x.workerPtr(), strs(x.alice, x.bob))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)
}

func TestSimpleOptionalSpecified(t *testing.T) {
	x := newTestAddrs()

	a, err := SimpleOptionalSpecified(x.api, x.admin, x.workerPtr(), strs(x.alice, x.sender))
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.admin))
	require.NoError(t, a.Assert(x.worker))
	require.NoError(t, a.Assert(x.sender))

	a, err = SimpleOptionalSpecified(x.api, x.admin, x.workerPtr(), strs(x.alice, x.bob))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)
}

func TestExcluded(t *testing.T) {
	x := newTestAddrs()

	a, err := Excluded(x.api, strs(x.alice, x.bob))
	require.NoError(t, err)
	require.NoError(t, a.Assert(x.sender))

	a, err = Excluded(x.api, strs(x.alice, x.sender))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Assert(x.sender), ErrUnauthorized)
}

func TestConstructors_RejectInvalidAddresses(t *testing.T) {
	x := newTestAddrs()
	bad := "not-an-address"

	_, err := Optional(x.api, &bad)
	assert.ErrorIs(t, err, cw.ErrInvalidAddress)

	_, err = Specified(x.api, []string{string(x.alice), bad})
	assert.ErrorIs(t, err, cw.ErrInvalidAddress)

	_, err = SimpleOptionalSpecified(x.api, x.admin, nil, []string{bad})
	assert.ErrorIs(t, err, cw.ErrInvalidAddress)

	_, err = Excluded(x.api, []string{bad})
	assert.ErrorIs(t, err, cw.ErrInvalidAddress)
}

func TestAuth_JSON(t *testing.T) {
	x := newTestAddrs()

	simpleOptional, err := SimpleOptional(x.api, x.admin, nil)
	require.NoError(t, err)
	excluded, err := Excluded(x.api, strs(x.bob))
	require.NoError(t, err)
	sos, err := SimpleOptionalSpecified(x.api, x.admin, x.workerPtr(), strs(x.alice))
	require.NoError(t, err)

	tests := []struct {
		name string
		auth Auth
		want string
	}{
		{"simple", Simple(x.admin), `{"simple":"` + string(x.admin) + `"}`},
		{"simple optional", simpleOptional, `{"simple_optional":{"simple":"` + string(x.admin) + `","optional":null}}`},
		{"excluded", excluded, `{"excluded":["` + string(x.bob) + `"]}`},
		{
			"simple optional specified", sos,
			`{"simple_optional_specified":{"simple":"` + string(x.admin) + `","optional":"` + string(x.worker) + `","list":["` + string(x.alice) + `"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.auth)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var decoded Auth
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.auth.Kind(), decoded.Kind())
			assert.Equal(t, tt.auth.allows(x.admin), decoded.allows(x.admin))
			assert.Equal(t, tt.auth.allows(x.worker), decoded.allows(x.worker))
			assert.Equal(t, tt.auth.allows(x.alice), decoded.allows(x.alice))
			assert.Equal(t, tt.auth.allows(x.bob), decoded.allows(x.bob))
		})
	}
}

func TestAuth_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an object", `"simple"`},
		{"no variant", `{}`},
		{"two variants", `{"simple":"a","excluded":[]}`},
		{"unknown variant", `{"everyone":null}`},
		{"wrong payload", `{"specified":"a"}`},
		{"unknown field", `{"simple_specified":{"simple":"a","list":[],"extra":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Auth
			assert.ErrorIs(t, json.Unmarshal([]byte(tt.data), &a), ErrInvalidAuth)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "optional_specified", KindOptionalSpecified.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
