package cw

import (
	"errors"
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwkit/cwkit-go/internal/codec"
)

type config struct {
	Owner Addr    `json:"owner"`
	Limit Uint128 `json:"limit"`
}

func TestItem_SaveLoad(t *testing.T) {
	store := dbm.NewMemDB()
	item := NewItem[config]("config")

	_, err := item.Load(store)
	assert.ErrorIs(t, err, ErrNotFound)

	loaded, err := item.MayLoad(store)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	exists, err := item.Exists(store)
	require.NoError(t, err)
	assert.False(t, exists)

	want := config{Owner: "cosmwasm1owner", Limit: NewUint128(10)}
	require.NoError(t, item.Save(store, want))

	got, err := item.Load(store)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	loaded, err = item.MayLoad(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, want, *loaded)

	raw, err := store.Get([]byte("config"))
	require.NoError(t, err)
	assert.Equal(t, `{"owner":"cosmwasm1owner","limit":"10"}`, string(raw))
}

func TestItem_Update(t *testing.T) {
	store := dbm.NewMemDB()
	item := NewItem[config]("config")

	_, err := item.Update(store, func(c config) (config, error) { return c, nil })
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, item.Save(store, config{Owner: "a", Limit: NewUint128(1)}))

	updated, err := item.Update(store, func(c config) (config, error) {
		c.Limit = NewUint128(2)
		return c, nil
	})
	require.NoError(t, err)
	assert.Equal(t, NewUint128(2), updated.Limit)

	errBoom := errors.New("boom")
	_, err = item.Update(store, func(c config) (config, error) {
		c.Limit = NewUint128(3)
		return c, errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	got, err := item.Load(store)
	require.NoError(t, err)
	assert.Equal(t, NewUint128(2), got.Limit)
}

func TestItem_Remove(t *testing.T) {
	store := dbm.NewMemDB()
	item := NewItem[uint64]("counter")

	require.NoError(t, item.Remove(store))
	require.NoError(t, item.Save(store, 5))
	require.NoError(t, item.Remove(store))

	_, err := item.Load(store)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []byte("counter"), item.Key())
}

func TestItem_CorruptValue(t *testing.T) {
	store := dbm.NewMemDB()
	require.NoError(t, store.Set([]byte("config"), []byte(`{"owner":"a","extra":1}`)))

	_, err := NewItem[config]("config").Load(store)
	assert.ErrorIs(t, err, codec.ErrInvalidJSON)
}
