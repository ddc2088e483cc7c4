package cw

import (
	"errors"
	"fmt"

	"github.com/cwkit/cwkit-go/internal/codec"
)

// Storage is the contract key-value store. dbm.DB from
// github.com/cometbft/cometbft-db satisfies it.
type Storage interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Item is a typed value stored under a single key.
type Item[T any] struct {
	key []byte
}

// NewItem creates an Item stored under namespace.
func NewItem[T any](namespace string) Item[T] {
	return Item[T]{key: []byte(namespace)}
}

// Key returns the storage key.
func (i Item[T]) Key() []byte {
	return i.key
}

// Load reads the value. It returns ErrNotFound if the slot is empty.
func (i Item[T]) Load(store Storage) (T, error) {
	var v T

	data, err := store.Get(i.key)
	if err != nil {
		return v, fmt.Errorf("load %s: %w", i.key, err)
	}
	if data == nil {
		return v, fmt.Errorf("load %s: %w", i.key, ErrNotFound)
	}

	if err := codec.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("load %s: %w", i.key, err)
	}
	return v, nil
}

// MayLoad reads the value, returning nil if the slot is empty.
func (i Item[T]) MayLoad(store Storage) (*T, error) {
	v, err := i.Load(store)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// Exists reports whether the slot holds a value.
func (i Item[T]) Exists(store Storage) (bool, error) {
	return store.Has(i.key)
}

// Save writes the value.
func (i Item[T]) Save(store Storage, v T) error {
	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", i.key, err)
	}
	if err := store.Set(i.key, data); err != nil {
		return fmt.Errorf("save %s: %w", i.key, err)
	}
	return nil
}

// Update loads the value, applies fn and saves the result. The slot must
// not be empty. If fn fails nothing is written.
func (i Item[T]) Update(store Storage, fn func(T) (T, error)) (T, error) {
	v, err := i.Load(store)
	if err != nil {
		return v, err
	}

	v, err = fn(v)
	if err != nil {
		return v, err
	}

	return v, i.Save(store, v)
}

// Remove deletes the value. Removing an empty slot is not an error.
func (i Item[T]) Remove(store Storage) error {
	if err := store.Delete(i.key); err != nil {
		return fmt.Errorf("remove %s: %w", i.key, err)
	}
	return nil
}
