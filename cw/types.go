package cw

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Addr is a validated, human-readable address.
type Addr string

func (a Addr) String() string {
	return string(a)
}

// Timestamp is a point in time with nanosecond precision since the Unix
// epoch. It encodes as a decimal string of nanoseconds.
type Timestamp uint64

// FromNanos creates a Timestamp from nanoseconds since the epoch.
func FromNanos(nanos uint64) Timestamp {
	return Timestamp(nanos)
}

// FromSeconds creates a Timestamp from seconds since the epoch.
func FromSeconds(seconds uint64) Timestamp {
	return Timestamp(seconds * 1_000_000_000)
}

// Nanos returns the number of nanoseconds since the epoch.
func (t Timestamp) Nanos() uint64 {
	return uint64(t)
}

// Seconds returns the number of whole seconds since the epoch.
func (t Timestamp) Seconds() uint64 {
	return uint64(t) / 1_000_000_000
}

// SubsecNanos returns the nanoseconds past the last whole second.
func (t Timestamp) SubsecNanos() uint64 {
	return uint64(t) % 1_000_000_000
}

// PlusSeconds returns t advanced by the given number of seconds.
func (t Timestamp) PlusSeconds(seconds uint64) Timestamp {
	return t + FromSeconds(seconds)
}

// PlusNanos returns t advanced by the given number of nanoseconds.
func (t Timestamp) PlusNanos(nanos uint64) Timestamp {
	return t + Timestamp(nanos)
}

// MinusSeconds returns t moved back by the given number of seconds.
func (t Timestamp) MinusSeconds(seconds uint64) Timestamp {
	return t - FromSeconds(seconds)
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.Seconds(), t.SubsecNanos())
}

// MarshalJSON encodes the nanoseconds as a decimal string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(t), 10))
}

// UnmarshalJSON accepts only a decimal string of nanoseconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	nanos, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: timestamp %q", ErrInvalidNumber, s)
	}

	*t = Timestamp(nanos)
	return nil
}

// BlockInfo describes the block a message is executed in.
type BlockInfo struct {
	Height  uint64    `json:"height"`
	Time    Timestamp `json:"time"`
	ChainID string    `json:"chain_id"`
}

// TransactionInfo is present when a message is executed inside a transaction.
type TransactionInfo struct {
	Index uint32 `json:"index"`
}

// ContractInfo identifies the executing contract.
type ContractInfo struct {
	Address Addr `json:"address"`
}

// Env is the execution environment passed to every entry point.
type Env struct {
	Block       BlockInfo        `json:"block"`
	Transaction *TransactionInfo `json:"transaction,omitempty"`
	Contract    ContractInfo     `json:"contract"`
}

// MessageInfo carries the sender and the funds attached to a message.
type MessageInfo struct {
	Sender Addr   `json:"sender"`
	Funds  []Coin `json:"funds"`
}

// Coin is an amount of a native denomination.
type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}

// NewCoin creates a coin.
func NewCoin(amount uint64, denom string) Coin {
	return Coin{Denom: denom, Amount: NewUint128(amount)}
}

// Coins returns a single-element coin list.
func Coins(amount Uint128, denom string) []Coin {
	return []Coin{{Denom: denom, Amount: amount}}
}

func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// GetBlockTime returns the block time of env in whole seconds.
func GetBlockTime(env Env) uint64 {
	return env.Block.Time.Seconds()
}
