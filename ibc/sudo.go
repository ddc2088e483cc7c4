package ibc

import (
	"errors"
	"fmt"

	"github.com/cwkit/cwkit-go/internal/codec"
)

// ErrInvalidSudoMsg is returned when a sudo message cannot be decoded.
var ErrInvalidSudoMsg = errors.New("invalid sudo message")

// SudoMsg is the callback Neutron delivers to a contract through sudo.
// Exactly one field is set.
type SudoMsg struct {
	Response      *SudoResponse      `json:"response,omitempty"`
	Error         *SudoError         `json:"error,omitempty"`
	Timeout       *SudoTimeout       `json:"timeout,omitempty"`
	OpenAck       *SudoOpenAck       `json:"open_ack,omitempty"`
	TxQueryResult *SudoTxQueryResult `json:"tx_query_result,omitempty"`
	KVQueryResult *SudoKVQueryResult `json:"kv_query_result,omitempty"`
}

// SudoResponse reports a successfully acknowledged packet.
type SudoResponse struct {
	Request RequestPacket `json:"request"`
	Data    []byte        `json:"data"`
}

// SudoError reports a packet acknowledged with an error.
type SudoError struct {
	Request RequestPacket `json:"request"`
	Details string        `json:"details"`
}

// SudoTimeout reports a packet that timed out.
type SudoTimeout struct {
	Request RequestPacket `json:"request"`
}

// SudoOpenAck reports an opened interchain account channel.
type SudoOpenAck struct {
	PortID                string `json:"port_id"`
	ChannelID             string `json:"channel_id"`
	CounterpartyChannelID string `json:"counterparty_channel_id"`
	CounterpartyVersion   string `json:"counterparty_version"`
}

// SudoTxQueryResult delivers a transaction matched by an interchain query.
type SudoTxQueryResult struct {
	QueryID uint64 `json:"query_id"`
	Height  Height `json:"height"`
	Data    []byte `json:"data"`
}

// SudoKVQueryResult signals that a key-value interchain query was updated.
type SudoKVQueryResult struct {
	QueryID uint64 `json:"query_id"`
}

// RequestPacket is the packet a sudo callback refers to. Every field is
// optional.
type RequestPacket struct {
	Sequence           *uint64       `json:"sequence"`
	SourcePort         *string       `json:"source_port"`
	SourceChannel      *string       `json:"source_channel"`
	DestinationPort    *string       `json:"destination_port"`
	DestinationChannel *string       `json:"destination_channel"`
	Data               []byte        `json:"data"`
	TimeoutHeight      *PacketHeight `json:"timeout_height"`
	TimeoutTimestamp   *uint64       `json:"timeout_timestamp"`
}

// PacketHeight is the timeout height of a RequestPacket.
type PacketHeight struct {
	RevisionNumber *uint64 `json:"revision_number"`
	RevisionHeight *uint64 `json:"revision_height"`
}

// ParseSudoMsg decodes a sudo callback.
func ParseSudoMsg(data []byte) (SudoMsg, error) {
	var msg SudoMsg
	if err := codec.Unmarshal(data, &msg); err != nil {
		return SudoMsg{}, fmt.Errorf("%w: %v", ErrInvalidSudoMsg, err)
	}
	if n := msg.variants(); n != 1 {
		return SudoMsg{}, fmt.Errorf("%w: %d variants set", ErrInvalidSudoMsg, n)
	}
	return msg, nil
}

func (m SudoMsg) variants() int {
	n := 0
	for _, set := range []bool{
		m.Response != nil,
		m.Error != nil,
		m.Timeout != nil,
		m.OpenAck != nil,
		m.TxQueryResult != nil,
		m.KVQueryResult != nil,
	} {
		if set {
			n++
		}
	}
	return n
}
