package ibc

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/cwkit/cwkit-go/cw"
)

// Type URLs of the transfer messages.
const (
	MsgTransferTypeURL        = "/ibc.applications.transfer.v1.MsgTransfer"
	NeutronMsgTransferTypeURL = "/neutron.transfer.MsgTransfer"
)

// MsgTransfer field numbers.
const (
	fieldSourcePort       protowire.Number = 1
	fieldSourceChannel    protowire.Number = 2
	fieldToken            protowire.Number = 3
	fieldSender           protowire.Number = 4
	fieldReceiver         protowire.Number = 5
	fieldTimeoutHeight    protowire.Number = 6
	fieldTimeoutTimestamp protowire.Number = 7
	fieldMemo             protowire.Number = 8
	fieldFee              protowire.Number = 9
)

// GetTransferMsg sends amount of denom over channel from sender to receiver.
// The packet times out at timeoutNs nanoseconds since the epoch.
func GetTransferMsg(host cw.Host, channel, denom string, amount cw.Uint128, sender cw.Addr, receiver string, timeoutNs uint64, opts ...TransferOption) cw.CosmosMsg {
	c := newTransferConfig(opts)
	body := encodeMsgTransfer(c, channel, cw.Coin{Denom: denom, Amount: amount}, sender, receiver, timeoutNs)
	return host.AnyMsg(MsgTransferTypeURL, body)
}

// GetNeutronTransferMsg is GetTransferMsg for Neutron, which charges a
// relayer fee. refunderFee pays for both the ack and the timeout; no
// receive fee is paid.
func GetNeutronTransferMsg(host cw.Host, channel, denom string, amount cw.Uint128, sender cw.Addr, receiver string, timeoutNs uint64, refunderFee []cw.Coin, opts ...TransferOption) cw.CosmosMsg {
	c := newTransferConfig(opts)
	body := encodeMsgTransfer(c, channel, cw.Coin{Denom: denom, Amount: amount}, sender, receiver, timeoutNs)

	var fee []byte
	fee = appendRepeatedMessage(fee, 2, encodeCoins(refunderFee))
	fee = appendRepeatedMessage(fee, 3, encodeCoins(refunderFee))
	body = appendMessage(body, fieldFee, fee)

	return host.AnyMsg(NeutronMsgTransferTypeURL, body)
}

func encodeMsgTransfer(c *transferConfig, channel string, token cw.Coin, sender cw.Addr, receiver string, timeoutNs uint64) []byte {
	var b []byte
	b = appendString(b, fieldSourcePort, c.port)
	b = appendString(b, fieldSourceChannel, channel)
	b = appendMessage(b, fieldToken, encodeCoin(token))
	b = appendString(b, fieldSender, string(sender))
	b = appendString(b, fieldReceiver, receiver)
	b = appendMessage(b, fieldTimeoutHeight, encodeHeight(c.timeoutHeight))
	b = appendUint64(b, fieldTimeoutTimestamp, timeoutNs)
	b = appendString(b, fieldMemo, c.memo)
	return b
}

func encodeCoin(c cw.Coin) []byte {
	var b []byte
	b = appendString(b, 1, c.Denom)
	b = appendString(b, 2, c.Amount.String())
	return b
}

func encodeCoins(coins []cw.Coin) [][]byte {
	out := make([][]byte, len(coins))
	for i, c := range coins {
		out[i] = encodeCoin(c)
	}
	return out
}

func encodeHeight(h Height) []byte {
	var b []byte
	b = appendUint64(b, 1, h.RevisionNumber)
	b = appendUint64(b, 2, h.RevisionHeight)
	return b
}

// The append helpers skip proto3 default values, so zero numbers, empty
// strings and empty messages are not written.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	if len(msg) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendRepeatedMessage(b []byte, num protowire.Number, msgs [][]byte) []byte {
	for _, msg := range msgs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, msg)
	}
	return b
}
