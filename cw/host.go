package cw

import (
	"fmt"

	"github.com/cwkit/cwkit-go/internal/codec"
)

// HostVersion is the major version of the host SDK a contract is built for.
type HostVersion int

const (
	HostV1 HostVersion = 1
	HostV2 HostVersion = 2
)

func (v HostVersion) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// Codec encodes structured values the way the host does.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Host is the set of host environment facts that version-independent code
// depends on.
type Host interface {
	Version() HostVersion
	// BlockTime returns the current block time.
	BlockTime() Timestamp
	AddrValidate(human string) (Addr, error)
	Codec() Codec
	// AnyMsg wraps an encoded protobuf message in the passthrough message
	// the host version understands.
	AnyMsg(typeURL string, value []byte) CosmosMsg
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return codec.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return codec.Unmarshal(data, v)
}

type host struct {
	version HostVersion
	env     Env
	api     Api
}

// NewHost creates a Host for the given SDK version.
func NewHost(version HostVersion, env Env, api Api) (Host, error) {
	switch version {
	case HostV1, HostV2:
		return &host{version: version, env: env, api: api}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedHost, int(version))
	}
}

// NewHostV1 adapts env and api to a v1 host, which dispatches protobuf
// messages as stargate messages.
func NewHostV1(env Env, api Api) Host {
	return &host{version: HostV1, env: env, api: api}
}

// NewHostV2 adapts env and api to a v2 host, which dispatches protobuf
// messages as any messages.
func NewHostV2(env Env, api Api) Host {
	return &host{version: HostV2, env: env, api: api}
}

func (h *host) Version() HostVersion {
	return h.version
}

func (h *host) BlockTime() Timestamp {
	return h.env.Block.Time
}

func (h *host) AddrValidate(human string) (Addr, error) {
	return h.api.AddrValidate(human)
}

func (h *host) Codec() Codec {
	return jsonCodec{}
}

func (h *host) AnyMsg(typeURL string, value []byte) CosmosMsg {
	if h.version == HostV1 {
		return CosmosMsg{Stargate: &StargateMsg{TypeURL: typeURL, Value: value}}
	}
	return CosmosMsg{Any: &AnyMsg{TypeURL: typeURL, Value: value}}
}
