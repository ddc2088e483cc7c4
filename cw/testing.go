package cw

import (
	dbm "github.com/cometbft/cometbft-db"
	"github.com/go-kit/log"
)

// Defaults used by the mock constructors.
const (
	MockBech32Prefix  = "cosmwasm"
	MockChainID       = "cosmos-testnet-14002"
	MockHeight        = 12_345
	MockContractLabel = "cosmos2contract"

	MockBlockTime Timestamp = 1_571_797_419_879_305_533
)

type mockConfig struct {
	blockTime Timestamp
	prefix    string
	version   HostVersion
	querier   Querier
	logger    log.Logger
}

// MockOption configures the mock constructors.
type MockOption func(*mockConfig)

// WithBlockTime sets the block time of the mocked Env.
func WithBlockTime(t Timestamp) MockOption {
	return func(c *mockConfig) {
		c.blockTime = t
	}
}

// WithBech32Prefix sets the address prefix of the mocked Api.
func WithBech32Prefix(prefix string) MockOption {
	return func(c *mockConfig) {
		c.prefix = prefix
	}
}

// WithHostVersion selects the host adapter returned by MockHost.
func WithHostVersion(v HostVersion) MockOption {
	return func(c *mockConfig) {
		c.version = v
	}
}

// WithQuerier sets the querier of the mocked Deps.
func WithQuerier(q Querier) MockOption {
	return func(c *mockConfig) {
		c.querier = q
	}
}

// WithLogger sets the logger of the mocked Deps.
func WithLogger(logger log.Logger) MockOption {
	return func(c *mockConfig) {
		c.logger = logger
	}
}

func newMockConfig(opts []MockOption) *mockConfig {
	c := &mockConfig{
		blockTime: MockBlockTime,
		prefix:    MockBech32Prefix,
		version:   HostV2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MockApi returns a bech32 Api using MockBech32Prefix unless overridden.
func MockApi(opts ...MockOption) Bech32Api {
	return NewBech32Api(newMockConfig(opts).prefix)
}

// MockEnv returns an Env with fixed height, time, chain id and contract address.
func MockEnv(opts ...MockOption) Env {
	c := newMockConfig(opts)
	return Env{
		Block: BlockInfo{
			Height:  MockHeight,
			Time:    c.blockTime,
			ChainID: MockChainID,
		},
		Transaction: &TransactionInfo{Index: 3},
		Contract: ContractInfo{
			Address: NewBech32Api(c.prefix).AddrMake(MockContractLabel),
		},
	}
}

// MockDeps returns Deps backed by an in-memory database, a bech32 Api, an
// empty MockQuerier and a no-op logger.
func MockDeps(opts ...MockOption) Deps {
	c := newMockConfig(opts)

	querier := c.querier
	if querier == nil {
		querier = NewMockQuerier()
	}
	logger := c.logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return Deps{
		Storage: dbm.NewMemDB(),
		Api:     NewBech32Api(c.prefix),
		Querier: querier,
		Logger:  logger,
	}
}

// MockInfo returns MessageInfo for sender with the given funds.
func MockInfo(sender Addr, funds []Coin) MessageInfo {
	if funds == nil {
		funds = []Coin{}
	}
	return MessageInfo{Sender: sender, Funds: funds}
}

// MockHost returns a Host over MockEnv and MockApi.
func MockHost(opts ...MockOption) Host {
	c := newMockConfig(opts)
	env := MockEnv(opts...)
	api := NewBech32Api(c.prefix)

	if c.version == HostV1 {
		return NewHostV1(env, api)
	}
	return NewHostV2(env, api)
}
