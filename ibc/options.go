package ibc

// DefaultPort is the ICS-20 transfer port.
const DefaultPort = "transfer"

// Height is an IBC client height.
type Height struct {
	RevisionNumber uint64 `json:"revision_number"`
	RevisionHeight uint64 `json:"revision_height"`
}

type transferConfig struct {
	port          string
	memo          string
	timeoutHeight Height
}

// TransferOption configures a transfer message.
type TransferOption func(*transferConfig)

// WithPort sets the source port. The default is DefaultPort.
func WithPort(port string) TransferOption {
	return func(c *transferConfig) {
		c.port = port
	}
}

// WithMemo sets the transfer memo, usually the output of Memo.Encode.
func WithMemo(memo string) TransferOption {
	return func(c *transferConfig) {
		c.memo = memo
	}
}

// WithTimeoutHeight sets a timeout height in addition to the timeout
// timestamp. By default only the timestamp applies.
func WithTimeoutHeight(h Height) TransferOption {
	return func(c *transferConfig) {
		c.timeoutHeight = h
	}
}

func newTransferConfig(opts []TransferOption) *transferConfig {
	c := &transferConfig{port: DefaultPort}
	for _, opt := range opts {
		opt(c)
	}
	if c.port == "" {
		c.port = DefaultPort
	}
	return c
}
