package nft

import "github.com/cwkit/cwkit-go/cw"

// ExecuteMsg is the cw721 execute message. Exactly one field is set.
type ExecuteMsg struct {
	TransferNft *TransferNftMsg `json:"transfer_nft,omitempty"`
	Approve     *ApproveMsg     `json:"approve,omitempty"`
	Revoke      *RevokeMsg      `json:"revoke,omitempty"`
	ApproveAll  *ApproveAllMsg  `json:"approve_all,omitempty"`
	RevokeAll   *RevokeAllMsg   `json:"revoke_all,omitempty"`
	Mint        *MintMsg        `json:"mint,omitempty"`
	Burn        *BurnMsg        `json:"burn,omitempty"`
}

// TransferNftMsg moves a token without triggering any receiver hook.
type TransferNftMsg struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

type ApproveMsg struct {
	Spender string      `json:"spender"`
	TokenID string      `json:"token_id"`
	Expires *Expiration `json:"expires"`
}

type RevokeMsg struct {
	Spender string `json:"spender"`
	TokenID string `json:"token_id"`
}

// ApproveAllMsg lets operator move every token of the owner.
type ApproveAllMsg struct {
	Operator string      `json:"operator"`
	Expires  *Expiration `json:"expires"`
}

type RevokeAllMsg struct {
	Operator string `json:"operator"`
}

// MintMsg creates a token. Only the collection minter may send it.
type MintMsg struct {
	TokenID  string  `json:"token_id"`
	Owner    string  `json:"owner"`
	TokenURI *string `json:"token_uri"`
}

type BurnMsg struct {
	TokenID string `json:"token_id"`
}

// QueryMsg is the cw721 query message. Exactly one field is set.
type QueryMsg struct {
	Approval     *ApprovalQuery     `json:"approval,omitempty"`
	Approvals    *ApprovalsQuery    `json:"approvals,omitempty"`
	Operator     *OperatorQuery     `json:"operator,omitempty"`
	AllOperators *AllOperatorsQuery `json:"all_operators,omitempty"`
	Tokens       *TokensQuery       `json:"tokens,omitempty"`
	AllTokens    *AllTokensQuery    `json:"all_tokens,omitempty"`
}

type ApprovalQuery struct {
	TokenID        string `json:"token_id"`
	Spender        string `json:"spender"`
	IncludeExpired *bool  `json:"include_expired"`
}

type ApprovalsQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired"`
}

type OperatorQuery struct {
	Owner          string `json:"owner"`
	Operator       string `json:"operator"`
	IncludeExpired *bool  `json:"include_expired"`
}

// AllOperatorsQuery lists operators of owner. Expired entries are skipped
// unless IncludeExpired is true.
type AllOperatorsQuery struct {
	Owner          string  `json:"owner"`
	IncludeExpired *bool   `json:"include_expired"`
	StartAfter     *string `json:"start_after"`
	Limit          *uint32 `json:"limit"`
}

// TokensQuery lists the tokens of owner in lexicographical order.
type TokensQuery struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

type AllTokensQuery struct {
	StartAfter *string `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

// Approval grants Spender rights until Expires.
type Approval struct {
	Spender cw.Addr    `json:"spender"`
	Expires Expiration `json:"expires"`
}

type ApprovalResponse struct {
	Approval Approval `json:"approval"`
}

type ApprovalsResponse struct {
	Approvals []Approval `json:"approvals"`
}

type OperatorResponse struct {
	Approval Approval `json:"approval"`
}

type OperatorsResponse struct {
	Operators []Approval `json:"operators"`
}

// TokensResponse holds token ids in lexicographical order. A full page
// means more may follow after the last id.
type TokensResponse struct {
	Tokens []string `json:"tokens"`
}
