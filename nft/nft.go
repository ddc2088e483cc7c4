// Package nft builds cw721 messages and checks token ownership through
// contract queries.
package nft

import (
	"fmt"
	"slices"

	"github.com/go-kit/log/level"

	"github.com/cwkit/cwkit-go/cw"
)

const (
	// TokensPageLimit is the page size of tokens queries.
	TokensPageLimit = 100

	// MaxTokensPages bounds how many pages CheckTokensHolder fetches.
	MaxTokensPages = 50
)

// CheckTokensHolder returns ErrNftNotFound unless holder owns every token in
// tokenIDs. Ownership is read from collection page by page. At most
// MaxTokensPages pages are read, so tokens beyond that are never found.
func CheckTokensHolder(deps cw.Deps, holder cw.Addr, collection string, tokenIDs []string) error {
	logger := deps.Log()
	limit := uint32(TokensPageLimit)

	var (
		owned      []string
		startAfter *string
	)
	for page := 0; page < MaxTokensPages; page++ {
		resp, err := cw.QuerySmart[TokensResponse](deps.Querier, collection, QueryMsg{
			Tokens: &TokensQuery{
				Owner:      string(holder),
				StartAfter: startAfter,
				Limit:      &limit,
			},
		})
		if err != nil {
			return err
		}

		level.Debug(logger).Log("msg", "fetched tokens page", "collection", collection, "owner", holder, "page", page, "tokens", len(resp.Tokens))

		owned = append(owned, resp.Tokens...)
		if len(resp.Tokens) != TokensPageLimit {
			break
		}
		last := resp.Tokens[len(resp.Tokens)-1]
		startAfter = &last
	}

	for _, id := range tokenIDs {
		if !slices.Contains(owned, id) {
			return fmt.Errorf("%w: %s in %s", ErrNftNotFound, id, collection)
		}
	}
	return nil
}

// GetCw721ApproveAllMsgs returns approve_all messages granting operator
// access to the tokens of owner in each collection. Collections where
// operator is already listed are skipped, as are repeated collections.
func GetCw721ApproveAllMsgs(querier cw.Querier, collections []string, owner, operator string) ([]cw.CosmosMsg, error) {
	var msgs []cw.CosmosMsg

	for _, collection := range cw.Unique(collections) {
		resp, err := cw.QuerySmart[OperatorsResponse](querier, collection, QueryMsg{
			AllOperators: &AllOperatorsQuery{Owner: owner},
		})
		if err != nil {
			return nil, err
		}

		approved := slices.ContainsFunc(resp.Operators, func(a Approval) bool {
			return string(a.Spender) == operator
		})
		if approved {
			continue
		}

		msg, err := execute(collection, ExecuteMsg{
			ApproveAll: &ApproveAllMsg{Operator: operator},
		})
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

// GetCw721TransferMsg moves tokenID in collection to recipient.
func GetCw721TransferMsg(collection, recipient, tokenID string) (cw.CosmosMsg, error) {
	return execute(collection, ExecuteMsg{
		TransferNft: &TransferNftMsg{Recipient: recipient, TokenID: tokenID},
	})
}

// GetCw721MintMsg mints tokenID in collection to recipient without a token URI.
func GetCw721MintMsg(collection, recipient, tokenID string) (cw.CosmosMsg, error) {
	return execute(collection, ExecuteMsg{
		Mint: &MintMsg{TokenID: tokenID, Owner: recipient},
	})
}

// GetCw721BurnMsg burns tokenID in collection.
func GetCw721BurnMsg(collection, tokenID string) (cw.CosmosMsg, error) {
	return execute(collection, ExecuteMsg{
		Burn: &BurnMsg{TokenID: tokenID},
	})
}

func execute(collection string, msg ExecuteMsg) (cw.CosmosMsg, error) {
	wasm, err := cw.WasmExecute(collection, msg, nil)
	if err != nil {
		return cw.CosmosMsg{}, err
	}
	return wasm.ToCosmosMsg(), nil
}
