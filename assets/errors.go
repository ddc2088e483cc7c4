package assets

import "errors"

var (
	ErrAssetNotFound         = errors.New("asset not found")
	ErrWrongFundsCombination = errors.New("wrong funds combination")
	ErrWrongActionType       = errors.New("wrong action type")
	ErrZeroCoins             = errors.New("coins amount is zero")
	ErrNonSingleDenom        = errors.New("amount of denoms is not 1")
	ErrShouldNotAcceptFunds  = errors.New("message does not accept funds")
	ErrInvalidToken          = errors.New("invalid token")
)
