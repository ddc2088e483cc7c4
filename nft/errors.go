package nft

import "errors"

var (
	ErrNftNotFound             = errors.New("nft isn't found")
	ErrCollectionNotFound      = errors.New("collection isn't found")
	ErrEmptyTokenList          = errors.New("empty token list")
	ErrEmptyCollectionList     = errors.New("empty collection list")
	ErrNftDuplication          = errors.New("nft is already added")
	ErrCollectionDuplication   = errors.New("collection already exists")
	ErrIncorrectTokenList      = errors.New("incorrect token list")
	ErrIncorrectCollectionList = errors.New("incorrect collection list")
	ErrExceededTokenLimit      = errors.New("max token amount per tx is exceeded")
	ErrCollectionNotAdded      = errors.New("collection isn't added")
	ErrInvalidExpiration       = errors.New("invalid expiration")
)
