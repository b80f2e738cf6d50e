package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// auction lifecycle errors
	ErrItemNotFound       = errors.New("unknown item")
	ErrAuctionClosed      = errors.New("auction closed")
	ErrAuctionStillOpen   = errors.New("auction still open")
	ErrAlreadySettled     = errors.New("auction already settled")
	ErrBidTooLow          = errors.New("bid not higher than current highest bid")
	ErrBelowMinPrice      = errors.New("bid below minimum price")
	ErrIsHighestBidder    = errors.New("highest bidder cannot withdraw")
	ErrNothingToWithdraw  = errors.New("nothing to withdraw")
	ErrListingFeeMismatch = errors.New("listing fee mismatch")
)
