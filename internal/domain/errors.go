package domain

import "errors"

var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrDuplicateEvent        = errors.New("conversion event already processed")
	ErrPartnerInactive       = errors.New("partner is not active")
	ErrLinkInactive          = errors.New("affiliate link is not active")
	ErrCodeTaken             = errors.New("referral code already taken")
	ErrCommissionLocked      = errors.New("commission is linked to a payout")
	ErrCommissionPaid        = errors.New("commission is already paid")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrNoEligibleCommissions = errors.New("no eligible commissions for payout")
	ErrPayoutNotPending      = errors.New("payout is not pending")
	ErrPayoutAlreadyPaid     = errors.New("payout is already paid")
	ErrNoTransferDestination = errors.New("partner has no transfer destination")
	ErrTransferFailed        = errors.New("external transfer failed")
)
