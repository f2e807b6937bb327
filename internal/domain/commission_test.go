package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionCommission(t *testing.T) {
	assert.True(t, CanTransitionCommission(CommissionPending, CommissionApproved))

	// PAID is only reachable through the payout cascade, never directly
	assert.False(t, CanTransitionCommission(CommissionPending, CommissionPaid))
	assert.False(t, CanTransitionCommission(CommissionApproved, CommissionPaid))
	assert.False(t, CanTransitionCommission(CommissionApproved, CommissionPending))
	assert.False(t, CanTransitionCommission(CommissionPaid, CommissionPending))
	assert.False(t, CanTransitionCommission(CommissionPaid, CommissionApproved))
}

func TestCommissionLocked(t *testing.T) {
	commission := Commission{}
	assert.False(t, commission.Locked())

	payoutID := "payout-1"
	commission.PayoutID = &payoutID
	assert.True(t, commission.Locked())

	empty := ""
	commission.PayoutID = &empty
	assert.False(t, commission.Locked())
}
