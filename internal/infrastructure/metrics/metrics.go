package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AffiliateMetrics holds the prometheus collectors for the attribution and
// ledger pipeline.
type AffiliateMetrics struct {
	ClicksTrackedTotal  prometheus.CounterVec
	ClicksRejectedTotal prometheus.CounterVec

	ConversionsRecordedTotal  prometheus.CounterVec
	ConversionsDuplicateTotal prometheus.CounterVec
	ConversionsNoCommission   prometheus.CounterVec

	CommissionsCreatedTotal       prometheus.CounterVec
	CommissionsCreatedAmountTotal prometheus.CounterVec
	CommissionsApprovedTotal      prometheus.CounterVec

	PayoutsCreatedTotal    prometheus.CounterVec
	PayoutsPaidTotal       prometheus.CounterVec
	PayoutsCancelledTotal  prometheus.CounterVec
	PayoutsPaidAmountTotal prometheus.CounterVec
	TransferFailuresTotal  prometheus.CounterVec
}

func NewAffiliateMetrics() *AffiliateMetrics {
	return &AffiliateMetrics{
		ClicksTrackedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_clicks_tracked_total",
				Help: "Clicks recorded against an active affiliate link",
			},
			[]string{"partner_id", "platform"},
		),

		ClicksRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_clicks_rejected_total",
				Help: "Clicks swallowed because of a bad or inactive code",
			},
			[]string{"reason"},
		),

		ConversionsRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_conversions_recorded_total",
				Help: "Conversion events that produced a new referral",
			},
			[]string{"platform", "event_type"},
		),

		ConversionsDuplicateTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_conversions_duplicate_total",
				Help: "Conversion events deduplicated by the idempotency key",
			},
			[]string{"platform", "event_type"},
		),

		ConversionsNoCommission: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_conversions_no_commission_total",
				Help: "Referrals recorded without a commission (window missed, zero rate)",
			},
			[]string{"platform", "event_type", "reason"},
		),

		CommissionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_commissions_created_total",
				Help: "Commission ledger entries created",
			},
			[]string{"partner_id", "type"},
		),

		CommissionsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_commissions_created_amount_total",
				Help: "Total USD amount of created commissions",
			},
			[]string{"partner_id", "type"},
		),

		CommissionsApprovedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_commissions_approved_total",
				Help: "Commissions approved by an operator",
			},
			[]string{"partner_id"},
		),

		PayoutsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_payouts_created_total",
				Help: "Payout batches created",
			},
			[]string{"partner_id"},
		),

		PayoutsPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_payouts_paid_total",
				Help: "Payouts marked paid (transfer or manual)",
			},
			[]string{"partner_id", "method"},
		),

		PayoutsCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_payouts_cancelled_total",
				Help: "Pending payouts cancelled and unlinked",
			},
			[]string{"partner_id"},
		),

		PayoutsPaidAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_payouts_paid_amount_total",
				Help: "Total USD amount of paid payouts",
			},
			[]string{"partner_id", "method"},
		),

		TransferFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliate_transfer_failures_total",
				Help: "External transfer calls that failed",
			},
			[]string{"partner_id"},
		),
	}
}
