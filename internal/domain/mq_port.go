package domain

type Message struct {
	Key   []byte
	Value []byte
}

type EventPublisher interface {
	Publish(topic string, msgs ...Message) error
}

// LedgerEventPublisher notifies downstream consumers (dashboards, email) of
// ledger movement. Publishing is best-effort: a broker failure never rolls
// back a committed ledger write.
type LedgerEventPublisher interface {
	PublishCommissionCreated(commission *Commission) error
	PublishPayoutPaid(payout *Payout) error
}
