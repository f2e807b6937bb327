package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	commissionTopic = "commission-events"
	payoutTopic     = "payout-events"
)

// DefaultLedgerPublisher pushes ledger movement onto Kafka for the partner
// dashboard and email consumers. Keyed by partner id so one partner's events
// stay ordered.
type DefaultLedgerPublisher struct {
	writer *kafka.Writer
}

func NewDefaultLedgerPublisher(brokers []string) *DefaultLedgerPublisher {
	return &DefaultLedgerPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultLedgerPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultLedgerPublisher) PublishCommissionCreated(commission *domain.Commission) error {
	v, err := json.Marshal(CommissionEvent{
		CommissionID: commission.ID,
		ReferralID:   commission.ReferralID,
		PartnerID:    commission.PartnerID,
		Type:         string(commission.Type),
		Amount:       commission.Amount,
		Status:       string(commission.Status),
	})
	if err != nil {
		return err
	}

	return k.Publish(commissionTopic, domain.Message{Key: []byte(commission.PartnerID), Value: v})
}

func (k *DefaultLedgerPublisher) PublishPayoutPaid(payout *domain.Payout) error {
	v, err := json.Marshal(PayoutEvent{
		PayoutID:    payout.ID,
		PartnerID:   payout.PartnerID,
		Amount:      payout.Amount,
		Method:      string(payout.Method),
		TransferRef: payout.TransferRef,
	})
	if err != nil {
		return err
	}

	return k.Publish(payoutTopic, domain.Message{Key: []byte(payout.PartnerID), Value: v})
}

func (k *DefaultLedgerPublisher) Close() error {
	return k.writer.Close()
}
