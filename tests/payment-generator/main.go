package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jaswdr/faker"
	"github.com/segmentio/kafka-go"
)

type PaymentEvent struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	Reference     string `json:"reference,omitempty"`
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "payments", "payments topic")
	orders := flag.String("orders", "", "comma separated order ids to confirm; random ids when empty")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	var ids []string
	if *orders != "" {
		ids = strings.Split(*orders, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	fake := faker.New()
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			event := generatePaymentEvent(fake, ids)
			data, _ := json.Marshal(event)

			// every tenth message is garbage so the dead letter queue gets traffic too
			if fake.IntBetween(1, 10) == 1 {
				data = []byte(fake.Lorem().Sentence(4))
			}

			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data}); err != nil {
				log.Println("failed to publish payment", err)
				continue
			}
			log.Println("payment published", event.OrderID, event.PaymentStatus)
		case <-ctx.Done():
			return
		}
	}
}

func generatePaymentEvent(fake faker.Faker, ids []string) PaymentEvent {
	orderID := fake.UUID().V4()
	if len(ids) > 0 {
		orderID = fake.RandomStringElement(ids)
	}

	status := "Paid"
	if fake.IntBetween(1, 5) == 1 {
		status = "Unpaid"
	}

	return PaymentEvent{
		OrderID:       orderID,
		PaymentStatus: status,
		Reference:     strings.ToLower(fake.Payment().CreditCardType()) + "-" + fake.Numerify("##########"),
	}
}
