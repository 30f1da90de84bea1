package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hermes/infra/kafka"
	"hermes/service"
)

// Tails the fills topic and prints each committed execution batch.
// One batch per incoming order; legs with the same secnum are partial
// fills against distinct counterparties.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma-separated kafka brokers")
	topic := flag.String("topic", "fills", "fills topic")
	group := flag.String("group", "fills-tail", "consumer group id")
	flag.Parse()

	consumer := kafka.NewConsumer(strings.Split(*brokers, ","), *topic, *group)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	for {
		_, value, err := consumer.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Fatalf("read fills: %v", err)
		}

		var ev service.FillEvent
		if err := json.Unmarshal(value, &ev); err != nil {
			log.Printf("malformed fill event: %v", err)
			continue
		}

		fmt.Printf("fill secnum=%d\n", ev.Secnum)
		for _, e := range ev.Asks {
			fmt.Printf("  ask secnum=%d qty=%d\n", e.Secnum, e.Quantity)
		}
		for _, e := range ev.Bids {
			fmt.Printf("  bid secnum=%d qty=%d\n", e.Secnum, e.Quantity)
		}
	}
}
