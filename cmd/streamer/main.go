package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "hermes/api/pb"
)

// The recorder dataset is one order per line:
//
//	user_id,timestamp_ns,price,symbol,quantity,order_type,trader_type
//
// Prices are recorded in decimal units and converted to integer ticks
// before submission. The streamer replays the file at a fixed rate and
// lets the server assign secnums.
const recordFields = 7

func main() {
	csvPath := flag.String("csv", "orders.csv", "path to the recorded order file")
	addr := flag.String("addr", "localhost:50051", "engine gRPC address")
	rate := flag.Int("rate", 3, "orders per second")
	flag.Parse()

	if *rate <= 0 {
		log.Fatal("rate must be positive")
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("connect to %s: %v", *addr, err)
	}
	defer conn.Close()
	client := pb.NewEngineClient(conn)

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open dataset: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()

	var sent, failed int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		req, err := parseLine(line)
		if err != nil {
			log.Printf("skipping record: %v", err)
			continue
		}

		<-ticker.C
		resp, err := client.SubmitOrder(ctx, req)
		if err != nil {
			failed++
			log.Printf("submit failed: %v", err)
			continue
		}
		sent++
		if len(resp.Asks) > 0 || len(resp.Bids) > 0 {
			fmt.Printf("secnum=%d matched: %d ask legs, %d bid legs\n",
				resp.Secnum, len(resp.Asks), len(resp.Bids))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read dataset: %v", err)
	}

	fmt.Printf("done: %d sent, %d failed\n", sent, failed)
}

func parseLine(line string) (*pb.SubmitOrderRequest, error) {
	fields := strings.Split(line, ",")
	if len(fields) != recordFields {
		return nil, fmt.Errorf("expected %d fields, got %d", recordFields, len(fields))
	}

	price, err := parsePrice(fields[2])
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", fields[2], err)
	}
	quantity, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", fields[4], err)
	}
	side, err := parseSide(fields[5])
	if err != nil {
		return nil, err
	}

	return &pb.SubmitOrderRequest{
		Symbol:   fields[3],
		Side:     side,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// parsePrice converts a recorded decimal price to integer ticks of one
// hundredth of a unit.
func parsePrice(s string) (int64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(v * 100)), nil
}

func parseSide(s string) (pb.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bid", "buy":
		return pb.Side_SIDE_BID, nil
	case "ask", "sell":
		return pb.Side_SIDE_ASK, nil
	default:
		return pb.Side_SIDE_UNSPECIFIED, fmt.Errorf("unknown order type %q", s)
	}
}
