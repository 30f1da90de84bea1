package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"hermes/domain/orderbook"
	"hermes/infra/sequence"
	"hermes/infra/store"
)

/*
Restore rebuilds the in-memory book from the store.

IMPORTANT:
- This MUST run before the gateway accepts traffic.
- Orders replay in ascending secnum order, reconstructing historical
  time priority; replay order is never re-derived from price.
- Reports produced during replay are merged and committed once after
  the scan completes. Committing per order would mutate records the
  scan has not reached yet and double-count quantity already read.
*/

func Restore(
	ctx context.Context,
	log *zap.Logger,
	eng *orderbook.Engine,
	st *store.Store,
	seqGen *sequence.Sequencer,
) error {
	var (
		merged  orderbook.Report
		count   int
		lastSec uint64
	)

	err := st.ScanOpen(func(rec store.OrderRecord) error {
		// An inconsistent record means the store cannot be trusted;
		// refusing to boot beats silently dropping an order.
		if rec.Remaining < 0 || rec.Remaining > rec.Quantity {
			return fmt.Errorf("restore: order %d has remaining %d of %d",
				rec.Secnum, rec.Remaining, rec.Quantity)
		}
		if !eng.Has(rec.Symbol) {
			return fmt.Errorf("restore: order %d references unconfigured symbol %q",
				rec.Secnum, rec.Symbol)
		}

		rep, err := eng.Execute(ctx, &orderbook.Order{
			Secnum:   rec.Secnum,
			Symbol:   rec.Symbol,
			Side:     rec.Side,
			Price:    rec.Price,
			Quantity: rec.Remaining,
		})
		if err != nil {
			return fmt.Errorf("restore: replay order %d: %w", rec.Secnum, err)
		}

		merged.Asks = append(merged.Asks, rep.Asks...)
		merged.Bids = append(merged.Bids, rep.Bids...)
		lastSec = rec.Secnum
		count++
		return nil
	})
	if err != nil {
		return err
	}

	// Resume secnum issuance after the replayed history.
	if lastSec > seqGen.Current() {
		seqGen.Reset(lastSec)
	}

	// A non-empty merge means matches were lost between execution and
	// commit in a previous life; flush them as one batch now.
	if !merged.Empty() {
		if err := st.ApplyExecutions(&merged); err != nil {
			return fmt.Errorf("restore: flush replay executions: %w", err)
		}
		payload, err := json.Marshal(FillEvent{Secnum: lastSec, Asks: merged.Asks, Bids: merged.Bids})
		if err != nil {
			return fmt.Errorf("restore: encode replay batch: %w", err)
		}
		if _, err := st.EnqueueOutbox(payload); err != nil {
			return fmt.Errorf("restore: enqueue replay batch: %w", err)
		}
		log.Warn("restore re-derived executions lost before commit",
			zap.Int("ask_legs", len(merged.Asks)),
			zap.Int("bid_legs", len(merged.Bids)))
	}

	log.Info("restore complete",
		zap.Int("orders", count),
		zap.Uint64("last_secnum", lastSec))
	return nil
}
