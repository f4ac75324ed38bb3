// Package worker turns queued export messages into spreadsheet rows.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"smartspend/internal/amqp"
	"smartspend/internal/core"
	"smartspend/internal/ledger"
)

// Appender is the export destination.
type Appender interface {
	Append(ctx context.Context, owner string, tx core.Transaction) error
}

type ExportWorker struct {
	ledger   *ledger.Store
	appender Appender
}

func NewExportWorker(store *ledger.Store, appender Appender) *ExportWorker {
	return &ExportWorker{
		ledger:   store,
		appender: appender,
	}
}

// HandleExportMessage re-reads the referenced transaction and appends it
// to the destination. A transaction that no longer exists (the owner
// cleared the list) drops the message rather than requeueing it forever.
func (w *ExportWorker) HandleExportMessage(msg *amqp.TransactionExportMessage) error {
	ctx := context.Background()

	txs, err := w.ledger.Transactions(ctx, msg.Owner)
	if err != nil {
		return fmt.Errorf("load transactions for %s: %w", msg.Owner, err)
	}

	for _, tx := range txs {
		if tx.ID != msg.ID {
			continue
		}
		if err := w.appender.Append(ctx, msg.Owner, tx); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.ID, err)
		}
		slog.InfoContext(ctx, "Transaction exported",
			"owner", msg.Owner,
			"id", tx.ID,
			"amount", tx.Amount)
		return nil
	}

	slog.WarnContext(ctx, "Transaction missing, dropping export message",
		"owner", msg.Owner,
		"id", msg.ID)
	return nil
}
