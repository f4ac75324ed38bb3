package worker

import (
	"context"
	"errors"
	"testing"

	"smartspend/internal/amqp"
	"smartspend/internal/core"
	"smartspend/internal/kv"
	"smartspend/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAppender struct {
	appended []core.Transaction
	owners   []string
	err      error
}

func (a *recordingAppender) Append(_ context.Context, owner string, tx core.Transaction) error {
	if a.err != nil {
		return a.err
	}
	a.owners = append(a.owners, owner)
	a.appended = append(a.appended, tx)
	return nil
}

func TestHandleExportMessage(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore(kv.NewMemory())

	tx := core.Transaction{ID: "1", Type: core.Expense, Amount: 5, Category: "Other", Date: "2024-01-01"}
	require.NoError(t, store.Save(ctx, "ann@x.com", tx))

	appender := &recordingAppender{}
	w := NewExportWorker(store, appender)

	err := w.HandleExportMessage(&amqp.TransactionExportMessage{Owner: "ann@x.com", ID: "1"})
	require.NoError(t, err)
	require.Len(t, appender.appended, 1)
	assert.Equal(t, tx, appender.appended[0])
	assert.Equal(t, "ann@x.com", appender.owners[0])
}

func TestHandleExportMessage_MissingTransactionDropsMessage(t *testing.T) {
	store := ledger.NewStore(kv.NewMemory())
	appender := &recordingAppender{}
	w := NewExportWorker(store, appender)

	// No error: requeueing a message for a cleared list would loop forever.
	err := w.HandleExportMessage(&amqp.TransactionExportMessage{Owner: "ann@x.com", ID: "ghost"})
	assert.NoError(t, err)
	assert.Empty(t, appender.appended)
}

func TestHandleExportMessage_AppendFailureRequeues(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore(kv.NewMemory())

	tx := core.Transaction{ID: "1", Type: core.Expense, Amount: 5, Category: "Other", Date: "2024-01-01"}
	require.NoError(t, store.Save(ctx, "ann@x.com", tx))

	appender := &recordingAppender{err: errors.New("sheets unavailable")}
	w := NewExportWorker(store, appender)

	err := w.HandleExportMessage(&amqp.TransactionExportMessage{Owner: "ann@x.com", ID: "1"})
	assert.Error(t, err, "append failures must surface so the delivery is requeued")
}
