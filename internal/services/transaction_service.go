// Package services sits between the HTTP surface and the stores. It
// resolves the session exactly once per operation, so a single call
// never observes two different sessions.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smartspend/internal/accounts"
	"smartspend/internal/amqp"
	"smartspend/internal/core"
	"smartspend/internal/ledger"
)

// TransactionService scopes ledger operations to the logged-in user and
// publishes export messages after successful saves.
type TransactionService struct {
	accounts   *accounts.Store
	ledger     *ledger.Store
	amqpClient *amqp.Client
}

func NewTransactionService(accounts *accounts.Store, ledger *ledger.Store, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		accounts:   accounts,
		ledger:     ledger,
		amqpClient: amqpClient,
	}
}

// owner resolves the current session once. Without a session, writes fall
// back to the shared anonymous scope, matching the historical behavior.
func (s *TransactionService) owner(ctx context.Context) (string, error) {
	email, err := s.accounts.Session(ctx)
	if errors.Is(err, core.ErrNoSession) {
		return ledger.AnonymousOwner, nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

// List returns the current user's transactions, most recent first.
func (s *TransactionService) List(ctx context.Context) ([]core.Transaction, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.ledger.Transactions(ctx, owner)
}

// Record saves tx under the current session's scope. A missing ID is
// assigned from the current timestamp. The export publish is best-effort:
// the save has already succeeded locally.
func (s *TransactionService) Record(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	if tx.ID == "" {
		tx.ID = core.NewTransactionID(time.Now())
	}
	if tx.Date == "" {
		tx.Date = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.ledger.Save(ctx, owner, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping export message", "id", tx.ID)
		return tx, nil
	}
	if err := s.amqpClient.PublishTransactionExport(ctx, owner, tx.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish export message",
			"owner", owner, "id", tx.ID, "error", err)
	}

	return tx, nil
}

// Clear removes the current user's whole transaction list.
func (s *TransactionService) Clear(ctx context.Context) error {
	owner, err := s.owner(ctx)
	if err != nil {
		return err
	}
	return s.ledger.Clear(ctx, owner)
}

// Close releases the AMQP connection, if any.
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp: %w", err)
		}
	}
	return nil
}
