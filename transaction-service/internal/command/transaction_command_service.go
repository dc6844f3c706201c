package command

import (
	"context"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/events"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/rs/zerolog"
)

// TransactionWriter is the write side of the transaction store.
type TransactionWriter interface {
	Add(id int64, tx models.Transaction) error
}

// EventPublisher appends an event to a named stream.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransactionCommandService stores new transactions and announces them on the
// transaction event stream.
type TransactionCommandService struct {
	store     TransactionWriter
	publisher EventPublisher
	logger    zerolog.Logger
}

func NewTransactionCommandService(store TransactionWriter, publisher EventPublisher, logger zerolog.Logger) *TransactionCommandService {
	return &TransactionCommandService{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// AddTransaction stores the transaction under cmd.ID. A duplicate ID yields an
// error matching store.ErrDuplicateKey. Publishing happens after the record is
// committed, so a publish failure is logged and the add still succeeds.
func (s *TransactionCommandService) AddTransaction(cmd cqrs.AddTransactionCommand) (*models.TransactionView, error) {
	tx := models.Transaction{
		Amount:   cmd.Amount,
		Type:     cmd.Type,
		ParentID: cmd.ParentID,
	}
	if err := s.store.Add(cmd.ID, tx); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("transaction_id", cmd.ID).Str("type", tx.Type).Int64("parent_id", tx.ParentID).Msg("Transaction stored")

	ctx := context.Background()
	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: cmd.ID,
		Amount:        tx.Amount,
		Type:          tx.Type,
		ParentID:      tx.ParentID,
	}); err != nil {
		s.logger.Error().Err(err).Int64("transaction_id", cmd.ID).Msg("Failed to publish transaction.created event")
	}

	return models.NewTransactionView(cmd.ID, tx), nil
}
