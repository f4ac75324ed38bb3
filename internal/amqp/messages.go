package amqp

import (
	"encoding/json"
	"time"
)

// TransactionExportMessage asks the export worker to push one transaction
// to the configured spreadsheet. It carries only the owner scope and the
// transaction ID; the worker re-reads the record from the ledger.
type TransactionExportMessage struct {
	Owner     string    `json:"owner"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionExportMessage(owner, id string) *TransactionExportMessage {
	return &TransactionExportMessage{
		Owner:     owner,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *TransactionExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionExportMessageFromJSON(data []byte) (*TransactionExportMessage, error) {
	var msg TransactionExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
