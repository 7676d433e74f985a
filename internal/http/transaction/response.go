package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmcardoso/penny/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	User        uuid.UUID        `json:"user"`
	Type        transaction.Type `json:"type"`
	Title       string           `json:"title"`
	Amount      int64            `json:"amount"`
	Category    uuid.UUID        `json:"category"`
	Description string           `json:"description,omitempty"`
	Date        time.Time        `json:"date"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		User:        tx.UserID,
		Type:        tx.Type,
		Title:       tx.Title,
		Amount:      tx.Amount,
		Category:    tx.CategoryID,
		Description: tx.Description,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
