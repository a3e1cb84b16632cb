package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

type transactionResponse struct {
	ID          uuid.UUID   `json:"id"`
	CashbookID  uuid.UUID   `json:"cashbook_id"`
	Type        ledger.Type `json:"type"`
	Amount      string      `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Mode        string      `json:"mode"`
	Date        time.Time   `json:"date"`
}

func toResponse(snap ledger.Snapshot, tx ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		CashbookID:  tx.CashbookID,
		Type:        tx.Type,
		Amount:      tx.Amount.StringFixed(2),
		Description: tx.Description,
		Category:    snap.CategoryName(tx.CategoryID),
		Mode:        snap.ModeName(tx.ModeID),
		Date:        tx.Date,
	}
}
