package repository

import (
	"context"

	"rate-tracker/domain"
)

// LoanRepository supplies the pipeline, in listing order.
type LoanRepository interface {
	List(ctx context.Context) ([]domain.LoanRecord, error)
}
