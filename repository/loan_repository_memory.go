package repository

import (
	"context"

	"rate-tracker/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	data []domain.LoanRecord
}

// NewLoanRepositoryMemory creates a repository serving the given records.
func NewLoanRepositoryMemory(loans ...domain.LoanRecord) *LoanRepositoryMemory {
	data := make([]domain.LoanRecord, len(loans))
	copy(data, loans)
	return &LoanRepositoryMemory{data: data}
}

// List returns a copy of the stored records.
func (r *LoanRepositoryMemory) List(ctx context.Context) ([]domain.LoanRecord, error) {
	out := make([]domain.LoanRecord, len(r.data))
	copy(out, r.data)
	return out, nil
}
