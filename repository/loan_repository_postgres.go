package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v4/pgxpool"

	"rate-tracker/domain"
)

const listLoansQuery = `
SELECT borrower_name, stage, COALESCE(loan_number, ''), COALESCE(property, ''),
       COALESCE(loan_amount, 0), rate, program, closing_date,
       credit_score, ltv, dti, piti, COALESCE(buyer_agent, '')
FROM pipeline_loans
ORDER BY position`

// PostgresLoanRepository reads the pipeline from the pipeline_loans table.
// It never writes.
type PostgresLoanRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLoanRepository(ctx context.Context, databaseURL string) (*PostgresLoanRepository, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to loan database: %w", err)
	}
	return &PostgresLoanRepository{pool: pool}, nil
}

func (r *PostgresLoanRepository) List(ctx context.Context) ([]domain.LoanRecord, error) {
	rows, err := r.pool.Query(ctx, listLoansQuery)
	if err != nil {
		return nil, fmt.Errorf("query pipeline loans: %w", err)
	}
	defer rows.Close()

	var loans []domain.LoanRecord
	for rows.Next() {
		var (
			loan        domain.LoanRecord
			stage       string
			program     string
			closingDate *time.Time
		)
		if err := rows.Scan(
			&loan.Name, &stage, &loan.LoanNumber, &loan.Property, &loan.LoanAmount, &loan.Rate, &program,
			&closingDate, &loan.CreditScore, &loan.LTV, &loan.DTI, &loan.PITI, &loan.BuyerAgent,
		); err != nil {
			return nil, fmt.Errorf("scan pipeline loan: %w", err)
		}
		loan.Stage = domain.Stage(stage)
		loan.Program = domain.Program(program)
		if closingDate != nil {
			d := civil.DateOf(*closingDate)
			loan.ClosingDate = &d
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pipeline loans: %w", err)
	}
	return loans, nil
}

func (r *PostgresLoanRepository) Close() {
	r.pool.Close()
}
