package services

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll runs.
type PayrollReaderSvc interface {
	GetRun(ctx context.Context, runID string) (*domain.PayrollRun, error)
	ListRuns(ctx context.Context, params dto.ListPayrollRunsParams) ([]domain.PayrollRun, error)
}

// PayrollWriterSvc defines the draft editing and settlement transitions.
type PayrollWriterSvc interface {
	CreateRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error)
	ReplaceItems(ctx context.Context, runID string, req dto.ReplacePayrollItemsRequest, userID string) (*domain.PayrollRun, error)
	Approve(ctx context.Context, runID string, req dto.ApprovePayrollRequest, userID string) (*domain.PayrollRun, error)
	Unapprove(ctx context.Context, runID string, userID string) (*domain.PayrollRun, error)
}

// PayrollSvcFacade combines all payroll operations.
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
