package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/jackc/pgx/v5"
)

// postingService journals the business documents owned by other modules of the ERP.
type postingService struct {
	BaseService
	txm        portsrepo.TransactionManager
	masterData portsrepo.MasterDataReader
	codes      portssvc.CodeGenerator
	ledger     ledgerPoster
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

func (s *postingService) requireParty(ctx context.Context, tx pgx.Tx, partyType domain.PartyType, id string) error {
	ok, err := s.masterData.PartyExists(ctx, tx, partyType, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, partyType, id)
	}
	return nil
}

func (s *postingService) PostInvoice(ctx context.Context, req dto.PostInvoiceRequest, userID string) (string, *domain.LedgerEntry, error) {
	docType, ok := req.InvoiceType.DocumentType()
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown invoice type %q", apperrors.ErrValidation, req.InvoiceType)
	}
	date := req.Date
	if date.IsZero() {
		date = s.Now()
	}

	var code string
	var entry *domain.LedgerEntry
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		if err := s.requireParty(ctx, tx, domain.PartyCustomer, req.CustomerID); err != nil {
			return err
		}
		var err error
		code, err = s.codes.NextCode(ctx, tx, docType, date)
		if err != nil {
			return err
		}
		description := req.Description
		if description == "" {
			description = "Invoice " + code
		}
		entry, err = s.ledger.post(ctx, tx, posting{
			SourceType:  domain.SourceInvoice,
			SourceID:    req.InvoiceID,
			Debit:       domain.CustomerAccount(req.CustomerID),
			Credit:      domain.RevenueAccount(req.InvoiceType.RevenueLabel()),
			Amount:      req.Amount,
			Description: description,
			UserID:      userID,
		})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post invoice", slog.String("invoice_id", req.InvoiceID))
		return "", nil, err
	}

	s.LogInfo(ctx, "Invoice posted", slog.String("invoice_id", req.InvoiceID), slog.String("code", code))
	return code, entry, nil
}

func (s *postingService) PostTrip(ctx context.Context, req dto.PostTripRequest, userID string) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		if err := s.requireParty(ctx, tx, domain.PartyAgent, req.AgentID); err != nil {
			return err
		}
		var err error
		entry, err = s.ledger.post(ctx, tx, posting{
			SourceType:  domain.SourceTrip,
			SourceID:    req.TripID,
			Debit:       domain.ExpenseAccount(domain.ExpenseShipping),
			Credit:      domain.AgentAccount(req.AgentID),
			Amount:      req.Amount,
			Description: req.Description,
			UserID:      userID,
		})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post trip", slog.String("trip_id", req.TripID))
		return nil, err
	}
	return entry, nil
}

// PostAdditionalFee credits the agent. The debit side is the customer when the fee is re-billed.
func (s *postingService) PostAdditionalFee(ctx context.Context, req dto.PostAdditionalFeeRequest, userID string) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		if err := s.requireParty(ctx, tx, domain.PartyAgent, req.AgentID); err != nil {
			return err
		}
		debit := domain.ExpenseAccount(domain.ExpenseAgentFees)
		if req.CustomerID != nil && *req.CustomerID != "" {
			if err := s.requireParty(ctx, tx, domain.PartyCustomer, *req.CustomerID); err != nil {
				return err
			}
			debit = domain.CustomerAccount(*req.CustomerID)
		}
		var err error
		entry, err = s.ledger.post(ctx, tx, posting{
			SourceType:  domain.SourceAdditionalFee,
			SourceID:    req.FeeID,
			Debit:       debit,
			Credit:      domain.AgentAccount(req.AgentID),
			Amount:      req.Amount,
			Description: req.Description,
			UserID:      userID,
		})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post additional fee", slog.String("fee_id", req.FeeID))
		return nil, err
	}
	return entry, nil
}
