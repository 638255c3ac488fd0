package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

const defaultCodeMaxAttempts = 5

type codeGenerator struct {
	BaseService
	repo        portsrepo.SequenceRepository
	maxAttempts int
}

// NewCodeGenerator creates the document code generator. maxAttempts bounds the sequential
// candidates tried before falling back to a timestamp suffix.
func NewCodeGenerator(repo portsrepo.SequenceRepository, maxAttempts int, options ...ServiceOption) portssvc.CodeGenerator {
	if maxAttempts < 1 {
		maxAttempts = defaultCodeMaxAttempts
	}
	g := &codeGenerator{repo: repo, maxAttempts: maxAttempts}
	applyOptions(&g.BaseService, options)
	return g
}

var _ portssvc.CodeGenerator = (*codeGenerator)(nil)

// NextCode mints <PREFIX>-<YY>-<NNNN>. The candidate is the number of codes already issued for the
// type and year plus one; collisions move to the next number. After maxAttempts collisions the
// suffix becomes T<unix millis>, which trades gaplessness for liveness.
func (g *codeGenerator) NextCode(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, date time.Time) (string, error) {
	prefix, ok := docType.Prefix()
	if !ok {
		return "", fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, docType)
	}
	if date.IsZero() {
		date = g.Now()
	}
	year := date.Year()
	yy := year % 100

	count, err := g.repo.CountCodes(ctx, tx, docType, year)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code := fmt.Sprintf("%s-%02d-%04d", prefix, yy, count+1+attempt)
		reserved, err := g.repo.ReserveCode(ctx, tx, docType, year, code, g.Now())
		if err != nil {
			return "", err
		}
		if reserved {
			return code, nil
		}
		g.LogDebug(ctx, "Document code collision, retrying", slog.String("code", code), slog.Int("attempt", attempt+1))
	}

	g.LogWarn(ctx, "Document code attempts exhausted, using timestamp suffix",
		slog.String("document_type", string(docType)), slog.Int("year", year))

	millis := g.Now().UnixMilli()
	for i := 0; i < g.maxAttempts; i++ {
		code := fmt.Sprintf("%s-%02d-T%d", prefix, yy, millis+int64(i))
		reserved, err := g.repo.ReserveCode(ctx, tx, docType, year, code, g.Now())
		if err != nil {
			return "", err
		}
		if reserved {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: could not reserve a %s code", apperrors.ErrInternal, docType)
}
