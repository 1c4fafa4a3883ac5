package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/christian-keitri/my-app/internal/application/ports"
	"github.com/christian-keitri/my-app/internal/domain"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
	"github.com/christian-keitri/my-app/internal/infrastructure/persistence/db"
)

type PortalCodeRepository struct {
	q *db.Queries
}

func NewPortalCodeRepository(q *db.Queries) *PortalCodeRepository {
	return &PortalCodeRepository{q: q}
}

func (r *PortalCodeRepository) Create(ctx context.Context, code *domain.BranchPortalCode) error {
	if code.ID.UUID == (uuid.UUID{}) {
		code.ID = domain.NewPortalCodeID(uuid.New())
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	created, err := r.q.CreatePortalCode(ctx, db.CreatePortalCodeParams{
		ID:              code.ID.UUID,
		Code:            code.Code,
		IntegrationType: code.IntegrationType,
		Status:          code.Status,
		BranchID:        code.BranchID.UUID,
		CreatedAt:       code.CreatedAt,
	})
	if err != nil {
		return err
	}
	code.Status = created.Status
	code.CreatedAt = created.CreatedAt
	return nil
}

func (r *PortalCodeRepository) GetByID(ctx context.Context, codeID domain.PortalCodeID) (*domain.BranchPortalCode, error) {
	c, err := r.q.GetPortalCodeByID(ctx, codeID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	code := dbPortalCodeToDomain(c)
	return &code, nil
}

func (r *PortalCodeRepository) List(ctx context.Context) ([]*domain.BranchPortalCode, error) {
	list, err := r.q.ListPortalCodes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.BranchPortalCode, 0, len(list))
	for _, c := range list {
		code := dbPortalCodeToDomain(c)
		out = append(out, &code)
	}
	return out, nil
}

func (r *PortalCodeRepository) Toggle(ctx context.Context, codeID domain.PortalCodeID) (*domain.BranchPortalCode, error) {
	c, err := r.q.TogglePortalCode(ctx, codeID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrPortalCodeNotFound
		}
		return nil, err
	}
	code := dbPortalCodeToDomain(c)
	return &code, nil
}

// Delete is a hard removal. Deleting an id that no longer exists fails with
// ErrPortalCodeNotFound rather than succeeding silently.
func (r *PortalCodeRepository) Delete(ctx context.Context, codeID domain.PortalCodeID) error {
	affected, err := r.q.DeletePortalCode(ctx, codeID.UUID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domerrors.ErrPortalCodeNotFound
	}
	return nil
}

func dbPortalCodeToDomain(c db.BranchPortalCode) domain.BranchPortalCode {
	return domain.BranchPortalCode{
		ID:              domain.NewPortalCodeID(c.ID),
		Code:            c.Code,
		IntegrationType: c.IntegrationType,
		Status:          c.Status,
		BranchID:        domain.NewBranchID(c.BranchID),
		CreatedAt:       c.CreatedAt,
	}
}

var _ ports.PortalCodeRepository = (*PortalCodeRepository)(nil)
