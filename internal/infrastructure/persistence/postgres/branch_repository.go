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

type BranchRepository struct {
	q *db.Queries
}

func NewBranchRepository(q *db.Queries) *BranchRepository {
	return &BranchRepository{q: q}
}

func (r *BranchRepository) Create(ctx context.Context, branch *domain.Branch) error {
	if branch.ID.UUID == (uuid.UUID{}) {
		branch.ID = domain.NewBranchID(uuid.New())
	}
	if branch.CreatedAt.IsZero() {
		branch.CreatedAt = time.Now()
	}
	created, err := r.q.CreateBranch(ctx, db.CreateBranchParams{
		ID:             branch.ID.UUID,
		Name:           branch.Name,
		Status:         branch.Status,
		OrganizationID: branch.OrganizationID.UUID,
		CreatedAt:      branch.CreatedAt,
	})
	if err != nil {
		return err
	}
	branch.Status = created.Status
	branch.CreatedAt = created.CreatedAt
	return nil
}

func (r *BranchRepository) GetByID(ctx context.Context, branchID domain.BranchID) (*domain.Branch, error) {
	row, err := r.q.GetBranchByID(ctx, branchID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	b := dbBranchToDomain(row.Branch)
	b.OrganizationName = row.OrganizationName
	return &b, nil
}

func (r *BranchRepository) List(ctx context.Context) ([]*domain.Branch, error) {
	rows, err := r.q.ListBranches(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Branch, 0, len(rows))
	for _, row := range rows {
		b := dbBranchToDomain(row.Branch)
		b.OrganizationName = row.OrganizationName
		out = append(out, &b)
	}
	return out, nil
}

func (r *BranchRepository) Update(ctx context.Context, branchID domain.BranchID, fields ports.BranchUpdate) (*domain.Branch, error) {
	row, err := r.q.UpdateBranch(ctx, db.UpdateBranchParams{
		Name:   fields.Name,
		Status: fields.Status,
		ID:     branchID.UUID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrBranchNotFound
		}
		return nil, err
	}
	branch := dbBranchToDomain(row.Branch)
	branch.OrganizationName = row.OrganizationName
	return &branch, nil
}

func (r *BranchRepository) Toggle(ctx context.Context, branchID domain.BranchID) (*domain.Branch, error) {
	row, err := r.q.ToggleBranch(ctx, branchID.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrBranchNotFound
		}
		return nil, err
	}
	branch := dbBranchToDomain(row.Branch)
	branch.OrganizationName = row.OrganizationName
	return &branch, nil
}

func dbBranchToDomain(b db.Branch) domain.Branch {
	return domain.Branch{
		ID:             domain.NewBranchID(b.ID),
		Name:           b.Name,
		Status:         b.Status,
		OrganizationID: domain.NewOrganizationID(b.OrganizationID),
		CreatedAt:      b.CreatedAt,
	}
}

var _ ports.BranchRepository = (*BranchRepository)(nil)
