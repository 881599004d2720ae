package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/SscSPs/tallypro_backend/internal/models"
	"github.com/SscSPs/tallypro_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const partyColumns = `party_id, name, party_type, phone, email, address, opening_balance, created_at, last_updated_at`

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func scanParty(row pgx.Row) (models.Party, error) {
	var p models.Party
	err := row.Scan(
		&p.PartyID,
		&p.Name,
		&p.PartyType,
		&p.Phone,
		&p.Email,
		&p.Address,
		&p.OpeningBalance,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	return p, err
}

// SaveParty inserts a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.PartyType,
		m.Phone,
		m.Email,
		m.Address,
		m.OpeningBalance,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("party %s: %w", m.PartyID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save party %s: %w", m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`

	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by id %s: %w", partyID, err)
	}

	party := mapping.ToDomainParty(m)
	return &party, nil
}

// ListParties retrieves all parties in creation order.
func (r *PgxPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY created_at, party_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Party, error) {
		return scanParty(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}
	return mapping.ToDomainPartySlice(parties), nil
}

// UpdateParty overwrites the mutable fields of an existing party.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2, party_type = $3, phone = $4, email = $5, address = $6,
			opening_balance = $7, last_updated_at = $8
		WHERE party_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.PartyType,
		m.Phone,
		m.Email,
		m.Address,
		m.OpeningBalance,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", m.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes a party. Transactions referencing it are kept.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
