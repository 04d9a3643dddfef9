package postgresql

import (
	"context"
	"fmt"

	"github.com/brickmart/console-backend-go/internal/domain/campaign"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type campaignRepositoryImpl struct {
	db *database.DB
}

func NewCampaignRepository(db *database.DB) campaign.CampaignRepository {
	return &campaignRepositoryImpl{db: db}
}

const campaignColumns = `id, name, description, campaign_type, start_date, end_date, target_segment, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (campaign.Campaign, error) {
	var c campaign.Campaign
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.CampaignType, &c.StartDate,
		&c.EndDate, &c.TargetSegment, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *campaignRepositoryImpl) Create(ctx context.Context, c campaign.Campaign) (campaign.Campaign, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO campaigns (name, description, campaign_type, start_date, end_date, target_segment, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + campaignColumns

	created, err := scanCampaign(q.QueryRow(ctx, query,
		c.Name, c.Description, c.CampaignType, c.StartDate, c.EndDate, c.TargetSegment, c.Status,
	))
	if err != nil {
		return campaign.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	return created, nil
}

func (r *campaignRepositoryImpl) GetByID(ctx context.Context, id string) (campaign.Campaign, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	c, err := scanCampaign(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return campaign.Campaign{}, campaign.ErrCampaignNotFound
		}
		return campaign.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}

	return c, nil
}

func (r *campaignRepositoryImpl) List(ctx context.Context) ([]campaign.Campaign, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []campaign.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, nil
}

func (r *campaignRepositoryImpl) UpdateStatus(ctx context.Context, id string, status campaign.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE campaigns
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var returned string
	if err := q.QueryRow(ctx, query, status, id).Scan(&returned); err != nil {
		if err == pgx.ErrNoRows {
			return campaign.ErrCampaignNotFound
		}
		return fmt.Errorf("failed to update campaign status: %w", err)
	}

	return nil
}
