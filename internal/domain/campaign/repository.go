package campaign

import "context"

type CampaignRepository interface {
	Create(ctx context.Context, c Campaign) (Campaign, error)
	GetByID(ctx context.Context, id string) (Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
