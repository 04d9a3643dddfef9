package campaign

import "context"

type CampaignService interface {
	Create(ctx context.Context, req CreateCampaignRequest) (CampaignResponse, error)
	GetByID(ctx context.Context, id string) (CampaignResponse, error)
	List(ctx context.Context) ([]CampaignResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (CampaignResponse, error)
}
