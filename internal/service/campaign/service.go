package campaign

import (
	"context"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/campaign"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

type CampaignServiceImpl struct {
	db           *database.DB
	campaignRepo campaign.CampaignRepository
}

func NewCampaignService(db *database.DB, campaignRepo campaign.CampaignRepository) campaign.CampaignService {
	return &CampaignServiceImpl{
		db:           db,
		campaignRepo: campaignRepo,
	}
}

// Create implements campaign.CampaignService.
func (s *CampaignServiceImpl) Create(ctx context.Context, req campaign.CreateCampaignRequest) (campaign.CampaignResponse, error) {
	if err := req.Validate(); err != nil {
		return campaign.CampaignResponse{}, err
	}

	c := campaign.Campaign{
		Name:          req.Name,
		Description:   req.Description,
		CampaignType:  campaign.Type(req.CampaignType),
		TargetSegment: req.TargetSegment,
		Status:        campaign.Status(req.Status),
	}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		c.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		c.EndDate = &end
	}

	created, err := s.campaignRepo.Create(ctx, c)
	if err != nil {
		return campaign.CampaignResponse{}, err
	}

	return toCampaignResponse(created), nil
}

// GetByID implements campaign.CampaignService.
func (s *CampaignServiceImpl) GetByID(ctx context.Context, id string) (campaign.CampaignResponse, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return campaign.CampaignResponse{}, err
	}
	return toCampaignResponse(c), nil
}

// List implements campaign.CampaignService.
func (s *CampaignServiceImpl) List(ctx context.Context) ([]campaign.CampaignResponse, error) {
	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]campaign.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		responses = append(responses, toCampaignResponse(c))
	}

	return responses, nil
}

// UpdateStatus implements campaign.CampaignService.
func (s *CampaignServiceImpl) UpdateStatus(ctx context.Context, req campaign.UpdateStatusRequest) (campaign.CampaignResponse, error) {
	if err := req.Validate(); err != nil {
		return campaign.CampaignResponse{}, err
	}

	if err := s.campaignRepo.UpdateStatus(ctx, req.ID, campaign.Status(req.Status)); err != nil {
		return campaign.CampaignResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func toCampaignResponse(c campaign.Campaign) campaign.CampaignResponse {
	resp := campaign.CampaignResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		CampaignType:  string(c.CampaignType),
		TargetSegment: c.TargetSegment,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
	if c.StartDate != nil {
		start := c.StartDate.Format("2006-01-02")
		resp.StartDate = &start
	}
	if c.EndDate != nil {
		end := c.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
