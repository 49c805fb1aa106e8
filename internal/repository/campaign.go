package repository

import (
	"context"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	GetByID(ctx context.Context, id string) (*entity.Campaign, error)
	CreateMember(ctx context.Context, member *entity.CampaignMember) error
	GetMembership(ctx context.Context, userID, campaignID string) (*entity.CampaignMember, error)
	GetActiveMemberships(ctx context.Context, userID string) ([]entity.CampaignMember, error)
	CountActiveMemberships(ctx context.Context, userID string) (int64, error)
}

type campaignRepository struct{}

func NewCampaignRepository() *campaignRepository {
	return &campaignRepository{}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	return xcontext.DB(ctx).Create(campaign).Error
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	var result entity.Campaign
	err := xcontext.DB(ctx).Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *campaignRepository) CreateMember(ctx context.Context, member *entity.CampaignMember) error {
	return xcontext.DB(ctx).Create(member).Error
}

func (r *campaignRepository) GetMembership(
	ctx context.Context, userID, campaignID string,
) (*entity.CampaignMember, error) {
	var result entity.CampaignMember
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND campaign_id=?", userID, campaignID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *campaignRepository) GetActiveMemberships(
	ctx context.Context, userID string,
) ([]entity.CampaignMember, error) {
	var result []entity.CampaignMember
	err := xcontext.DB(ctx).
		Preload("Campaign").
		Joins("JOIN campaigns ON campaigns.id = campaign_members.campaign_id").
		Where("campaign_members.user_id=?", userID).
		Where("campaign_members.status=?", entity.MembershipActive).
		Where("campaigns.status=?", entity.CampaignActive).
		Order("campaign_members.joined_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *campaignRepository) CountActiveMemberships(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.CampaignMember{}).
		Joins("JOIN campaigns ON campaigns.id = campaign_members.campaign_id").
		Where("campaign_members.user_id=?", userID).
		Where("campaign_members.status=?", entity.MembershipActive).
		Where("campaigns.status=?", entity.CampaignActive).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
