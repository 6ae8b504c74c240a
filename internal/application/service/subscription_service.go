package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// SubscriptionService handles subscription renewal and business creation
type SubscriptionService struct {
	businessRepo repository.BusinessRepository
	planRepo     repository.PlanRepository
	trialDays    int
	audit        *auditor
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	businessRepo repository.BusinessRepository,
	planRepo repository.PlanRepository,
	auditRepo repository.AuditLogRepository,
	trialDays int,
) *SubscriptionService {
	if trialDays <= 0 {
		trialDays = 14
	}
	return &SubscriptionService{
		businessRepo: businessRepo,
		planRepo:     planRepo,
		trialDays:    trialDays,
		audit:        newAuditor(auditRepo),
	}
}

// Renew activates a subscription plan on a business. The new expiry is
// measured from the moment of renewal, not from the previous expiry, so
// renewing early forfeits the remaining window.
func (s *SubscriptionService) Renew(ctx context.Context, op Operator, businessID uuid.UUID, planCode string) (*entity.Business, error) {
	if err := requireOwner(op); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByCode(ctx, planCode)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NewNotFoundError("Subscription plan")
	}

	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	business.SubscriptionStatus = enum.SubscriptionActive
	business.SubscriptionExpiry = time.Now().AddDate(0, plan.DurationMonths, 0)
	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}

	s.audit.recordFor(ctx, business.ID, enum.AuditSubscription, op.Name,
		fmt.Sprintf("Renewed subscription with plan '%s' until %s",
			plan.Name, business.SubscriptionExpiry.Format("2006-01-02")))

	return business, nil
}

// ListPlans lists the available subscription plans
func (s *SubscriptionService) ListPlans(ctx context.Context) ([]entity.SubscriptionPlan, error) {
	return s.planRepo.List(ctx)
}

// CreateBusiness adds another business under the owner's account, starting on
// a trial subscription
func (s *SubscriptionService) CreateBusiness(ctx context.Context, op Operator, name, category string) (*entity.Business, error) {
	if err := requireOwner(op); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperror.NewBadRequestError("Business name is required")
	}

	business := &entity.Business{
		ID:                 utils.NewID(),
		UserID:             op.ID,
		Name:               name,
		Category:           category,
		SubscriptionStatus: enum.SubscriptionTrial,
		SubscriptionExpiry: time.Now().AddDate(0, 0, s.trialDays),
	}
	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	s.audit.recordFor(ctx, business.ID, enum.AuditCreate, op.Name,
		fmt.Sprintf("Created business '%s'", business.Name))
	return business, nil
}

// ListBusinesses lists the owner's businesses
func (s *SubscriptionService) ListBusinesses(ctx context.Context, op Operator) ([]entity.Business, error) {
	return s.businessRepo.ListByUser(ctx, op.ID)
}
