package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// auditor appends narrative entries to the audit trail. Recording is
// best-effort: a failed write warns but never fails the operation it
// describes.
type auditor struct {
	repo repository.AuditLogRepository
}

func newAuditor(repo repository.AuditLogRepository) *auditor {
	return &auditor{repo: repo}
}

func (a *auditor) record(ctx context.Context, action enum.AuditAction, operatorName, details string) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		log.Printf("audit: no business context, dropping %s entry", action)
		return
	}
	a.recordFor(ctx, businessID, action, operatorName, details)
}

func (a *auditor) recordFor(ctx context.Context, businessID uuid.UUID, action enum.AuditAction, operatorName, details string) {
	entry := &entity.AuditLog{
		BusinessID:   businessID,
		Action:       action,
		OperatorName: operatorName,
		Details:      details,
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}

// AuditService exposes the audit trail read side
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// ListLogs lists audit entries newest-first
func (s *AuditService) ListLogs(ctx context.Context, params *repository.AuditLogFilterParams) (*pagination.PaginatedResult[entity.AuditLog], error) {
	logs, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
