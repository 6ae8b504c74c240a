package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService resolves phone+password credentials into an operator session and
// manages accounts and employees
type AuthService struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	employeeRepo repository.EmployeeRepository
	jwtManager   *utils.JWTManager
	trialDays    int
	audit        *auditor
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	employeeRepo repository.EmployeeRepository,
	auditRepo repository.AuditLogRepository,
	jwtManager *utils.JWTManager,
	trialDays int,
) *AuthService {
	if trialDays <= 0 {
		trialDays = 14
	}
	return &AuthService{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
		jwtManager:   jwtManager,
		trialDays:    trialDays,
		audit:        newAuditor(auditRepo),
	}
}

// AuthResult is the resolved session returned by register, login and refresh
type AuthResult struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	OperatorID   uuid.UUID  `json:"operator_id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	BusinessID   *uuid.UUID `json:"business_id,omitempty"`
	Permissions  []string   `json:"permissions"`
}

// RegisterInput represents the account registration input
type RegisterInput struct {
	Name         string
	Phone        string
	Password     string
	BusinessName string
	Category     string
}

// Register creates an account owner and their first business on a trial
// subscription
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	if input.Phone == "" || input.Password == "" || input.Name == "" {
		return nil, apperror.NewBadRequestError("Name, phone and password are required")
	}
	if input.BusinessName == "" {
		return nil, apperror.NewBadRequestError("Business name is required")
	}

	existing, err := s.userRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Phone number already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:       utils.NewID(),
		Name:     input.Name,
		Phone:    input.Phone,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	business := &entity.Business{
		ID:                 utils.NewID(),
		UserID:             user.ID,
		Name:               input.BusinessName,
		Category:           input.Category,
		SubscriptionStatus: enum.SubscriptionTrial,
		SubscriptionExpiry: time.Now().AddDate(0, 0, s.trialDays),
	}
	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	return s.issueTokens(user.ID, user.Name, user.Phone, string(enum.RoleOwner), &business.ID, nil)
}

// Login authenticates a phone+password pair, trying account owners first and
// falling back to employees, and records a LOGIN audit entry
func (s *AuthService) Login(ctx context.Context, phone, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user != nil && bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
		businesses, err := s.businessRepo.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		var businessID *uuid.UUID
		if len(businesses) > 0 {
			businessID = &businesses[0].ID
			s.audit.recordFor(ctx, businesses[0].ID, enum.AuditLogin, user.Name,
				fmt.Sprintf("'%s' logged in as owner", user.Name))
		}
		return s.issueTokens(user.ID, user.Name, user.Phone, string(enum.RoleOwner), businessID, nil)
	}

	employee, err := s.employeeRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if employee != nil && bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)) == nil {
		s.audit.recordFor(ctx, employee.BusinessID, enum.AuditLogin, employee.Name,
			fmt.Sprintf("'%s' logged in as employee", employee.Name))
		return s.issueTokens(employee.ID, employee.Name, employee.Phone,
			string(enum.RoleEmployee), &employee.BusinessID, employee.Permissions)
	}

	return nil, apperror.ErrInvalidCredentials
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	operatorID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		businesses, err := s.businessRepo.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		var businessID *uuid.UUID
		if len(businesses) > 0 {
			businessID = &businesses[0].ID
		}
		return s.issueTokens(user.ID, user.Name, user.Phone, string(enum.RoleOwner), businessID, nil)
	}

	employee, err := s.employeeRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if employee != nil {
		return s.issueTokens(employee.ID, employee.Name, employee.Phone,
			string(enum.RoleEmployee), &employee.BusinessID, employee.Permissions)
	}

	return nil, apperror.ErrInvalidToken
}

// ChangePassword verifies the current password and replaces it
func (s *AuthService) ChangePassword(ctx context.Context, op Operator, current, next string) error {
	if next == "" {
		return apperror.NewBadRequestError("New password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if op.Role == enum.RoleOwner {
		user, err := s.userRepo.GetByID(ctx, op.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.ErrUnauthorized
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
			return apperror.ErrInvalidCredentials
		}
		user.Password = string(hash)
		return s.userRepo.Update(ctx, user)
	}

	employee, err := s.employeeRepo.GetByID(ctx, op.ID)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(current)) != nil {
		return apperror.ErrInvalidCredentials
	}
	employee.Password = string(hash)
	return s.employeeRepo.Update(ctx, employee)
}

// EmployeeInput represents the employee create/update input
type EmployeeInput struct {
	Name        string
	Phone       string
	Password    string
	Permissions []string
}

// CreateEmployee adds a staff member with a permission set. Owner only.
func (s *AuthService) CreateEmployee(ctx context.Context, op Operator, input *EmployeeInput) (*entity.Employee, error) {
	if err := requireOwner(op); err != nil {
		return nil, err
	}
	businessID, err := s.requireBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if input.Name == "" || input.Phone == "" || input.Password == "" {
		return nil, apperror.NewBadRequestError("Name, phone and password are required")
	}

	if taken, err := s.phoneTaken(ctx, input.Phone); err != nil {
		return nil, err
	} else if taken {
		return nil, apperror.NewConflictError("Phone number already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		ID:          utils.NewID(),
		BusinessID:  businessID,
		Name:        input.Name,
		Phone:       input.Phone,
		Password:    string(hash),
		Role:        enum.RoleEmployee,
		Permissions: input.Permissions,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditCreate, op.Name,
		fmt.Sprintf("Created employee '%s'", employee.Name))
	return employee, nil
}

// UpdateEmployee updates a staff member's details and permission set. Owner
// only. An empty password leaves the current one in place.
func (s *AuthService) UpdateEmployee(ctx context.Context, op Operator, id uuid.UUID, input *EmployeeInput) (*entity.Employee, error) {
	if err := requireOwner(op); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Phone != "" && input.Phone != employee.Phone {
		if taken, err := s.phoneTaken(ctx, input.Phone); err != nil {
			return nil, err
		} else if taken {
			return nil, apperror.NewConflictError("Phone number already in use")
		}
		employee.Phone = input.Phone
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.Password = string(hash)
	}
	if input.Permissions != nil {
		employee.Permissions = input.Permissions
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditUpdate, op.Name,
		fmt.Sprintf("Updated employee '%s'", employee.Name))
	return employee, nil
}

// DeleteEmployee removes a staff member. Owner only.
func (s *AuthService) DeleteEmployee(ctx context.Context, op Operator, id uuid.UUID) error {
	if err := requireOwner(op); err != nil {
		return err
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.record(ctx, enum.AuditDelete, op.Name,
		fmt.Sprintf("Deleted employee '%s'", employee.Name))
	return nil
}

// ListEmployees lists the business's staff
func (s *AuthService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *AuthService) issueTokens(operatorID uuid.UUID, name, phone, role string, businessID *uuid.UUID, permissions []string) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(operatorID, name, phone, role, businessID, permissions)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(operatorID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		OperatorID:   operatorID,
		Name:         name,
		Phone:        phone,
		Role:         role,
		BusinessID:   businessID,
		Permissions:  permissions,
	}, nil
}

func (s *AuthService) phoneTaken(ctx context.Context, phone string) (bool, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return false, err
	}
	if user != nil {
		return true, nil
	}
	employee, err := s.employeeRepo.GetByPhone(ctx, phone)
	if err != nil {
		return false, err
	}
	return employee != nil, nil
}

func (s *AuthService) requireBusiness(ctx context.Context) (uuid.UUID, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return uuid.Nil, apperror.ErrBusinessRequired
	}
	return businessID, nil
}
