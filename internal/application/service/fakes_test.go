package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/pagination"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// In-memory fakes backing the service tests. They reproduce the contracts the
// gorm repositories honor: nil on not-found, business scoping ignored (each
// test uses a single business), deterministic ordering where callers rely on it.

var testBusinessID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func testCtx() context.Context {
	return infraRepo.WithBusiness(context.Background(), testBusinessID)
}

func testCtxFor(businessID uuid.UUID) context.Context {
	return infraRepo.WithBusiness(context.Background(), businessID)
}

func ownerOp() Operator {
	return Operator{ID: utils.NewID(), Name: "Ana", Role: enum.RoleOwner}
}

func employeeOp(perms ...string) Operator {
	return Operator{ID: utils.NewID(), Name: "Beto", Role: enum.RoleEmployee, Permissions: perms}
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.InventoryItem
	order []uuid.UUID
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.InventoryItem)}
}

func (r *fakeItemRepo) add(item entity.InventoryItem) *entity.InventoryItem {
	if item.ID == uuid.Nil {
		item.ID = utils.NewID()
	}
	if item.BusinessID == uuid.Nil {
		item.BusinessID = testBusinessID
	}
	copy := item
	r.items[copy.ID] = &copy
	r.order = append(r.order, copy.ID)
	return &copy
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	r.add(*item)
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copy := *item
	return &copy, nil
}

func (r *fakeItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetByName(ctx context.Context, name string) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && strings.TrimSpace(item.Name) == name {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	copy := *item
	r.items[item.ID] = &copy
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.InventoryItem, int64, error) {
	var out []entity.InventoryItem
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && item.IsLowStock() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ReplaceNameGroup(ctx context.Context, name string, variants []entity.InventoryItem) error {
	for id, item := range r.items {
		if strings.TrimSpace(item.Name) == name {
			delete(r.items, id)
		}
	}
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.items[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
	for i := range variants {
		r.add(variants[i])
	}
	return nil
}

func (r *fakeItemRepo) AdjustQuantityBatch(ctx context.Context, deltas map[uuid.UUID]float64) error {
	for id, delta := range deltas {
		if item, ok := r.items[id]; ok {
			item.Quantity = utils.RoundQuantity(item.Quantity + delta)
		}
	}
	return nil
}

func (r *fakeItemRepo) DeleteAll(ctx context.Context) error {
	r.items = make(map[uuid.UUID]*entity.InventoryItem)
	r.order = nil
	return nil
}

type fakeSaleRepo struct {
	sales []entity.Sale
}

func (r *fakeSaleRepo) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	r.sales = append(r.sales, sales...)
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return r.sales, int64(len(r.sales)), nil
}

func (r *fakeSaleRepo) ListByDay(ctx context.Context, day time.Time) ([]entity.Sale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var out []entity.Sale
	for _, sale := range r.sales {
		if !sale.SaleDate.Before(start) && sale.SaleDate.Before(end) {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) DeleteAll(ctx context.Context) error {
	r.sales = nil
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	copy := *customer
	r.customers[customer.ID] = &copy
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	copy := *customer
	return &copy, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	copy := *customer
	r.customers[customer.ID] = &copy
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) ListDormant(ctx context.Context, cutoff time.Time) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if c.LastVisit != nil && c.LastVisit.Before(cutoff) {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	copy := *supplier
	r.suppliers[supplier.ID] = &copy
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	copy := *supplier
	return &copy, nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	copy := *supplier
	r.suppliers[supplier.ID] = &copy
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	order        []uuid.UUID
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	copy := *appointment
	r.appointments[appointment.ID] = &copy
	r.order = append(r.order, appointment.ID)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copy := *appointment
	return &copy, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	copy := *appointment
	r.appointments[appointment.ID] = &copy
	return nil
}

func (r *fakeAppointmentRepo) ListByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, id := range r.order {
		if a, ok := r.appointments[id]; ok && a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, params *repository.AppointmentFilterParams) ([]entity.Appointment, int64, error) {
	var out []entity.Appointment
	for _, id := range r.order {
		if a, ok := r.appointments[id]; ok {
			if params.Status != "" && string(a.Status) != params.Status {
				continue
			}
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
	order    []uuid.UUID
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	copy := *expense
	r.expenses[expense.ID] = &copy
	r.order = append(r.order, expense.ID)
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	copy := *expense
	return &copy, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	copy := *expense
	r.expenses[expense.ID] = &copy
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, id := range r.order {
		if e, ok := r.expenses[id]; ok {
			if params.Unpaid && e.IsPaid {
				continue
			}
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeExpenseRepo) ListUnpaid(ctx context.Context) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, id := range r.order {
		if e, ok := r.expenses[id]; ok && !e.IsPaid {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	logs []entity.AuditLog
}

func (r *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, params *repository.AuditLogFilterParams) ([]entity.AuditLog, int64, error) {
	var out []entity.AuditLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if params.Action != "" && string(r.logs[i].Action) != params.Action {
			continue
		}
		out = append(out, r.logs[i])
	}
	return out, int64(len(out)), nil
}

func (r *fakeAuditRepo) byAction(action enum.AuditAction) []entity.AuditLog {
	var out []entity.AuditLog
	for _, l := range r.logs {
		if l.Action == action {
			out = append(out, l)
		}
	}
	return out
}

type fakeBusinessRepo struct {
	businesses map[uuid.UUID]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[uuid.UUID]*entity.Business)}
}

func (r *fakeBusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	copy := *business
	r.businesses[business.ID] = &copy
	return nil
}

func (r *fakeBusinessRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, ok := r.businesses[id]
	if !ok {
		return nil, nil
	}
	copy := *business
	return &copy, nil
}

func (r *fakeBusinessRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Business, error) {
	var out []entity.Business
	for _, b := range r.businesses {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) Update(ctx context.Context, business *entity.Business) error {
	copy := *business
	r.businesses[business.ID] = &copy
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Phone == phone {
			copy := *user
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[uuid.UUID]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	copy := *employee
	r.employees[employee.ID] = &copy
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	copy := *employee
	return &copy, nil
}

func (r *fakeEmployeeRepo) GetByPhone(ctx context.Context, phone string) (*entity.Employee, error) {
	for _, employee := range r.employees {
		if employee.Phone == phone {
			copy := *employee
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]entity.Employee, error) {
	var out []entity.Employee
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	copy := *employee
	r.employees[employee.ID] = &copy
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.employees, id)
	return nil
}

type fakeSettingsRepo struct {
	settings map[uuid.UUID]*entity.BusinessSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.BusinessSettings)}
}

func (r *fakeSettingsRepo) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.BusinessSettings, error) {
	settings, ok := r.settings[businessID]
	if !ok {
		return nil, nil
	}
	copy := *settings
	return &copy, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *entity.BusinessSettings) error {
	copy := *settings
	r.settings[settings.BusinessID] = &copy
	return nil
}

type fakePlanRepo struct {
	plans []entity.SubscriptionPlan
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.SubscriptionPlan) error {
	r.plans = append(r.plans, *plan)
	return nil
}

func (r *fakePlanRepo) GetByCode(ctx context.Context, code string) (*entity.SubscriptionPlan, error) {
	for i := range r.plans {
		if r.plans[i].Code == code {
			copy := r.plans[i]
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) List(ctx context.Context) ([]entity.SubscriptionPlan, error) {
	return r.plans, nil
}
