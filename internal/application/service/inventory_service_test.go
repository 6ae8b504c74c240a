package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture() (*InventoryService, *fakeItemRepo, *fakeSaleRepo, *fakeSupplierRepo, *fakeAuditRepo) {
	itemRepo := newFakeItemRepo()
	saleRepo := &fakeSaleRepo{}
	supplierRepo := newFakeSupplierRepo()
	auditRepo := &fakeAuditRepo{}
	service := NewInventoryService(itemRepo, saleRepo, supplierRepo, newFakeBusinessRepo(), auditRepo, notify.NewNullMessenger())
	return service, itemRepo, saleRepo, supplierRepo, auditRepo
}

func TestSaveProductCreatesVariantGroup(t *testing.T) {
	service, itemRepo, _, _, auditRepo := newInventoryFixture()
	ctx := testCtx()

	items, err := service.SaveProduct(ctx, ownerOp(), []ProductVariantInput{
		{Name: "Beer", Size: "330ml", Quantity: 24, CostPrice: 1.50, SellingPrice: 2.50, Type: enum.ItemProduct},
		{Name: "Beer", Size: "500ml", Quantity: 12, CostPrice: 2.00, SellingPrice: 3.50, Type: enum.ItemProduct},
	}, "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Prices are stored in cents
	assert.Equal(t, int64(150), items[0].CostPrice)
	assert.Equal(t, int64(250), items[0].SellingPrice)

	stored, err := itemRepo.GetByName(ctx, "Beer")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Len(t, auditRepo.byAction(enum.AuditCreate), 1)
}

func TestSaveProductReplacesWholeGroup(t *testing.T) {
	service, itemRepo, _, _, auditRepo := newInventoryFixture()
	ctx := testCtx()

	first, err := service.SaveProduct(ctx, ownerOp(), []ProductVariantInput{
		{Name: "Beer", Size: "330ml", Quantity: 24, Type: enum.ItemProduct},
		{Name: "Beer", Size: "500ml", Quantity: 12, Type: enum.ItemProduct},
	}, "")
	require.NoError(t, err)

	// Re-save with one variant dropped and one kept by ID
	keep := first[0].ID
	items, err := service.SaveProduct(ctx, ownerOp(), []ProductVariantInput{
		{ID: &keep, Name: "Beer", Size: "330ml", Quantity: 30, Type: enum.ItemProduct},
	}, "Beer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep, items[0].ID)

	stored, _ := itemRepo.GetByName(ctx, "Beer")
	require.Len(t, stored, 1)
	assert.Equal(t, float64(30), stored[0].Quantity)
	assert.Len(t, auditRepo.byAction(enum.AuditUpdate), 1)
}

func TestSaveProductRenameMovesGroup(t *testing.T) {
	service, itemRepo, _, _, _ := newInventoryFixture()
	ctx := testCtx()

	_, err := service.SaveProduct(ctx, ownerOp(), []ProductVariantInput{
		{Name: "Beer", Quantity: 24, Type: enum.ItemProduct},
	}, "")
	require.NoError(t, err)

	_, err = service.SaveProduct(ctx, ownerOp(), []ProductVariantInput{
		{Name: "Lager", Quantity: 24, Type: enum.ItemProduct},
	}, "Beer")
	require.NoError(t, err)

	old, _ := itemRepo.GetByName(ctx, "Beer")
	assert.Empty(t, old)
	renamed, _ := itemRepo.GetByName(ctx, "Lager")
	assert.Len(t, renamed, 1)
}

func TestSaveProductServiceGetsAvailabilityQuantity(t *testing.T) {
	service, _, _, _, _ := newInventoryFixture()

	items, err := service.SaveProduct(testCtx(), ownerOp(), []ProductVariantInput{
		{Name: "Haircut", Quantity: 3, SellingPrice: 30, Type: enum.ItemService},
	}, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, float64(entity.ServiceAvailableQuantity), items[0].Quantity)
}

func TestSaveProductValidation(t *testing.T) {
	service, _, _, _, _ := newInventoryFixture()

	_, err := service.SaveProduct(testCtx(), ownerOp(), nil, "")
	assert.Error(t, err)

	_, err = service.SaveProduct(testCtx(), ownerOp(), []ProductVariantInput{{Name: "   "}}, "")
	assert.Error(t, err)

	_, err = service.SaveProduct(testCtx(), employeeOp(PermSales), []ProductVariantInput{{Name: "Beer"}}, "")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestDeleteItemMissingIsNotAnError(t *testing.T) {
	service, itemRepo, _, _, auditRepo := newInventoryFixture()
	ctx := testCtx()

	item := itemRepo.add(entity.InventoryItem{Name: "Beer", Type: enum.ItemProduct})

	require.NoError(t, service.DeleteItem(ctx, ownerOp(), item.ID))
	require.NoError(t, service.DeleteItem(ctx, ownerOp(), uuid.New()))

	deletes := auditRepo.byAction(enum.AuditDelete)
	require.Len(t, deletes, 2)
	assert.Contains(t, deletes[0].Details, "Beer")
	assert.Contains(t, deletes[1].Details, "Unknown")
}

func TestRestockIncrementsQuantity(t *testing.T) {
	service, itemRepo, _, _, _ := newInventoryFixture()
	ctx := testCtx()

	item := itemRepo.add(entity.InventoryItem{Name: "Beer", Type: enum.ItemProduct, Quantity: 5})

	require.NoError(t, service.Restock(ctx, ownerOp(), item.ID, 7.5))

	updated, _ := itemRepo.GetByID(ctx, item.ID)
	assert.Equal(t, 12.5, updated.Quantity)

	err := service.Restock(ctx, ownerOp(), item.ID, 0)
	assert.Error(t, err)

	// Restocking a missing item is a no-op
	assert.NoError(t, service.Restock(ctx, ownerOp(), uuid.New(), 3))
}

func TestClearInventoryWipesItemsAndSales(t *testing.T) {
	service, itemRepo, saleRepo, _, auditRepo := newInventoryFixture()
	ctx := testCtx()

	itemRepo.add(entity.InventoryItem{Name: "Beer", Type: enum.ItemProduct})
	saleRepo.sales = []entity.Sale{{ID: uuid.New()}}

	require.NoError(t, service.ClearInventory(ctx, ownerOp()))

	items, total, _ := itemRepo.List(ctx, nil)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.Empty(t, saleRepo.sales)
	assert.Len(t, auditRepo.byAction(enum.AuditDelete), 1)
}

func TestContactSupplierRequiresLowStockItems(t *testing.T) {
	service, itemRepo, _, supplierRepo, _ := newInventoryFixture()
	ctx := testCtx()

	supplier := &entity.Supplier{ID: uuid.New(), BusinessID: testBusinessID, Name: "Distribuidora", Phone: "922222222"}
	require.NoError(t, supplierRepo.Create(ctx, supplier))

	// No low-stock items linked to the supplier yet
	err := service.ContactSupplier(ctx, ownerOp(), supplier.ID)
	assert.Error(t, err)

	itemRepo.add(entity.InventoryItem{
		Name: "Beer", Type: enum.ItemProduct, Quantity: 1, LowStockAlert: 5, SupplierID: &supplier.ID,
	})
	assert.NoError(t, service.ContactSupplier(ctx, ownerOp(), supplier.ID))

	// Unknown supplier
	err = service.ContactSupplier(ctx, ownerOp(), uuid.New())
	assert.Error(t, err)
}
