package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erginhw/pos-api/internal/application/dto"
	"github.com/erginhw/pos-api/internal/application/inventory"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica de rollback
// ──────────────────────────────────────────────────────────────────────────────

type restockState struct {
	products map[string]*entity.Product
	restocks map[string]*entity.Restock
	lines    []*entity.RestockLine
}

type stubProductRepo struct{ st *restockState }

func (r *stubProductRepo) Create(p *entity.Product) error { r.st.products[p.ID] = p; return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *stubProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *stubProductRepo) UpdateStock(productID string, stock int) error {
	p, ok := r.st.products[productID]
	if !ok {
		return fmt.Errorf("producto %s no existe", productID)
	}
	p.Stock = stock
	return nil
}
func (r *stubProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Delete(id string) error           { return nil }

type stubRestockRepo struct{ st *restockState }

func (r *stubRestockRepo) Create(rs *entity.Restock) error { r.st.restocks[rs.ID] = rs; return nil }
func (r *stubRestockRepo) CreateLine(l *entity.RestockLine) error {
	r.st.lines = append(r.st.lines, l)
	return nil
}
func (r *stubRestockRepo) GetByID(id string) (*entity.Restock, error) {
	rs, ok := r.st.restocks[id]
	if !ok {
		return nil, nil
	}
	return rs, nil
}
func (r *stubRestockRepo) GetLinesByRestockID(restockID string) ([]repository.RestockLineWithProduct, error) {
	var out []repository.RestockLineWithProduct
	for _, l := range r.st.lines {
		if l.RestockID != restockID {
			continue
		}
		name := ""
		if p, ok := r.st.products[l.ProductID]; ok {
			name = p.Name
		}
		out = append(out, repository.RestockLineWithProduct{RestockLine: *l, ProductName: name})
	}
	return out, nil
}

type stubSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func (r *stubSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *stubSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *stubSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }

type stubRestockTxRunner struct{ st *restockState }

func (tr *stubRestockTxRunner) RunRestock(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	restockRepo repository.RestockRepository,
) error) error {
	stockBefore := make(map[string]int, len(tr.st.products))
	for id, p := range tr.st.products {
		stockBefore[id] = p.Stock
	}
	restocksBefore := make(map[string]bool, len(tr.st.restocks))
	for id := range tr.st.restocks {
		restocksBefore[id] = true
	}
	linesBefore := len(tr.st.lines)

	err := fn(&stubProductRepo{st: tr.st}, &stubRestockRepo{st: tr.st})
	if err != nil {
		for id, stock := range stockBefore {
			tr.st.products[id].Stock = stock
		}
		for id := range tr.st.restocks {
			if !restocksBefore[id] {
				delete(tr.st.restocks, id)
			}
		}
		tr.st.lines = tr.st.lines[:linesBefore]
		return err
	}
	return nil
}

func newRestockState() *restockState {
	return &restockState{
		products: map[string]*entity.Product{
			"p-clavos":  {ID: "p-clavos", Name: "Clavos 2\"", Category: "Fijaciones", UnitPrice: decimal.RequireFromString("0.10"), Stock: 50},
			"p-pintura": {ID: "p-pintura", Name: "Pintura blanca", Category: "Pinturas", UnitPrice: decimal.RequireFromString("8.00"), Stock: 4},
		},
		restocks: map[string]*entity.Restock{},
	}
}

func newRestockUseCase(st *restockState) *inventory.RestockUseCase {
	suppliers := &stubSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s-1": {ID: "s-1", Name: "Distribuidora Central"},
	}}
	return inventory.NewRestockUseCase(&stubRestockTxRunner{st: st}, suppliers, &stubRestockRepo{st: st})
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordRestock
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordRestock_IncrementaStockYCalculaCosto(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)

	resp, err := uc.RecordRestock(context.Background(), dto.CreateRestockRequest{
		SupplierID: "s-1",
		Items: []dto.RestockItemRequest{
			{ProductID: "p-clavos", Quantity: 100, UnitCost: decimal.RequireFromString("0.05")},
			{ProductID: "p-pintura", Quantity: 10, UnitCost: decimal.RequireFromString("5.50")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 100 × 0.05 + 10 × 5.50 = 60.00
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("60.00")),
		"costo total esperado 60.00, obtenido %s", resp.TotalCost)
	assert.Equal(t, "s-1", resp.SupplierID)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, 150, st.products["p-clavos"].Stock)
	assert.Equal(t, 14, st.products["p-pintura"].Stock)
	assert.Len(t, st.restocks, 1)
	assert.Len(t, st.lines, 2)
}

func TestRecordRestock_CostoCeroEsValido(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)

	// Mercancía en consignación o bonificada entra con costo 0
	resp, err := uc.RecordRestock(context.Background(), dto.CreateRestockRequest{
		SupplierID: "s-1",
		Items:      []dto.RestockItemRequest{{ProductID: "p-clavos", Quantity: 5, UnitCost: decimal.Zero}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalCost.IsZero())
	assert.Equal(t, 55, st.products["p-clavos"].Stock)
}

func TestRecordRestock_ProductoInexistente_RevierteTodo(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)

	_, err := uc.RecordRestock(context.Background(), dto.CreateRestockRequest{
		SupplierID: "s-1",
		Items: []dto.RestockItemRequest{
			{ProductID: "p-clavos", Quantity: 10, UnitCost: decimal.RequireFromString("0.05")},
			{ProductID: "p-fantasma", Quantity: 1, UnitCost: decimal.Zero},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 50, st.products["p-clavos"].Stock, "el incremento de la primera línea debe revertirse")
	assert.Empty(t, st.restocks)
	assert.Empty(t, st.lines)
}

func TestRecordRestock_ProveedorInexistente_RetornaNotFound(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)

	_, err := uc.RecordRestock(context.Background(), dto.CreateRestockRequest{
		SupplierID: "s-fantasma",
		Items:      []dto.RestockItemRequest{{ProductID: "p-clavos", Quantity: 1, UnitCost: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordRestock_Validaciones(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateRestockRequest
	}{
		{"sin proveedor", dto.CreateRestockRequest{Items: []dto.RestockItemRequest{{ProductID: "p-clavos", Quantity: 1}}}},
		{"sin items", dto.CreateRestockRequest{SupplierID: "s-1"}},
		{"cantidad cero", dto.CreateRestockRequest{SupplierID: "s-1", Items: []dto.RestockItemRequest{{ProductID: "p-clavos", Quantity: 0}}}},
		{"costo negativo", dto.CreateRestockRequest{SupplierID: "s-1", Items: []dto.RestockItemRequest{{ProductID: "p-clavos", Quantity: 1, UnitCost: decimal.RequireFromString("-1")}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordRestock(ctx, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, st.restocks)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetRestock
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRestock_DevuelveLineasConNombreDeProducto(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)

	created, err := uc.RecordRestock(context.Background(), dto.CreateRestockRequest{
		SupplierID: "s-1",
		Items:      []dto.RestockItemRequest{{ProductID: "p-pintura", Quantity: 2, UnitCost: decimal.RequireFromString("5.00")}},
	})
	require.NoError(t, err)

	got, err := uc.GetRestock(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Pintura blanca", got.Items[0].ProductName)
	assert.True(t, got.Items[0].LineCost.Equal(decimal.RequireFromString("10.00")))
}

func TestGetRestock_Inexistente_RetornaNotFound(t *testing.T) {
	st := newRestockState()
	uc := newRestockUseCase(st)

	_, err := uc.GetRestock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
