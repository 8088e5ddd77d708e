package sales_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erginhw/pos-api/internal/application/dto"
	"github.com/erginhw/pos-api/internal/application/sales"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeTxRunner emula la semántica transaccional: toma un snapshot del estado
// antes de ejecutar fn y lo restaura si fn falla (rollback). Los repos que
// entrega a fn escriben sobre el mismo estado compartido.
// ──────────────────────────────────────────────────────────────────────────────

type storeState struct {
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
	lines    []*entity.SaleLine

	// inyección de fallos
	failCreateLineAt int // 1-based; 0 = nunca falla
	createLineCalls  int
}

type fakeProductRepo struct{ st *storeState }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.st.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	p, ok := r.st.products[productID]
	if !ok {
		return fmt.Errorf("producto %s no existe", productID)
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error           { return nil }

type fakeSaleRepo struct{ st *storeState }

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.st.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) CreateLine(l *entity.SaleLine) error {
	r.st.createLineCalls++
	if r.st.failCreateLineAt > 0 && r.st.createLineCalls == r.st.failCreateLineAt {
		return fmt.Errorf("fallo simulado al insertar línea %d", r.st.createLineCalls)
	}
	r.st.lines = append(r.st.lines, l)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.st.sales[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSaleRepo) GetLinesBySaleID(saleID string) ([]repository.SaleLineWithProduct, error) {
	var out []repository.SaleLineWithProduct
	for _, l := range r.st.lines {
		if l.SaleID != saleID {
			continue
		}
		name := ""
		if p, ok := r.st.products[l.ProductID]; ok {
			name = p.Name
		}
		out = append(out, repository.SaleLineWithProduct{SaleLine: *l, ProductName: name})
	}
	return out, nil
}

func (r *fakeSaleRepo) List() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.st.sales))
	for _, s := range r.st.sales {
		out = append(out, s)
	}
	return out, nil
}

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeClientRepo) List() ([]*entity.Client, error) { return nil, nil }

type fakeTxRunner struct{ st *storeState }

func (tr *fakeTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	// snapshot para emular rollback
	stockBefore := make(map[string]int, len(tr.st.products))
	for id, p := range tr.st.products {
		stockBefore[id] = p.Stock
	}
	salesBefore := make(map[string]bool, len(tr.st.sales))
	for id := range tr.st.sales {
		salesBefore[id] = true
	}
	linesBefore := len(tr.st.lines)

	err := fn(&fakeProductRepo{st: tr.st}, &fakeSaleRepo{st: tr.st})
	if err != nil {
		for id, stock := range stockBefore {
			tr.st.products[id].Stock = stock
		}
		for id := range tr.st.sales {
			if !salesBefore[id] {
				delete(tr.st.sales, id)
			}
		}
		tr.st.lines = tr.st.lines[:linesBefore]
		return err
	}
	return nil
}

// conflictTxRunner emula un runner que agotó sus reintentos.
type conflictTxRunner struct{}

func (conflictTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fmt.Errorf("%w: deadlock detected (SQLSTATE 40P01)", domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newTestState() *storeState {
	return &storeState{
		products: map[string]*entity.Product{
			"p-martillo": {ID: "p-martillo", Name: "Martillo", Category: "Herramientas", UnitPrice: decimal.RequireFromString("2.50"), Stock: 10},
			"p-taladro":  {ID: "p-taladro", Name: "Taladro", Category: "Eléctricos", UnitPrice: decimal.RequireFromString("10.00"), Stock: 3},
		},
		sales: map[string]*entity.Sale{},
	}
}

func newTestUseCase(st *storeState) (*sales.SaleUseCase, *fakeClientRepo) {
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		"c-1": {ID: "c-1", Name: "Ferretería El Tornillo", TIN: "123-456-789"},
	}}
	uc := sales.NewSaleUseCase(&fakeTxRunner{st: st}, clients, &fakeSaleRepo{st: st}, nil)
	return uc, clients
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DescuentaStockYCalculaTotal(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	resp, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-martillo", Quantity: 3},
			{ProductID: "p-taladro", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 3 × 2.50 + 1 × 10.00 = 17.50, aritmética decimal exacta
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("17.50")),
		"total esperado 17.50, obtenido %s", resp.Total)
	assert.True(t, strings.HasPrefix(resp.Number, "INV-"), "el número de venta debe llevar prefijo INV-")
	assert.Equal(t, "c-1", resp.ClientID)
	require.Len(t, resp.Items, 2)

	// Stock descontado
	assert.Equal(t, 7, st.products["p-martillo"].Stock)
	assert.Equal(t, 2, st.products["p-taladro"].Stock)

	// Cabecera y líneas persistidas
	assert.Len(t, st.sales, 1)
	assert.Len(t, st.lines, 2)
}

func TestRecordSale_CongelaPrecioDelCatalogo(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	resp, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items:    []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 2}},
	})
	require.NoError(t, err)

	// El precio viene del catálogo, nunca del request
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.RequireFromString("5.00")))
}

func TestRecordSale_StockExactoQuedaEnCero(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	// p-taladro tiene exactamente 3 unidades; vender 3 debe pasar
	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items:    []dto.SaleItemRequest{{ProductID: "p-taladro", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, st.products["p-taladro"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale — consolidación de líneas duplicadas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ConsolidaLineasDuplicadas(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	resp, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-martillo", Quantity: 2},
			{ProductID: "p-taladro", Quantity: 1},
			{ProductID: "p-martillo", Quantity: 4},
		},
	})
	require.NoError(t, err)

	// Las dos líneas de martillo se consolidan en una sola con cantidad 6,
	// conservando el orden de primera aparición
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "p-martillo", resp.Items[0].ProductID)
	assert.Equal(t, 6, resp.Items[0].Quantity)
	assert.Equal(t, "p-taladro", resp.Items[1].ProductID)

	assert.Equal(t, 4, st.products["p-martillo"].Stock)
	assert.Len(t, st.lines, 2, "deben persistirse las líneas consolidadas, no las originales")
}

func TestRecordSale_ConsolidacionValidaStockSobreLaSuma(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	// 6 + 5 = 11 > 10 de stock: cada línea por separado cabría, la suma no
	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-martillo", Quantity: 6},
			{ProductID: "p-martillo", Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, st.products["p-martillo"].Stock, "el stock no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale — atomicidad y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_StockInsuficiente_NoAplicaNada(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	// La primera línea cabe, la segunda no: nada debe persistirse
	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-martillo", Quantity: 1},
			{ProductID: "p-taladro", Quantity: 99},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, st.products["p-martillo"].Stock, "rollback debe restaurar la primera línea")
	assert.Equal(t, 3, st.products["p-taladro"].Stock)
	assert.Empty(t, st.sales)
	assert.Empty(t, st.lines)
}

func TestRecordSale_FalloAlPersistirLinea_RevierteStock(t *testing.T) {
	st := newTestState()
	st.failCreateLineAt = 2 // la segunda línea falla
	uc, _ := newTestUseCase(st)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-martillo", Quantity: 3},
			{ProductID: "p-taladro", Quantity: 1},
		},
	})
	require.Error(t, err)

	assert.Equal(t, 10, st.products["p-martillo"].Stock, "el descuento de stock debe revertirse")
	assert.Equal(t, 3, st.products["p-taladro"].Stock)
	assert.Empty(t, st.sales)
	assert.Empty(t, st.lines)
}

func TestRecordSale_ProductoInexistente_RetornaNotFound(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-martillo", Quantity: 1},
			{ProductID: "p-fantasma", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, st.products["p-martillo"].Stock)
}

func TestRecordSale_ClienteInexistente_RetornaNotFound(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-fantasma",
		Items:    []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_Validaciones(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateSaleRequest
	}{
		{"sin cliente", dto.CreateSaleRequest{Items: []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 1}}}},
		{"sin items", dto.CreateSaleRequest{ClientID: "c-1"}},
		{"cantidad cero", dto.CreateSaleRequest{ClientID: "c-1", Items: []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 0}}}},
		{"cantidad negativa", dto.CreateSaleRequest{ClientID: "c-1", Items: []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: -2}}}},
		{"producto vacío", dto.CreateSaleRequest{ClientID: "c-1", Items: []dto.SaleItemRequest{{ProductID: "", Quantity: 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordSale(ctx, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, st.sales, "ninguna validación fallida debe persistir ventas")
}

func TestRecordSale_ReintentosAgotados_RetornaErrConflict(t *testing.T) {
	st := newTestState()
	clients := &fakeClientRepo{clients: map[string]*entity.Client{"c-1": {ID: "c-1", Name: "Cliente"}}}
	uc := sales.NewSaleUseCase(conflictTxRunner{}, clients, &fakeSaleRepo{st: st}, nil)

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items:    []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 1}},
	})
	// El runner envuelve la causa original; errors.Is debe seguir funcionando
	assert.True(t, errors.Is(err, domain.ErrConflict),
		"el error debe ser identificable como ErrConflict, obtenido: %v", err)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetReceipt
// ──────────────────────────────────────────────────────────────────────────────

func TestGetReceipt_DevuelvePreciosCongelados(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	created, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items:    []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 2}},
	})
	require.NoError(t, err)

	// Subida de precio posterior a la venta: el recibo no debe reflejarla
	st.products["p-martillo"].UnitPrice = decimal.RequireFromString("99.99")

	receipt, err := uc.GetReceipt(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)

	assert.True(t, receipt.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")),
		"el recibo debe mostrar el precio congelado al vender")
	assert.Equal(t, "Martillo", receipt.Items[0].ProductName)
	require.NotNil(t, receipt.Client)
	assert.Equal(t, "Ferretería El Tornillo", receipt.Client.Name)
}

func TestGetReceipt_ClienteEliminado_SigueSirviendoElRecibo(t *testing.T) {
	st := newTestState()
	uc, clients := newTestUseCase(st)

	created, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ClientID: "c-1",
		Items:    []dto.SaleItemRequest{{ProductID: "p-martillo", Quantity: 1}},
	})
	require.NoError(t, err)

	delete(clients.clients, "c-1")

	receipt, err := uc.GetReceipt(context.Background(), created.ID)
	require.NoError(t, err, "el recibo debe servirse aunque el cliente ya no exista")
	assert.Nil(t, receipt.Client)
	assert.Len(t, receipt.Items, 1)
}

func TestGetReceipt_VentaInexistente_RetornaNotFound(t *testing.T) {
	st := newTestState()
	uc, _ := newTestUseCase(st)

	_, err := uc.GetReceipt(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
