package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erginhw/pos-api/internal/application/dto"
	"github.com/erginhw/pos-api/internal/application/usecase"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *memProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProductRepo) UpdateStock(productID string, stock int) error       { return nil }
func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

func newProductUseCase() (*usecase.ProductUseCase, *memProductRepo) {
	repo := &memProductRepo{products: map[string]*entity.Product{}}
	return usecase.NewProductUseCase(repo), repo
}

func TestProductCreate_PersisteConStockInicial(t *testing.T) {
	uc, repo := newProductUseCase()

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:      "Destornillador",
		Category:  "Herramientas",
		UnitPrice: decimal.RequireFromString("3.75"),
		Stock:     20,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Destornillador", resp.Name)
	assert.Equal(t, 20, resp.Stock)
	assert.Len(t, repo.products, 1)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc, _ := newProductUseCase()

	cases := []struct {
		name string
		req  dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{Category: "X", UnitPrice: decimal.Zero}},
		{"sin categoría", dto.CreateProductRequest{Name: "X", UnitPrice: decimal.Zero}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", Category: "Y", UnitPrice: decimal.RequireFromString("-1")}},
		{"stock negativo", dto.CreateProductRequest{Name: "X", Category: "Y", Stock: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductDelete_InexistenteRetornaNotFound(t *testing.T) {
	uc, _ := newProductUseCase()

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_EliminaExistente(t *testing.T) {
	uc, repo := newProductUseCase()
	repo.products["p-1"] = &entity.Product{ID: "p-1", Name: "Llave inglesa", Category: "Herramientas"}

	require.NoError(t, uc.Delete("p-1"))
	assert.Empty(t, repo.products)
}
