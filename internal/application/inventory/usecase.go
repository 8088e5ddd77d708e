package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erginhw/pos-api/internal/application/dto"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

// RestockUseCase registra entradas de mercancía de un proveedor de forma
// transaccional: bloquea cada producto, incrementa stock y persiste cabecera
// y líneas. No hay verificación de suficiencia (las entradas siempre caben).
type RestockUseCase struct {
	txRunner     RestockTxRunner
	supplierRepo repository.SupplierRepository
	restockRepo  repository.RestockRepository
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(
	txRunner RestockTxRunner,
	supplierRepo repository.SupplierRepository,
	restockRepo repository.RestockRepository,
) *RestockUseCase {
	return &RestockUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		restockRepo:  restockRepo,
	}
}

// RecordRestock valida la solicitud y aplica el reabastecimiento en una sola
// transacción. Cantidades >= 1 y costo unitario >= 0; cualquier línea con un
// producto inexistente revierte la operación completa.
func (uc *RestockUseCase) RecordRestock(ctx context.Context, in dto.CreateRestockRequest) (*dto.RestockResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || item.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	restock := &entity.Restock{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Date:       now,
		CreatedAt:  now,
	}
	var lines []*entity.RestockLine

	err = uc.txRunner.RunRestock(ctx, func(
		productRepo repository.ProductRepository,
		restockRepo repository.RestockRepository,
	) error {
		lines = lines[:0]

		totalCost := decimal.Zero
		for _, item := range in.Items {
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock+item.Quantity); err != nil {
				return err
			}
			lineCost := item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
			lines = append(lines, &entity.RestockLine{
				ID:        uuid.New().String(),
				RestockID: restock.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
				LineCost:  lineCost,
			})
			totalCost = totalCost.Add(lineCost)
		}
		restock.TotalCost = totalCost

		if err := restockRepo.Create(restock); err != nil {
			return err
		}
		for _, line := range lines {
			if err := restockRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toRestockResponse(restock, lines), nil
}

// GetRestock devuelve un reabastecimiento con sus líneas (nombres de producto resueltos).
func (uc *RestockUseCase) GetRestock(ctx context.Context, id string) (*dto.RestockResponse, error) {
	restock, err := uc.restockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restock == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.restockRepo.GetLinesByRestockID(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.RestockResponse{
		ID:         restock.ID,
		SupplierID: restock.SupplierID,
		Date:       restock.Date.Format("2006-01-02"),
		TotalCost:  restock.TotalCost,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.RestockLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			LineCost:    l.LineCost,
		})
	}
	return resp, nil
}

func toRestockResponse(restock *entity.Restock, lines []*entity.RestockLine) *dto.RestockResponse {
	resp := &dto.RestockResponse{
		ID:         restock.ID,
		SupplierID: restock.SupplierID,
		Date:       restock.Date.Format("2006-01-02"),
		TotalCost:  restock.TotalCost,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.RestockLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
			LineCost:  l.LineCost,
		})
	}
	return resp
}
