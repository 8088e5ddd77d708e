package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erginhw/pos-api/internal/application/dto"
	"github.com/erginhw/pos-api/internal/domain"
	"github.com/erginhw/pos-api/internal/domain/entity"
	"github.com/erginhw/pos-api/internal/domain/repository"
)

// SaleUseCase registra ventas de forma atómica y sirve recibos.
// Una venta descuenta stock y persiste cabecera + líneas en una sola transacción:
// o se aplica todo o no se aplica nada.
type SaleUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
	pdfGen     ReceiptPDFGenerator
}

// NewSaleUseCase construye el caso de uso. pdfGen puede ser nil si no se sirve PDF.
func NewSaleUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	pdfGen ReceiptPDFGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:   txRunner,
		clientRepo: clientRepo,
		saleRepo:   saleRepo,
		pdfGen:     pdfGen,
	}
}

// RecordSale valida la solicitud, consolida líneas duplicadas y ejecuta la venta
// dentro de una transacción: bloquea cada producto (SELECT FOR UPDATE), verifica
// stock suficiente, descuenta, congela el precio unitario vigente y persiste
// cabecera y líneas. Si cualquier línea falla se hace rollback completo.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar cliente (fuera de la tx, solo lectura)
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}

	// Líneas duplicadas del mismo producto se consolidan sumando cantidades
	// (se conserva el orden de primera aparición).
	items := consolidateItems(in.Items)

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Number:    fmt.Sprintf("INV-%d", now.Unix()),
		ClientID:  in.ClientID,
		Date:      now,
		CreatedAt: now,
	}
	var lines []*entity.SaleLine

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		lines = lines[:0]

		// Bloquear filas en orden de product_id para evitar deadlocks entre
		// ventas concurrentes que comparten productos.
		locked := make(map[string]*entity.Product, len(items))
		for _, id := range sortedProductIDs(items) {
			product, err := productRepo.GetByIDForUpdate(id)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			locked[id] = product
		}

		total := decimal.Zero
		for _, item := range items {
			product := locked[item.ProductID]
			if product.Stock < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock-item.Quantity); err != nil {
				return err
			}
			subtotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			lines = append(lines, &entity.SaleLine{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.UnitPrice,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}
		sale.Total = total

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range lines {
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, lines), nil
}

// GetReceipt devuelve el recibo persistido de una venta: cabecera, líneas con
// nombre de producto y cliente. Los precios son los congelados al vender.
func (uc *SaleUseCase) GetReceipt(ctx context.Context, saleID string) (*dto.ReceiptResponse, error) {
	sale, lines, client, err := uc.loadReceipt(saleID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReceiptResponse{
		Sale:  *toSaleResponse(sale, nil),
		Items: make([]dto.SaleLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	if client != nil {
		resp.Client = &dto.ClientResponse{
			ID:            client.ID,
			Name:          client.Name,
			Address:       client.Address,
			Contact:       client.Contact,
			Email:         client.Email,
			BusinessStyle: client.BusinessStyle,
			TIN:           client.TIN,
		}
	}
	return resp, nil
}

// GetReceiptPDF genera el recibo imprimible (factura de venta) en PDF.
func (uc *SaleUseCase) GetReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	sale, lines, client, err := uc.loadReceipt(saleID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, sale, client, lines)
}

// ListSales devuelve el historial de ventas, más reciente primero.
func (uc *SaleUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

func (uc *SaleUseCase) loadReceipt(saleID string) (*entity.Sale, []repository.SaleLineWithProduct, *entity.Client, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, nil, nil, err
	}
	if sale == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, nil, nil, err
	}
	// El cliente puede haber sido eliminado; el recibo sigue siendo válido sin él.
	client, _ := uc.clientRepo.GetByID(sale.ClientID)
	return sale, lines, client, nil
}

// consolidateItems suma cantidades de líneas con el mismo product_id,
// conservando el orden de primera aparición.
func consolidateItems(items []dto.SaleItemRequest) []dto.SaleItemRequest {
	index := make(map[string]int, len(items))
	out := make([]dto.SaleItemRequest, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			out[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(out)
		out = append(out, item)
	}
	return out
}

func sortedProductIDs(items []dto.SaleItemRequest) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	sort.Strings(ids)
	return ids
}

func toSaleResponse(sale *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:       sale.ID,
		Number:   sale.Number,
		ClientID: sale.ClientID,
		Date:     sale.Date.Format("2006-01-02"),
		Total:    sale.Total,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.SaleLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return resp
}
