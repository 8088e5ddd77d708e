package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	BusinessStyle string `json:"business_style"`
	TIN           string `json:"tin"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            string `json:"customer_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	BusinessStyle string `json:"business_style"`
	TIN           string `json:"tin"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"supplier_name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID      string `json:"supplier_id"`
	Name    string `json:"supplier_name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}
