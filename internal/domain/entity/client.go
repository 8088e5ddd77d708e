package entity

import "time"

// Client representa un cliente registrado (comprador).
type Client struct {
	ID            string
	Name          string
	Address       string
	Contact       string
	Email         string
	BusinessStyle string
	TIN           string // Tax Identification Number
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
