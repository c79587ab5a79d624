package service

import (
	"github.com/tournevent/storelocator/internal/store"
)

// FreightOption is a shipping option in response form.
type FreightOption struct {
	Type     string  `json:"tipo"`
	Price    float64 `json:"valor"`
	Deadline string  `json:"prazo"`
}

// StoreDelivery is the per-store delivery summary returned by the
// CEP enrichment flow. Never persisted.
type StoreDelivery struct {
	Store           string          `json:"loja"`
	Distance        string          `json:"distancia"`
	PrivateDelivery string          `json:"entregaPrivada"`
	EstimatedTime   string          `json:"tempoEstimado"`
	Freight         []FreightOption `json:"frete"`
}

// CEPResult is the full response of the CEP enrichment flow.
type CEPResult struct {
	Stores []StoreDelivery `json:"lojas"`
}

// StorePage is a paginated slice of store rows.
type StorePage struct {
	Stores []store.Store `json:"stores"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
