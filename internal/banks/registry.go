// Package banks exposes the static registry of supported payment
// processors. The set of banks is configuration, not data the flow
// computes: changing it requires a redeploy.
package banks

import (
	"fmt"

	"tienda/internal/config"
	"tienda/internal/models"
)

// Registry is an ordered, de-duplicated-by-id, read-only list of banks.
type Registry struct {
	banks []models.Bank
	byID  map[string]models.Bank
}

// defaults mirror the backend's BANK_CONFIG: per-bank API URLs are
// overridable through the same environment keys the backend reads.
func defaults() []models.Bank {
	return []models.Bank{
		{
			ID:      "bank_a",
			Name:    "CreditBank",
			LogoURL: "https://placehold.co/100x50/indigo/white?text=CreditBank",
			APIURL:  config.GetEnv("BANK_API_URL_CREDITBANK", "http://localhost:8002"),
		},
		{
			ID:      "bank_b",
			Name:    "CiensPay",
			LogoURL: "https://placehold.co/100x50/purple/white?text=CiensPay",
			APIURL:  config.GetEnv("BANK_API_URL_CIENSPAY", "http://localhost:8003"),
		},
		{
			ID:      "bank_c",
			Name:    "BancObsidiana",
			LogoURL: "https://placehold.co/100x50/slate/white?text=BancObsidiana",
			APIURL:  config.GetEnv("BANK_API_URL_BANCOBSIDIANA", "http://localhost:8004"),
		},
	}
}

// NewRegistry builds a registry from the default bank set.
func NewRegistry() *Registry {
	return NewRegistryFrom(defaults())
}

// NewRegistryFrom builds a registry from an explicit bank list,
// preserving order and dropping duplicate ids after the first.
func NewRegistryFrom(list []models.Bank) *Registry {
	r := &Registry{byID: make(map[string]models.Bank, len(list))}
	for _, b := range list {
		if _, seen := r.byID[b.ID]; seen {
			continue
		}
		r.byID[b.ID] = b
		r.banks = append(r.banks, b)
	}
	return r
}

// All returns the banks in registration order. The slice is a copy.
func (r *Registry) All() []models.Bank {
	out := make([]models.Bank, len(r.banks))
	copy(out, r.banks)
	return out
}

// ByID returns the bank with the given id.
func (r *Registry) ByID(id string) (models.Bank, error) {
	b, ok := r.byID[id]
	if !ok {
		return models.Bank{}, fmt.Errorf("unknown bank %q", id)
	}
	return b, nil
}

// Len returns the number of registered banks.
func (r *Registry) Len() int {
	return len(r.banks)
}
