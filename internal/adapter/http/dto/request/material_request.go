package request

import (
	"orcafacil/internal/domain/entities"
)

// MaterialRequest carries the editable catalog fields. Total is always
// derived server-side from unit price and quantity.
type MaterialRequest struct {
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

func (r MaterialRequest) ToEntity() entities.Material {
	return entities.Material{
		Name:      r.Name,
		Brand:     r.Brand,
		Quantity:  r.Quantity,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
	}
}
