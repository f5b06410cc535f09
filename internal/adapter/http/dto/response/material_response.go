package response

import (
	"orcafacil/internal/domain/entities"
	"orcafacil/pkg/format"
)

type MaterialResponse struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Brand              string  `json:"brand"`
	Quantity           float64 `json:"quantity"`
	Unit               string  `json:"unit"`
	UnitPrice          float64 `json:"unit_price"`
	Total              float64 `json:"total"`
	UnitPriceFormatted string  `json:"unit_price_formatted"`
	TotalFormatted     string  `json:"total_formatted"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Brand:              m.Brand,
		Quantity:           m.Quantity,
		Unit:               m.Unit,
		UnitPrice:          m.UnitPrice,
		Total:              m.Total,
		UnitPriceFormatted: format.Currency(m.UnitPrice),
		TotalFormatted:     format.Currency(m.Total),
	}
}

func FromMaterials(materials []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, FromMaterial(m))
	}
	return out
}
