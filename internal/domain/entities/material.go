package entities

// Material is a catalog material and, embedded in a Budget, a line item.
//
// Monetary representation:
//   - Total is always derived as UnitPrice * Quantity; any value supplied by
//     a caller is recomputed before persisting.

type Material struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// MaterialPatch is a partial update applied to a stored material. Nil fields
// are left untouched.
type MaterialPatch struct {
	Name      *string  `json:"name,omitempty"`
	Brand     *string  `json:"brand,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// Apply merges the patch into m and recomputes the total.
func (p MaterialPatch) Apply(m Material) Material {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Brand != nil {
		m.Brand = *p.Brand
	}
	if p.Quantity != nil {
		m.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.UnitPrice != nil {
		m.UnitPrice = *p.UnitPrice
	}
	m.Total = m.UnitPrice * m.Quantity
	return m
}
