package request

import (
	"orcafacil/internal/domain/entities"
)

// ClientRequest carries the editable client fields. The id is never accepted
// from the caller; the storage layer assigns it on save. Field-level checks
// are left to the validation engine so its ordered messages survive intact.
type ClientRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Company: r.Company,
		Phone:   r.Phone,
	}
}
