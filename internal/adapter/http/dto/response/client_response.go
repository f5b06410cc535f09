package response

import (
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/domain/validation"
)

type ClientResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Company        string `json:"company"`
	Phone          string `json:"phone"`
	PhoneFormatted string `json:"phone_formatted"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Company:        c.Company,
		Phone:          c.Phone,
		PhoneFormatted: validation.FormatPhone(c.Phone),
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
