package dynamo

import (
	"time"

	"orcafacil/internal/domain/entities"
)

// Record structs are the DynamoDB item shapes. Timestamps travel as
// RFC3339Nano strings; numbers map to the native N type.

type clientRecord struct {
	ID      int    `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Company string `dynamodbav:"company"`
	Phone   string `dynamodbav:"phone"`
}

type materialRecord struct {
	ID        int     `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Brand     string  `dynamodbav:"brand"`
	Quantity  float64 `dynamodbav:"quantity"`
	Unit      string  `dynamodbav:"unit"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Total     float64 `dynamodbav:"total"`
}

type budgetRecord struct {
	ID         int              `dynamodbav:"id"`
	Number     string           `dynamodbav:"number"`
	Client     clientRecord     `dynamodbav:"client"`
	Items      []materialRecord `dynamodbav:"items"`
	Subtotal   float64          `dynamodbav:"subtotal"`
	Total      float64          `dynamodbav:"total"`
	Status     string           `dynamodbav:"status"`
	CreatedBy  int              `dynamodbav:"created_by"`
	ValidUntil string           `dynamodbav:"valid_until"`
	CreatedAt  string           `dynamodbav:"created_at"`
	UpdatedAt  string           `dynamodbav:"updated_at"`
}

type userRecord struct {
	ID           int    `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func toClientRecord(c entities.Client) clientRecord {
	return clientRecord(c)
}

func (r clientRecord) toEntity() entities.Client {
	return entities.Client(r)
}

func toMaterialRecord(m entities.Material) materialRecord {
	return materialRecord(m)
}

func (r materialRecord) toEntity() entities.Material {
	return entities.Material(r)
}

func toBudgetRecord(b entities.Budget) budgetRecord {
	items := make([]materialRecord, len(b.Items))
	for i, it := range b.Items {
		items[i] = toMaterialRecord(it)
	}
	return budgetRecord{
		ID:         b.ID,
		Number:     b.Number,
		Client:     toClientRecord(b.Client),
		Items:      items,
		Subtotal:   b.Subtotal,
		Total:      b.Total,
		Status:     string(b.Status),
		CreatedBy:  b.CreatedBy,
		ValidUntil: formatTime(b.ValidUntil),
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
	}
}

func (r budgetRecord) toEntity() entities.Budget {
	items := make([]entities.Material, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.toEntity()
	}
	return entities.Budget{
		ID:         r.ID,
		Number:     r.Number,
		Client:     r.Client.toEntity(),
		Items:      items,
		Subtotal:   r.Subtotal,
		Total:      r.Total,
		Status:     entities.BudgetStatus(r.Status),
		CreatedBy:  r.CreatedBy,
		ValidUntil: parseTime(r.ValidUntil),
		CreatedAt:  parseTime(r.CreatedAt),
		UpdatedAt:  parseTime(r.UpdatedAt),
	}
}

func toUserRecord(u entities.User) userRecord {
	return userRecord{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: formatTime(u.CreatedAt)}
}

func (r userRecord) toEntity() entities.User {
	return entities.User{ID: r.ID, Email: r.Email, PasswordHash: r.PasswordHash, CreatedAt: parseTime(r.CreatedAt)}
}
