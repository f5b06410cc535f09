package entities

// Client is a customer record referenced by budgets.
//
// Domain notes:
//   - IDs are allocated by the storage layer on save; callers must not set them.
//   - A budget embeds a copy of the client, so later edits to the canonical
//     record never rewrite history (see Budget).

type Client struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}
