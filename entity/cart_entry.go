package entity

// CartEntry is held by the client until checkout; orders keep a copy.
type CartEntry struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}
