package domain

import "time"

// CartItem is one line of a shopping cart. ProductID is not checked
// against the catalog; dangling references are accepted.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Cart holds the contents of one shopping session. SessionID is the
// external key; at most one cart exists per session and every save
// replaces its item list wholesale.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	SessionID string     `bson:"session_id" json:"session_id"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
