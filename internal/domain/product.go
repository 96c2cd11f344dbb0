package domain

// Product is one productized service offering from the fixed catalog.
// Field names are shared between the JSON API and the stored documents,
// so the bson and json tags deliberately match.
type Product struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	ShortDescription string   `bson:"shortDescription" json:"shortDescription"`
	FullDescription  string   `bson:"fullDescription" json:"fullDescription"`
	Price            int      `bson:"price" json:"price"` // whole currency units, no minor units
	DeliveryTime     string   `bson:"deliveryTime" json:"deliveryTime"`
	Icon             string   `bson:"icon" json:"icon"`
	ImageURL         string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Gallery          []string `bson:"gallery,omitempty" json:"gallery,omitempty"`
	Features         []string `bson:"features" json:"features"`
	Technologies     []string `bson:"technologies" json:"technologies"`
	Category         string   `bson:"category" json:"category"`
}
