package domain

// Service is anything that can be put into the cart: an agency service,
// a package or a shop product priced at its effective price.
type Service struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
}

type CartItem struct {
	Service
	Quantity int `json:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
