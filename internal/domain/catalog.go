package domain

type Product struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Price           float64  `json:"price" yaml:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty" yaml:"discounted_price"`
	Image           string   `json:"image" yaml:"image"`
	Category        string   `json:"category" yaml:"category"`
	IsNew           bool     `json:"isNew,omitempty" yaml:"is_new"`
	Discount        int      `json:"discount,omitempty" yaml:"discount"`
	Rating          float64  `json:"rating" yaml:"rating"`
}

// EffectivePrice is what the shop displays and what the cart charges.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

func (p Product) AsService() Service {
	return Service{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.EffectivePrice(),
		Description: p.Description,
		Image:       p.Image,
	}
}

type Package struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       float64  `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	Recommended bool     `json:"recommended,omitempty" yaml:"recommended"`
}

func (p Package) AsService() Service {
	return Service{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
	}
}

// Project is a portfolio case study.
type Project struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Client      string `json:"client" yaml:"client"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Featured    bool   `json:"featured,omitempty" yaml:"featured"`
}
