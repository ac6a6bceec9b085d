package domain

import "time"

// Product is a sellable inventory item. Nutritional values are fixed-point
// integers: energy has no decimal place, sugar has one, alcohol is volume
// percent times 100 and caffeine is mg per 100 ml/g.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Caffeine  *int64    `json:"caffeine,omitempty" db:"caffeine"`
	Alcohol   *int64    `json:"alcohol,omitempty" db:"alcohol"`
	Energy    *int64    `json:"energy,omitempty" db:"energy"`
	Sugar     *int64    `json:"sugar,omitempty" db:"sugar"`
	Price     int64     `json:"price" db:"price"`
	Active    bool      `json:"active" db:"active"`
	Image     *int64    `json:"image,omitempty" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ProductPatch is a sparse update for a Product.
type ProductPatch struct {
	Name     Field[string]
	Caffeine Field[int64]
	Alcohol  Field[int64]
	Energy   Field[int64]
	Sugar    Field[int64]
	Price    Field[int64]
	Active   Field[bool]
	Image    Field[int64]
}

// Apply merges the patch into p. It is purely structural; uniqueness is
// left to the store.
func (pp ProductPatch) Apply(p *Product) {
	pp.Name.apply(&p.Name)
	pp.Caffeine.applyOptional(&p.Caffeine)
	pp.Alcohol.applyOptional(&p.Alcohol)
	pp.Energy.applyOptional(&p.Energy)
	pp.Sugar.applyOptional(&p.Sugar)
	pp.Price.apply(&p.Price)
	pp.Active.apply(&p.Active)
	pp.Image.applyOptional(&p.Image)
}

// DefaultProduct is the policy used to fill fields a create request omits.
type DefaultProduct struct {
	Price       int64   `json:"price"`
	PackageSize *string `json:"package_size,omitempty"`
	// The wire key keeps the spelling existing clients read.
	Caffeine *int64 `json:"caffine,omitempty"`
	Alcohol  *int64 `json:"alcohol,omitempty"`
	Energy   *int64 `json:"energy,omitempty"`
	Sugar    *int64 `json:"sugar,omitempty"`
	Active   bool   `json:"active"`
}
