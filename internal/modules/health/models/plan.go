package models

import "github.com/lib/pq"

// Price always carries both keys.
type Price struct {
	Monthly float64 `json:"monthly" yaml:"monthly"`
	Annual  float64 `json:"annual" yaml:"annual"`
}

// Plan is the nested shape served to the pricing page.
type Plan struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       Price    `json:"price" yaml:"price"`
	Period      string   `json:"period" yaml:"-"`
	Features    []string `json:"features" yaml:"features"`
	NotIncluded []string `json:"notIncluded" yaml:"not_included"`
	CTA         string   `json:"cta" yaml:"cta"`
	Popular     bool     `json:"popular" yaml:"popular"`
}

// PlanRow is the flat shape stored in the plans table.
type PlanRow struct {
	Name         string         `gorm:"type:text;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	PriceMonthly *float64       `gorm:"type:numeric;column:price_monthly" json:"price_monthly"`
	PriceAnnual  *float64       `gorm:"type:numeric;column:price_annual" json:"price_annual"`
	Features     pq.StringArray `gorm:"type:text[]" json:"features"`
	NotIncluded  pq.StringArray `gorm:"type:text[];column:not_included" json:"not_included"`
	CTA          string         `gorm:"type:text;column:cta" json:"cta"`
	Popular      bool           `gorm:"type:boolean;default:false" json:"popular"`
}

func (PlanRow) TableName() string {
	return "plans"
}

// ToPlan reshapes the flat row. A missing price mirrors the other one so both
// keys are always populated; when both are missing the price is 0.
func (r PlanRow) ToPlan(period string) Plan {
	var price Price
	switch {
	case r.PriceMonthly != nil && r.PriceAnnual != nil:
		price = Price{Monthly: *r.PriceMonthly, Annual: *r.PriceAnnual}
	case r.PriceMonthly != nil:
		price = Price{Monthly: *r.PriceMonthly, Annual: *r.PriceMonthly}
	case r.PriceAnnual != nil:
		price = Price{Monthly: *r.PriceAnnual, Annual: *r.PriceAnnual}
	}

	return Plan{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Period:      period,
		Features:    nonNil(r.Features),
		NotIncluded: nonNil(r.NotIncluded),
		CTA:         r.CTA,
		Popular:     r.Popular,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
