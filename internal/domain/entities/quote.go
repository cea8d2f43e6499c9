package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientType identifies the client tier, which selects the monthly plan
// table used for the daycare discount.
type ClientType string

const (
	ClientTypeAvulso           ClientType = "avulso"
	ClientTypeMensal           ClientType = "mensal"
	ClientTypeMensalFidelidade ClientType = "mensal_fidelidade"
)

// Valid reports whether ct is one of the known client tiers.
func (ct ClientType) Valid() bool {
	switch ct {
	case ClientTypeAvulso, ClientTypeMensal, ClientTypeMensalFidelidade:
		return true
	}
	return false
}

// Quote is the finished boarding quote (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string, uuid)
//
// The pricing fields are computed once by the engine and never mutated;
// owner/pet fields are caller-supplied metadata carried through for the
// proposal document and the audit record.
type Quote struct {
	ID         string     `json:"id"`
	OwnerName  string     `json:"owner_name"`
	PetNames   []string   `json:"pet_names"`
	DogCount   int        `json:"dog_count"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	HighSeason bool       `json:"high_season"`
	ClientType ClientType `json:"client_type"`

	// PlanWeekdays uses the business encoding Monday=0 .. Friday=4.
	PlanWeekdays []int `json:"plan_weekdays"`

	BillableUnits    decimal.Decimal `json:"billable_units"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	GrossTotal       decimal.Decimal `json:"gross_total"`
	DiscountTotal    decimal.Decimal `json:"discount_total"`
	MatchingDayCount int             `json:"matching_day_count"`
	FinalTotal       decimal.Decimal `json:"final_total"`

	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
