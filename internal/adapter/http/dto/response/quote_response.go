package response

import (
	"time"

	"condado_dog/internal/domain/entities"
	"condado_dog/pkg"
)

// QuoteResponse mirrors the persisted quote and adds the display fields
// the proposal uses: quarter fractions for diárias and BRL-formatted
// money strings.
type QuoteResponse struct {
	ID           string    `json:"id"`
	OwnerName    string    `json:"owner_name"`
	PetNames     []string  `json:"pet_names"`
	DogCount     int       `json:"dog_count"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	HighSeason   bool      `json:"high_season"`
	ClientType   string    `json:"client_type"`
	PlanWeekdays []int     `json:"plan_weekdays"`

	BillableUnits        string `json:"billable_units"`
	BillableUnitsDisplay string `json:"billable_units_display"`
	UnitPrice            string `json:"unit_price"`
	GrossTotal           string `json:"gross_total"`
	DiscountTotal        string `json:"discount_total"`
	MatchingDayCount     int    `json:"matching_day_count"`
	FinalTotal           string `json:"final_total"`

	UnitPriceDisplay     string `json:"unit_price_display"`
	GrossTotalDisplay    string `json:"gross_total_display"`
	DiscountTotalDisplay string `json:"discount_total_display"`
	FinalTotalDisplay    string `json:"final_total_display"`

	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		OwnerName:    q.OwnerName,
		PetNames:     q.PetNames,
		DogCount:     q.DogCount,
		CheckIn:      q.CheckIn,
		CheckOut:     q.CheckOut,
		HighSeason:   q.HighSeason,
		ClientType:   string(q.ClientType),
		PlanWeekdays: q.PlanWeekdays,

		BillableUnits:        q.BillableUnits.String(),
		BillableUnitsDisplay: pkg.FormatDiarias(q.BillableUnits),
		UnitPrice:            q.UnitPrice.StringFixed(2),
		GrossTotal:           q.GrossTotal.StringFixed(2),
		DiscountTotal:        q.DiscountTotal.StringFixed(2),
		MatchingDayCount:     q.MatchingDayCount,
		FinalTotal:           q.FinalTotal.StringFixed(2),

		UnitPriceDisplay:     pkg.FormatBRL(q.UnitPrice),
		GrossTotalDisplay:    pkg.FormatBRL(q.GrossTotal),
		DiscountTotalDisplay: pkg.FormatBRL(q.DiscountTotal),
		FinalTotalDisplay:    pkg.FormatBRL(q.FinalTotal),

		Note:      q.Note,
		CreatedAt: q.CreatedAt,
	}
}
