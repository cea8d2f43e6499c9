package request

import (
	"strings"
	"time"

	"condado_dog/internal/domain/entities"
)

// QuoteRequest is the payload accepted by the quote endpoints.
//
// check_in/check_out are RFC3339 timestamps; plan_weekdays uses the
// business encoding Monday=0 .. Friday=4.
type QuoteRequest struct {
	OwnerName    string    `json:"owner_name" binding:"required"`
	PetNames     []string  `json:"pet_names" binding:"required"`
	DogCount     int       `json:"dog_count" binding:"required"`
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
	HighSeason   bool      `json:"high_season"`
	ClientType   string    `json:"client_type"`
	PlanWeekdays []int     `json:"plan_weekdays"`
	Note         string    `json:"note"`
}

func (r QuoteRequest) ResolveOwnerName() string {
	return strings.TrimSpace(r.OwnerName)
}

func (r QuoteRequest) ResolvePetNames() []string {
	out := make([]string, 0, len(r.PetNames))
	for _, name := range r.PetNames {
		out = append(out, strings.TrimSpace(name))
	}
	return out
}

// ResolveClientType normalizes the client tier; an omitted tier defaults
// to avulso (no recurring plan).
func (r QuoteRequest) ResolveClientType() entities.ClientType {
	v := strings.ToLower(strings.TrimSpace(r.ClientType))
	if v == "" {
		return entities.ClientTypeAvulso
	}
	return entities.ClientType(v)
}
