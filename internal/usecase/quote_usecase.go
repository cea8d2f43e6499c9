package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"condado_dog/internal/domain/entities"
	"condado_dog/internal/domain/pricing"
	"condado_dog/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrEmptyOwnerName     = errors.New("owner name is required")
	ErrEmptyPetName       = errors.New("every pet name is required")
	ErrPetNameCount       = errors.New("pet name count must match dog count")
	ErrInvalidClientType  = errors.New("invalid client type")
	ErrInvalidPlanWeekday = errors.New("plan weekdays must be between 0 (Monday) and 4 (Friday)")
)

// CreateQuoteCommand is the request object assembled by the presentation
// layer and passed by value into the engine; the use case holds no state
// across calls.
type CreateQuoteCommand struct {
	OwnerName    string
	PetNames     []string
	DogCount     int
	CheckIn      time.Time
	CheckOut     time.Time
	HighSeason   bool
	ClientType   entities.ClientType
	PlanWeekdays []int // business encoding: Monday=0 .. Friday=4
	Note         string
}

// IQuoteUseCase exposes the boarding quote operations.
//
// These map to the calculator's flows:
//   - "Calcular Orçamento" (persisted)  => CreateQuote()
//   - free recalculation before saving  => PreviewQuote()
//   - proposal PDF download            => RenderProposal()
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	PreviewQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetQuoteByID(ctx context.Context, id string) (entities.Quote, error)
	RenderProposal(ctx context.Context, id string) ([]byte, error)
}

type QuoteUseCase struct {
	rates    interfaces.IRateSource
	repo     interfaces.IQuoteRepository
	renderer interfaces.IProposalRenderer
	policy   pricing.Policy
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(rates interfaces.IRateSource, repo interfaces.IQuoteRepository, renderer interfaces.IProposalRenderer, policy pricing.Policy) *QuoteUseCase {
	return &QuoteUseCase{rates: rates, repo: repo, renderer: renderer, policy: policy}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	quote, err := u.compute(ctx, cmd)
	if err != nil {
		return entities.Quote{}, err
	}

	// The quote table is a fire-and-forget audit sink: a write failure
	// must never invalidate the already-computed result.
	if _, err := u.repo.Create(ctx, quote); err != nil {
		log.Printf("[quote][usecase] audit write failed for quote %s: %v", quote.ID, err)
	}
	return quote, nil
}

func (u *QuoteUseCase) PreviewQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	return u.compute(ctx, cmd)
}

func (u *QuoteUseCase) GetQuoteByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) RenderProposal(ctx context.Context, id string) ([]byte, error) {
	q, err := u.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderProposal(ctx, q)
}

func (u *QuoteUseCase) compute(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	cmd.OwnerName = strings.TrimSpace(cmd.OwnerName)
	if cmd.OwnerName == "" {
		return entities.Quote{}, ErrEmptyOwnerName
	}
	if len(cmd.PetNames) != cmd.DogCount {
		return entities.Quote{}, ErrPetNameCount
	}
	for i, name := range cmd.PetNames {
		cmd.PetNames[i] = strings.TrimSpace(name)
		if cmd.PetNames[i] == "" {
			return entities.Quote{}, ErrEmptyPetName
		}
	}
	if !cmd.ClientType.Valid() {
		return entities.Quote{}, ErrInvalidClientType
	}
	planDays, err := planWeekdays(cmd.PlanWeekdays)
	if err != nil {
		return entities.Quote{}, err
	}

	tables, err := u.rates.LoadRateTables(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	base, err := pricing.ComputeBase(tables.Daily, cmd.DogCount, cmd.CheckIn, cmd.CheckOut, cmd.HighSeason, u.policy.Tolerance)
	if err != nil {
		return entities.Quote{}, err
	}

	discount := pricing.Discount{Amount: decimal.Zero}
	if plan, ok := tables.PlanFor(cmd.ClientType); ok {
		discount, err = pricing.ComputeDiscount(planDays, plan, cmd.DogCount, cmd.CheckIn, cmd.CheckOut, u.policy.Proration)
		if errors.Is(err, pricing.ErrPlanFrequencyNotFound) {
			// Non-fatal: the base price stands, the discount defaults to
			// zero.
			log.Printf("[quote][usecase] no %s plan row for %d visits/week; discount skipped", cmd.ClientType, len(planDays))
		} else if err != nil {
			return entities.Quote{}, err
		}
	}

	final := base.GrossTotal.Sub(discount.Amount)
	// A plan discount larger than the stay's gross never produces a
	// credit; the total floors at zero.
	if final.IsNegative() {
		final = decimal.Zero
	}

	return entities.Quote{
		ID:               uuid.NewString(),
		OwnerName:        cmd.OwnerName,
		PetNames:         cmd.PetNames,
		DogCount:         cmd.DogCount,
		CheckIn:          cmd.CheckIn,
		CheckOut:         cmd.CheckOut,
		HighSeason:       cmd.HighSeason,
		ClientType:       cmd.ClientType,
		PlanWeekdays:     normalizeWeekdays(cmd.PlanWeekdays),
		BillableUnits:    base.BillableUnits,
		UnitPrice:        base.UnitPrice,
		GrossTotal:       base.GrossTotal,
		DiscountTotal:    discount.Amount,
		MatchingDayCount: discount.MatchingDayCount,
		FinalTotal:       final,
		Note:             strings.TrimSpace(cmd.Note),
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// planWeekdays maps the business weekday encoding (Monday=0 .. Friday=4)
// onto time.Weekday values.
func planWeekdays(in []int) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(in))
	for _, d := range in {
		if d < 0 || d > 4 {
			return nil, ErrInvalidPlanWeekday
		}
		out = append(out, time.Weekday(d+1))
	}
	return out, nil
}

// normalizeWeekdays deduplicates and orders the stored weekday list.
func normalizeWeekdays(in []int) []int {
	seen := [5]bool{}
	for _, d := range in {
		if d >= 0 && d < 5 {
			seen[d] = true
		}
	}
	out := make([]int, 0, 5)
	for d, ok := range seen {
		if ok {
			out = append(out, d)
		}
	}
	return out
}
