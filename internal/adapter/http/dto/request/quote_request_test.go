package request

import (
	"testing"

	"condado_dog/internal/domain/entities"
)

func TestQuoteRequest_ResolveClientType(t *testing.T) {
	cases := []struct {
		in   string
		want entities.ClientType
	}{
		{"", entities.ClientTypeAvulso},
		{"  ", entities.ClientTypeAvulso},
		{"avulso", entities.ClientTypeAvulso},
		{"MENSAL", entities.ClientTypeMensal},
		{" mensal_fidelidade ", entities.ClientTypeMensalFidelidade},
		{"vip", entities.ClientType("vip")},
	}

	for _, tc := range cases {
		got := QuoteRequest{ClientType: tc.in}.ResolveClientType()
		if got != tc.want {
			t.Fatalf("ResolveClientType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuoteRequest_ResolvePetNames(t *testing.T) {
	r := QuoteRequest{PetNames: []string{" Thor ", "Luna"}}
	got := r.ResolvePetNames()
	if len(got) != 2 || got[0] != "Thor" || got[1] != "Luna" {
		t.Fatalf("unexpected pet names: %v", got)
	}
}

func TestQuoteRequest_ResolveOwnerName(t *testing.T) {
	if got := (QuoteRequest{OwnerName: "  Maria Silva "}).ResolveOwnerName(); got != "Maria Silva" {
		t.Fatalf("ResolveOwnerName = %q", got)
	}
}
