package usecase

import (
	"testing"

	"github.com/farescout/backend/internal/domain"
)

func TestMatchBasePrice(t *testing.T) {
	records := []domain.BasePriceRecord{
		{Name: "Disney's All-Star Movies Resort", Amount: 150},
		{Name: "Disney's Pop Century Resort", Amount: 180},
		{Name: "Grand Floridian Resort & Spa", Amount: 750},
	}

	t.Run("mention is substring of record", func(t *testing.T) {
		rec, ok := MatchBasePrice("Pop Century", records)
		if !ok {
			t.Fatal("expected a match")
		}
		if rec.Amount != 180 {
			t.Errorf("Amount = %v, want 180", rec.Amount)
		}
	})

	t.Run("record is substring of mention", func(t *testing.T) {
		rec, ok := MatchBasePrice("Review: Grand Floridian Resort & Spa is worth it", records)
		if !ok {
			t.Fatal("expected a match")
		}
		if rec.Amount != 750 {
			t.Errorf("Amount = %v, want 750", rec.Amount)
		}
	})

	t.Run("token overlap across punctuation", func(t *testing.T) {
		rec, ok := MatchBasePrice("All-Star Movies promo deals", records)
		if !ok {
			t.Fatal("expected a match")
		}
		if rec.Name != "Disney's All-Star Movies Resort" {
			t.Errorf("Name = %q, want the All-Star Movies record", rec.Name)
		}
	})

	t.Run("no qualifying record", func(t *testing.T) {
		if _, ok := MatchBasePrice("Hertz rental coupons", records); ok {
			t.Error("expected no match")
		}
	})

	t.Run("empty mention", func(t *testing.T) {
		if _, ok := MatchBasePrice("", records); ok {
			t.Error("expected no match for empty mention")
		}
	})

	t.Run("single generic shared token does not qualify", func(t *testing.T) {
		if _, ok := MatchBasePrice("some other resort", records); ok {
			t.Error("one shared token should not qualify")
		}
	})

	t.Run("first qualifying record wins on ambiguity", func(t *testing.T) {
		ambiguous := []domain.BasePriceRecord{
			{Name: "Downtown Hotel Plaza", Amount: 100},
			{Name: "Downtown Hotel Tower", Amount: 200},
		}
		rec, ok := MatchBasePrice("Downtown Hotel deals", ambiguous)
		if !ok {
			t.Fatal("expected a match")
		}
		// Input order breaks the tie, not best fit.
		if rec.Amount != 100 {
			t.Errorf("Amount = %v, want the first record (100)", rec.Amount)
		}
	})
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Disney's All-Star Movies", "disney s all star movies"},
		{"  Spaced   Out  ", "spaced out"},
		{"UPPER case", "upper case"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
