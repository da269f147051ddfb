package pricing

import (
	"testing"

	"mirpur-express/internal/models"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		name       string
		parcelType string
		weightKg   float64
		from, to   string
		wantBase   float64
		wantExtra  float64
		wantSame   bool
	}{
		{"document same district", models.ParcelTypeDocument, 0, "Dhaka", "Dhaka", 60, 0, true},
		{"document cross district", models.ParcelTypeDocument, 0, "Dhaka", "Khulna", 80, 0, false},
		{"document weight ignored", models.ParcelTypeDocument, 12, "Dhaka", "Dhaka", 60, 0, true},
		{"non-document light same district", models.ParcelTypeNonDocument, 2, "Dhaka", "Dhaka", 110, 0, true},
		{"non-document light cross district", models.ParcelTypeNonDocument, 2, "Dhaka", "Khulna", 150, 0, false},
		{"non-document at included weight", models.ParcelTypeNonDocument, 3, "Dhaka", "Dhaka", 110, 0, true},
		{"non-document heavy same district", models.ParcelTypeNonDocument, 5, "Dhaka", "Dhaka", 110, 80, true},
		{"non-document heavy cross district", models.ParcelTypeNonDocument, 5, "Dhaka", "Khulna", 150, 120, false},
		{"fractional weight same district", models.ParcelTypeNonDocument, 3.5, "Dhaka", "Dhaka", 110, 20, true},
		{"fractional weight cross district", models.ParcelTypeNonDocument, 3.5, "Dhaka", "Khulna", 150, 60, false},
		{"district match is case sensitive", models.ParcelTypeNonDocument, 2, "Dhaka", "dhaka", 150, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quote(tc.parcelType, tc.weightKg, tc.from, tc.to)
			if got.Base != tc.wantBase {
				t.Errorf("Base = %v, want %v", got.Base, tc.wantBase)
			}
			if got.Extra != tc.wantExtra {
				t.Errorf("Extra = %v, want %v", got.Extra, tc.wantExtra)
			}
			if got.SameDistrict != tc.wantSame {
				t.Errorf("SameDistrict = %v, want %v", got.SameDistrict, tc.wantSame)
			}
			if got.Total != got.Base+got.Extra {
				t.Errorf("Total = %v, want Base+Extra = %v", got.Total, got.Base+got.Extra)
			}
		})
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	first := Quote(models.ParcelTypeNonDocument, 7.25, "Sylhet", "Rangpur")
	for i := 0; i < 10; i++ {
		if got := Quote(models.ParcelTypeNonDocument, 7.25, "Sylhet", "Rangpur"); got != first {
			t.Fatalf("call %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestDocumentExtraAlwaysZero(t *testing.T) {
	for _, w := range []float64{0, 1, 3, 5, 100} {
		for _, to := range []string{"Dhaka", "Khulna"} {
			got := Quote(models.ParcelTypeDocument, w, "Dhaka", to)
			if got.Extra != 0 {
				t.Errorf("weight %v to %s: Extra = %v, want 0", w, to, got.Extra)
			}
			if got.Base != 60 && got.Base != 80 {
				t.Errorf("weight %v to %s: Base = %v, want 60 or 80", w, to, got.Base)
			}
		}
	}
}
