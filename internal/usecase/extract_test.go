package usecase

import "testing"

func TestExtractDiscountPercent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "percent off", text: "Get 30% off your next stay", want: 30, wantOK: true},
		{name: "save percent", text: "Save 25% on bookings", want: 25, wantOK: true},
		{name: "up to percent", text: "Up to 40% discounts for members", want: 40, wantOK: true},
		{name: "percent discount", text: "Members get a 15% discount", want: 15, wantOK: true},
		{name: "save up to", text: "Save up to 35% this weekend", want: 35, wantOK: true},
		{name: "case insensitive", text: "SAVE 20% TODAY", want: 20, wantOK: true},
		{name: "no pattern", text: "Great savings", wantOK: false},
		{name: "empty text", text: "", wantOK: false},
		{name: "over 100 rejected", text: "150% off everything", wantOK: false},
		{name: "priority order prefers percent off", text: "Save 10% or get 30% off", want: 30, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDiscountPercent(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("percent = %d, want %d", got, tt.want)
			}
			if ok && (got < 0 || got > 100) {
				t.Errorf("percent = %d, want within [0,100]", got)
			}
		})
	}
}

func TestExtractPromoCode(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "quoted code", text: `Enter "DEAL2025" at checkout`, want: "DEAL2025", wantOK: true},
		{name: "code marker", text: "Use code: SAVE20 for your booking", want: "SAVE20", wantOK: true},
		{name: "promo marker", text: "promo: WINTER15 valid through March", want: "WINTER15", wantOK: true},
		{name: "marker without colon", text: "Use code AAA25 at pickup", want: "AAA25", wantOK: true},
		{name: "no marker", text: "Great savings available", wantOK: false},
		{name: "lowercase common word rejected", text: "promo deals here", wantOK: false},
		{name: "quoted lowercase rejected", text: `the "best" rates in town`, wantOK: false},
		{name: "empty text", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPromoCode(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEstimateSavings(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{name: "save dollar", text: "Save $50 on your rental", want: 50, wantOK: true},
		{name: "dollar off", text: "$25 off weekend rates", want: 25, wantOK: true},
		{name: "cents", text: "Save $19.99 today", want: 19.99, wantOK: true},
		{name: "no amount", text: "Best prices guaranteed", wantOK: false},
		{name: "percent is not dollars", text: "Save 20% now", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateSavings(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("amount = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDealType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "corporate", text: "Corporate rates for business travelers", want: "Corporate Discount"},
		{name: "aaa", text: "AAA members save big", want: "AAA Member Discount"},
		{name: "military", text: "Military and veteran discounts", want: "Military Discount"},
		{name: "promo", text: "Use promo code SAVE20", want: "Promo Code"},
		{name: "fallthrough", text: "Cheap weekend rates", want: "General Discount"},
		// Precedence: corporate wins even when promo wording is also present.
		{name: "corporate beats promo", text: "Corporate promo code available", want: "Corporate Discount"},
		{name: "aaa beats promo", text: "AAA coupon codes", want: "AAA Member Discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDealType(tt.text); got != tt.want {
				t.Errorf("ExtractDealType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIdentifyCompany(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "enterprise", text: "Enterprise weekend special", want: "Enterprise"},
		{name: "case insensitive", text: "deals at HERTZ locations", want: "Hertz"},
		{name: "sixt", text: "sixt rent a car coupons", want: "Sixt"},
		{name: "unknown vendor", text: "Joe's Car Rental specials", want: "Various"},
		{name: "empty", text: "", want: "Various"},
		{name: "first hit wins", text: "Enterprise vs Hertz price comparison", want: "Enterprise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IdentifyCompany(tt.text); got != tt.want {
				t.Errorf("IdentifyCompany(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
