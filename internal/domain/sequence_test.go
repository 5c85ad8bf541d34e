package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNextMemberNumber(t *testing.T) {
	tests := []struct {
		name        string
		last        string
		want        string
		expectError bool
	}{
		{
			name: "no prior members",
			last: "",
			want: "MEM_001",
		},
		{
			name: "increments suffix",
			last: "MEM_001",
			want: "MEM_002",
		},
		{
			name: "keeps three digit padding",
			last: "MEM_009",
			want: "MEM_010",
		},
		{
			name: "grows past three digits",
			last: "MEM_999",
			want: "MEM_1000",
		},
		{
			name:        "wrong prefix",
			last:        "MBR_001",
			expectError: true,
		},
		{
			name:        "non-numeric suffix",
			last:        "MEM_abc",
			expectError: true,
		},
		{
			name:        "missing separator",
			last:        "MEM001",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextMemberNumber(tt.last)

			if tt.expectError {
				if !errors.Is(err, ErrMalformedNumber) {
					t.Fatalf("expected ErrMalformedNumber, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNextLoanNumber(t *testing.T) {
	year2024 := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	year2025 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		last        string
		now         time.Time
		want        string
		expectError bool
	}{
		{
			name: "no prior loans",
			last: "",
			now:  year2024,
			want: "L24001",
		},
		{
			name: "increments within year",
			last: "L24007",
			now:  year2024,
			want: "L24008",
		},
		{
			name: "counter continues across year rollover",
			last: "L24007",
			now:  year2025,
			want: "L25008",
		},
		{
			name:        "truncated number",
			last:        "L24",
			now:         year2024,
			expectError: true,
		},
		{
			name:        "non-numeric suffix",
			last:        "L24ab7",
			now:         year2024,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextLoanNumber(tt.last, tt.now)

			if tt.expectError {
				if !errors.Is(err, ErrMalformedNumber) {
					t.Fatalf("expected ErrMalformedNumber, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNextVoucherNumber(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		voucherType VoucherType
		last        string
		want        string
		expectError error
	}{
		{
			name:        "first payment voucher",
			voucherType: VoucherTypePayment,
			last:        "",
			want:        "P24001",
		},
		{
			name:        "payment counter continues",
			voucherType: VoucherTypePayment,
			last:        "P24041",
			want:        "P24042",
		},
		{
			name:        "receipt counter is independent",
			voucherType: VoucherTypeReceipt,
			last:        "R24003",
			want:        "R24004",
		},
		{
			name:        "journal initial",
			voucherType: VoucherTypeJournal,
			last:        "",
			want:        "J24001",
		},
		{
			name:        "unknown type",
			voucherType: VoucherType("bogus"),
			last:        "",
			expectError: ErrInvalidVoucherType,
		},
		{
			name:        "malformed last number",
			voucherType: VoucherTypePayment,
			last:        "P24xyz",
			expectError: ErrMalformedNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextVoucherNumber(tt.voucherType, tt.last, now)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateMemberNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "generated form", number: "MEM_001", valid: true},
		{name: "grown past three digits", number: "MEM_1000", valid: true},
		{name: "foreign scheme", number: "legacy/0042", valid: false},
		{name: "missing suffix", number: "MEM_", valid: false},
		{name: "short suffix", number: "MEM_01", valid: false},
		{name: "zero sequence", number: "MEM_000", valid: false},
		{name: "negative suffix", number: "MEM_-01", valid: false},
		{name: "lowercase prefix", number: "mem_001", valid: false},
		{name: "bare digits", number: "42", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMemberNumber(tt.number)

			if tt.valid && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tt.number, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("expected ErrInvalidNumber for %q, got %v", tt.number, err)
			}
		})
	}
}

func TestValidateLoanNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "generated form", number: "L24001", valid: true},
		{name: "grown past three digits", number: "L241000", valid: true},
		{name: "wrong initial", number: "X24001", valid: false},
		{name: "non-numeric year", number: "Lxy001", valid: false},
		{name: "short suffix", number: "L2401", valid: false},
		{name: "zero sequence", number: "L24000", valid: false},
		{name: "truncated", number: "L24", valid: false},
		{name: "foreign scheme", number: "legacy/7", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLoanNumber(tt.number)

			if tt.valid && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tt.number, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("expected ErrInvalidNumber for %q, got %v", tt.number, err)
			}
		})
	}
}

func TestValidateVoucherNumber(t *testing.T) {
	tests := []struct {
		name        string
		voucherType VoucherType
		number      string
		expectError error
	}{
		{name: "payment form", voucherType: VoucherTypePayment, number: "P24001"},
		{name: "receipt form", voucherType: VoucherTypeReceipt, number: "R24042"},
		{name: "journal form", voucherType: VoucherTypeJournal, number: "J24001"},
		{
			name:        "initial from another type",
			voucherType: VoucherTypePayment,
			number:      "R24001",
			expectError: ErrInvalidNumber,
		},
		{
			name:        "foreign scheme",
			voucherType: VoucherTypePayment,
			number:      "PAY-2024-7",
			expectError: ErrInvalidNumber,
		},
		{
			name:        "zero sequence",
			voucherType: VoucherTypeJournal,
			number:      "J24000",
			expectError: ErrInvalidNumber,
		},
		{
			name:        "unknown type",
			voucherType: VoucherType("bogus"),
			number:      "B24001",
			expectError: ErrInvalidVoucherType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoucherNumber(tt.voucherType, tt.number)

			if tt.expectError == nil {
				if err != nil {
					t.Errorf("expected %q to be accepted, got %v", tt.number, err)
				}
				return
			}

			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected %v for %q, got %v", tt.expectError, tt.number, err)
			}
		})
	}
}

func TestNextMemberNumber_StrictlyIncreasing(t *testing.T) {
	last := ""
	prev := 0

	for i := 0; i < 1200; i++ {
		next, err := NextMemberNumber(last)
		if err != nil {
			t.Fatalf("unexpected error at step %d: %v", i, err)
		}

		var n int
		if _, err := fmt.Sscanf(next, "MEM_%d", &n); err != nil {
			t.Fatalf("unparseable number %q: %v", next, err)
		}
		if n <= prev {
			t.Fatalf("number %q is not greater than predecessor %d", next, prev)
		}

		prev = n
		last = next
	}
}
