package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole amount", input: "12", want: 1200},
		{name: "two decimal digits", input: "12.50", want: 1250},
		{name: "one decimal digit", input: "0.5", want: 50},
		{name: "single cent", input: "0.01", want: 1},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-3.25", want: -325},
		{name: "trailing zeros", input: "7.10", want: 710},
		{name: "three decimal digits", input: "1.005", wantErr: true},
		{name: "sub-cent fraction", input: "0.001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.input)
			if err != nil {
				t.Fatalf("bad test input %q: %v", tt.input, err)
			}

			got, err := domain.ToMinorUnits(amount)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d minor units, got %d", tt.want, got)
			}
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{minor: 1250, want: "12.5"},
		{minor: 1, want: "0.01"},
		{minor: 0, want: "0"},
		{minor: -325, want: "-3.25"},
		{minor: 10000, want: "100"},
	}

	for _, tt := range tests {
		got := domain.FromMinorUnits(tt.minor)
		want, err := decimal.NewFromString(tt.want)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tt.want, err)
		}
		if !got.Equal(want) {
			t.Errorf("FromMinorUnits(%d) = %s, want %s", tt.minor, got, tt.want)
		}
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 1250, 999999999} {
		back, err := domain.ToMinorUnits(domain.FromMinorUnits(minor))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", minor, err)
		}
		if back != minor {
			t.Errorf("round trip of %d yielded %d", minor, back)
		}
	}
}
