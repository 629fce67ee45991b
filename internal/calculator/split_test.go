package calculator

import (
	"errors"
	"fmt"
	"maps"
	"testing"
)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		members []string
		want    map[string]int64
	}{
		{
			name:    "remainder goes to the first members",
			amount:  100,
			members: []string{"m0", "m1", "m2"},
			want:    map[string]int64{"m0": 34, "m1": 33, "m2": 33},
		},
		{
			name:    "two extra cents",
			amount:  1001,
			members: []string{"m0", "m1", "m2"},
			want:    map[string]int64{"m0": 334, "m1": 334, "m2": 333},
		},
		{
			name:    "even split",
			amount:  1000,
			members: []string{"x", "y"},
			want:    map[string]int64{"x": 500, "y": 500},
		},
		{
			name:    "fewer cents than members",
			amount:  2,
			members: []string{"a", "b", "c"},
			want:    map[string]int64{"a": 1, "b": 1, "c": 0},
		},
		{
			name:    "single member takes everything",
			amount:  999,
			members: []string{"solo"},
			want:    map[string]int64{"solo": 999},
		},
		{
			name:    "no members",
			amount:  100,
			members: nil,
			want:    map[string]int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualSplit(tt.amount, tt.members); !maps.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualSplit_Exact(t *testing.T) {
	for n := 1; n <= 12; n++ {
		members := make([]string, n)
		for i := range members {
			members[i] = fmt.Sprintf("m%d", i)
		}
		for _, amount := range []int64{1, 7, 99, 100, 101, 1234, 99999, 1_000_003} {
			split := EqualSplit(amount, members)

			var sum, lo, hi int64
			lo = split[members[0]]
			for _, v := range split {
				sum += v
				lo = min(lo, v)
				hi = max(hi, v)
			}
			if sum != amount {
				t.Errorf("n=%d amount=%d: shares sum to %d", n, amount, sum)
			}
			if hi-lo > 1 {
				t.Errorf("n=%d amount=%d: shares differ by %d", n, amount, hi-lo)
			}
		}
	}
}

func TestValidateExpense(t *testing.T) {
	members := []string{"a@x.io", "b@x.io"}
	tests := []struct {
		name        string
		description string
		amount      int64
		paidBy      string
		wantErr     error
	}{
		{"valid", "Dinner", 1200, "a@x.io", nil},
		{"blank description", "   ", 1200, "a@x.io", ErrEmptyDescription},
		{"zero amount", "Dinner", 0, "a@x.io", ErrInvalidAmount},
		{"negative amount", "Dinner", -5, "a@x.io", ErrInvalidAmount},
		{"missing payer", "Dinner", 1200, "", ErrInvalidPayer},
		{"payer outside group", "Dinner", 1200, "z@x.io", ErrInvalidPayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.description, tt.amount, tt.paidBy, members)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultPayer(t *testing.T) {
	members := []string{"a@x.io", "b@x.io"}

	tests := []struct {
		actor   string
		members []string
		want    string
	}{
		{"b@x.io", members, "b@x.io"},
		{"z@x.io", members, "a@x.io"},
		{"", members, "a@x.io"},
		{"a@x.io", nil, ""},
	}
	for _, tt := range tests {
		if got := DefaultPayer(tt.actor, tt.members); got != tt.want {
			t.Errorf("DefaultPayer(%q, %v) = %q, want %q", tt.actor, tt.members, got, tt.want)
		}
	}
}
