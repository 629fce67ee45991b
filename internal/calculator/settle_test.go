package calculator

import (
	"slices"
	"testing"
)

func balancesOf(pairs ...any) []MemberBalance {
	out := make([]MemberBalance, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, MemberBalance{Member: pairs[i].(string), Net: int64(pairs[i+1].(int))})
	}
	return out
}

// applyTransfers replays transfers onto balances and returns what is left.
func applyTransfers(balances []MemberBalance, transfers []Transfer) map[string]int64 {
	left := BalanceMap(balances)
	for _, tr := range transfers {
		left[tr.From] += tr.Amount
		left[tr.To] -= tr.Amount
	}
	return left
}

func TestComputeSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances []MemberBalance
		want     []Transfer
	}{
		{
			name:     "two debtors pay one creditor",
			balances: balancesOf("a@x.io", 6600, "b@x.io", -3300, "c@x.io", -3300),
			want: []Transfer{
				{From: "b@x.io", To: "a@x.io", Amount: 3300},
				{From: "c@x.io", To: "a@x.io", Amount: 3300},
			},
		},
		{
			name:     "single pair",
			balances: balancesOf("a@x.io", -125, "b@x.io", 125),
			want:     []Transfer{{From: "a@x.io", To: "b@x.io", Amount: 125}},
		},
		{
			name:     "largest debtor matched with largest creditor first",
			balances: balancesOf("a@x.io", 100, "b@x.io", 500, "c@x.io", -200, "d@x.io", -400),
			want: []Transfer{
				{From: "d@x.io", To: "b@x.io", Amount: 400},
				{From: "c@x.io", To: "b@x.io", Amount: 100},
				{From: "c@x.io", To: "a@x.io", Amount: 100},
			},
		},
		{
			name:     "settled members are excluded",
			balances: balancesOf("a@x.io", 0, "b@x.io", 50, "c@x.io", -50),
			want:     []Transfer{{From: "c@x.io", To: "b@x.io", Amount: 50}},
		},
		{
			name:     "already settled ledger",
			balances: balancesOf("a@x.io", 0, "b@x.io", 0),
			want:     []Transfer{},
		},
		{
			name:     "no members",
			balances: nil,
			want:     []Transfer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSettlements(tt.balances)
			if got == nil {
				t.Fatal("expected a non-nil slice")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeSettlements_Deterministic(t *testing.T) {
	balances := balancesOf("a@x.io", 300, "b@x.io", 300, "c@x.io", -200, "d@x.io", -200, "e@x.io", -200)
	first := ComputeSettlements(balances)
	for range 20 {
		if got := ComputeSettlements(balances); !slices.Equal(got, first) {
			t.Fatalf("settlements changed between runs: %+v vs %+v", got, first)
		}
	}
}

func TestComputeSettlements_Properties(t *testing.T) {
	members := []string{"a@x.io", "b@x.io", "c@x.io", "d@x.io", "e@x.io", "f@x.io"}
	for seed := uint64(1); seed <= 50; seed++ {
		expenses, payments := randomLedger(seed, members, 30, 10)
		balances := ComputeBalances(members, expenses, payments)
		transfers := ComputeSettlements(balances)

		var creditors, debtors int
		var totalAbs int64
		for _, b := range balances {
			switch {
			case b.Net > 0:
				creditors++
				totalAbs += b.Net
			case b.Net < 0:
				debtors++
				totalAbs -= b.Net
			}
		}

		for member, left := range applyTransfers(balances, transfers) {
			if left != 0 {
				t.Fatalf("seed %d: %s left at %d", seed, member, left)
			}
		}

		var moved int64
		for _, tr := range transfers {
			if tr.Amount <= 0 || tr.From == tr.To {
				t.Fatalf("seed %d: invalid transfer %+v", seed, tr)
			}
			moved += tr.Amount
		}
		if moved != totalAbs/2 {
			t.Errorf("seed %d: moved %d, want %d", seed, moved, totalAbs/2)
		}

		if creditors > 0 && debtors > 0 && len(transfers) > creditors+debtors-1 {
			t.Errorf("seed %d: %d transfers for %d creditors and %d debtors", seed, len(transfers), creditors, debtors)
		}
	}
}

func TestForMember(t *testing.T) {
	transfers := []Transfer{
		{From: "b@x.io", To: "a@x.io", Amount: 10},
		{From: "c@x.io", To: "d@x.io", Amount: 20},
		{From: "a@x.io", To: "d@x.io", Amount: 30},
	}

	want := []Transfer{transfers[0], transfers[2]}
	if got := ForMember("a@x.io", transfers); !slices.Equal(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got := ForMember("z@x.io", transfers); len(got) != 0 {
		t.Errorf("expected no transfers, got %+v", got)
	}
	if got := ForMember("z@x.io", nil); got == nil {
		t.Error("expected a non-nil slice")
	}
}
