package calculator

// Expense is the minimal view of a ledger expense needed for balance calculations.
// All amounts are in minor units (cents).
type Expense struct {
	PaidBy string
	Amount int64
	Split  map[string]int64
}

// Payment is the minimal view of a settling payment needed for balance calculations.
type Payment struct {
	From   string // Who paid (debtor settling up)
	To     string // Who received (creditor being paid)
	Amount int64
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	Member string
	Net    int64 // Positive = owed money, Negative = owes money
	Paid   int64 // Total fronted on expenses, including their own share
	Owed   int64 // Total of this member's own shares across expenses
}

// Status describes the balance the way the group view phrases it.
func (b MemberBalance) Status() string {
	switch {
	case b.Net > 0:
		return "should receive"
	case b.Net < 0:
		return "owes"
	default:
		return "is settled"
	}
}

// ComputeBalances computes each member's net position over a group ledger.
//
// Algorithm:
//   - Every member starts at zero, in the order given, and appears in the result
//     even with no activity.
//   - For each expense: the payer is credited amount - own share, every other
//     member is debited their share. Missing, negative, or above-MaxAmountCents
//     amounts and shares count as zero.
//   - For each payment: the payer's balance improves, the receiver's decreases.
//
// Entries that reference someone outside members are skipped: an expense paid by a
// non-member credits nobody, and a payment with a non-member endpoint is ignored.
// Payments may be nil for ledgers recorded before payments existed.
func ComputeBalances(members []string, expenses []Expense, payments []Payment) []MemberBalance {
	balances := make([]MemberBalance, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		if _, dup := index[m]; dup {
			continue
		}
		index[m] = len(balances)
		balances = append(balances, MemberBalance{Member: m})
	}

	for _, exp := range expenses {
		amount := ledgerAmount(exp.Amount)
		for i := range balances {
			bal := &balances[i]
			share := ledgerAmount(exp.Split[bal.Member])
			bal.Owed += share
			if bal.Member == exp.PaidBy {
				bal.Paid += amount
				bal.Net += amount - share
			} else {
				bal.Net -= share
			}
		}
	}

	for _, p := range payments {
		from, okFrom := index[p.From]
		to, okTo := index[p.To]
		if !okFrom || !okTo || ledgerAmount(p.Amount) == 0 {
			continue
		}
		balances[from].Net += p.Amount
		balances[to].Net -= p.Amount
	}

	return balances
}

// Imbalance returns the sum of all net balances. It is zero for any ledger whose
// entries only reference current members.
func Imbalance(balances []MemberBalance) int64 {
	var sum int64
	for _, b := range balances {
		sum += b.Net
	}
	return sum
}

// BalanceMap flattens balances into a member -> net lookup.
func BalanceMap(balances []MemberBalance) map[string]int64 {
	m := make(map[string]int64, len(balances))
	for _, b := range balances {
		m[b.Member] = b.Net
	}
	return m
}

// ledgerAmount degrades negative or oversized values to zero so a malformed
// entry cannot push the running sums past int64.
func ledgerAmount(v int64) int64 {
	if v < 0 || v > MaxAmountCents {
		return 0
	}
	return v
}
