package calculator

import "sort"

// Transfer is a suggested payment from a debtor to a creditor.
type Transfer struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount int64
}

type party struct {
	member    string
	remaining int64
}

// ComputeSettlements reduces net balances to a short list of transfers that
// zeroes every balance.
//
// Creditors and debtors are each sorted by amount, largest first, and matched
// greedily with two cursors. Equal amounts keep their input order, so the
// result is deterministic for a given input. Settled members are left out.
// The returned slice is never nil.
func ComputeSettlements(balances []MemberBalance) []Transfer {
	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Net > 0:
			creditors = append(creditors, party{member: b.Member, remaining: b.Net})
		case b.Net < 0:
			debtors = append(debtors, party{member: b.Member, remaining: -b.Net})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].remaining > creditors[j].remaining })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].remaining > debtors[j].remaining })

	transfers := make([]Transfer, 0, len(creditors)+len(debtors))
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := min(debtor.remaining, creditor.remaining)
		transfers = append(transfers, Transfer{
			From:   debtor.member,
			To:     creditor.member,
			Amount: amount,
		})

		debtor.remaining -= amount
		creditor.remaining -= amount
		if debtor.remaining == 0 {
			i++
		}
		if creditor.remaining == 0 {
			j++
		}
	}

	return transfers
}

// ForMember returns the transfers in which member pays or receives, in order.
func ForMember(member string, transfers []Transfer) []Transfer {
	mine := make([]Transfer, 0)
	for _, t := range transfers {
		if t.From == member || t.To == member {
			mine = append(mine, t)
		}
	}
	return mine
}
