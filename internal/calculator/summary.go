package calculator

import "github.com/mmynk/drinkorder/internal/models"

// PersonSummary is one participant's share of a group order.
type PersonSummary struct {
	Name        string
	Items       []models.LineItem
	PersonTotal int64
}

// Summary is the aggregated read view of a group order's line items.
type Summary struct {
	TotalParticipants int
	TotalCups         int
	TotalPrice        int64
	ByPerson          []PersonSummary
}

// Summarize groups line items by exact person name and totals them.
//
// People appear in the order of their first line item, and each person's
// items keep the order they were given in. Names are compared as-is: two
// names differing only in case or whitespace are different people.
func Summarize(items []models.LineItem) Summary {
	summary := Summary{ByPerson: []PersonSummary{}}
	index := make(map[string]int)

	for _, item := range items {
		i, exists := index[item.PersonName]
		if !exists {
			i = len(summary.ByPerson)
			index[item.PersonName] = i
			summary.ByPerson = append(summary.ByPerson, PersonSummary{Name: item.PersonName})
		}

		person := &summary.ByPerson[i]
		person.Items = append(person.Items, item)
		person.PersonTotal += item.Subtotal

		summary.TotalCups += item.Quantity
		summary.TotalPrice += item.Subtotal
	}

	summary.TotalParticipants = len(summary.ByPerson)
	return summary
}
