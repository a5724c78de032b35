// internal/bingo/match.go
package bingo

// Match holds the cards playing against one draw sequence. The set of cards
// is fixed at construction and cards are addressed by their index.
type Match struct {
	cards []*Card
}

// NewMatch creates a match over the given cards, keeping their order.
// Nil cards are dropped, so indices count only the cards kept.
func NewMatch(cards []*Card) *Match {
	kept := make([]*Card, 0, len(cards))
	for _, c := range cards {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &Match{cards: kept}
}

// Len returns the number of cards in the match.
func (m *Match) Len() int {
	return len(m.cards)
}

// Card returns the card at index i, or false if there is none.
func (m *Match) Card(i int) (*Card, bool) {
	if i < 0 || i >= len(m.cards) {
		return nil, false
	}
	return m.cards[i], true
}

// Mark applies n to every card in order and returns the indices of the
// cards with a complete line through a cell holding n. Winners stay in the
// match and are reported again on a later draw that completes another line
// or repeats a number in a complete one.
func (m *Match) Mark(n int) []int {
	var winners []int
	for i, card := range m.cards {
		if card.Mark(n) {
			winners = append(winners, i)
		}
	}
	return winners
}
