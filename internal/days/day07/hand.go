package day07

import (
	"cmp"
	"slices"
	"strings"
)

// Kind is the type of a hand, weakest first.
type Kind uint8

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (k Kind) String() string {
	switch k {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	default:
		return "unknown"
	}
}

// Rules selects the card order and whether 'J' is a joker.
type Rules struct {
	Order  string // weakest to strongest
	Jokers bool
}

var (
	// Standard are the part one rules.
	Standard = Rules{Order: "23456789TJQKA"}
	// JokerRules make 'J' wild for the hand type and the weakest card.
	JokerRules = Rules{Order: "J23456789TQKA", Jokers: true}
)

// Valid reports whether every card is known to the rules.
func (r Rules) Valid(cards string) bool {
	for i := 0; i < len(cards); i++ {
		if strings.IndexByte(r.Order, cards[i]) < 0 {
			return false
		}
	}
	return true
}

// Kind classifies a five-card hand.
func (r Rules) Kind(cards string) Kind {
	counts := map[byte]int{}
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if r.Jokers && cards[i] == 'J' {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = []int{0}
	}
	// джокеры всегда выгоднее всего добавить к самой большой группе
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders hands by kind, then card by card from the left.
func (r Rules) Compare(a, b string) int {
	if c := cmp.Compare(r.Kind(a), r.Kind(b)); c != 0 {
		return c
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(strings.IndexByte(r.Order, a[i]), strings.IndexByte(r.Order, b[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
