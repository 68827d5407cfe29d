package evaluator

// Category is a poker hand category, ordered from weakest to strongest
type Category uint8

const (
	NoPair Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories
const NumCategories = int(RoyalFlush) + 1

var categoryNames = [NumCategories]string{
	"No Pair",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// String returns the readable name of the category
func (c Category) String() string {
	if int(c) >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns every category from weakest to strongest
func Categories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}
