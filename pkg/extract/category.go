package extract

import "strings"

// CategoryOther is returned when no category keyword matches.
const CategoryOther = "other"

// categoryKeywords maps each known category to the words that indicate
// it. Multi-word keywords count double because they are far less likely
// to be incidental.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"electronics", []string{
		"phone", "mobile", "smartphone", "laptop", "tablet", "computer",
		"earbuds", "headphone", "speaker", "smartwatch", "watch", "tv",
		"television", "camera", "airdopes", "earphone", "charger", "powerbank",
		"keyboard", "mouse", "monitor", "processor", "gpu", "ram",
	}},
	{"fashion", []string{
		"shirt", "tshirt", "t-shirt", "jeans", "dress", "saree", "kurta",
		"shoes", "sneakers", "sandal", "footwear", "clothing", "apparel",
		"jacket", "hoodie", "trouser", "skirt", "ethnic", "western",
		"blazer", "suit", "lehenga", "kurti", "pant", "shorts",
	}},
	{"home", []string{
		"furniture", "sofa", "bed", "mattress", "chair", "table",
		"decor", "curtain", "cushion", "lamp", "kitchenware", "utensil",
		"appliance", "mixer", "grinder", "cooker", "oven", "refrigerator",
		"flask", "bottle", "cooktop", "water purifier", "purifier", "ro",
		"heater", "geyser", "fan", "cooler", "iron", "vacuum", "kettle",
	}},
	{"beauty", []string{
		"cosmetics", "makeup", "lipstick", "foundation", "skincare",
		"cream", "lotion", "perfume", "shampoo", "conditioner", "serum",
		"facewash", "sunscreen", "moisturizer", "kajal", "eyeliner",
	}},
	{"books", []string{
		"book", "novel", "magazine", "journal", "notebook", "diary",
		"stationery", "pen", "pencil",
	}},
	{"grocery", []string{
		"grocery", "food", "snack", "beverage", "oil", "rice", "dal",
		"flour", "sugar", "tea", "coffee", "biscuit", "chocolate",
	}},
	{"sports", []string{
		"sports", "fitness", "gym", "yoga", "exercise", "dumbbell",
		"treadmill", "cycle", "bicycle", "cricket", "football", "badminton",
	}},
}

// Categories returns the known category names in scoring order,
// CategoryOther last.
func Categories() []string {
	names := make([]string, 0, len(categoryKeywords)+1)
	for _, cat := range categoryKeywords {
		names = append(names, cat.name)
	}
	return append(names, CategoryOther)
}

// Categorize classifies text into one of the known product categories by
// keyword scoring. Ties between categories break toward the one listed
// first; a zero score yields CategoryOther.
func Categorize(text string) string {
	lower := strings.ToLower(text)

	best := CategoryOther
	bestScore := 0
	for _, cat := range categoryKeywords {
		score := 0
		for _, kw := range cat.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if strings.ContainsRune(kw, ' ') {
				score += 2
			} else {
				score++
			}
		}
		if score > bestScore {
			best = cat.name
			bestScore = score
		}
	}
	return best
}
