// Package catalog holds the static vocabularies every generator draws
// from. The slices are reference data and must not be mutated.
package catalog

var FirstNames = []string{
	"Ava", "Noah", "Liam", "Emma", "Olivia", "Sophia", "James", "Lucas",
	"Mason", "Ethan", "Harper", "Isabella", "Mia", "Amelia", "Evelyn", "Ella",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor",
}

var Cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Seattle",
	"Denver", "Boston", "Miami", "Atlanta", "Austin", "Portland",
}

// Categories keeps a fixed order so category picks stay reproducible
// under a fixed seed; ProductNames maps each category to its vocabulary.
var Categories = []string{"Electronics", "Home", "Outdoors", "Beauty", "Fitness"}

var ProductNames = map[string][]string{
	"Electronics": {"Smartphone", "Laptop", "Wireless Earbuds", "Smartwatch", "Bluetooth Speaker"},
	"Home":        {"Vacuum Cleaner", "Air Purifier", "Coffee Maker", "Blender", "Toaster"},
	"Outdoors":    {"Camping Tent", "Travel Backpack", "Hiking Boots", "Cooler"},
	"Beauty":      {"Skin Care Set", "Hair Dryer", "Electric Toothbrush"},
	"Fitness":     {"Yoga Mat", "Adjustable Dumbbells", "Fitness Tracker", "Foam Roller"},
}

var ReviewPhrases = []string{
	"Absolutely love it, highly recommend!",
	"Solid quality for the price.",
	"Shipping was fast and the product works great.",
	"Not quite what I expected but still decent.",
	"Fantastic experience from checkout to delivery.",
	"Quality could be better, but customer service helped.",
	"Exceeded my expectations!",
	"Packaging was damaged but product survived.",
	"Would buy again without hesitation.",
	"Great value, already telling my friends.",
}

var PaymentMethods = []string{"credit_card", "paypal", "bank_transfer", "gift_card"}

var PaymentStatuses = []string{"completed", "pending", "failed", "refunded"}
