package category

// defaultCategories are the shared categories every user sees. Recurring
// seeds start inactive with a placeholder amount; users activate and adjust
// them once the real amount is known.
var defaultCategories = []CreateParams{
	{
		Name:            "Salary",
		Description:     "Regular salary income",
		Icon:            "money",
		Color:           "#33FF57",
		Type:            TypeIncome,
		TransactionType: Recurring,
		Frequency:       freq(Monthly),
		DefaultAmount:   amount(100),
		IsActive:        ptr(false),
	},
	{
		Name:            "Freelance",
		Description:     "Freelance work income",
		Icon:            "work",
		Color:           "#33FF57",
		Type:            TypeIncome,
		TransactionType: OneTime,
	},
	{
		Name:            "Investments",
		Description:     "Investment returns",
		Icon:            "trending_up",
		Color:           "#33FF57",
		Type:            TypeIncome,
		TransactionType: Recurring,
		Frequency:       freq(Monthly),
		DefaultAmount:   amount(100),
		IsActive:        ptr(false),
	},
	{
		Name:            "Gifts",
		Description:     "Gifts and donations received",
		Icon:            "card_giftcard",
		Color:           "#33FF57",
		Type:            TypeIncome,
		TransactionType: OneTime,
	},
	{
		Name:            "Food & Dining",
		Description:     "Food and dining expenses",
		Icon:            "restaurant",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: OneTime,
	},
	{
		Name:            "Transportation",
		Description:     "Transport and fuel expenses",
		Icon:            "directions_car",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: OneTime,
	},
	{
		Name:            "Rent",
		Description:     "Housing rent",
		Icon:            "home",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: Recurring,
		Frequency:       freq(Monthly),
		DefaultAmount:   amount(100),
		IsActive:        ptr(false),
	},
	{
		Name:            "Utilities",
		Description:     "Electricity, water and internet",
		Icon:            "bolt",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: Recurring,
		Frequency:       freq(Monthly),
		DefaultAmount:   amount(100),
		IsActive:        ptr(false),
	},
	{
		Name:            "Shopping",
		Description:     "General shopping expenses",
		Icon:            "shopping_cart",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: OneTime,
	},
	{
		Name:            "Health",
		Description:     "Medical and pharmacy expenses",
		Icon:            "local_hospital",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: OneTime,
	},
	{
		Name:            "Entertainment",
		Description:     "Leisure and entertainment",
		Icon:            "movie",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: OneTime,
	},
	{
		Name:            "Other",
		Description:     "Uncategorized expenses",
		Icon:            "more_horiz",
		Color:           "#FF5733",
		Type:            TypeExpense,
		TransactionType: OneTime,
	},
}

func freq(f Frequency) *Frequency { return &f }
func amount(cents int64) *int64   { return &cents }

func ptr[T any](v T) *T { return &v }
