package concepts

// builtinConcepts is the built-in real-estate concept catalog. Order matters:
// alias and example-phrase lookups take the first match, so broader concepts
// (e.g. budget) are listed after the concepts whose aliases could shadow them.
var builtinConcepts = []Concept{
	{
		ID:          "intent",
		Label:       "Buying or Selling",
		Description: "Whether the lead wants to buy, sell, or do both.",
		Aliases:     []string{"buy_or_sell", "buy-or-sell", "buying_or_selling", "goal", "lead_type", "lead-intent"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"buying", "selling", "both", "browsing",
		},
		Normalizations: map[string]string{
			"buy":             "buying",
			"buyer":           "buying",
			"buying a home":   "buying",
			"purchase":        "buying",
			"sell":            "selling",
			"seller":          "selling",
			"selling my home": "selling",
			"list my home":    "selling",
			"buy and sell":    "both",
			"just looking":    "browsing",
			"just browsing":   "browsing",
			"not sure":        "browsing",
		},
		Examples: []string{"buy or sell", "buying or selling", "looking to buy", "looking to sell"},
	},
	{
		ID:          "timeline",
		Label:       "Timeline",
		Description: "How soon the lead intends to transact, in months.",
		Aliases:     []string{"time_frame", "timeframe", "time-frame", "moving_timeline", "when_moving", "purchase_timeline", "how_soon"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"0-3", "3-6", "6-12", "12+",
		},
		Normalizations: map[string]string{
			"asap":             "0-3",
			"right away":       "0-3",
			"immediately":      "0-3",
			"now":              "0-3",
			"0-3 months":       "0-3",
			"1-3 months":       "0-3",
			"within 3 months":  "0-3",
			"3-6 months":       "3-6",
			"this year":        "6-12",
			"6-12 months":      "6-12",
			"within a year":    "6-12",
			"next year":        "12+",
			"12+ months":       "12+",
			"over a year":      "12+",
			"more than a year": "12+",
			"no rush":          "12+",
		},
		Examples: []string{"how soon", "when are you looking", "what's your timeline", "when do you plan to move"},
	},
	{
		ID:          "budget",
		Label:       "Budget",
		Description: "The lead's price range for buying, or expected price for selling.",
		Aliases:     []string{"price_range", "price-range", "price", "budget_range", "max_budget", "spending_limit"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"under-400k", "400k-600k", "600k-800k", "800k-1m", "over-1m",
		},
		Normalizations: map[string]string{
			"under $400,000":    "under-400k",
			"under-$400,000":    "under-400k",
			"under 400k":        "under-400k",
			"less than 400k":    "under-400k",
			"$400,000-$600,000": "400k-600k",
			"400-600k":          "400k-600k",
			"$600,000-$800,000": "600k-800k",
			"600-800k":          "600k-800k",
			"$800,000-$1m":      "800k-1m",
			"800k-1m":           "800k-1m",
			"over $1,000,000":   "over-1m",
			"over 1m":           "over-1m",
			"1m+":               "over-1m",
		},
		Examples: []string{"price range", "your budget", "how much are you looking to spend"},
	},
	{
		ID:          "location",
		Label:       "Preferred Area",
		Description: "Neighbourhood, city, or region the lead is interested in.",
		Aliases:     []string{"area", "neighborhood", "neighbourhood", "city", "region", "preferred_area", "target_area", "zip", "zip_code", "postal_code"},
		ValueType:   ValueText,
		Examples:    []string{"what area", "which neighborhood", "where are you looking", "preferred location"},
	},
	{
		ID:          "property_type",
		Label:       "Property Type",
		Description: "The kind of property the lead is interested in.",
		Aliases:     []string{"home_type", "home-type", "propertytype", "property-type", "type_of_home"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"detached", "semi-detached", "townhouse", "condo", "multi-family", "land",
		},
		Normalizations: map[string]string{
			"house":          "detached",
			"single family":  "detached",
			"single-family":  "detached",
			"detached house": "detached",
			"semi":           "semi-detached",
			"town house":     "townhouse",
			"townhome":       "townhouse",
			"row house":      "townhouse",
			"apartment":      "condo",
			"condominium":    "condo",
			"flat":           "condo",
			"duplex":         "multi-family",
			"triplex":        "multi-family",
			"multiplex":      "multi-family",
			"lot":            "land",
			"vacant land":    "land",
		},
		Examples: []string{"type of home", "kind of property", "house or condo"},
	},
	{
		ID:          "bedrooms",
		Label:       "Bedrooms",
		Description: "Minimum number of bedrooms the lead needs.",
		Aliases:     []string{"beds", "bedroom_count", "num_bedrooms", "min_bedrooms"},
		ValueType:   ValueNumeric,
		CommonValues: []string{
			"1", "2", "3", "4", "5+",
		},
		Normalizations: map[string]string{
			"one":       "1",
			"two":       "2",
			"three":     "3",
			"four":      "4",
			"five":      "5+",
			"5 or more": "5+",
			"five plus": "5+",
			"studio":    "1",
		},
		Examples: []string{"how many bedrooms", "number of bedrooms"},
	},
	{
		ID:          "financing",
		Label:       "Financing Status",
		Description: "Whether the lead has mortgage financing arranged.",
		Aliases:     []string{"pre_approval", "pre-approval", "preapproval", "preapproved", "mortgage_status", "financing_status"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"pre-approved", "pre-qualified", "cash", "not-started",
		},
		Normalizations: map[string]string{
			"yes":             "pre-approved",
			"approved":        "pre-approved",
			"pre approved":    "pre-approved",
			"preapproved":     "pre-approved",
			"pre qualified":   "pre-qualified",
			"prequalified":    "pre-qualified",
			"cash buyer":      "cash",
			"paying cash":     "cash",
			"no":              "not-started",
			"not yet":         "not-started",
			"haven't started": "not-started",
		},
		Examples: []string{"pre-approved", "pre approved for a mortgage", "financing arranged", "spoken to a lender"},
	},
	{
		ID:          "ownership",
		Label:       "Current Ownership",
		Description: "Whether the lead currently owns or rents their home.",
		Aliases:     []string{"own_or_rent", "own-or-rent", "current_ownership", "housing_status", "renting"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"own", "rent", "other",
		},
		Normalizations: map[string]string{
			"owner":              "own",
			"i own":              "own",
			"homeowner":          "own",
			"renter":             "rent",
			"i rent":             "rent",
			"renting":            "rent",
			"living with family": "other",
		},
		Examples: []string{"own or rent", "do you currently own"},
	},
	{
		ID:          "motivation",
		Label:       "Motivation",
		Description: "Why the lead is moving.",
		Aliases:     []string{"reason", "reason_for_moving", "moving_reason", "why_moving"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"upsizing", "downsizing", "relocating", "investing", "first-home", "life-change",
		},
		Normalizations: map[string]string{
			"bigger home":     "upsizing",
			"need more space": "upsizing",
			"growing family":  "upsizing",
			"smaller home":    "downsizing",
			"downsize":        "downsizing",
			"empty nest":      "downsizing",
			"job relocation":  "relocating",
			"new job":         "relocating",
			"moving for work": "relocating",
			"investment":      "investing",
			"rental property": "investing",
			"first home":      "first-home",
			"first time":      "first-home",
			"divorce":         "life-change",
			"retirement":      "life-change",
		},
		Examples: []string{"reason for moving", "why are you moving", "what's prompting the move"},
	},
	{
		ID:          "agent_status",
		Label:       "Agent Status",
		Description: "Whether the lead is already working with an agent.",
		Aliases:     []string{"has_agent", "working_with_agent", "agent", "realtor_status"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"yes", "no", "committed",
		},
		Normalizations: map[string]string{
			"i have an agent":      "yes",
			"working with one":     "yes",
			"under contract":       "committed",
			"signed with an agent": "committed",
			"not yet":              "no",
			"no agent":             "no",
		},
		Examples: []string{"working with an agent", "have a realtor"},
	},
	{
		ID:          "contact_preference",
		Label:       "Contact Preference",
		Description: "How the lead prefers to be contacted.",
		Aliases:     []string{"preferred_contact", "contact_method", "best_way_to_reach"},
		ValueType:   ValueCategorical,
		CommonValues: []string{
			"phone", "email", "text",
		},
		Normalizations: map[string]string{
			"call":       "phone",
			"call me":    "phone",
			"phone call": "phone",
			"e-mail":     "email",
			"sms":        "text",
			"text me":    "text",
			"message":    "text",
		},
		Examples: []string{"best way to reach", "prefer to be contacted"},
	},
	{
		ID:          "full_name",
		Label:       "Full Name",
		Description: "The lead's name.",
		Aliases:     []string{"name", "your_name", "fullname", "first_name", "lead_name"},
		ValueType:   ValueText,
		Examples:    []string{"your name", "who am i speaking with"},
	},
	{
		ID:          "email",
		Label:       "Email",
		Description: "The lead's email address.",
		Aliases:     []string{"email_address", "e-mail", "lead_email"},
		ValueType:   ValueText,
		Examples:    []string{"email address", "best email"},
	},
	{
		ID:          "phone",
		Label:       "Phone",
		Description: "The lead's phone number.",
		Aliases:     []string{"phone_number", "mobile", "cell", "telephone"},
		ValueType:   ValueText,
		Examples:    []string{"phone number", "best number"},
	},
}
