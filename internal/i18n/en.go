package i18n

var english = Translation{
	Common: Common{
		Brand:              "BuyMyProvider",
		PoweredByPrefix:    "Powered by",
		PoweredByHighlight: "SpiderHat × TADOS",
		SwitchToEnglish:    "Switch to English",
		SwitchToSpanish:    "Switch to Spanish",
	},
	Hero: Hero{
		Headline: Headline{
			Line1Prefix:    "Connecting",
			Line1Highlight: "Trusted Buyers",
			Line2Prefix:    "and",
			Line2Highlight: "Verified Suppliers",
		},
		Subheadline:          "BuyMyProvider bridges LATAM buyers with verified Chinese suppliers.",
		SubheadlineHighlight: "Join now for early access.",
		CTA:                  "Join the Waitlist",
		Stats: []Stat{
			{Title: "LATAM", Description: "Trusted Buyers"},
			{Title: "China", Description: "Verified Suppliers"},
			{Title: "24/7", Description: "Support & Verification"},
		},
	},
	Form: Form{
		TitlePrefix:            "Join the",
		TitleHighlight:         "Revolution",
		Description:            "Be among the first to experience the future of B2B sourcing. Get early access and exclusive benefits.",
		UserTypeLabel:          "I am a...",
		BuyerTitle:             "I'm a Buyer",
		BuyerDescription:       "Looking for verified suppliers to grow my business",
		SupplierTitle:          "I'm a Supplier",
		SupplierDescription:    "Ready to connect with buyers and expand my reach",
		FullNameLabel:          "Full Name *",
		FullNamePlaceholder:    "John Doe",
		CompanyNameLabel:       "Company Name (Optional)",
		CompanyNamePlaceholder: "Acme Corp",
		EmailLabel:             "Email *",
		EmailPlaceholder:       "email@example.com",
		WhatsappLabel:          "WhatsApp *",
		WhatsappPlaceholder:    "+52 123 456 7890",
		CountryLabel:           "Country / Region *",
		CountryPlaceholder:     "Select your country",
		CategoriesLabel:        "Product Categories of Interest *",
		SubmitLabel:            "Join the Waitlist",
		SubmittingLabel:        "Joining Waitlist...",
		ErrorMessage:           "There was an error submitting the form. Please try again.",
		CountryOptions: []Option{
			{Value: "ar", Label: "Argentina"},
			{Value: "bo", Label: "Bolivia"},
			{Value: "br", Label: "Brasil"},
			{Value: "cl", Label: "Chile"},
			{Value: "co", Label: "Colombia"},
			{Value: "cr", Label: "Costa Rica"},
			{Value: "ec", Label: "Ecuador"},
			{Value: "sv", Label: "El Salvador"},
			{Value: "gt", Label: "Guatemala"},
			{Value: "hn", Label: "Honduras"},
			{Value: "mx", Label: "México"},
			{Value: "ni", Label: "Nicaragua"},
			{Value: "pa", Label: "Panamá"},
			{Value: "py", Label: "Paraguay"},
			{Value: "pe", Label: "Perú"},
			{Value: "uy", Label: "Uruguay"},
			{Value: "ve", Label: "Venezuela"},
			{Value: "other", Label: "Other"},
		},
		CategoryOptions: []Option{
			{Value: "electronics-technology", Label: "Electronics & Technology"},
			{Value: "textiles-apparel", Label: "Textiles & Apparel"},
			{Value: "home-furniture", Label: "Home & Furniture"},
			{Value: "industrial-equipment", Label: "Industrial Equipment"},
			{Value: "beauty-personal-care", Label: "Beauty & Personal Care"},
			{Value: "food-beverages", Label: "Food & Beverages"},
			{Value: "automotive-parts", Label: "Automotive Parts"},
			{Value: "sports-outdoors", Label: "Sports & Outdoors"},
			{Value: "toys-games", Label: "Toys & Games"},
			{Value: "other", Label: "Other"},
		},
		Validation: ValidationMessages{
			FullName:   "Name must be at least 2 characters",
			Email:      "Please provide a valid email",
			Whatsapp:   "Please provide a valid WhatsApp number",
			Country:    "Please select your country",
			Categories: "Please select at least one category",
		},
	},
	Success: Success{
		Title:       "You're on the list!",
		Description: "You're officially on the list. We'll reach out as soon as BuyMyProvider opens early access.",
		WhatsNext:   "What's Next?",
		Steps: []string{
			"You'll receive an email confirmation shortly",
			"Our team will review your profile",
			"Early access invites will be sent in the coming weeks",
			"Follow us for updates and exclusive content",
		},
		BackHome: "Back to Home",
		Contact:  "Questions? Contact us at",
	},
	Footer: Footer{
		Rights: "All rights reserved.",
	},
	NotFound: NotFound{
		Title:       "Oops! Page not found",
		Description: "The page you're looking for doesn't exist.",
		CTA:         "Return to Home",
	},
	Bot: Bot{
		SkipLabel:      "Skip",
		DoneLabel:      "Done",
		ReviewTitle:    "Please review your details:",
		StartOverLabel: "Start over",
		BusyMessage:    "Your signup is already being sent, please wait.",
		UseButtons:     "Please choose one of the options below.",
		FixErrors:      "Please fix the following:",
		NotProvided:    "-",
	},
}
