package config

// Default returns the built-in configuration for dapsiwow.com. A config
// file or environment variables overlay it; a no-argument run uses it
// as-is.
//
// The fallback category carries its own patterns (static pages and the
// category landing pages); the categorizer consults them only after every
// topical category has failed to match.
func Default() Config {
	return Config{
		Site: SiteConfig{
			BaseURL:    "https://dapsiwow.com",
			ToolPrefix: "/tools",
		},
		Output: OutputConfig{
			Dir:       "public",
			IndexFile: "sitemap.xml",
		},
		Defaults: EntryDefaults{
			ChangeFreq: "weekly",
			Priority:   0.8,
		},
		Fallback: "main",
		Categories: []CategoryRule{
			{
				Name: "main",
				Patterns: []string{
					`/$`,
					`/about`,
					`/contact`,
					`/privacy`,
					`/terms`,
					`/help`,
					`/tools$`,
					`/finance$`,
					`/health$`,
					`/text$`,
					`/pdf$`,
				},
			},
			{
				Name: "finance",
				Patterns: []string{
					`loan.*calculator`,
					`mortgage.*calculator`,
					`emi.*calculator`,
					`compound.*interest`,
					`simple.*interest`,
					`roi.*calculator`,
					`tax.*calculator`,
					`salary.*calculator`,
					`tip.*calculator`,
					`inflation.*calculator`,
					`savings.*calculator`,
					`debt.*calculator`,
					`investment.*calculator`,
					`retirement.*calculator`,
					`sip.*calculator`,
					`break.*even`,
					`business.*loan`,
					`car.*loan`,
					`home.*loan`,
					`education.*loan`,
					`credit.*card`,
					`percentage.*calculator`,
					`discount.*calculator`,
					`vat.*calculator`,
					`gst.*calculator`,
					`paypal.*fee`,
					`lease.*calculator`,
					`stock.*profit`,
					`net.*worth`,
				},
			},
			{
				Name: "health",
				Patterns: []string{
					`bmi.*calculator`,
					`bmr.*calculator`,
					`calorie.*calculator`,
					`body.*fat`,
					`ideal.*weight`,
					`pregnancy.*calculator`,
					`water.*intake`,
					`protein.*calculator`,
					`carb.*calculator`,
					`keto.*calculator`,
					`fasting.*timer`,
					`step.*calorie`,
					`heart.*rate`,
					`blood.*pressure`,
					`sleep.*calculator`,
					`ovulation.*calculator`,
					`baby.*growth`,
					`tdee.*calculator`,
					`lean.*body`,
					`waist.*ratio`,
					`whr.*calculator`,
					`life.*expectancy`,
					`cholesterol.*calculator`,
					`running.*pace`,
					`cycling.*speed`,
					`swimming.*calorie`,
					`alcohol.*calorie`,
					`smoking.*cost`,
				},
			},
			{
				Name: "pdf",
				Patterns: []string{
					`merge.*pdf`,
					`split.*pdf`,
					`compress.*pdf`,
					`pdf.*compress`,
					`pdf.*merge`,
					`pdf.*split`,
					`pdf.*convert`,
					`convert.*pdf`,
					`pdf.*to.*image`,
					`image.*to.*pdf`,
					`pdf.*to.*word`,
					`word.*to.*pdf`,
					`pdf.*to.*excel`,
					`excel.*to.*pdf`,
					`pdf.*encrypt`,
					`encrypt.*pdf`,
					`pdf.*decrypt`,
					`decrypt.*pdf`,
					`pdf.*rotate`,
					`rotate.*pdf`,
					`pdf.*watermark`,
					`watermark.*pdf`,
					`pdf.*sign`,
					`sign.*pdf`,
					`pdf.*edit`,
					`edit.*pdf`,
				},
			},
			{
				Name: "text",
				Patterns: []string{
					`word.*counter`,
					`character.*counter`,
					`sentence.*counter`,
					`paragraph.*counter`,
					`case.*converter`,
					`password.*generator`,
					`name.*generator`,
					`username.*generator`,
					`address.*generator`,
					`qr.*generator`,
					`font.*changer`,
					`reverse.*text`,
					`text.*to.*qr`,
					`qr.*to.*text`,
					`text.*to.*binary`,
					`binary.*to.*text`,
					`qr.*scanner`,
					`markdown.*to.*html`,
					`html.*to.*markdown`,
					`lorem.*ipsum`,
					`text.*encrypt`,
					`text.*decrypt`,
					`url.*encoder`,
					`url.*decoder`,
					`base64.*encode`,
					`base64.*decode`,
				},
			},
		},
		StaticPages: []StaticPage{
			{Path: "/", ChangeFreq: "daily", Priority: 1.0},
			{Path: "/about-us", ChangeFreq: "monthly", Priority: 0.8},
			{Path: "/contact-us", ChangeFreq: "monthly", Priority: 0.8},
			{Path: "/privacy-policy", ChangeFreq: "yearly", Priority: 0.5},
			{Path: "/terms-of-service", ChangeFreq: "yearly", Priority: 0.5},
			{Path: "/help-center", ChangeFreq: "monthly", Priority: 0.7},
			{Path: "/all-tools", ChangeFreq: "weekly", Priority: 0.9},
			{Path: "/finance-tools", ChangeFreq: "weekly", Priority: 0.9},
			{Path: "/health-tools", ChangeFreq: "weekly", Priority: 0.9},
			{Path: "/text-tools", ChangeFreq: "weekly", Priority: 0.9},
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
	}
}
