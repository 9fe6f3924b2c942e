package constvars

const (
	RegexMonthYYYYMM      = `^\d{4}-\d{2}$`
	RegexDateYYYYMMDD     = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM         = `^\d{2}:\d{2}$`
	RegexPhoneNumberLoose = `^\+?[0-9 ()\-.]{7,20}$`
)
