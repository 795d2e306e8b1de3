package mapper

import (
	"time"

	"github.com/rezonia/einvoice-generator/internal/model"
)

// Display-date layouts per UI language. Invoice dates arrive as
// locale-formatted strings, not time values.
var dateLayouts = map[string][]string{
	"de": {"02.01.2006", "2.1.2006"},
	"en": {"2 Jan 2006", "02 Jan 2006"},
}

// FormatDateToISO converts a locale-formatted display date to ISO 8601
// (YYYY-MM-DD). An unknown layout is a mapping bug, not a user error:
// downstream XML is compliance-checked by tax authorities, so this fails
// loudly instead of emitting a garbage date.
func FormatDateToISO(date, language string) (string, error) {
	t, err := parseDisplayDate(date, language)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func parseDisplayDate(date, language string) (time.Time, error) {
	var layouts []string
	layouts = append(layouts, dateLayouts[language]...)
	// The other language's layouts are a last resort; contexts have been
	// seen carrying a date formatted before a language switch.
	for lang, ll := range dateLayouts {
		if lang != language {
			layouts = append(layouts, ll...)
		}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, model.NewMappingError("date", "unparseable display date: "+date, nil)
}
