package view

import "github.com/thenoetrevino/trackview/internal/i18n"

// Globals are the read-only values every template sees as .Globals
type Globals struct {
	URI           string // Base path of the tracker, ends in '/'
	Offset        string // Time zone used to display dates
	Languages     []i18n.Language
	LanguageCodes []string
	JDebug        bool // Enables the dump filter
	TemplateDebug bool
	Lang          string // BCP 47 tag of the request language
	UseCDN        bool
}

// ResolveOffset picks the user's time zone when they set one, the system offset otherwise
func ResolveOffset(userTimezone, systemOffset string) string {
	if userTimezone != "" {
		return userTimezone
	}
	if systemOffset != "" {
		return systemOffset
	}
	return "UTC"
}
