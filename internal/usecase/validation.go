package usecase

import (
	"regexp"
	"strings"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
)

var zipcodePattern = regexp.MustCompile(`^\d{5}(-?\d{4})?$`)

// stateCodes lists USPS two-letter abbreviations accepted in profiles.
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "DC": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {},
	"IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {},
	"NV": {}, "NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {},
	"OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {},
	"TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {},
	"WI": {}, "WY": {},
}

// ValidateProfileFields checks required fields, the state code, and the
// zipcode format. It returns a normalized copy (trimmed, state upper-cased).
func ValidateProfileFields(fields ProfileFields) (ProfileFields, error) {
	fields.FullName = strings.TrimSpace(fields.FullName)
	fields.Address1 = strings.TrimSpace(fields.Address1)
	fields.Address2 = strings.TrimSpace(fields.Address2)
	fields.City = strings.TrimSpace(fields.City)
	fields.State = strings.ToUpper(strings.TrimSpace(fields.State))
	fields.Zipcode = strings.TrimSpace(fields.Zipcode)

	if fields.FullName == "" || fields.Address1 == "" || fields.City == "" || fields.State == "" || fields.Zipcode == "" {
		return ProfileFields{}, domainErrors.ErrValidation
	}

	if _, ok := stateCodes[fields.State]; !ok {
		return ProfileFields{}, domainErrors.ErrValidation
	}

	if !zipcodePattern.MatchString(fields.Zipcode) {
		return ProfileFields{}, domainErrors.ErrValidation
	}

	return fields, nil
}
