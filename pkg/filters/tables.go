package filters

import (
	"strings"

	"github.com/nordpick/nordpick/pkg/types"
)

// technologyAliases maps the short names users actually type to the
// identifiers the API knows. Aliases are resolved before the identifier set
// is consulted.
var technologyAliases = map[string]string{
	"udp":       "openvpn_udp",
	"tcp":       "openvpn_tcp",
	"wg":        "wireguard_udp",
	"wg_udp":    "wireguard_udp",
	"wireguard": "wireguard_udp",
}

// legacyGroupPrefix is prepended as a fallback when a group identifier has
// no direct match; the API still serves several groups under their old
// prefixed identifiers.
const legacyGroupPrefix = "legacy_"

// Tables holds the lookup tables derived from the reference collections.
// Built once per run after all three reference fetches complete, read-only
// afterwards.
type Tables struct {
	countryByCode map[string]string
	countryByName map[string]string
	technologies  map[string]struct{}
	groups        map[string]struct{}
}

// NewTables builds the lookup tables from raw reference records. Country
// keys are uppercased, technology and group identifiers are kept as served
// (the API uses lowercase identifiers throughout).
func NewTables(countries []types.Country, technologies []types.Technology, groups []types.Group) *Tables {
	t := &Tables{
		countryByCode: make(map[string]string, len(countries)),
		countryByName: make(map[string]string, len(countries)),
		technologies:  make(map[string]struct{}, len(technologies)),
		groups:        make(map[string]struct{}, len(groups)),
	}
	for _, country := range countries {
		t.countryByCode[strings.ToUpper(country.Code)] = country.ID
		t.countryByName[strings.ToUpper(country.Name)] = country.ID
	}
	for _, technology := range technologies {
		t.technologies[technology.Identifier] = struct{}{}
	}
	for _, group := range groups {
		t.groups[group.Identifier] = struct{}{}
	}
	return t
}

// Country resolves a short code or full name to a country id,
// case-insensitively.
func (t *Tables) Country(token string) (string, bool) {
	key := strings.ToUpper(token)
	if id, ok := t.countryByCode[key]; ok {
		return id, true
	}
	id, ok := t.countryByName[key]
	return id, ok
}

// Technology resolves a token to a technology identifier, going through the
// alias table first.
func (t *Tables) Technology(token string) (string, bool) {
	identifier := strings.ToLower(token)
	if canonical, ok := technologyAliases[identifier]; ok {
		identifier = canonical
	}
	if _, ok := t.technologies[identifier]; !ok {
		return "", false
	}
	return identifier, true
}

// Group resolves a token to a group identifier, retrying with the legacy_
// prefix when the identifier alone is unknown.
func (t *Tables) Group(token string) (string, bool) {
	identifier := strings.ToLower(token)
	if _, ok := t.groups[identifier]; ok {
		return identifier, true
	}
	prefixed := legacyGroupPrefix + identifier
	if _, ok := t.groups[prefixed]; ok {
		return prefixed, true
	}
	return "", false
}
