package api

import "net/url"

// Query describes one server lookup: an optional country scope plus the
// single technology and group hints the servers endpoints accept.
//
// Hints only shrink the payload; they are not authoritative. When more than
// one technology or group filter is in play the caller pushes the first of
// each here and applies the full set client-side.
type Query struct {
	CountryID      string
	TechnologyHint string
	GroupHint      string
}

// URL builds the request URL for base. Country-scoped queries go through
// /servers; without a country the recommendations endpoint picks nearby
// candidates.
func (q Query) URL(base string) string {
	endpoint := base + "/servers/recommendations"
	params := url.Values{}
	if q.CountryID != "" {
		endpoint = base + "/servers"
		params.Set("filters[country_id]", q.CountryID)
	}
	if q.TechnologyHint != "" {
		params.Set("filters[servers_technologies][identifier]", q.TechnologyHint)
	}
	if q.GroupHint != "" {
		params.Set("filters[servers_groups][identifier]", q.GroupHint)
	}
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}
