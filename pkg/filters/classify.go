package filters

import (
	sliceutil "github.com/projectdiscovery/utils/slice"

	"github.com/nordpick/nordpick/pkg/types"
)

// FilterSet accumulates the classified filters for one run: at most one
// country, plus any number of technologies and groups in the order they
// were supplied. Duplicate technology/group tokens collapse to one entry.
type FilterSet struct {
	Country      string
	Technologies []string
	Groups       []string
}

// Classify resolves a user token against the lookup tables and records it.
// Categories are tried country first, then technology, then group; the
// first match wins. That fixed order is the tie-break policy for a token
// valid in more than one category.
func (fs *FilterSet) Classify(tables *Tables, token string) error {
	if id, ok := tables.Country(token); ok {
		if fs.Country != "" {
			return types.ErrMultipleCountries
		}
		fs.Country = id
		return nil
	}
	if id, ok := tables.Technology(token); ok {
		if !sliceutil.Contains(fs.Technologies, id) {
			fs.Technologies = append(fs.Technologies, id)
		}
		return nil
	}
	if id, ok := tables.Group(token); ok {
		if !sliceutil.Contains(fs.Groups, id) {
			fs.Groups = append(fs.Groups, id)
		}
		return nil
	}
	return &types.UnknownFilterError{Token: token}
}
