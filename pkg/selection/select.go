package selection

import (
	"sort"

	sliceutil "github.com/projectdiscovery/utils/slice"

	"github.com/nordpick/nordpick/pkg/types"
)

// MatchAll returns a predicate requiring every listed technology and group
// to be present on a server. The servers endpoints only accept one
// technology and one group hint per request, so this predicate is what
// actually enforces the full filter set.
func MatchAll(technologies, groups []string) func(types.Server) bool {
	return func(server types.Server) bool {
		for _, technology := range technologies {
			if !sliceutil.Contains(server.Technologies, technology) {
				return false
			}
		}
		for _, group := range groups {
			if !sliceutil.Contains(server.Groups, group) {
				return false
			}
		}
		return true
	}
}

// Select filters servers with match, orders the survivors by ascending load
// and returns the first count entries, fewer when the candidate list is
// shorter. Servers with equal load keep their relative order.
func Select(servers []types.Server, match func(types.Server) bool, count int) ([]types.Server, error) {
	if count < 1 {
		return nil, types.ErrInvalidCount
	}
	var candidates []types.Server
	for _, server := range servers {
		if match(server) {
			candidates = append(candidates, server)
		}
	}
	if len(candidates) == 0 {
		return nil, types.ErrNoServerFound
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Load < candidates[j].Load
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count], nil
}
