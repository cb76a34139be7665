package selection

import (
	"strings"

	"github.com/nordpick/nordpick/pkg/types"
)

const dnsSuffix = ".nordvpn.com"

// Display returns the printable form of a selected server: the hostname
// with the shared DNS suffix stripped, or the raw address when useAddress
// is set.
func Display(server types.Server, useAddress bool) string {
	if useAddress {
		return server.Address
	}
	return strings.TrimSuffix(server.Hostname, dnsSuffix)
}
