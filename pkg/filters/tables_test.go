package filters

import (
	"testing"

	"github.com/nordpick/nordpick/pkg/types"
)

func testTables() *Tables {
	return NewTables(
		[]types.Country{
			{ID: "US1", Name: "United States", Code: "US"},
			{ID: "DE1", Name: "Germany", Code: "DE"},
		},
		[]types.Technology{
			{Identifier: "openvpn_udp", Name: "OpenVPN UDP"},
			{Identifier: "openvpn_tcp", Name: "OpenVPN TCP"},
			{Identifier: "wireguard_udp", Name: "WireGuard"},
		},
		[]types.Group{
			{Identifier: "legacy_p2p", Title: "P2P"},
			{Identifier: "legacy_double_vpn", Title: "Double VPN"},
			{Identifier: "europe", Title: "Europe"},
		},
	)
}

func TestCountryLookup(t *testing.T) {
	tables := testTables()

	tests := []struct {
		name   string
		token  string
		wantID string
		wantOK bool
	}{
		{name: "code uppercase", token: "US", wantID: "US1", wantOK: true},
		{name: "code lowercase", token: "us", wantID: "US1", wantOK: true},
		{name: "code mixed case", token: "Us", wantID: "US1", wantOK: true},
		{name: "full name", token: "United States", wantID: "US1", wantOK: true},
		{name: "full name lowercase", token: "united states", wantID: "US1", wantOK: true},
		{name: "full name uppercase", token: "GERMANY", wantID: "DE1", wantOK: true},
		{name: "unknown", token: "atlantis", wantOK: false},
		{name: "technology token", token: "udp", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tables.Country(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Country(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("Country(%q) = %q, want %q", tt.token, id, tt.wantID)
			}
		})
	}
}

func TestTechnologyLookup(t *testing.T) {
	tables := testTables()

	tests := []struct {
		name   string
		token  string
		wantID string
		wantOK bool
	}{
		{name: "canonical identifier", token: "openvpn_udp", wantID: "openvpn_udp", wantOK: true},
		{name: "udp alias", token: "udp", wantID: "openvpn_udp", wantOK: true},
		{name: "tcp alias", token: "tcp", wantID: "openvpn_tcp", wantOK: true},
		{name: "wireguard alias", token: "wireguard", wantID: "wireguard_udp", wantOK: true},
		{name: "wg alias", token: "wg", wantID: "wireguard_udp", wantOK: true},
		{name: "uppercase token", token: "UDP", wantID: "openvpn_udp", wantOK: true},
		{name: "unknown", token: "pptp", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tables.Technology(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Technology(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("Technology(%q) = %q, want %q", tt.token, id, tt.wantID)
			}
		})
	}
}

func TestTechnologyAliasAgainstUnknownTarget(t *testing.T) {
	// alias resolution happens before the membership check, so an alias
	// pointing at an identifier the API never served must not match
	tables := NewTables(nil, []types.Technology{{Identifier: "openvpn_udp"}}, nil)
	if _, ok := tables.Technology("wg"); ok {
		t.Error("Technology(\"wg\") matched without wireguard_udp in the reference data")
	}
}

func TestGroupLookup(t *testing.T) {
	tables := testTables()

	tests := []struct {
		name   string
		token  string
		wantID string
		wantOK bool
	}{
		{name: "direct identifier", token: "europe", wantID: "europe", wantOK: true},
		{name: "legacy fallback", token: "p2p", wantID: "legacy_p2p", wantOK: true},
		{name: "legacy fallback double vpn", token: "double_vpn", wantID: "legacy_double_vpn", wantOK: true},
		{name: "explicit legacy prefix", token: "legacy_p2p", wantID: "legacy_p2p", wantOK: true},
		{name: "uppercase token", token: "P2P", wantID: "legacy_p2p", wantOK: true},
		{name: "unknown", token: "quantum", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tables.Group(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Group(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("Group(%q) = %q, want %q", tt.token, id, tt.wantID)
			}
		})
	}
}
