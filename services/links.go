package services

import "net/url"

// MapLinker builds map search URLs from addresses.
type MapLinker struct {
	BaseURL string
	// Encode percent-encodes the address as a path segment. When false the
	// address is appended verbatim, matching links produced by older tools.
	Encode bool
}

func (m MapLinker) URL(address string) string {
	if m.Encode {
		return m.BaseURL + url.PathEscape(address)
	}
	return m.BaseURL + address
}
