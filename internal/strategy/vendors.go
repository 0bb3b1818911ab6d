package strategy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// vendorAlias maps one normalized alias to its canonical merchant name.
type vendorAlias struct {
	canonical string
	alias     string // uppercased, alphanumeric only
}

// VendorIndex resolves noisy merchant lines against known vendors.
// Matching is substring containment over collapsed uppercase text, which
// survives OCR spacing and punctuation damage.
type VendorIndex struct {
	aliases []vendorAlias
}

var defaultVendorAliases = map[string][]string{
	"Home Depot":   {"THE HOME DEPOT", "HOME DEPOT", "HOMEDEPOT"},
	"Lowe's":       {"LOWES", "LOWE'S"},
	"Walmart":      {"WALMART", "WAL-MART", "WAL MART"},
	"Target":       {"TARGET"},
	"Costco":       {"COSTCO", "COSTCO WHOLESALE"},
	"Ace Hardware": {"ACE HARDWARE"},
	"Best Buy":     {"BEST BUY", "BESTBUY"},
	"Walgreens":    {"WALGREENS"},
	"CVS Pharmacy": {"CVS", "CVS PHARMACY"},
	"Safeway":      {"SAFEWAY"},
	"Kroger":       {"KROGER"},
	"Starbucks":    {"STARBUCKS"},
	"McDonald's":   {"MCDONALDS", "MCDONALD'S"},
	"Shell":        {"SHELL OIL", "SHELL"},
	"7-Eleven":     {"7-ELEVEN", "7 ELEVEN", "SEVEN ELEVEN"},
	"Office Depot": {"OFFICE DEPOT", "OFFICEMAX"},
	"Staples":      {"STAPLES"},
}

// DefaultVendors returns the built-in vendor index.
func DefaultVendors() *VendorIndex {
	return buildIndex(defaultVendorAliases)
}

// LoadVendorAliases merges a YAML file of canonical -> aliases over the
// built-in index. The file format mirrors defaultVendorAliases.
func LoadVendorAliases(path string) (*VendorIndex, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vendor aliases: %w", err)
	}
	var extra map[string][]string
	if err := yaml.Unmarshal(b, &extra); err != nil {
		return nil, fmt.Errorf("parse vendor aliases: %w", err)
	}
	merged := make(map[string][]string, len(defaultVendorAliases)+len(extra))
	for k, v := range defaultVendorAliases {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = append(merged[k], v...)
	}
	return buildIndex(merged), nil
}

func buildIndex(m map[string][]string) *VendorIndex {
	idx := &VendorIndex{}
	for canonical, aliases := range m {
		for _, a := range aliases {
			idx.aliases = append(idx.aliases, vendorAlias{
				canonical: canonical,
				alias:     collapse(a),
			})
		}
	}
	return idx
}

// Match resolves a line to a canonical vendor name.
func (v *VendorIndex) Match(line string) (string, bool) {
	c := collapse(line)
	if c == "" {
		return "", false
	}
	for _, a := range v.aliases {
		if strings.Contains(c, a.alias) {
			return a.canonical, true
		}
	}
	return "", false
}

// collapse uppercases and strips everything but letters and digits.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
