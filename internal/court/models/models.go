// Package models holds the court directory records shared by search, the
// admin services and persistence.
package models

import (
	"sort"
	"strings"

	"fact/pkg/domain"
	stringutil "fact/pkg/platform/strings"
)

// Primary address type names. Addresses of these types sort first and carry
// the postcode used to geocode a court.
const (
	AddressTypeVisitUs          = "Visit us"
	AddressTypeVisitOrContactUs = "Visit or contact us"
)

// Court is a directory entry.
type Court struct {
	ID            int64         `json:"-"`
	Slug          domain.Slug   `json:"slug"`
	Name          string        `json:"name"`
	NameCy        string        `json:"name_cy,omitempty"`
	Lat           *float64      `json:"lat"`
	Lon           *float64      `json:"lon"`
	Displayed     bool          `json:"open"`
	InPerson      bool          `json:"in_person"`
	ServiceCentre bool          `json:"service_centre"`
	AccessScheme  *bool         `json:"access_scheme"`
	Alert         string        `json:"alert,omitempty"`
	AlertCy       string        `json:"alert_cy,omitempty"`
	Info          string        `json:"info,omitempty"`
	InfoCy        string        `json:"info_cy,omitempty"`
	ImageFile     string        `json:"image_file,omitempty"`
	OpeningTimes  []OpeningTime `json:"opening_times"`
	AreasOfLaw    []AreaOfLaw   `json:"areas_of_law"`
	Addresses     []Address     `json:"addresses"`
}

// HasCoordinates reports whether both lat and lon are set.
func (c *Court) HasCoordinates() bool {
	return c.Lat != nil && c.Lon != nil
}

// ServesAreaOfLaw matches name case-insensitively against the court's areas.
func (c *Court) ServesAreaOfLaw(name string) bool {
	for _, a := range c.AreasOfLaw {
		if strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}

// OpeningTime is one labelled row of opening hours.
type OpeningTime struct {
	Type  string `json:"type"`
	Hours string `json:"hours"`
}

// Address is one postal or visiting address of a court.
type Address struct {
	TypeID         int      `json:"type_id"`
	AddressLines   []string `json:"address_lines"`
	AddressLinesCy []string `json:"address_lines_cy"`
	Town           string   `json:"town"`
	TownCy         string   `json:"town_cy"`
	Postcode       string   `json:"postcode"`
}

// Normalized trims every field and drops empty address lines.
func (a Address) Normalized() Address {
	return Address{
		TypeID:         a.TypeID,
		AddressLines:   stringutil.SplitLines(strings.Join(a.AddressLines, "\n")),
		AddressLinesCy: stringutil.SplitLines(strings.Join(a.AddressLinesCy, "\n")),
		Town:           strings.TrimSpace(a.Town),
		TownCy:         strings.TrimSpace(a.TownCy),
		Postcode:       strings.TrimSpace(a.Postcode),
	}
}

// AddressType describes what an address is for.
type AddressType struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameCy string `json:"name_cy"`
}

// IsCourtAddress reports whether this is a primary visiting address type.
func (t AddressType) IsCourtAddress() bool {
	return stringutil.EqualFoldAny(t.Name, AddressTypeVisitUs, AddressTypeVisitOrContactUs)
}

// AddressTypeMap indexes address types by id. It is read-only.
type AddressTypeMap map[int]AddressType

// NewAddressTypeMap indexes types.
func NewAddressTypeMap(types []AddressType) AddressTypeMap {
	m := make(AddressTypeMap, len(types))
	for _, t := range types {
		m[t.ID] = t
	}
	return m
}

// Precedence is 0 for primary address types and 1 for everything else,
// including unknown ids.
func (m AddressTypeMap) Precedence(typeID int) int {
	if t, ok := m[typeID]; ok && t.IsCourtAddress() {
		return 0
	}
	return 1
}

// UnknownIDs returns the distinct address type ids in addresses that m does
// not know, in first-seen order.
func (m AddressTypeMap) UnknownIDs(addresses []Address) []int {
	var unknown []int
	seen := map[int]struct{}{}
	for _, a := range addresses {
		if _, ok := m[a.TypeID]; ok {
			continue
		}
		if _, dup := seen[a.TypeID]; dup {
			continue
		}
		seen[a.TypeID] = struct{}{}
		unknown = append(unknown, a.TypeID)
	}
	return unknown
}

// SortAddresses returns a copy of addresses with primary types first. The
// sort is stable so submission order is kept within each group.
func (m AddressTypeMap) SortAddresses(addresses []Address) []Address {
	out := make([]Address, len(addresses))
	copy(out, addresses)
	sort.SliceStable(out, func(i, j int) bool {
		return m.Precedence(out[i].TypeID) < m.Precedence(out[j].TypeID)
	})
	return out
}

// PrimaryPostcode is the first non-blank postcode after sorting by type
// precedence.
func (m AddressTypeMap) PrimaryPostcode(addresses []Address) (string, bool) {
	for _, a := range m.SortAddresses(addresses) {
		if pc := strings.TrimSpace(a.Postcode); pc != "" {
			return pc, true
		}
	}
	return "", false
}

// AreaOfLaw is an entry in the areas-of-law reference list.
type AreaOfLaw struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	NameCy        string `json:"name_cy,omitempty"`
	ExternalLink  string `json:"external_link,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	DisplayNameCy string `json:"display_name_cy,omitempty"`
}

// LocalAuthority is a council that may be linked to a court per area of law.
type LocalAuthority struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CourtWithDistance is a proximity search hit. Distance is in miles.
type CourtWithDistance struct {
	Court    Court   `json:"court"`
	Distance float64 `json:"distance"`
}

// CourtReference is a lightweight search hit.
type CourtReference struct {
	Slug domain.Slug `json:"slug"`
	Name string      `json:"name"`
}

// GeneralInfo is the editable general section of a court. Fields marked
// restricted are applied only for super admins.
type GeneralInfo struct {
	Alert        string        `json:"alert"`
	AlertCy      string        `json:"alert_cy"`
	Displayed    bool          `json:"open"`          // restricted
	Info         string        `json:"info"`          // restricted
	InfoCy       string        `json:"info_cy"`       // restricted
	AccessScheme *bool         `json:"access_scheme"` // restricted, in-person courts only
	OpeningTimes []OpeningTime `json:"opening_times"`
}

// GeneralInfoOf extracts the general section of c.
func GeneralInfoOf(c *Court) GeneralInfo {
	return GeneralInfo{
		Alert:        c.Alert,
		AlertCy:      c.AlertCy,
		Displayed:    c.Displayed,
		Info:         c.Info,
		InfoCy:       c.InfoCy,
		AccessScheme: c.AccessScheme,
		OpeningTimes: c.OpeningTimes,
	}
}

// NewCourt is the input for creating a court.
type NewCourt struct {
	Name          string   `json:"new_court_name"`
	ServiceCentre bool     `json:"service_centre"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
}
