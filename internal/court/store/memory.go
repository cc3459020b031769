package store

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"fact/internal/court/models"
	"fact/internal/postcode"
	"fact/pkg/domain"
	"fact/pkg/platform/sentinel"
	"fact/pkg/platform/tx"
	stringutil "fact/pkg/platform/strings"
)

const meanEarthRadiusMiles = 3958.8

type laKey struct {
	courtID     int64
	areaOfLawID int
}

type memoryState struct {
	courts        map[int64]*models.Court
	nextCourtID   int64
	addressTypes  map[int]models.AddressType
	areasOfLaw    map[int]models.AreaOfLaw
	nextAreaID    int
	courtAreas    map[int64][]int
	authorities   map[int]models.LocalAuthority
	courtCouncils map[laKey][]int
}

// InMemoryStore is a map-backed court store for local runs and tests. It
// joins tx.MemoryManager units of work through Begin.
type InMemoryStore struct {
	gate tx.UnitGate
	mu   sync.RWMutex
	st   memoryState
}

// NewInMemory returns an empty store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{st: memoryState{
		courts:        map[int64]*models.Court{},
		nextCourtID:   1,
		addressTypes:  map[int]models.AddressType{},
		areasOfLaw:    map[int]models.AreaOfLaw{},
		nextAreaID:    1,
		courtAreas:    map[int64][]int{},
		authorities:   map[int]models.LocalAuthority{},
		courtCouncils: map[laKey][]int{},
	}}
}

// Begin implements tx.Participant.
func (s *InMemoryStore) Begin() (commit, rollback func()) {
	s.gate.Close()
	s.mu.RLock()
	saved := s.st.clone()
	s.mu.RUnlock()
	commit = s.gate.Open
	rollback = func() {
		s.mu.Lock()
		s.st = saved
		s.mu.Unlock()
		s.gate.Open()
	}
	return commit, rollback
}

func (st memoryState) clone() memoryState {
	out := st
	out.courts = make(map[int64]*models.Court, len(st.courts))
	for id, c := range st.courts {
		out.courts[id] = cloneCourt(c)
	}
	out.addressTypes = maps.Clone(st.addressTypes)
	out.areasOfLaw = maps.Clone(st.areasOfLaw)
	out.authorities = maps.Clone(st.authorities)
	out.courtAreas = make(map[int64][]int, len(st.courtAreas))
	for k, v := range st.courtAreas {
		out.courtAreas[k] = slices.Clone(v)
	}
	out.courtCouncils = make(map[laKey][]int, len(st.courtCouncils))
	for k, v := range st.courtCouncils {
		out.courtCouncils[k] = slices.Clone(v)
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneCourt(c *models.Court) *models.Court {
	cp := *c
	cp.Lat = cloneFloat(c.Lat)
	cp.Lon = cloneFloat(c.Lon)
	if c.AccessScheme != nil {
		v := *c.AccessScheme
		cp.AccessScheme = &v
	}
	cp.OpeningTimes = slices.Clone(c.OpeningTimes)
	cp.AreasOfLaw = nil
	cp.Addresses = make([]models.Address, len(c.Addresses))
	for i, a := range c.Addresses {
		a.AddressLines = slices.Clone(a.AddressLines)
		a.AddressLinesCy = slices.Clone(a.AddressLinesCy)
		cp.Addresses[i] = a
	}
	return &cp
}

// SeedAddressTypes installs the address type reference list.
func (s *InMemoryStore) SeedAddressTypes(types ...models.AddressType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range types {
		s.st.addressTypes[t.ID] = t
	}
}

// SeedLocalAuthorities installs councils.
func (s *InMemoryStore) SeedLocalAuthorities(las ...models.LocalAuthority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, la := range las {
		s.st.authorities[la.ID] = la
	}
}

func (s *InMemoryStore) courtBySlug(slug domain.Slug) *models.Court {
	for _, c := range s.st.courts {
		if c.Slug == slug {
			return c
		}
	}
	return nil
}

func (s *InMemoryStore) areasFor(courtID int64) []models.AreaOfLaw {
	out := []models.AreaOfLaw{}
	for _, id := range s.st.courtAreas[courtID] {
		if a, ok := s.st.areasOfLaw[id]; ok {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *InMemoryStore) FindBySlug(ctx context.Context, slug domain.Slug) (*models.Court, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.courtBySlug(slug)
	if c == nil {
		return nil, sentinel.ErrNotFound
	}
	out := cloneCourt(c)
	out.AreasOfLaw = s.areasFor(c.ID)
	return out, nil
}

func (s *InMemoryStore) FindNearest(ctx context.Context, lat, lon float64) ([]models.CourtWithDistance, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	origin := orb.Point{lon, lat}
	out := []models.CourtWithDistance{}
	for _, c := range s.st.courts {
		if !c.Displayed || !c.InPerson || !c.HasCoordinates() {
			continue
		}
		cp := cloneCourt(c)
		cp.AreasOfLaw = s.areasFor(c.ID)
		// geo.DistanceHaversine uses the equatorial radius; rescale to the
		// mean radius the Postgres query uses.
		d := geo.DistanceHaversine(origin, orb.Point{*c.Lon, *c.Lat}) / orb.EarthRadius * meanEarthRadiusMiles
		out = append(out, models.CourtWithDistance{Court: *cp, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Court.ID < out[j].Court.ID
	})
	return out, nil
}

func (s *InMemoryStore) QueryBy(ctx context.Context, query string) ([]models.CourtReference, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	compactQ := strings.ToLower(strings.ReplaceAll(query, " ", ""))
	out := []models.CourtReference{}
	for _, c := range s.st.courts {
		if !c.Displayed || !matchesQuery(c, q, compactQ) {
			continue
		}
		out = append(out, models.CourtReference{Slug: c.Slug, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func matchesQuery(c *models.Court, q, compactQ string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	for _, a := range c.Addresses {
		if strings.Contains(strings.ToLower(stringutil.JoinLines(a.AddressLines)), q) ||
			strings.Contains(strings.ToLower(postcode.Compact(a.Postcode)), compactQ) ||
			strings.EqualFold(a.Town, q) {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) CreateCourt(ctx context.Context, c *models.Court) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.courtBySlug(c.Slug) != nil {
		return sentinel.ErrConflict
	}
	c.ID = s.st.nextCourtID
	s.st.nextCourtID++
	stored := cloneCourt(c)
	if stored.OpeningTimes == nil {
		stored.OpeningTimes = []models.OpeningTime{}
	}
	s.st.courts[c.ID] = stored
	return nil
}

func (s *InMemoryStore) UpdateGeneral(ctx context.Context, courtID int64, info models.GeneralInfo) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.courts[courtID]
	if !ok {
		return sentinel.ErrNotFound
	}
	c.Alert, c.AlertCy = info.Alert, info.AlertCy
	c.Displayed = info.Displayed
	c.Info, c.InfoCy = info.Info, info.InfoCy
	c.AccessScheme = nil
	if info.AccessScheme != nil {
		v := *info.AccessScheme
		c.AccessScheme = &v
	}
	c.OpeningTimes = append([]models.OpeningTime{}, info.OpeningTimes...)
	return nil
}

func (s *InMemoryStore) DeleteCourt(ctx context.Context, courtID int64) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.courts[courtID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.st.courts, courtID)
	delete(s.st.courtAreas, courtID)
	for k := range s.st.courtCouncils {
		if k.courtID == courtID {
			delete(s.st.courtCouncils, k)
		}
	}
	return nil
}

func (s *InMemoryStore) Addresses(ctx context.Context, courtID int64) ([]models.Address, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.st.courts[courtID]
	if !ok {
		return []models.Address{}, nil
	}
	return cloneCourt(c).Addresses, nil
}

func (s *InMemoryStore) DeleteAddresses(ctx context.Context, courtID int64) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.st.courts[courtID]; ok {
		c.Addresses = []models.Address{}
	}
	return nil
}

func (s *InMemoryStore) InsertAddresses(ctx context.Context, courtID int64, addresses []models.Address) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.courts[courtID]
	if !ok {
		return sentinel.ErrNotFound
	}
	for _, a := range addresses {
		if _, known := s.st.addressTypes[a.TypeID]; !known {
			return sentinel.ErrNotFound
		}
	}
	for _, a := range addresses {
		c.Addresses = append(c.Addresses, models.Address{
			TypeID:         a.TypeID,
			AddressLines:   stringutil.SplitLines(stringutil.JoinLines(a.AddressLines)),
			AddressLinesCy: stringutil.SplitLines(stringutil.JoinLines(a.AddressLinesCy)),
			Town:           a.Town,
			TownCy:         a.TownCy,
			Postcode:       a.Postcode,
		})
	}
	return nil
}

func (s *InMemoryStore) UpdateLatLon(ctx context.Context, courtID int64, lat, lon float64) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.courts[courtID]
	if !ok {
		return sentinel.ErrNotFound
	}
	c.Lat, c.Lon = &lat, &lon
	return nil
}

func (s *InMemoryStore) AddressTypes(ctx context.Context) ([]models.AddressType, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Collect(maps.Values(s.st.addressTypes))
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Collect(maps.Values(s.st.areasOfLaw))
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *InMemoryStore) GetAreaOfLaw(ctx context.Context, id int) (*models.AreaOfLaw, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.st.areasOfLaw[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &a, nil
}

func (s *InMemoryStore) nameTaken(name string, exceptID int) bool {
	for id, a := range s.st.areasOfLaw {
		if id != exceptID && strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) CreateAreaOfLaw(ctx context.Context, a *models.AreaOfLaw) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(a.Name, 0) {
		return sentinel.ErrConflict
	}
	a.ID = s.st.nextAreaID
	s.st.nextAreaID++
	s.st.areasOfLaw[a.ID] = *a
	return nil
}

func (s *InMemoryStore) UpdateAreaOfLaw(ctx context.Context, a models.AreaOfLaw) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.areasOfLaw[a.ID]; !ok {
		return sentinel.ErrNotFound
	}
	if s.nameTaken(a.Name, a.ID) {
		return sentinel.ErrConflict
	}
	s.st.areasOfLaw[a.ID] = a
	return nil
}

func (s *InMemoryStore) DeleteAreaOfLaw(ctx context.Context, id int) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.areasOfLaw[id]; !ok {
		return sentinel.ErrNotFound
	}
	if s.areaInUse(id) {
		return sentinel.ErrInUse
	}
	delete(s.st.areasOfLaw, id)
	for k := range s.st.courtCouncils {
		if k.areaOfLawID == id {
			delete(s.st.courtCouncils, k)
		}
	}
	return nil
}

func (s *InMemoryStore) areaInUse(id int) bool {
	for _, ids := range s.st.courtAreas {
		if slices.Contains(ids, id) {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) AreaOfLawInUse(ctx context.Context, id int) (bool, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.areaInUse(id), nil
}

func (s *InMemoryStore) CourtAreasOfLaw(ctx context.Context, courtID int64) ([]models.AreaOfLaw, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.areasFor(courtID), nil
}

func (s *InMemoryStore) SetCourtAreasOfLaw(ctx context.Context, courtID int64, ids []int) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.courts[courtID]; !ok {
		return sentinel.ErrNotFound
	}
	set := []int{}
	for _, id := range ids {
		if _, ok := s.st.areasOfLaw[id]; !ok {
			return sentinel.ErrNotFound
		}
		if !slices.Contains(set, id) {
			set = append(set, id)
		}
	}
	s.st.courtAreas[courtID] = set
	return nil
}

func (s *InMemoryStore) ListLocalAuthorities(ctx context.Context) ([]models.LocalAuthority, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Collect(maps.Values(s.st.authorities))
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) CourtLocalAuthorities(ctx context.Context, courtID int64, areaOfLawID int) ([]models.LocalAuthority, error) {
	defer s.gate.Enter(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.LocalAuthority{}
	for _, id := range s.st.courtCouncils[laKey{courtID, areaOfLawID}] {
		if la, ok := s.st.authorities[id]; ok {
			out = append(out, la)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) SetCourtLocalAuthorities(ctx context.Context, courtID int64, areaOfLawID int, ids []int) error {
	defer s.gate.Enter(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	set := []int{}
	for _, id := range ids {
		if _, ok := s.st.authorities[id]; !ok {
			return sentinel.ErrNotFound
		}
		if !slices.Contains(set, id) {
			set = append(set, id)
		}
	}
	s.st.courtCouncils[laKey{courtID, areaOfLawID}] = set
	return nil
}
