package refdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrMissingReferenceData signals that a required dataset failed to load.
// This is a fatal startup condition: no correct computation is possible
// without the reference data.
var ErrMissingReferenceData = errors.New("missing reference data")

// Dataset file names expected under the data directory. The loader accepts
// YAML or JSON content (JSON documents parse as YAML).
const (
	FederalBracketsFile    = "federal_brackets.yaml"
	StateTaxesFile         = "state_taxes.yaml"
	CostOfLivingFile       = "cost_of_living.yaml"
	HistoricalExpensesFile = "historical_expenses.yaml"
	StateRPPFile           = "state_rpp.yaml"
)

// Store is the immutable reference-data context shared by all engines.
// It is built once at startup and never mutated afterwards, so it is safe
// to share across concurrent calls without locking.
type Store struct {
	Federal         map[domain.FilingStatus]FilingStatusProfile
	StateTaxes      map[string]StateTaxProfile
	NationalAverage map[string]decimal.Decimal
	Metros          map[string]MetroCostProfile
	Historical      map[string][]ExpenseRecord
	SeasonalNotes   map[string]string
	RPP             map[string]StateRPP
}

// Load reads and validates all five reference datasets from dir.
func Load(dir string) (*Store, error) {
	store := &Store{}

	var federal map[string]FilingStatusProfile
	if err := readDataset(filepath.Join(dir, FederalBracketsFile), &federal); err != nil {
		return nil, err
	}
	store.Federal = make(map[domain.FilingStatus]FilingStatusProfile, len(federal))
	for status, profile := range federal {
		store.Federal[domain.FilingStatus(status)] = profile
	}

	var states map[string]StateTaxProfile
	if err := readDataset(filepath.Join(dir, StateTaxesFile), &states); err != nil {
		return nil, err
	}
	store.StateTaxes = upperKeys(states)

	var col costOfLivingFile
	if err := readDataset(filepath.Join(dir, CostOfLivingFile), &col); err != nil {
		return nil, err
	}
	store.NationalAverage = col.NationalAverageExpenses
	store.Metros = col.Metros

	var hist historicalFile
	if err := readDataset(filepath.Join(dir, HistoricalExpensesFile), &hist); err != nil {
		return nil, err
	}
	store.Historical = hist.Data
	store.SeasonalNotes = hist.SeasonalNotes

	var rpp stateRPPFile
	if err := readDataset(filepath.Join(dir, StateRPPFile), &rpp); err != nil {
		return nil, err
	}
	store.RPP = upperKeys(rpp.States)

	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingReferenceData, err)
	}
	return store, nil
}

// readDataset reads one dataset file and unmarshals it into out.
func readDataset(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %v", ErrMissingReferenceData, path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrMissingReferenceData, path, err)
	}
	return nil
}

func upperKeys[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// Validate checks structural invariants of the loaded datasets.
func (s *Store) Validate() error {
	if err := s.validateFederal(); err != nil {
		return fmt.Errorf("federal brackets: %w", err)
	}
	if err := s.validateStateTaxes(); err != nil {
		return fmt.Errorf("state taxes: %w", err)
	}
	if err := s.validateCostOfLiving(); err != nil {
		return fmt.Errorf("cost of living: %w", err)
	}
	if err := s.validateHistorical(); err != nil {
		return fmt.Errorf("historical expenses: %w", err)
	}
	if err := s.validateRPP(); err != nil {
		return fmt.Errorf("state rpp: %w", err)
	}
	return nil
}

// validateFederal checks that every filing status has a bracket schedule
// covering [0, inf) with no gaps or overlaps.
func (s *Store) validateFederal() error {
	if len(s.Federal) == 0 {
		return fmt.Errorf("no filing statuses loaded")
	}
	for status, profile := range s.Federal {
		if _, err := domain.ParseFilingStatus(string(status)); err != nil {
			return fmt.Errorf("unknown filing status %q", status)
		}
		if profile.StandardDeduction.LessThan(decimal.Zero) {
			return fmt.Errorf("%s: standard deduction cannot be negative", status)
		}
		if len(profile.Brackets) == 0 {
			return fmt.Errorf("%s: no brackets", status)
		}
		for i, bracket := range profile.Brackets {
			if bracket.Rate.LessThan(decimal.Zero) || bracket.Rate.GreaterThan(decimal.NewFromInt(1)) {
				return fmt.Errorf("%s: bracket %d rate must be between 0 and 1", status, i)
			}
			if i == 0 {
				if !bracket.Min.IsZero() {
					return fmt.Errorf("%s: first bracket must start at 0", status)
				}
			} else {
				prev := profile.Brackets[i-1]
				if prev.Max == nil {
					return fmt.Errorf("%s: bracket %d follows an unbounded bracket", status, i)
				}
				if !bracket.Min.Equal(*prev.Max) {
					return fmt.Errorf("%s: bracket %d min %s does not continue from %s", status, i, bracket.Min, prev.Max)
				}
			}
			if bracket.Max != nil && bracket.Max.LessThanOrEqual(bracket.Min) {
				return fmt.Errorf("%s: bracket %d max must exceed min", status, i)
			}
		}
		if last := profile.Brackets[len(profile.Brackets)-1]; last.Max != nil {
			return fmt.Errorf("%s: last bracket must be unbounded", status)
		}
	}
	return nil
}

func (s *Store) validateStateTaxes() error {
	if len(s.StateTaxes) == 0 {
		return fmt.Errorf("no states loaded")
	}
	for code, profile := range s.StateTaxes {
		if len(code) != 2 {
			return fmt.Errorf("state code %q must be two letters", code)
		}
		if profile.Name == "" {
			return fmt.Errorf("%s: name is required", code)
		}
		if profile.Rate.LessThan(decimal.Zero) || profile.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s: rate must be between 0 and 1", code)
		}
		switch profile.Type {
		case "flat", "none", "graduated_simplified":
		default:
			return fmt.Errorf("%s: unknown tax type %q", code, profile.Type)
		}
		if profile.Type == "none" && !profile.Rate.IsZero() {
			return fmt.Errorf("%s: type none requires rate 0", code)
		}
	}
	return nil
}

func (s *Store) validateCostOfLiving() error {
	for _, category := range domain.ExpenseCategories {
		avg, ok := s.NationalAverage[category]
		if !ok {
			return fmt.Errorf("national average missing category %q", category)
		}
		if avg.LessThan(decimal.Zero) {
			return fmt.Errorf("national average for %q cannot be negative", category)
		}
	}
	for name, metro := range s.Metros {
		if _, ok := s.StateTaxes[strings.ToUpper(metro.State)]; !ok {
			return fmt.Errorf("metro %q references unknown state %q", name, metro.State)
		}
		for _, category := range domain.ExpenseCategories {
			if metro.Index(category).LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("metro %q: %s index must be positive", name, category)
			}
		}
	}
	return nil
}

// validateHistorical checks that each series is chronological with no
// month gaps. Series length itself is not enforced here; short series
// surface as InsufficientData at forecast time.
func (s *Store) validateHistorical() error {
	for metro, records := range s.Historical {
		var prev time.Time
		for i, record := range records {
			t, err := time.Parse("2006-01", record.Date)
			if err != nil {
				return fmt.Errorf("metro %q record %d: bad date %q", metro, i, record.Date)
			}
			if i > 0 && !t.Equal(prev.AddDate(0, 1, 0)) {
				return fmt.Errorf("metro %q: gap between %s and %s", metro, prev.Format("2006-01"), record.Date)
			}
			for _, category := range domain.ExpenseCategories {
				if record.Value(category) < 0 {
					return fmt.Errorf("metro %q %s: negative %s amount", metro, record.Date, category)
				}
			}
			prev = t
		}
	}
	return nil
}

func (s *Store) validateRPP() error {
	for code, entry := range s.RPP {
		if len(code) != 2 {
			return fmt.Errorf("state code %q must be two letters", code)
		}
		if entry.RPP.LessThanOrEqual(decimal.Zero) || entry.Housing.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%s: rpp values must be positive", code)
		}
	}
	return nil
}

// FilingStatus looks up a filing status profile.
func (s *Store) FilingStatus(status domain.FilingStatus) (FilingStatusProfile, bool) {
	profile, ok := s.Federal[status]
	return profile, ok
}

// StateTax looks up a state tax profile by code, case-insensitively.
func (s *Store) StateTax(code string) (StateTaxProfile, bool) {
	profile, ok := s.StateTaxes[strings.ToUpper(strings.TrimSpace(code))]
	return profile, ok
}

// Metro looks up a metro cost profile by exact name.
func (s *Store) Metro(name string) (MetroCostProfile, bool) {
	metro, ok := s.Metros[name]
	return metro, ok
}

// Series returns the historical expense series for a metro.
func (s *Store) Series(metro string) ([]ExpenseRecord, bool) {
	records, ok := s.Historical[metro]
	return records, ok
}

// RPPState looks up a state RPP entry by code, case-insensitively.
func (s *Store) RPPState(code string) (StateRPP, bool) {
	entry, ok := s.RPP[strings.ToUpper(strings.TrimSpace(code))]
	return entry, ok
}

// MetroNames returns all cost-index metro names, sorted.
func (s *Store) MetroNames() []string {
	names := make([]string, 0, len(s.Metros))
	for name := range s.Metros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForecastMetros returns the metros with historical expense data, sorted.
func (s *Store) ForecastMetros() []string {
	names := make([]string, 0, len(s.Historical))
	for name := range s.Historical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StateCodes returns all state tax codes, sorted.
func (s *Store) StateCodes() []string {
	codes := make([]string, 0, len(s.StateTaxes))
	for code := range s.StateTaxes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
