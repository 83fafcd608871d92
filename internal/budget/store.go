package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// Store gives access to one user's settings, month data, and profile. The
// username is fixed at construction and prefixes every storage key, so a
// Store can never read or write another user's data.
//
// Every mutation is a synchronous read-modify-write of a whole top-level
// key. Two processes writing the same key race last-writer-wins; that is an
// accepted property of the storage layout, not something Store defends
// against.
type Store struct {
	kv       storage.KV
	username string
}

// NewStore creates a Store scoped to username.
func NewStore(kv storage.KV, username string) *Store {
	return &Store{kv: kv, username: username}
}

// Username returns the user this store is scoped to.
func (s *Store) Username() string {
	return s.username
}

func (s *Store) key(name string) string {
	return PrefixedKey(s.username, name)
}

// DefaultSettings returns the settings object used when none is stored:
// the current calendar year and month, the five default categories, the
// four default panel colors, and English.
func DefaultSettings(now time.Time) *models.GlobalSettings {
	return &models.GlobalSettings{
		CurrentYear:  now.Year(),
		CurrentMonth: MonthNames[int(now.Month())-1],
		Categories:   []string{"Zakat", "Pajak", "Keluarga", "Rumah", "Lainnya"},
		Colors: models.DashboardColors{
			Income:           "green-100",
			BudgetedExpenses: "orange-100",
			Spending:         "red-100",
			Savings:          "blue-100",
		},
		Lang: "en",
	}
}

// LoadSettings returns the stored settings or defaults. Corrupted stored
// JSON is treated identically to an absent value.
func (s *Store) LoadSettings(ctx context.Context) *models.GlobalSettings {
	data, err := s.kv.Get(ctx, s.key(KeyGlobalSettings))
	if err != nil {
		return DefaultSettings(time.Now())
	}

	var settings models.GlobalSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(time.Now())
	}
	return &settings
}

// SaveSettings overwrites the stored settings wholesale.
func (s *Store) SaveSettings(ctx context.Context, settings *models.GlobalSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.kv.Put(ctx, s.key(KeyGlobalSettings), data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// loadAllMonths returns the full month-key → MonthData mapping. Absent or
// corrupted values degrade to an empty mapping.
func (s *Store) loadAllMonths(ctx context.Context) map[string]*models.MonthData {
	data, err := s.kv.Get(ctx, s.key(KeyMonthData))
	if err != nil {
		return map[string]*models.MonthData{}
	}

	var all map[string]*models.MonthData
	if err := json.Unmarshal(data, &all); err != nil {
		return map[string]*models.MonthData{}
	}
	if all == nil {
		all = map[string]*models.MonthData{}
	}
	return all
}

// LoadMonthData returns the data stored under monthKey, or empty lists for
// an unseen key. It never fails: corrupted stored JSON yields the same
// empty default.
func (s *Store) LoadMonthData(ctx context.Context, monthKey string) *models.MonthData {
	all := s.loadAllMonths(ctx)
	if month, ok := all[monthKey]; ok && month != nil {
		if month.IncomeSources == nil {
			month.IncomeSources = []models.IncomeSource{}
		}
		if month.SavingList == nil {
			month.SavingList = []models.Saving{}
		}
		if month.BudgetingList == nil {
			month.BudgetingList = []models.BudgetItem{}
		}
		return month
	}
	return &models.MonthData{
		IncomeSources: []models.IncomeSource{},
		SavingList:    []models.Saving{},
		BudgetingList: []models.BudgetItem{},
	}
}

// SaveMonthData sets monthKey in the per-user month mapping and writes the
// whole mapping back. Not atomic across month keys: concurrent writers to
// different months race at the granularity of the whole mapping.
func (s *Store) SaveMonthData(ctx context.Context, monthKey string, month *models.MonthData) error {
	all := s.loadAllMonths(ctx)
	all[monthKey] = month

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal month data: %w", err)
	}
	if err := s.kv.Put(ctx, s.key(KeyMonthData), data); err != nil {
		return fmt.Errorf("failed to save month data: %w", err)
	}
	return nil
}

// CopyFromPreviousMonth copies the preceding month's data into monthKey:
// income sources and savings verbatim (deep copies), budget items with
// every realization reset to 0. Returns ErrEmptyPreviousMonth, without
// touching monthKey, when the preceding month has no entries.
//
// When the preceding month is non-empty, any existing data under monthKey
// is overwritten unconditionally. Callers that care must check first.
func (s *Store) CopyFromPreviousMonth(ctx context.Context, monthKey string) error {
	prevKey := PreviousMonthKey(monthKey)
	prev := s.LoadMonthData(ctx, prevKey)

	if prev.Empty() {
		return ErrEmptyPreviousMonth
	}

	fresh := prev.Clone()
	for i := range fresh.BudgetingList {
		fresh.BudgetingList[i].Realization = 0
	}

	return s.SaveMonthData(ctx, monthKey, fresh)
}

// LoadProfile returns the stored profile, or nil when absent or corrupted.
func (s *Store) LoadProfile(ctx context.Context) *models.UserProfile {
	data, err := s.kv.Get(ctx, s.key(KeyUserProfile))
	if err != nil {
		return nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil
	}
	return &profile
}

// SaveProfile overwrites the stored profile.
func (s *Store) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.kv.Put(ctx, s.key(KeyUserProfile), data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// EnsureProfile creates the default profile on first login or registration:
// display name is the username, avatar is the deterministic default seeded
// by username. An existing profile is left untouched.
func (s *Store) EnsureProfile(ctx context.Context) (*models.UserProfile, error) {
	if profile := s.LoadProfile(ctx); profile != nil {
		return profile, nil
	}

	profile := &models.UserProfile{
		Name:   s.username,
		Avatar: DefaultAvatarURL(s.username),
	}
	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DefaultAvatarURL returns the deterministic avatar URL for seed.
func DefaultAvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}
