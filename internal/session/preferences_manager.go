package session

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/state"
	"github.com/MKhiriev/go-test-prep/internal/store"
	"github.com/MKhiriev/go-test-prep/models"
)

// Keys of the preference namespace.
const (
	keyUsername           = "username"
	keyDarkTheme          = "is_dark_theme"
	keyPrefsUserID        = "preferences_user_id"
	keyTechnologyIDs      = "technology_ids"
	keyDirections         = "directions"
	keyDeliveryFrequency  = "delivery_frequency"
	keyEmailNotifications = "email_notifications"
	keyPushNotifications  = "push_notifications"
	keyArticlesPerDay     = "articles_per_day"
	keyPrefsUpdatedAt     = "preferences_updated_at"
	// keyPrefsSaved marks a complete preferences record. It is written last
	// and removed first.
	keyPrefsSaved = "preferences_saved"
)

var preferenceKeys = []string{
	keyPrefsSaved,
	keyPrefsUserID,
	keyTechnologyIDs,
	keyDirections,
	keyDeliveryFrequency,
	keyEmailNotifications,
	keyPushNotifications,
	keyArticlesPerDay,
	keyPrefsUpdatedAt,
}

// UserPreferencesManager stores display settings and the user preferences
// in the preference namespace. Failures are logged at debug level and read
// as absent values.
type UserPreferencesManager struct {
	kv       store.KeyValueStore
	username *state.Cell[*string]
	theme    *state.Cell[bool]
	logger   *logger.Logger
}

// NewUserPreferencesManager loads username and theme into their cells.
func NewUserPreferencesManager(ctx context.Context, kv store.KeyValueStore, log *logger.Logger) *UserPreferencesManager {
	m := &UserPreferencesManager{kv: kv, logger: log}

	var username *string
	if name, ok := m.GetUsername(ctx); ok {
		username = &name
	}
	m.username = state.NewCell(username)
	m.theme = state.NewCell(m.IsDarkTheme(ctx))

	return m
}

func (m *UserPreferencesManager) SaveUsername(ctx context.Context, username string) {
	if err := m.kv.Put(ctx, keyUsername, username); err != nil {
		m.debug(ctx, err, "SaveUsername")
	}
	m.username.Set(&username)
}

func (m *UserPreferencesManager) GetUsername(ctx context.Context) (string, bool) {
	name, err := m.kv.Get(ctx, keyUsername)
	if err != nil {
		m.debugMissing(ctx, err, "GetUsername")
		return "", false
	}
	return name, true
}

func (m *UserPreferencesManager) ObserveUsername() (<-chan *string, func()) {
	return m.username.Subscribe()
}

func (m *UserPreferencesManager) SetDarkTheme(ctx context.Context, dark bool) {
	if err := store.PutBool(ctx, m.kv, keyDarkTheme, dark); err != nil {
		m.debug(ctx, err, "SetDarkTheme")
	}
	m.theme.Set(dark)
}

func (m *UserPreferencesManager) IsDarkTheme(ctx context.Context) bool {
	dark, err := store.GetBool(ctx, m.kv, keyDarkTheme)
	if err != nil {
		m.debugMissing(ctx, err, "IsDarkTheme")
		return false
	}
	return dark
}

func (m *UserPreferencesManager) ObserveTheme() (<-chan bool, func()) {
	return m.theme.Subscribe()
}

// SavePreferences drops the marker, writes every field, then writes the
// marker again. A failure stops the sequence before the marker so a partial
// record is never reported as saved.
func (m *UserPreferencesManager) SavePreferences(ctx context.Context, prefs models.UserPreferences) {
	if err := m.kv.Remove(ctx, keyPrefsSaved); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		m.debug(ctx, err, "SavePreferences")
		return
	}

	technologyIDs := make([]string, 0, len(prefs.TechnologyIDs))
	for _, id := range sortedUnique(prefs.TechnologyIDs) {
		technologyIDs = append(technologyIDs, strconv.FormatInt(id, 10))
	}
	directions := make([]string, 0, len(prefs.Directions))
	for _, d := range sortedUnique(prefs.Directions) {
		directions = append(directions, string(d))
	}

	writes := []func() error{
		func() error { return store.PutInt64(ctx, m.kv, keyPrefsUserID, prefs.UserID) },
		func() error { return store.PutJSON(ctx, m.kv, keyTechnologyIDs, technologyIDs) },
		func() error { return store.PutJSON(ctx, m.kv, keyDirections, directions) },
		func() error { return m.kv.Put(ctx, keyDeliveryFrequency, string(prefs.DeliveryFrequency)) },
		func() error { return store.PutBool(ctx, m.kv, keyEmailNotifications, prefs.EmailNotifications) },
		func() error { return store.PutBool(ctx, m.kv, keyPushNotifications, prefs.PushNotifications) },
		func() error { return store.PutInt64(ctx, m.kv, keyArticlesPerDay, int64(prefs.ArticlesPerDay)) },
		func() error { return m.kv.Put(ctx, keyPrefsUpdatedAt, prefs.UpdatedAt.UTC().Format(time.RFC3339Nano)) },
		func() error { return store.PutBool(ctx, m.kv, keyPrefsSaved, true) },
	}
	for _, write := range writes {
		if err := write(); err != nil {
			m.debug(ctx, err, "SavePreferences")
			return
		}
	}
}

// GetPreferences reads the record back. It reports false when the marker is
// missing or any field is unreadable.
func (m *UserPreferencesManager) GetPreferences(ctx context.Context) (models.UserPreferences, bool) {
	if !m.HasPreferences(ctx) {
		return models.UserPreferences{}, false
	}

	var (
		prefs         models.UserPreferences
		technologyIDs []string
		directions    []string
		err           error
	)

	fail := func(err error) (models.UserPreferences, bool) {
		m.debug(ctx, err, "GetPreferences")
		return models.UserPreferences{}, false
	}

	if prefs.UserID, err = store.GetInt64(ctx, m.kv, keyPrefsUserID); err != nil {
		return fail(err)
	}
	if err = store.GetJSON(ctx, m.kv, keyTechnologyIDs, &technologyIDs); err != nil {
		return fail(err)
	}
	for _, raw := range technologyIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(err)
		}
		prefs.TechnologyIDs = append(prefs.TechnologyIDs, id)
	}
	if err = store.GetJSON(ctx, m.kv, keyDirections, &directions); err != nil {
		return fail(err)
	}
	for _, raw := range directions {
		d, err := models.ParseDirection(raw)
		if err != nil {
			return fail(err)
		}
		prefs.Directions = append(prefs.Directions, d)
	}

	rawFrequency, err := m.kv.Get(ctx, keyDeliveryFrequency)
	if err != nil {
		return fail(err)
	}
	if prefs.DeliveryFrequency, err = models.ParseDeliveryFrequency(rawFrequency); err != nil {
		return fail(err)
	}
	if prefs.EmailNotifications, err = store.GetBool(ctx, m.kv, keyEmailNotifications); err != nil {
		return fail(err)
	}
	if prefs.PushNotifications, err = store.GetBool(ctx, m.kv, keyPushNotifications); err != nil {
		return fail(err)
	}
	articlesPerDay, err := store.GetInt64(ctx, m.kv, keyArticlesPerDay)
	if err != nil {
		return fail(err)
	}
	prefs.ArticlesPerDay = int(articlesPerDay)

	rawUpdatedAt, err := m.kv.Get(ctx, keyPrefsUpdatedAt)
	if err != nil {
		return fail(err)
	}
	if prefs.UpdatedAt, err = time.Parse(time.RFC3339Nano, rawUpdatedAt); err != nil {
		return fail(err)
	}

	return prefs, true
}

func (m *UserPreferencesManager) HasPreferences(ctx context.Context) bool {
	saved, err := store.GetBool(ctx, m.kv, keyPrefsSaved)
	if err != nil {
		m.debugMissing(ctx, err, "HasPreferences")
		return false
	}
	return saved
}

// ClearPreferences removes the preference record, marker first. Username and
// theme are kept.
func (m *UserPreferencesManager) ClearPreferences(ctx context.Context) {
	for _, key := range preferenceKeys {
		if err := m.kv.Remove(ctx, key); err != nil {
			m.debug(ctx, err, "ClearPreferences")
		}
	}
}

// Clear wipes the whole namespace and resets the observable values.
func (m *UserPreferencesManager) Clear(ctx context.Context) {
	if err := m.kv.Clear(ctx); err != nil {
		m.debug(ctx, err, "Clear")
	}
	m.username.Set(nil)
	m.theme.Set(false)
}

func (m *UserPreferencesManager) debug(ctx context.Context, err error, fn string) {
	logger.FromContextOr(ctx, m.logger).Debug().Err(err).
		Str("func", "UserPreferencesManager."+fn).
		Msg("preference store failure")
}

// debugMissing logs err unless it only says the key is absent.
func (m *UserPreferencesManager) debugMissing(ctx context.Context, err error, fn string) {
	if errors.Is(err, store.ErrKeyNotFound) {
		return
	}
	m.debug(ctx, err, fn)
}

func sortedUnique[T int64 | models.Direction](in []T) []T {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
