package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fandom/internal/models"
	"fandom/internal/store"
)

// fakeStore implements Store with canned data per kind.
type fakeStore struct {
	users map[int64]models.User

	locations  []models.FavoriteLocation
	characters []models.FavoriteCharacter
	episodes   []models.FavoriteEpisode

	existing map[[2]int64]bool

	createCalls int
	deleteHit   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int64]models.User{},
		existing: map[[2]int64]bool{},
	}
}

func (f *fakeStore) UserByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) ListFavoriteLocations(_ context.Context, _ int64) ([]models.FavoriteLocation, error) {
	return f.locations, nil
}

func (f *fakeStore) LocationFavoriteExists(_ context.Context, userID, locationID int64) (bool, error) {
	return f.existing[[2]int64{userID, locationID}], nil
}

func (f *fakeStore) CreateFavoriteLocation(_ context.Context, userID, locationID int64) (*models.FavoriteLocation, error) {
	f.createCalls++
	return &models.FavoriteLocation{
		ID:       1,
		User:     models.User{ID: userID},
		Location: models.Location{ID: locationID},
	}, nil
}

func (f *fakeStore) DeleteFavoriteLocation(_ context.Context, _, _ int64) (bool, error) {
	return f.deleteHit, nil
}

func (f *fakeStore) ListFavoriteCharacters(_ context.Context, _ int64) ([]models.FavoriteCharacter, error) {
	return f.characters, nil
}

func (f *fakeStore) CharacterFavoriteExists(_ context.Context, userID, characterID int64) (bool, error) {
	return f.existing[[2]int64{userID, characterID}], nil
}

func (f *fakeStore) CreateFavoriteCharacter(_ context.Context, userID, characterID int64) (*models.FavoriteCharacter, error) {
	f.createCalls++
	return &models.FavoriteCharacter{
		ID:        1,
		User:      models.User{ID: userID},
		Character: models.Character{ID: characterID},
	}, nil
}

func (f *fakeStore) DeleteFavoriteCharacter(_ context.Context, _, _ int64) (bool, error) {
	return f.deleteHit, nil
}

func (f *fakeStore) ListFavoriteEpisodes(_ context.Context, _ int64) ([]models.FavoriteEpisode, error) {
	return f.episodes, nil
}

func (f *fakeStore) EpisodeFavoriteExists(_ context.Context, userID, episodeID int64) (bool, error) {
	return f.existing[[2]int64{userID, episodeID}], nil
}

func (f *fakeStore) CreateFavoriteEpisode(_ context.Context, userID, episodeID int64) (*models.FavoriteEpisode, error) {
	f.createCalls++
	return &models.FavoriteEpisode{
		ID:      1,
		Episode: models.Episode{ID: episodeID},
	}, nil
}

func (f *fakeStore) DeleteFavoriteEpisode(_ context.Context, _, _ int64) (bool, error) {
	return f.deleteHit, nil
}

func TestAddLocation(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs)

	fav, err := svc.AddLocation(context.Background(), 7, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), fav.Location.ID)
	require.Equal(t, 1, fs.createCalls)
}

func TestAddLocationDuplicateShortCircuits(t *testing.T) {
	fs := newFakeStore()
	fs.existing[[2]int64{7, 3}] = true
	svc := New(fs)

	_, err := svc.AddLocation(context.Background(), 7, 3)
	require.ErrorIs(t, err, store.ErrFavoriteExists)
	require.Zero(t, fs.createCalls, "create must not run after the duplicate check")
}

func TestRemoveEpisodeIdempotent(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs)

	// No matching record: still a success.
	fs.deleteHit = false
	require.NoError(t, svc.RemoveEpisode(context.Background(), 7, 3))

	fs.deleteHit = true
	require.NoError(t, svc.RemoveEpisode(context.Background(), 7, 3))
}

func TestListLocationsNeverNil(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs)

	favs, err := svc.ListLocations(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, favs)
	require.Empty(t, favs)
}

func TestSummaryUnknownUser(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs)

	_, err := svc.Summary(context.Background(), 99)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestSummaryEmpty(t *testing.T) {
	fs := newFakeStore()
	fs.users[7] = models.User{ID: 7, Email: "demo@example.com", IsActive: true}
	svc := New(fs)

	summary, err := svc.Summary(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, summary.Locations)
	require.NotNil(t, summary.Characters)
	require.NotNil(t, summary.Episodes)
	require.Empty(t, summary.Locations)
	require.Empty(t, summary.Characters)
	require.Empty(t, summary.Episodes)
}

func TestSummaryMergesKinds(t *testing.T) {
	fs := newFakeStore()
	fs.users[7] = models.User{ID: 7}
	fs.locations = []models.FavoriteLocation{{ID: 1, Location: models.Location{ID: 3}}}
	fs.characters = []models.FavoriteCharacter{{ID: 2, Character: models.Character{ID: 4}}}
	fs.episodes = []models.FavoriteEpisode{{ID: 3, Episode: models.Episode{ID: 5}}}
	svc := New(fs)

	summary, err := svc.Summary(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summary.Locations, 1)
	require.Len(t, summary.Characters, 1)
	require.Len(t, summary.Episodes, 1)
}
