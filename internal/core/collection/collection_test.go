package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

type nopLogger struct{}

func (nopLogger) Info(string, port.Fields)         {}
func (nopLogger) Warn(string, port.Fields)         {}
func (nopLogger) Error(string, error, port.Fields) {}
func (nopLogger) Debug(string, port.Fields)        {}
func (l nopLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

type fakeStorage struct {
	records map[string]domain.Landlord
	order   []string

	failGetAll bool
	failAdd    bool
	failPut    bool
	failDelete bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{records: map[string]domain.Landlord{}}
}

func (s *fakeStorage) GetAll(context.Context) ([]domain.Landlord, error) {
	if s.failGetAll {
		return nil, errors.New("storage unavailable")
	}
	out := make([]domain.Landlord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *fakeStorage) Add(_ context.Context, l domain.Landlord) error {
	if s.failAdd {
		return errors.New("storage unavailable")
	}
	if _, ok := s.records[l.ID]; ok {
		return errors.New("duplicate id")
	}
	s.records[l.ID] = l
	s.order = append(s.order, l.ID)
	return nil
}

func (s *fakeStorage) Put(_ context.Context, l domain.Landlord) error {
	if s.failPut {
		return errors.New("storage unavailable")
	}
	if _, ok := s.records[l.ID]; !ok {
		s.order = append(s.order, l.ID)
	}
	s.records[l.ID] = l
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, id string) error {
	if s.failDelete {
		return errors.New("storage unavailable")
	}
	delete(s.records, id)
	for i, known := range s.order {
		if known == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeStorage) Clear(context.Context) error {
	s.records = map[string]domain.Landlord{}
	s.order = nil
	return nil
}

type fakeGeocoder struct {
	address string
	err     error
}

func (g *fakeGeocoder) ResolveAddress(context.Context, domain.GPS) (string, error) {
	return g.address, g.err
}

type fakeMedia struct {
	trashed []string
	err     error
}

func (m *fakeMedia) MoveToTrash(_ context.Context, fileName string) error {
	if m.err != nil {
		return m.err
	}
	m.trashed = append(m.trashed, fileName)
	return nil
}

type fakeNotifier struct {
	actions []port.ChangeAction
}

func (n *fakeNotifier) RecordChanged(_ context.Context, action port.ChangeAction, _ string) error {
	n.actions = append(n.actions, action)
	return nil
}

func newTestCollection(t *testing.T, storage *fakeStorage) *Collection {
	t.Helper()
	c := New(storage, &fakeGeocoder{address: "тестовый адрес"}, &fakeMedia{}, &fakeNotifier{}, nopLogger{})
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	storage := newFakeStorage()
	c := newTestCollection(t, storage)

	created, err := c.Create(context.Background(), CreateInput{})
	require.NoError(t, err)

	storage.failGetAll = true
	require.Error(t, c.Load(context.Background()))

	snapshot := c.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, created.ID, snapshot[0].ID)
}

func TestCreateAssignsDefaults(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())

	created, err := c.Create(context.Background(), CreateInput{
		Photos: []domain.Photo{{ID: "ph1", FileName: "a.jpg"}},
		GPS:    &domain.GPS{Lng: 121.47, Lat: 31.23},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.LandlordOther, created.LandlordType)
	assert.Equal(t, domain.WechatNotAdded, created.WechatStatus)
	assert.Equal(t, domain.ContactNotContacted, created.ContactStatus)
	assert.Equal(t, domain.FeeTypeUnset, created.CommonFees.Water.Type)
	assert.Equal(t, domain.FeeTypeUnset, created.CommonFees.Electricity.Type)
	assert.Empty(t, created.Properties)
	assert.Equal(t, "тестовый адрес", created.Address)
}

func TestCreateShiftsDuplicateCoordinate(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())
	gps := domain.GPS{Lng: 121.47, Lat: 31.23}

	first, err := c.Create(context.Background(), CreateInput{GPS: &gps})
	require.NoError(t, err)
	require.NotNil(t, first.GPS)
	assert.Equal(t, gps, *first.GPS)

	second, err := c.Create(context.Background(), CreateInput{GPS: &gps})
	require.NoError(t, err)
	require.NotNil(t, second.GPS)
	assert.NotEqual(t, gps, *second.GPS)
}

func TestCreateGeocodingFailureIsBestEffort(t *testing.T) {
	storage := newFakeStorage()
	c := New(storage, &fakeGeocoder{err: errors.New("amap down")}, nil, nil, nopLogger{})
	require.NoError(t, c.Load(context.Background()))

	created, err := c.Create(context.Background(), CreateInput{GPS: &domain.GPS{Lng: 121.47, Lat: 31.23}})
	require.NoError(t, err)
	assert.Empty(t, created.Address)
}

func TestCreatePersistenceFailureLeavesMemoryUntouched(t *testing.T) {
	storage := newFakeStorage()
	c := newTestCollection(t, storage)

	storage.failAdd = true
	_, err := c.Create(context.Background(), CreateInput{})
	require.Error(t, err)
	assert.Empty(t, c.Snapshot())
}

func TestUpdateNotFoundAndSelectionRefresh(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())

	_, err := c.Update(context.Background(), "missing", domain.LandlordPatch{})
	assert.ErrorIs(t, err, domain.ErrLandlordNotFound)

	created, err := c.Create(context.Background(), CreateInput{})
	require.NoError(t, err)
	require.NoError(t, c.Select(created.ID))

	alias := "Дядя Ван"
	updated, err := c.Update(context.Background(), created.ID, domain.LandlordPatch{Alias: &alias})
	require.NoError(t, err)
	assert.Equal(t, alias, updated.Alias)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, alias, selected.Alias)
}

func TestUpdatePersistenceFailureLeavesMemoryUntouched(t *testing.T) {
	storage := newFakeStorage()
	c := newTestCollection(t, storage)

	created, err := c.Create(context.Background(), CreateInput{})
	require.NoError(t, err)

	storage.failPut = true
	alias := "не сохранится"
	_, err = c.Update(context.Background(), created.ID, domain.LandlordPatch{Alias: &alias})
	require.Error(t, err)

	got, err := c.Get(created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Alias)
}

func TestRemoveIsIdempotentAndClearsSelection(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())

	created, err := c.Create(context.Background(), CreateInput{})
	require.NoError(t, err)
	require.NoError(t, c.Select(created.ID))

	require.NoError(t, c.Remove(context.Background(), created.ID, false))
	_, ok := c.Selected()
	assert.False(t, ok)

	// Повторное удаление — no-op.
	require.NoError(t, c.Remove(context.Background(), created.ID, false))
	assert.Empty(t, c.Snapshot())
}

func TestRemoveTrashesOnlyOrphanedTopLevelPhotos(t *testing.T) {
	storage := newFakeStorage()
	media := &fakeMedia{}
	c := New(storage, nil, media, nil, nopLogger{})
	require.NoError(t, c.Load(context.Background()))

	shared := domain.Photo{ID: "shared", FileName: "shared.jpg"}
	doomed, err := c.Create(context.Background(), CreateInput{Photos: []domain.Photo{
		{ID: "own", FileName: "own.jpg"},
		{ID: "nested", FileName: "folder/nested.jpg"},
		shared,
	}})
	require.NoError(t, err)

	_, err = c.Create(context.Background(), CreateInput{Photos: []domain.Photo{shared}})
	require.NoError(t, err)

	require.NoError(t, c.Remove(context.Background(), doomed.ID, true))

	// В корзину уходит только верхнеуровневый файл без других владельцев.
	assert.Equal(t, []string{"own.jpg"}, media.trashed)
	assert.Len(t, c.Snapshot(), 1)
}

func TestRemoveMediaFailureDoesNotAbortDeletion(t *testing.T) {
	storage := newFakeStorage()
	media := &fakeMedia{err: errors.New("fs error")}
	c := New(storage, nil, media, nil, nopLogger{})
	require.NoError(t, c.Load(context.Background()))

	created, err := c.Create(context.Background(), CreateInput{Photos: []domain.Photo{{ID: "p", FileName: "a.jpg"}}})
	require.NoError(t, err)

	require.NoError(t, c.Remove(context.Background(), created.ID, true))
	assert.Empty(t, c.Snapshot())
}

func TestMergeUnionsAndRemovesSource(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())
	ctx := context.Background()

	source, err := c.Create(ctx, CreateInput{})
	require.NoError(t, err)
	sourcePhones := []string{"111", "222"}
	_, err = c.Update(ctx, source.ID, domain.LandlordPatch{PhoneNumbers: &sourcePhones})
	require.NoError(t, err)
	_, err = c.AddRoom(ctx, source.ID, domain.RoomInfo{RoomType: domain.RoomTypeSingle})
	require.NoError(t, err)

	target, err := c.Create(ctx, CreateInput{})
	require.NoError(t, err)
	targetPhones := []string{"222"}
	_, err = c.Update(ctx, target.ID, domain.LandlordPatch{PhoneNumbers: &targetPhones})
	require.NoError(t, err)
	_, err = c.AddRoom(ctx, target.ID, domain.RoomInfo{RoomType: domain.RoomTypeTwoRoom})
	require.NoError(t, err)
	_, err = c.AddRoom(ctx, target.ID, domain.RoomInfo{RoomType: domain.RoomTypeTwoRoom})
	require.NoError(t, err)

	merged, err := c.Merge(ctx, target.ID, source.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"111", "222"}, merged.PhoneNumbers)
	assert.Len(t, merged.Properties, 3)

	_, err = c.Get(source.ID)
	assert.ErrorIs(t, err, domain.ErrLandlordNotFound)
	assert.Len(t, c.Snapshot(), 1)
}

func TestMergeNotFound(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())
	created, err := c.Create(context.Background(), CreateInput{})
	require.NoError(t, err)

	_, err = c.Merge(context.Background(), created.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrLandlordNotFound)
	_, err = c.Merge(context.Background(), "missing", created.ID)
	assert.ErrorIs(t, err, domain.ErrLandlordNotFound)
}

func TestRoomLifecycleThroughParent(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())
	ctx := context.Background()

	created, err := c.Create(ctx, CreateInput{})
	require.NoError(t, err)

	room, err := c.AddRoom(ctx, created.ID, domain.RoomInfo{RoomType: domain.RoomTypeSingle})
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)

	rent := 1800.0
	updatedRoom, err := c.UpdateRoom(ctx, created.ID, room.ID, domain.RoomPatch{Rent: &rent})
	require.NoError(t, err)
	require.NotNil(t, updatedRoom.Rent)
	assert.Equal(t, rent, *updatedRoom.Rent)

	// Путь через родителя обновляет и его отметку времени.
	parent, err := c.Get(created.ID)
	require.NoError(t, err)
	assert.False(t, parent.UpdatedAt.Before(created.UpdatedAt))

	_, err = c.UpdateRoom(ctx, created.ID, "missing", domain.RoomPatch{})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = c.UpdateRoom(ctx, "missing", room.ID, domain.RoomPatch{})
	assert.ErrorIs(t, err, domain.ErrLandlordNotFound)

	require.NoError(t, c.RemoveRoom(ctx, created.ID, room.ID))
	parent, err = c.Get(created.ID)
	require.NoError(t, err)
	assert.Empty(t, parent.Properties)

	assert.ErrorIs(t, c.RemoveRoom(ctx, created.ID, room.ID), domain.ErrRoomNotFound)
}

func TestFindByPhoneExactMatch(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())
	ctx := context.Background()

	created, err := c.Create(ctx, CreateInput{})
	require.NoError(t, err)
	phones := []string{"13800000000"}
	_, err = c.Update(ctx, created.ID, domain.LandlordPatch{PhoneNumbers: &phones})
	require.NoError(t, err)

	assert.Len(t, c.FindByPhone("13800000000"), 1)
	// Подстрока не считается совпадением.
	assert.Empty(t, c.FindByPhone("1380000000"))
}

func TestClearAndStats(t *testing.T) {
	c := newTestCollection(t, newFakeStorage())
	ctx := context.Background()

	first, err := c.Create(ctx, CreateInput{})
	require.NoError(t, err)
	perfect := true
	contacted := domain.Contacted
	_, err = c.Update(ctx, first.ID, domain.LandlordPatch{IsPerfect: &perfect, ContactStatus: &contacted})
	require.NoError(t, err)
	_, err = c.AddRoom(ctx, first.ID, domain.RoomInfo{RoomType: domain.RoomTypeSingle})
	require.NoError(t, err)

	_, err = c.Create(ctx, CreateInput{})
	require.NoError(t, err)

	stats := c.Stats()
	assert.Equal(t, domain.CollectionStats{Total: 2, Perfect: 1, Imperfect: 1, Contacted: 1, Rooms: 1}, stats)

	require.NoError(t, c.Select(first.ID))
	require.NoError(t, c.Clear(ctx))
	assert.Empty(t, c.Snapshot())
	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, domain.CollectionStats{}, c.Stats())
}

func TestNewRecordIDShape(t *testing.T) {
	id := newRecordID()
	require.Greater(t, len(id), 10)
	assert.Contains(t, id, "-")
	assert.NotEqual(t, id, newRecordID())
}
