// Package collection — владеющая коллекция записей: единственная точка входа
// для мутаций. Держит упорядоченный срез записей с индексом по id и текущий
// выбор пользователя. Порядок записи: сначала хранилище, затем память, поэтому
// отказ персистентности оставляет память нетронутой.
package collection

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
	"rent-records-service/pkg/geoutil"
)

// CreateInput — данные новой записи: фотографии и их метаданные.
type CreateInput struct {
	Photos      []domain.Photo
	GPS         *domain.GPS
	CaptureTime *time.Time
}

// Collection — коллекция записей поверх коллабораторов хранения, геокодинга,
// медиафайлов и уведомлений об изменениях. Все мутации сериализуются мьютексом;
// две конкурирующие мутации одной записи разрешаются по принципу
// "последняя запись побеждает".
type Collection struct {
	storage  port.LandlordStoragePort
	geocoder port.ReverseGeocoderPort
	media    port.MediaVaultPort
	notifier port.ChangeNotifierPort
	logger   port.LoggerPort

	mu         sync.RWMutex
	landlords  []domain.Landlord
	index      map[string]int
	selectedID string
}

// New собирает коллекцию. Геокодер, медиахранилище и нотификатор опциональны
// (nil отключает соответствующий побочный канал), хранилище и логгер обязательны.
func New(
	storage port.LandlordStoragePort,
	geocoder port.ReverseGeocoderPort,
	media port.MediaVaultPort,
	notifier port.ChangeNotifierPort,
	logger port.LoggerPort,
) *Collection {
	return &Collection{
		storage:  storage,
		geocoder: geocoder,
		media:    media,
		notifier: notifier,
		logger:   logger.WithFields(port.Fields{"component": "collection"}),
		index:    make(map[string]int),
	}
}

// Load заменяет содержимое коллекции данными из хранилища. При ошибке
// прежнее состояние памяти сохраняется.
func (c *Collection) Load(ctx context.Context) error {
	landlords, err := c.storage.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load landlords: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.landlords = landlords
	c.index = make(map[string]int, len(landlords))
	for i := range landlords {
		c.index[landlords[i].ID] = i
	}
	if _, ok := c.index[c.selectedID]; !ok {
		c.selectedID = ""
	}

	c.logger.Info("collection loaded", port.Fields{"count": len(landlords)})
	return nil
}

// Create создаёт запись из фотографий. Координата сдвигается от совпадения
// с уже известными, адрес подтягивается обратным геокодированием best-effort.
func (c *Collection) Create(ctx context.Context, in CreateInput) (domain.Landlord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	l := domain.Landlord{
		ID:            newRecordID(),
		Photos:        in.Photos,
		PhoneNumbers:  []string{},
		LandlordType:  domain.LandlordOther,
		WechatStatus:  domain.WechatNotAdded,
		ContactStatus: domain.ContactNotContacted,
		CaptureTime:   in.CaptureTime,
		CommonFees: domain.CommonFees{
			Water:       domain.FeeItem{Type: domain.FeeTypeUnset},
			Electricity: domain.FeeItem{Type: domain.FeeTypeUnset},
		},
		Properties: []domain.RoomInfo{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if l.Photos == nil {
		l.Photos = []domain.Photo{}
	}

	if in.GPS != nil {
		shifted := geoutil.ApplyOffset(c.knownPointsLocked(), in.GPS.Point())
		l.GPS = &domain.GPS{Lng: shifted.Lng, Lat: shifted.Lat}

		if c.geocoder != nil {
			address, err := c.geocoder.ResolveAddress(ctx, *l.GPS)
			if err != nil {
				c.logger.Warn("reverse geocoding failed", port.Fields{
					"landlord_id": l.ID,
					"error":       err.Error(),
				})
			} else {
				l.Address = address
			}
		}
	}

	if err := c.storage.Add(ctx, l); err != nil {
		return domain.Landlord{}, fmt.Errorf("persist new landlord: %w", err)
	}

	c.index[l.ID] = len(c.landlords)
	c.landlords = append(c.landlords, l)

	c.notifyChange(ctx, port.ChangeCreated, l.ID)
	return l, nil
}

// Update накладывает частичные поля на запись, ставит updatedAt и сохраняет.
func (c *Collection) Update(ctx context.Context, id string, patch domain.LandlordPatch) (domain.Landlord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := c.updateLocked(ctx, id, patch)
	if err != nil {
		return domain.Landlord{}, err
	}

	c.notifyChange(ctx, port.ChangeUpdated, id)
	return updated, nil
}

func (c *Collection) updateLocked(ctx context.Context, id string, patch domain.LandlordPatch) (domain.Landlord, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Landlord{}, domain.ErrLandlordNotFound
	}

	updated := c.landlords[i]
	patch.ApplyTo(&updated)
	updated.UpdatedAt = time.Now()

	if err := c.storage.Put(ctx, updated); err != nil {
		return domain.Landlord{}, fmt.Errorf("persist landlord %s: %w", id, err)
	}

	c.landlords[i] = updated
	return updated, nil
}

// Remove удаляет запись; отсутствующий id — no-op. При alsoDeleteMedia
// фотографии верхнего уровня, не используемые другими записями, уезжают
// в корзину (сбои по каждому файлу логируются и пропускаются).
func (c *Collection) Remove(ctx context.Context, id string, alsoDeleteMedia bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.removeLocked(ctx, id, alsoDeleteMedia); err != nil {
		return err
	}

	c.notifyChange(ctx, port.ChangeDeleted, id)
	return nil
}

func (c *Collection) removeLocked(ctx context.Context, id string, alsoDeleteMedia bool) error {
	i, ok := c.index[id]
	if !ok {
		return nil
	}

	if alsoDeleteMedia && c.media != nil {
		c.trashOrphanedMediaLocked(ctx, &c.landlords[i])
	}

	if err := c.storage.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete landlord %s: %w", id, err)
	}

	c.landlords = append(c.landlords[:i], c.landlords[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.landlords); j++ {
		c.index[c.landlords[j].ID] = j
	}
	if c.selectedID == id {
		c.selectedID = ""
	}
	return nil
}

// trashOrphanedMediaLocked отправляет в корзину фотографии записи, лежащие
// в корне медиакаталога (имя без разделителя пути) и не упоминаемые ни одной
// другой записью.
func (c *Collection) trashOrphanedMediaLocked(ctx context.Context, l *domain.Landlord) {
	for _, photo := range l.Photos {
		if photo.FileName == "" || strings.ContainsAny(photo.FileName, "/\\") {
			continue
		}
		if c.fileReferencedElsewhereLocked(photo.FileName, l.ID) {
			continue
		}
		if err := c.media.MoveToTrash(ctx, photo.FileName); err != nil {
			c.logger.Warn("failed to move photo to trash", port.Fields{
				"landlord_id": l.ID,
				"file":        photo.FileName,
				"error":       err.Error(),
			})
		}
	}
}

func (c *Collection) fileReferencedElsewhereLocked(fileName, excludeID string) bool {
	for i := range c.landlords {
		l := &c.landlords[i]
		if l.ID == excludeID {
			continue
		}
		for _, p := range l.Photos {
			if p.FileName == fileName {
				return true
			}
		}
	}
	return false
}

// Merge сливает source в target: фотографии и комнаты конкатенируются,
// телефоны объединяются с точной дедупликацией. Затем source удаляется
// без удаления медиафайлов.
func (c *Collection) Merge(ctx context.Context, targetID, sourceID string) (domain.Landlord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ti, ok := c.index[targetID]
	if !ok {
		return domain.Landlord{}, domain.ErrLandlordNotFound
	}
	si, ok := c.index[sourceID]
	if !ok {
		return domain.Landlord{}, domain.ErrLandlordNotFound
	}

	target := &c.landlords[ti]
	source := &c.landlords[si]

	photos := append(append([]domain.Photo{}, target.Photos...), source.Photos...)
	properties := append(append([]domain.RoomInfo{}, target.Properties...), source.Properties...)

	phones := append([]string{}, target.PhoneNumbers...)
	for _, p := range source.PhoneNumbers {
		known := false
		for _, existing := range phones {
			if existing == p {
				known = true
				break
			}
		}
		if !known {
			phones = append(phones, p)
		}
	}

	merged, err := c.updateLocked(ctx, targetID, domain.LandlordPatch{
		Photos:       &photos,
		PhoneNumbers: &phones,
		Properties:   &properties,
	})
	if err != nil {
		return domain.Landlord{}, err
	}

	if err := c.removeLocked(ctx, sourceID, false); err != nil {
		return domain.Landlord{}, err
	}

	c.notifyChange(ctx, port.ChangeMerged, targetID)
	return merged, nil
}

// AddRoom добавляет комнату владельцу через его путь обновления.
func (c *Collection) AddRoom(ctx context.Context, landlordID string, room domain.RoomInfo) (domain.RoomInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[landlordID]
	if !ok {
		return domain.RoomInfo{}, domain.ErrLandlordNotFound
	}

	now := time.Now()
	room.ID = newRecordID()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if room.Videos == nil {
		room.Videos = []domain.Video{}
	}

	properties := append(append([]domain.RoomInfo{}, c.landlords[i].Properties...), room)
	if _, err := c.updateLocked(ctx, landlordID, domain.LandlordPatch{Properties: &properties}); err != nil {
		return domain.RoomInfo{}, err
	}

	c.notifyChange(ctx, port.ChangeUpdated, landlordID)
	return room, nil
}

// UpdateRoom накладывает частичные поля на комнату владельца.
func (c *Collection) UpdateRoom(ctx context.Context, landlordID, roomID string, patch domain.RoomPatch) (domain.RoomInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[landlordID]
	if !ok {
		return domain.RoomInfo{}, domain.ErrLandlordNotFound
	}

	properties := append([]domain.RoomInfo{}, c.landlords[i].Properties...)
	ri := -1
	for j := range properties {
		if properties[j].ID == roomID {
			ri = j
			break
		}
	}
	if ri < 0 {
		return domain.RoomInfo{}, domain.ErrRoomNotFound
	}

	patch.ApplyTo(&properties[ri])
	properties[ri].UpdatedAt = time.Now()

	if _, err := c.updateLocked(ctx, landlordID, domain.LandlordPatch{Properties: &properties}); err != nil {
		return domain.RoomInfo{}, err
	}

	c.notifyChange(ctx, port.ChangeUpdated, landlordID)
	return properties[ri], nil
}

// RemoveRoom удаляет комнату владельца.
func (c *Collection) RemoveRoom(ctx context.Context, landlordID, roomID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[landlordID]
	if !ok {
		return domain.ErrLandlordNotFound
	}

	properties := make([]domain.RoomInfo, 0, len(c.landlords[i].Properties))
	found := false
	for _, r := range c.landlords[i].Properties {
		if r.ID == roomID {
			found = true
			continue
		}
		properties = append(properties, r)
	}
	if !found {
		return domain.ErrRoomNotFound
	}

	if _, err := c.updateLocked(ctx, landlordID, domain.LandlordPatch{Properties: &properties}); err != nil {
		return err
	}

	c.notifyChange(ctx, port.ChangeUpdated, landlordID)
	return nil
}

// Import добавляет записи пачкой (upsert по id), сохраняя их id и отметки
// времени. Ошибка на любой записи прерывает импорт; уже записанные записи
// остаются.
func (c *Collection) Import(ctx context.Context, landlords []domain.Landlord) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	imported := 0
	for i := range landlords {
		l := landlords[i]
		if err := c.storage.Put(ctx, l); err != nil {
			return imported, fmt.Errorf("import landlord %s: %w", l.ID, err)
		}
		if at, ok := c.index[l.ID]; ok {
			c.landlords[at] = l
		} else {
			c.index[l.ID] = len(c.landlords)
			c.landlords = append(c.landlords, l)
		}
		imported++
	}

	c.notifyChange(ctx, port.ChangeUpdated, "")
	c.logger.Info("records imported", port.Fields{"count": imported})
	return imported, nil
}

// Clear опустошает хранилище и память, сбрасывает выбор.
func (c *Collection) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}

	c.landlords = nil
	c.index = make(map[string]int)
	c.selectedID = ""

	c.notifyChange(ctx, port.ChangeCleared, "")
	return nil
}

// Snapshot возвращает копию текущего списка записей в порядке коллекции.
func (c *Collection) Snapshot() []domain.Landlord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Landlord{}, c.landlords...)
}

// Get возвращает запись по id.
func (c *Collection) Get(id string) (domain.Landlord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return domain.Landlord{}, domain.ErrLandlordNotFound
	}
	return c.landlords[i], nil
}

// FindByPhone — записи с точным вхождением телефона; для предупреждения
// о дубликате перед созданием.
func (c *Collection) FindByPhone(phone string) []domain.Landlord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var found []domain.Landlord
	for i := range c.landlords {
		if c.landlords[i].HasPhone(phone) {
			found = append(found, c.landlords[i])
		}
	}
	return found
}

// Select запоминает текущую запись.
func (c *Collection) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[id]; !ok {
		return domain.ErrLandlordNotFound
	}
	c.selectedID = id
	return nil
}

// Selected возвращает актуальное состояние выбранной записи, если выбор есть.
func (c *Collection) Selected() (domain.Landlord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[c.selectedID]
	if !ok {
		return domain.Landlord{}, false
	}
	return c.landlords[i], true
}

// Stats — сводные счётчики коллекции.
func (c *Collection) Stats() domain.CollectionStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := domain.CollectionStats{Total: len(c.landlords)}
	for i := range c.landlords {
		l := &c.landlords[i]
		if l.IsPerfect {
			stats.Perfect++
		} else {
			stats.Imperfect++
		}
		if l.ContactStatus == domain.Contacted {
			stats.Contacted++
		}
		stats.Rooms += len(l.Properties)
	}
	return stats
}

func (c *Collection) knownPointsLocked() []geoutil.Point {
	points := make([]geoutil.Point, 0, len(c.landlords))
	for i := range c.landlords {
		if gps := c.landlords[i].GPS; gps != nil {
			points = append(points, gps.Point())
		}
	}
	return points
}

func (c *Collection) notifyChange(ctx context.Context, action port.ChangeAction, id string) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.RecordChanged(ctx, action, id); err != nil {
		c.logger.Warn("failed to publish change event", port.Fields{
			"action":      string(action),
			"landlord_id": id,
			"error":       err.Error(),
		})
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newRecordID — отметка времени в миллисекундах плюс девять случайных
// base36-символов.
func newRecordID() string {
	var suffix [9]byte
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix[:])
}
