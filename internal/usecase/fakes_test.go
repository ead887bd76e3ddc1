package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
	"github.com/GoArmGo/CatalogApp/internal/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStorageDown = errors.New("connection reset by peer")

// fakeUserStorage — in-memory реализация ports.UserStorage.
type fakeUserStorage struct {
	users    map[string]domain.User // hex ID -> user
	failWith error
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[string]domain.User{}}
}

func (f *fakeUserStorage) addUser(hexID, email string) {
	oid, _ := primitive.ObjectIDFromHex(hexID)
	f.users[hexID] = domain.User{
		ID:        oid,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (f *fakeUserStorage) ExistsByID(ctx context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if !validate.IsObjectID(id) {
		return false, nil
	}
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStorage) InsertUser(ctx context.Context, user *domain.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = *user
	return nil
}

func (f *fakeUserStorage) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if !validate.IsObjectID(id) {
		return nil, nil
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	users := []domain.User{}
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

// fakeMediaStorage — in-memory реализация ports.MediaStorage.
type fakeMediaStorage struct {
	media    map[string]domain.Media // hex ID -> media
	failWith error
}

func newFakeMediaStorage() *fakeMediaStorage {
	return &fakeMediaStorage{media: map[string]domain.Media{}}
}

func (f *fakeMediaStorage) addMedia(hexID, title string) {
	oid, _ := primitive.ObjectIDFromHex(hexID)
	f.media[hexID] = domain.Media{
		ID:          oid,
		Title:       title,
		Description: "description of " + title,
		Type:        domain.MediaTypeMovie,
		ReleaseYear: 2020,
		Genre:       "drama",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (f *fakeMediaStorage) ExistsByID(ctx context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if !validate.IsObjectID(id) {
		return false, nil
	}
	_, ok := f.media[id]
	return ok, nil
}

func (f *fakeMediaStorage) InsertMedia(ctx context.Context, media *domain.Media) error {
	if f.failWith != nil {
		return f.failWith
	}
	if media.ID.IsZero() {
		media.ID = primitive.NewObjectID()
	}
	f.media[media.ID.Hex()] = *media
	return nil
}

func (f *fakeMediaStorage) GetMediaByID(ctx context.Context, id string) (*domain.Media, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if !validate.IsObjectID(id) {
		return nil, nil
	}
	media, ok := f.media[id]
	if !ok {
		return nil, nil
	}
	return &media, nil
}

func (f *fakeMediaStorage) ListMedia(ctx context.Context) ([]domain.Media, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	medias := []domain.Media{}
	for _, media := range f.media {
		medias = append(medias, media)
	}
	return medias, nil
}

// fakeFavoriteStorage — in-memory реализация ports.FavoriteStorage.
// ListWithMedia повторяет поведение $lookup+$unwind: осиротевшие записи
// (медиа отсутствует в mediaStorage) отфильтровываются из результата.
type fakeFavoriteStorage struct {
	edges        map[string]domain.Favorite // userID|mediaID -> edge
	mediaStorage *fakeMediaStorage
	failWith     error
	// deleteMatches позволяет форсировать исход гонки:
	// DeleteEdge возвращает 0 несмотря на существующую запись
	deleteMatches *int64
}

func newFakeFavoriteStorage(mediaStorage *fakeMediaStorage) *fakeFavoriteStorage {
	return &fakeFavoriteStorage{
		edges:        map[string]domain.Favorite{},
		mediaStorage: mediaStorage,
	}
}

func edgeKey(userID, mediaID string) string {
	return userID + "|" + mediaID
}

func (f *fakeFavoriteStorage) EdgeExists(ctx context.Context, userID, mediaID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.edges[edgeKey(userID, mediaID)]
	return ok, nil
}

func (f *fakeFavoriteStorage) InsertEdge(ctx context.Context, userID, mediaID string, addedAt time.Time) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.edges[edgeKey(userID, mediaID)] = domain.Favorite{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		MediaID: mediaID,
		AddedAt: addedAt,
	}
	return nil
}

func (f *fakeFavoriteStorage) DeleteEdge(ctx context.Context, userID, mediaID string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if f.deleteMatches != nil {
		return *f.deleteMatches, nil
	}
	key := edgeKey(userID, mediaID)
	if _, ok := f.edges[key]; !ok {
		return 0, nil
	}
	delete(f.edges, key)
	return 1, nil
}

func (f *fakeFavoriteStorage) ListWithMedia(ctx context.Context, userID string) ([]domain.FavoriteWithMedia, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	result := []domain.FavoriteWithMedia{}
	for _, edge := range f.edges {
		if edge.UserID != userID {
			continue
		}
		media, ok := f.mediaStorage.media[edge.MediaID]
		if !ok {
			// осиротевшая запись: медиа удалено, из результата выпадает
			continue
		}
		result = append(result, domain.FavoriteWithMedia{
			ID:      edge.ID.Hex(),
			UserID:  edge.UserID,
			MediaID: edge.MediaID,
			AddedAt: edge.AddedAt,
			Media: domain.MediaSnapshot{
				ID:          media.ID.Hex(),
				Title:       media.Title,
				Description: media.Description,
				Type:        media.Type,
				ReleaseYear: media.ReleaseYear,
				Genre:       media.Genre,
				CreatedAt:   media.CreatedAt,
			},
		})
	}
	return result, nil
}

// fakeEventPublisher запоминает опубликованные события избранного.
type fakeEventPublisher struct {
	published []payloads.FavoriteEventPayload
	failWith  error
}

func (f *fakeEventPublisher) PublishFavoriteEvent(ctx context.Context, payload payloads.FavoriteEventPayload) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.published = append(f.published, payload)
	return nil
}
