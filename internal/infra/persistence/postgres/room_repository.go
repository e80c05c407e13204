package postgres

import (
	"context"
	"slices"
	"time"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roomRepository implements the repository.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// CreateRoom persists a new room; a second DIRECT room for the same pair violates the direct_key index.
func (repo *roomRepository) CreateRoom(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		if room.Kind == entity.RoomKindDirect && isUniqueConstraintViolation(err) {
			return repository.ErrDirectRoomExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat room")
	}

	return nil
}

func (repo *roomRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat room by ID")
	}

	return toRoomDomain(&roomM), nil
}

func (repo *roomRepository) FindDirectRoom(ctx context.Context, userA, userB string) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("direct_key = ?", entity.DirectKey(userA, userB)).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find direct chat room")
	}

	return toRoomDomain(&roomM), nil
}

func (repo *roomRepository) FindRoomsByParticipant(ctx context.Context, userID string) ([]*entity.Room, error) {
	var roomModels []*model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("? = ANY(participants)", userID).
		Order("updated_at DESC").
		Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chat rooms by participant")
	}

	rooms := make([]*entity.Room, 0, len(roomModels))
	for _, roomM := range roomModels {
		rooms = append(rooms, toRoomDomain(roomM))
	}

	return rooms, nil
}

func (repo *roomRepository) InsertMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert chat message")
	}

	return nil
}

func (repo *roomRepository) TouchRoom(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", id).
		Update("updated_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch chat room")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

// FindMessages walks backwards by (created_at, id) and returns the page oldest first.
func (repo *roomRepository) FindMessages(ctx context.Context, roomID uuid.UUID, cursor repository.MessageCursor) ([]entity.Message, error) {
	var messageModels []*model.MessageModel

	query := repo.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC")

	if cursor.Before != nil {
		query = query.Where("(created_at, id) < (SELECT created_at, id FROM chat_messages WHERE id = ?)", *cursor.Before)
	}
	if cursor.Limit > 0 {
		query = query.Limit(cursor.Limit)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chat messages")
	}

	messages := make([]entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}
	slices.Reverse(messages)

	return messages, nil
}

func (repo *roomRepository) FindReadMarkers(ctx context.Context, roomID uuid.UUID) (map[string]time.Time, error) {
	var markerModels []*model.ReadMarkerModel

	if err := repo.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Find(&markerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find read markers")
	}

	markers := make(map[string]time.Time, len(markerModels))
	for _, markerM := range markerModels {
		markers[markerM.UserID] = markerM.LastReadAt
	}

	return markers, nil
}

func (repo *roomRepository) UpsertReadMarker(ctx context.Context, roomID uuid.UUID, userID string, at time.Time) error {
	markerM := &model.ReadMarkerModel{RoomID: roomID, UserID: userID, LastReadAt: at}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_read_at"}),
		}).
		Create(markerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRoomNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert read marker")
	}

	return nil
}

// AddParticipant appends in one guarded UPDATE so concurrent changes cannot produce duplicates.
func (repo *roomRepository) AddParticipant(ctx context.Context, roomID uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ? AND kind <> ? AND NOT (? = ANY(participants))", roomID, string(entity.RoomKindDirect), userID).
		Updates(map[string]any{
			"participants": gorm.Expr("array_append(participants, ?)", userID),
			"updated_at":   time.Now(),
		})

	return repo.guardedUpdateResult(ctx, roomID, result, "failed to add participant")
}

// RemoveParticipant only matches while the user is present and someone else remains.
func (repo *roomRepository) RemoveParticipant(ctx context.Context, roomID uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ? AND kind <> ? AND ? = ANY(participants) AND cardinality(participants) > 1",
			roomID, string(entity.RoomKindDirect), userID).
		Updates(map[string]any{
			"participants": gorm.Expr("array_remove(participants, ?)", userID),
			"updated_at":   time.Now(),
		})

	return repo.guardedUpdateResult(ctx, roomID, result, "failed to remove participant")
}

func (repo *roomRepository) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.MessageModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete chat messages")
		}

		if err := tx.Where("room_id = ?", id).Delete(&model.ReadMarkerModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete read markers")
		}

		result := tx.Where("id = ?", id).Delete(&model.RoomModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete chat room")
		}

		if result.RowsAffected == 0 {
			return repository.ErrRoomNotFound
		}

		return nil
	})
}

// guardedUpdateResult tells a missing room apart from a guard that no longer holds
func (repo *roomRepository) guardedUpdateResult(ctx context.Context, roomID uuid.UUID, result *gorm.DB, msg string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", roomID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, msg)
	}

	if count == 0 {
		return repository.ErrRoomNotFound
	}

	return repository.ErrParticipantConflict
}

// --- Mapper Functions ---

func toRoomDomain(data *model.RoomModel) *entity.Room {
	if data == nil {
		return nil
	}

	return &entity.Room{
		ID:             data.ID,
		Kind:           entity.RoomKind(data.Kind),
		Name:           data.Name,
		ParticipantIDs: []string(data.Participants),
		ChallengeID:    data.ChallengeID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromRoomDomain(data *entity.Room) *model.RoomModel {
	if data == nil {
		return nil
	}

	roomM := &model.RoomModel{
		ID:           data.ID,
		Kind:         string(data.Kind),
		Name:         data.Name,
		Participants: pq.StringArray(data.ParticipantIDs),
		ChallengeID:  data.ChallengeID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Kind == entity.RoomKindDirect && len(data.ParticipantIDs) == 2 {
		key := entity.DirectKey(data.ParticipantIDs[0], data.ParticipantIDs[1])
		roomM.DirectKey = &key
	}

	return roomM
}

func toMessageDomain(data *model.MessageModel) entity.Message {
	return entity.Message{
		ID:        data.ID,
		RoomID:    data.RoomID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		Kind:      entity.MessageKind(data.Kind),
		FileURL:   data.FileURL,
		CreatedAt: data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:        data.ID,
		RoomID:    data.RoomID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		Kind:      string(data.Kind),
		FileURL:   data.FileURL,
		CreatedAt: data.CreatedAt,
	}
}
