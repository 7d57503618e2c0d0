package repository

import (
	"context"
	"errors"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/repository/model"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const wallClockExpr = "(date || ' ' || time)"

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	if err := r.db.WithContext(ctx).Create(toModelUser(user)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserEmailExists
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)

	// Struct-based update so the json serializer applies to the tag
	// slices; Select forces zero values through as well.
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userModel.ID).
		Select("name", "email", "location", "interests", "personality_tags", "bio", "avatar_url", "anime_avatar_seed", "updated_at").
		Updates(userModel)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrUserEmailExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type PostgresEventRepository struct {
	db *gorm.DB
}

func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event == nil {
		return errors.New("event is nil")
	}

	eventModel := toModelEvent(event)
	if err := r.db.WithContext(ctx).Omit("Organizer").Create(eventModel).Error; err != nil {
		return err
	}

	event.ID = eventModel.ID
	return nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var event model.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return toDomainEvent(&event), nil
}

func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event == nil {
		return errors.New("event is nil")
	}

	eventModel := toModelEvent(event)

	res := r.db.WithContext(ctx).Model(&model.Event{}).Where("id = ?", eventModel.ID).Updates(map[string]any{
		"title":               eventModel.Title,
		"description":         eventModel.Description,
		"category":            eventModel.Category,
		"date":                eventModel.Date,
		"time":                eventModel.Time,
		"location":            eventModel.Location,
		"latitude":            eventModel.Latitude,
		"longitude":           eventModel.Longitude,
		"price":               eventModel.Price,
		"is_free":             eventModel.IsFree,
		"max_capacity":        eventModel.MaxCapacity,
		"parking_info":        eventModel.ParkingInfo,
		"meeting_point":       eventModel.MeetingPoint,
		"duration":            eventModel.Duration,
		"what_to_bring":       eventModel.WhatToBring,
		"special_notes":       eventModel.SpecialNotes,
		"requirements":        eventModel.Requirements,
		"contact_info":        eventModel.ContactInfo,
		"cancellation_policy": eventModel.CancellationPolicy,
		"is_active":           eventModel.IsActive,
		"updated_at":          eventModel.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *PostgresEventRepository) ListByWindow(ctx context.Context, window timebucket.Window, limit int) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := window.Start.Format("2006-01-02 15:04")
	end := window.End.Format("2006-01-02 15:04")

	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(wallClockExpr+" >= ? AND "+wallClockExpr+" < ?", start, end).
		Order("date, time, id").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Event, 0, len(events))
	for i := range events {
		result = append(result, toDomainEvent(&events[i]))
	}
	return result, nil
}

func (r *PostgresEventRepository) ListByOrganizer(ctx context.Context, organizer uuid.UUID) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizer).
		Order("date, time, id").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Event, 0, len(events))
	for i := range events {
		result = append(result, toDomainEvent(&events[i]))
	}
	return result, nil
}

type PostgresRSVPRepository struct {
	db *gorm.DB
}

func NewPostgresRSVPRepository(db *gorm.DB) *PostgresRSVPRepository {
	return &PostgresRSVPRepository{db: db}
}

// Upsert keeps exactly one row per (event, user): a conflicting write
// replaces the stored status instead of adding history.
func (r *PostgresRSVPRepository) Upsert(ctx context.Context, rsvp *domain.EventRSVP) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rsvp == nil {
		return errors.New("rsvp is nil")
	}

	rsvpModel := toModelRSVP(rsvp)

	err := r.db.WithContext(ctx).
		Omit("Event", "User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(rsvpModel).Error
	if err != nil {
		return err
	}

	rsvp.ID = rsvpModel.ID
	return nil
}

func (r *PostgresRSVPRepository) GetByEventAndUser(ctx context.Context, eventID int64, userID uuid.UUID) (*domain.EventRSVP, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rsvp model.EventRSVP
	err := r.db.WithContext(ctx).First(&rsvp, "event_id = ? AND user_id = ?", eventID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, err
	}

	return toDomainRSVP(&rsvp), nil
}

func (r *PostgresRSVPRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventRSVP, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rsvps []model.EventRSVP
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at, id").
		Find(&rsvps).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.EventRSVP, 0, len(rsvps))
	for i := range rsvps {
		result = append(result, toDomainRSVP(&rsvps[i]))
	}
	return result, nil
}

func (r *PostgresRSVPRepository) Counts(ctx context.Context, eventID int64) (domain.RSVPCounts, error) {
	if err := ctx.Err(); err != nil {
		return domain.RSVPCounts{}, err
	}

	type statusCount struct {
		Status string
		Count  int
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.EventRSVP{}).
		Select("status, count(*) as count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return domain.RSVPCounts{}, err
	}

	var counts domain.RSVPCounts
	for _, row := range rows {
		switch domain.RSVPStatus(row.Status) {
		case domain.RSVPStatusGoing:
			counts.Going = row.Count
		case domain.RSVPStatusMaybe:
			counts.Maybe = row.Count
		}
	}
	return counts, nil
}

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewPostgresChatRepository(db *gorm.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg == nil {
		return errors.New("message is nil")
	}

	msgModel := toModelChatMessage(msg)
	if err := r.db.WithContext(ctx).Omit("Event", "User").Create(msgModel).Error; err != nil {
		return err
	}

	msg.ID = msgModel.ID
	return nil
}

// ListByEvent returns messages in creation order with id as the tie
// breaker. A non-zero beforeID selects the page of messages older than
// that id, which keeps pagination stable while new messages arrive.
func (r *PostgresChatRepository) ListByEvent(ctx context.Context, eventID int64, limit int, beforeID int64) ([]*domain.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Joins("User").
		Where("chat_messages.event_id = ?", eventID)
	if beforeID > 0 {
		q = q.Where("chat_messages.id < ?", beforeID)
	}

	var messages []model.ChatMessage
	err := q.Order("chat_messages.created_at DESC, chat_messages.id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ChatMessage, len(messages))
	for i := range messages {
		result[len(messages)-1-i] = toDomainChatMessage(&messages[i])
	}
	return result, nil
}

func toModelUser(user *domain.User) *model.User {
	return &model.User{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		Location:        user.Location,
		Interests:       user.Interests,
		PersonalityTags: user.PersonalityTags,
		Bio:             user.Bio,
		AvatarURL:       user.AvatarURL,
		AnimeAvatarSeed: user.AnimeAvatarSeed,
		CreatedAt:       user.CreatedAt.UTC(),
		UpdatedAt:       user.UpdatedAt.UTC(),
	}
}

func toDomainUser(user *model.User) *domain.User {
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}
	tags := user.PersonalityTags
	if tags == nil {
		tags = []string{}
	}

	return &domain.User{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		Location:        user.Location,
		Interests:       interests,
		PersonalityTags: tags,
		Bio:             user.Bio,
		AvatarURL:       user.AvatarURL,
		AnimeAvatarSeed: user.AnimeAvatarSeed,
		CreatedAt:       user.CreatedAt.UTC(),
		UpdatedAt:       user.UpdatedAt.UTC(),
	}
}

func toModelEvent(event *domain.Event) *model.Event {
	return &model.Event{
		ID:                 event.ID,
		Title:              event.Title,
		Description:        event.Description,
		Category:           event.Category,
		Date:               event.Date,
		Time:               event.Time,
		Location:           event.Location,
		Latitude:           event.Latitude,
		Longitude:          event.Longitude,
		Price:              event.Price,
		IsFree:             event.IsFree,
		MaxCapacity:        event.MaxCapacity,
		OrganizerID:        event.OrganizerID,
		ParkingInfo:        event.ParkingInfo,
		MeetingPoint:       event.MeetingPoint,
		Duration:           event.Duration,
		WhatToBring:        event.WhatToBring,
		SpecialNotes:       event.SpecialNotes,
		Requirements:       event.Requirements,
		ContactInfo:        event.ContactInfo,
		CancellationPolicy: event.CancellationPolicy,
		IsActive:           event.IsActive,
		CreatedAt:          event.CreatedAt.UTC(),
		UpdatedAt:          event.UpdatedAt.UTC(),
	}
}

func toDomainEvent(event *model.Event) *domain.Event {
	return &domain.Event{
		ID:                 event.ID,
		Title:              event.Title,
		Description:        event.Description,
		Category:           event.Category,
		Date:               event.Date,
		Time:               event.Time,
		Location:           event.Location,
		Latitude:           event.Latitude,
		Longitude:          event.Longitude,
		Price:              event.Price,
		IsFree:             event.IsFree,
		MaxCapacity:        event.MaxCapacity,
		OrganizerID:        event.OrganizerID,
		ParkingInfo:        event.ParkingInfo,
		MeetingPoint:       event.MeetingPoint,
		Duration:           event.Duration,
		WhatToBring:        event.WhatToBring,
		SpecialNotes:       event.SpecialNotes,
		Requirements:       event.Requirements,
		ContactInfo:        event.ContactInfo,
		CancellationPolicy: event.CancellationPolicy,
		IsActive:           event.IsActive,
		CreatedAt:          event.CreatedAt.UTC(),
		UpdatedAt:          event.UpdatedAt.UTC(),
	}
}

func toModelRSVP(rsvp *domain.EventRSVP) *model.EventRSVP {
	return &model.EventRSVP{
		ID:        rsvp.ID,
		EventID:   rsvp.EventID,
		UserID:    rsvp.UserID,
		Status:    string(rsvp.Status),
		CreatedAt: rsvp.CreatedAt.UTC(),
		UpdatedAt: rsvp.UpdatedAt.UTC(),
	}
}

func toDomainRSVP(rsvp *model.EventRSVP) *domain.EventRSVP {
	return &domain.EventRSVP{
		ID:        rsvp.ID,
		EventID:   rsvp.EventID,
		UserID:    rsvp.UserID,
		Status:    domain.RSVPStatus(rsvp.Status),
		CreatedAt: rsvp.CreatedAt.UTC(),
		UpdatedAt: rsvp.UpdatedAt.UTC(),
	}
}

func toModelChatMessage(msg *domain.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		ID:        msg.ID,
		EventID:   msg.EventID,
		UserID:    msg.UserID,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt.UTC(),
		UpdatedAt: msg.UpdatedAt.UTC(),
	}
}

func toDomainChatMessage(msg *model.ChatMessage) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:          msg.ID,
		EventID:     msg.EventID,
		UserID:      msg.UserID,
		DisplayName: msg.User.Name,
		Message:     msg.Message,
		CreatedAt:   msg.CreatedAt.UTC(),
		UpdatedAt:   msg.UpdatedAt.UTC(),
	}
}
