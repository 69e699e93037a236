package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/repositories"
)

type ChatService struct {
	chatRepo *repositories.ChatRepository
	roomRepo *repositories.RoomRepository
	limiter  *RateLimiterService
}

func NewChatService(
	chatRepo *repositories.ChatRepository,
	roomRepo *repositories.RoomRepository,
	limiter *RateLimiterService,
) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		roomRepo: roomRepo,
		limiter:  limiter,
	}
}

func (chs *ChatService) GetRoomMessages(ctx context.Context, roomID primitive.ObjectID, page, size int) (*models.MessageListResponse, []error) {
	return chs.chatRepo.GetRoomMessages(ctx, roomID, page, size)
}

// SendMessage persists a chat message after checking the room's chat settings
// and, when slow mode is on, the sender's redis throttle. Real-time delivery
// happens over the socket path and is not triggered from here.
func (chs *ChatService) SendMessage(ctx context.Context, userID primitive.ObjectID, body *models.SendMessageRequestBody) (*models.ChatMessage, []error) {
	var errors []error

	if body.Content == "" {
		errors = append(errors, errs.ErrEmptyMessage)
		return nil, errors
	}

	roomID, err := primitive.ObjectIDFromHex(body.RoomID)
	if err != nil {
		errors = append(errors, errs.ErrInvalidParams)
		return nil, errors
	}

	room, err := chs.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if !room.Settings.Chat.Enabled {
		errors = append(errors, errs.ErrChatDisabled)
		return nil, errors
	}

	if room.Settings.Chat.SlowMode && !room.IsOwnedBy(userID) {
		interval := time.Duration(room.Settings.Chat.SlowModeInterval) * time.Second
		allowed, err := chs.limiter.Allow(ctx, room.ID.Hex(), userID.Hex(), interval)
		if err != nil {
			// The throttle is best effort; a cache outage must not kill chat.
			zap.L().Warn("slow mode check failed", zap.Error(err))
		} else if !allowed {
			errors = append(errors, errs.ErrSlowModeActive)
			return nil, errors
		}
	}

	message := &models.ChatMessage{
		Room:    roomID,
		User:    userID,
		Content: body.Content,
	}
	if body.ReplyTo != "" {
		replyTo, err := primitive.ObjectIDFromHex(body.ReplyTo)
		if err != nil {
			errors = append(errors, errs.ErrInvalidParams)
			return nil, errors
		}
		message.ReplyTo = &replyTo
	}

	saved, saveErrs := chs.chatRepo.SaveMessage(ctx, message)
	if len(saveErrs) > 0 {
		return nil, saveErrs
	}

	if err := chs.roomRepo.IncStatistics(ctx, roomID, "statistics.total_messages", 1); err != nil {
		zap.L().Warn("failed to bump room message count", zap.Error(err))
	}

	return saved, nil
}

// DeleteMessage soft-deletes: the author may retract their own message, the
// room's streamer and admins moderate everyone's.
func (chs *ChatService) DeleteMessage(ctx context.Context, messageID primitive.ObjectID, caller *models.Claims, reason string) []error {
	var errors []error

	message, err := chs.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		errors = append(errors, err)
		return errors
	}

	callerID, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		errors = append(errors, errs.ErrInvalidParams)
		return errors
	}

	isAuthor := message.User == callerID
	if !isAuthor && !chs.canModerate(ctx, message.Room, callerID, caller.Role) {
		errors = append(errors, errs.ErrForbidden)
		return errors
	}

	update := bson.M{
		"status":       enums.MESSAGE_STATUS_DELETED,
		"is_moderated": !isAuthor,
	}
	if !isAuthor {
		update["moderated_by"] = callerID
		update["moderation_reason"] = reason
	}

	if _, err := chs.chatRepo.UpdateMessage(ctx, messageID, update); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (chs *ChatService) ToggleReaction(ctx context.Context, messageID, userID primitive.ObjectID, reactionType string) ([]models.Reaction, []error) {
	var errors []error

	message, err := chs.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	reactions := message.ToggleReaction(userID, reactionType)
	if _, err := chs.chatRepo.UpdateMessage(ctx, messageID, bson.M{"reactions": reactions}); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return reactions, nil
}

func (chs *ChatService) TogglePin(ctx context.Context, messageID primitive.ObjectID, caller *models.Claims) (*models.ChatMessage, []error) {
	return chs.toggleFlag(ctx, messageID, caller, "is_pinned", func(m *models.ChatMessage) bool { return m.IsPinned })
}

func (chs *ChatService) ToggleHighlight(ctx context.Context, messageID primitive.ObjectID, caller *models.Claims) (*models.ChatMessage, []error) {
	return chs.toggleFlag(ctx, messageID, caller, "is_highlighted", func(m *models.ChatMessage) bool { return m.IsHighlighted })
}

func (chs *ChatService) GetPinnedMessages(ctx context.Context, roomID primitive.ObjectID) ([]models.ChatMessage, []error) {
	return chs.chatRepo.GetPinnedMessages(ctx, roomID)
}

func (chs *ChatService) toggleFlag(ctx context.Context, messageID primitive.ObjectID, caller *models.Claims, field string, current func(*models.ChatMessage) bool) (*models.ChatMessage, []error) {
	var errors []error

	message, err := chs.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	callerID, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		errors = append(errors, errs.ErrInvalidParams)
		return nil, errors
	}

	if !chs.canModerate(ctx, message.Room, callerID, caller.Role) {
		errors = append(errors, errs.ErrForbidden)
		return nil, errors
	}

	updated, err := chs.chatRepo.UpdateMessage(ctx, messageID, bson.M{field: !current(message)})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (chs *ChatService) canModerate(ctx context.Context, roomID, callerID primitive.ObjectID, role string) bool {
	if role == enums.ROLE_ADMIN {
		return true
	}
	room, err := chs.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return false
	}
	return room.IsOwnedBy(callerID)
}
