package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/utils"
)

type ChatRepository struct {
	messages *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{
		messages: db.Collection("chat_messages"),
	}
}

func (chr *ChatRepository) SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, []error) {
	var errorList []error

	message.CreatedAt = time.Now()
	message.Status = enums.MESSAGE_STATUS_SENT
	if message.Reactions == nil {
		message.Reactions = []models.Reaction{}
	}

	result, err := chr.messages.InsertOne(ctx, message)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	message.ID = result.InsertedID.(primitive.ObjectID)
	return message, nil
}

func (chr *ChatRepository) GetRoomMessages(ctx context.Context, roomID primitive.ObjectID, page, size int) (*models.MessageListResponse, []error) {
	var errorList []error

	filter := bson.M{"room": roomID}

	skip, limit := utils.Paginate(page, size)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := chr.messages.Find(ctx, filter, opts)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	messages := []models.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	// Deleted messages stay in the history but their content is masked.
	for i := range messages {
		if messages[i].IsDeleted() {
			messages[i].Content = ""
		}
	}

	total, err := chr.messages.CountDocuments(ctx, filter)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	return &models.MessageListResponse{
		Messages: messages,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Pages: utils.TotalPages(total, size),
		},
	}, nil
}

func (chr *ChatRepository) GetMessageByID(ctx context.Context, id primitive.ObjectID) (*models.ChatMessage, error) {
	var message models.ChatMessage
	err := chr.messages.FindOne(ctx, bson.M{"_id": id}).Decode(&message)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (chr *ChatRepository) UpdateMessage(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.ChatMessage, error) {
	result := chr.messages.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		findAfterUpdate(),
	)

	var message models.ChatMessage
	if err := result.Decode(&message); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (chr *ChatRepository) GetPinnedMessages(ctx context.Context, roomID primitive.ObjectID) ([]models.ChatMessage, []error) {
	var errorList []error

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := chr.messages.Find(ctx, bson.M{"room": roomID, "is_pinned": true}, opts)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	messages := []models.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}
	return messages, nil
}
