package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/utils"
)

type RoomRepository struct {
	rooms *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{
		rooms: db.Collection("live_rooms"),
	}
}

func (rr *RoomRepository) CreateRoom(ctx context.Context, room *models.LiveRoom) (*models.LiveRoom, []error) {
	var errorList []error

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	result, err := rr.rooms.InsertOne(ctx, room)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	room.ID = result.InsertedID.(primitive.ObjectID)
	return room, nil
}

func (rr *RoomRepository) GetRooms(ctx context.Context, status string, page, size int) (*models.RoomListResponse, []error) {
	var errorList []error

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	skip, limit := utils.Paginate(page, size)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := rr.rooms.Find(ctx, filter, opts)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	rooms := []models.LiveRoom{}
	if err := cursor.All(ctx, &rooms); err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	total, err := rr.rooms.CountDocuments(ctx, filter)
	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	return &models.RoomListResponse{
		Rooms: rooms,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Pages: utils.TotalPages(total, size),
		},
	}, nil
}

func (rr *RoomRepository) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*models.LiveRoom, error) {
	var room models.LiveRoom
	err := rr.rooms.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (rr *RoomRepository) GetRoomByStreamKey(ctx context.Context, streamKey string) (*models.LiveRoom, error) {
	var room models.LiveRoom
	err := rr.rooms.FindOne(ctx, bson.M{"stream_key": streamKey}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrInvalidStreamKey
		}
		return nil, err
	}
	return &room, nil
}

func (rr *RoomRepository) UpdateRoom(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.LiveRoom, error) {
	update["updated_at"] = time.Now()

	result := rr.rooms.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		findAfterUpdate(),
	)

	var room models.LiveRoom
	if err := result.Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// IncStatistics atomically bumps a statistics counter, e.g.
// "statistics.total_messages".
func (rr *RoomRepository) IncStatistics(ctx context.Context, id primitive.ObjectID, field string, delta int64) error {
	_, err := rr.rooms.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	return err
}
