package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/repositories"
	"liveTrading/internal/utils"
)

const streamKeyLength = 32

type RoomService struct {
	roomRepo *repositories.RoomRepository
}

func NewRoomService(roomRepo *repositories.RoomRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

func (rs *RoomService) CreateRoom(ctx context.Context, streamerID primitive.ObjectID, body *models.CreateRoomRequestBody) (*models.LiveRoom, []error) {
	var errors []error

	if body.Title == "" {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return nil, errors
	}

	streamKey, err := utils.GenerateStreamKey(streamKeyLength)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return rs.roomRepo.CreateRoom(ctx, &models.LiveRoom{
		Title:       body.Title,
		Description: body.Description,
		Tags:        body.Tags,
		Streamer:    streamerID,
		Status:      enums.ROOM_STATUS_OFFLINE,
		StreamKey:   streamKey,
		Settings:    models.DefaultRoomSettings(),
	})
}

func (rs *RoomService) GetRooms(ctx context.Context, status string, page, size int) (*models.RoomListResponse, []error) {
	return rs.roomRepo.GetRooms(ctx, status, page, size)
}

func (rs *RoomService) GetRoom(ctx context.Context, roomID primitive.ObjectID) (*models.LiveRoom, []error) {
	var errors []error
	room, err := rs.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return room, nil
}

func (rs *RoomService) UpdateRoom(ctx context.Context, roomID, callerID primitive.ObjectID, body *models.UpdateRoomRequestBody) (*models.LiveRoom, []error) {
	var errors []error

	room, err := rs.ownedRoom(ctx, roomID, callerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	update := bson.M{}
	if body.Title != "" {
		update["title"] = body.Title
	}
	if body.Description != "" {
		update["description"] = body.Description
	}
	if body.Tags != nil {
		update["tags"] = body.Tags
	}
	if body.Settings != nil {
		update["settings"] = *body.Settings
	}
	if len(update) == 0 {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return nil, errors
	}

	updated, err := rs.roomRepo.UpdateRoom(ctx, room.ID, update)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (rs *RoomService) StartStream(ctx context.Context, roomID, callerID primitive.ObjectID) (*models.LiveRoom, []error) {
	var errors []error

	room, err := rs.ownedRoom(ctx, roomID, callerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	now := time.Now()
	updated, err := rs.roomRepo.UpdateRoom(ctx, room.ID, bson.M{
		"status":     enums.ROOM_STATUS_LIVE,
		"start_time": now,
		"end_time":   nil,
		"viewers":    int64(0),
	})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (rs *RoomService) EndStream(ctx context.Context, roomID, callerID primitive.ObjectID) (*models.LiveRoom, []error) {
	var errors []error

	room, err := rs.ownedRoom(ctx, roomID, callerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if !room.IsLive() {
		errors = append(errors, errs.ErrRoomNotLive)
		return nil, errors
	}

	if room.Viewers > 0 {
		if err := rs.roomRepo.IncStatistics(ctx, room.ID, "statistics.total_viewers", room.Viewers); err != nil {
			errors = append(errors, err)
			return nil, errors
		}
	}

	now := time.Now()
	updated, err := rs.roomRepo.UpdateRoom(ctx, room.ID, bson.M{
		"status":   enums.ROOM_STATUS_OFFLINE,
		"end_time": now,
		"viewers":  int64(0),
	})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (rs *RoomService) GetRoomStats(ctx context.Context, roomID, callerID primitive.ObjectID) (*models.RoomStatistics, []error) {
	var errors []error

	room, err := rs.ownedRoom(ctx, roomID, callerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return &room.Statistics, nil
}

func (rs *RoomService) ResetStreamKey(ctx context.Context, roomID, callerID primitive.ObjectID) (string, []error) {
	var errors []error

	room, err := rs.ownedRoom(ctx, roomID, callerID)
	if err != nil {
		errors = append(errors, err)
		return "", errors
	}

	streamKey, err := utils.GenerateStreamKey(streamKeyLength)
	if err != nil {
		errors = append(errors, err)
		return "", errors
	}

	if _, err := rs.roomRepo.UpdateRoom(ctx, room.ID, bson.M{"stream_key": streamKey}); err != nil {
		errors = append(errors, err)
		return "", errors
	}
	return streamKey, nil
}

func (rs *RoomService) UpdateThumbnail(ctx context.Context, roomID, callerID primitive.ObjectID, url string) (*models.LiveRoom, []error) {
	var errors []error

	room, err := rs.ownedRoom(ctx, roomID, callerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	updated, err := rs.roomRepo.UpdateRoom(ctx, room.ID, bson.M{"thumbnail": url})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

// VerifyStreamKey authorizes an RTMP ingest callback against the room's key.
func (rs *RoomService) VerifyStreamKey(ctx context.Context, streamKey string) (*models.LiveRoom, []error) {
	var errors []error

	if streamKey == "" {
		errors = append(errors, errs.ErrInvalidStreamKey)
		return nil, errors
	}

	room, err := rs.roomRepo.GetRoomByStreamKey(ctx, streamKey)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return room, nil
}

func (rs *RoomService) ownedRoom(ctx context.Context, roomID, callerID primitive.ObjectID) (*models.LiveRoom, error) {
	room, err := rs.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsOwnedBy(callerID) {
		return nil, errs.ErrNotRoomOwner
	}
	return room, nil
}
