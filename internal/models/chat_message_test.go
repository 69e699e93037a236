package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/internal/enums"
)

func TestToggleReactionAddAndRemove(t *testing.T) {
	userID := primitive.NewObjectID()
	msg := &ChatMessage{}

	reactions := msg.ToggleReaction(userID, "rocket")
	require.Len(t, reactions, 1)
	assert.Equal(t, "rocket", reactions[0].Type)

	reactions = msg.ToggleReaction(userID, "rocket")
	assert.Empty(t, reactions)
}

func TestToggleReactionReplacesPreviousType(t *testing.T) {
	userID := primitive.NewObjectID()
	msg := &ChatMessage{}

	msg.ToggleReaction(userID, "rocket")
	reactions := msg.ToggleReaction(userID, "fire")

	require.Len(t, reactions, 1)
	assert.Equal(t, "fire", reactions[0].Type)
}

func TestToggleReactionKeepsOtherUsers(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	msg := &ChatMessage{}

	msg.ToggleReaction(first, "rocket")
	reactions := msg.ToggleReaction(second, "rocket")
	require.Len(t, reactions, 2)

	reactions = msg.ToggleReaction(first, "rocket")
	require.Len(t, reactions, 1)
	assert.Equal(t, second, reactions[0].User)
}

func TestIsDeleted(t *testing.T) {
	msg := &ChatMessage{Status: enums.MESSAGE_STATUS_SENT}
	assert.False(t, msg.IsDeleted())

	msg.Status = enums.MESSAGE_STATUS_DELETED
	assert.True(t, msg.IsDeleted())
}
