package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/internal/enums"
)

type Reaction struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	Type      string             `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type ChatMessage struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Room             primitive.ObjectID  `bson:"room" json:"room"`
	User             primitive.ObjectID  `bson:"user" json:"user"`
	Content          string              `bson:"content" json:"content"`
	Status           string              `bson:"status" json:"status"`
	IsHighlighted    bool                `bson:"is_highlighted" json:"is_highlighted"`
	IsPinned         bool                `bson:"is_pinned" json:"is_pinned"`
	Reactions        []Reaction          `bson:"reactions" json:"reactions"`
	ReplyTo          *primitive.ObjectID `bson:"reply_to,omitempty" json:"reply_to,omitempty"`
	IsModerated      bool                `bson:"is_moderated" json:"is_moderated"`
	ModeratedBy      *primitive.ObjectID `bson:"moderated_by,omitempty" json:"moderated_by,omitempty"`
	ModerationReason string              `bson:"moderation_reason,omitempty" json:"moderation_reason,omitempty"`
	CreatedAt        time.Time           `bson:"created_at" json:"created_at"`
}

// ToggleReaction adds the reaction, or removes it when the same user already
// reacted with the same type. A user keeps at most one reaction per message.
func (msg *ChatMessage) ToggleReaction(userID primitive.ObjectID, reactionType string) []Reaction {
	for _, reaction := range msg.Reactions {
		if reaction.User == userID && reaction.Type == reactionType {
			kept := make([]Reaction, 0, len(msg.Reactions)-1)
			for _, r := range msg.Reactions {
				if r.User != userID {
					kept = append(kept, r)
				}
			}
			msg.Reactions = kept
			return msg.Reactions
		}
	}

	kept := make([]Reaction, 0, len(msg.Reactions)+1)
	for _, r := range msg.Reactions {
		if r.User != userID {
			kept = append(kept, r)
		}
	}
	msg.Reactions = append(kept, Reaction{
		User:      userID,
		Type:      reactionType,
		CreatedAt: time.Now(),
	})
	return msg.Reactions
}

func (msg *ChatMessage) IsDeleted() bool {
	return msg.Status == enums.MESSAGE_STATUS_DELETED
}
