package msgstore

import "errors"

// Link ties an original guild message to the bot's translation reply in the
// same channel, so edits and deletes of the original can be mirrored.
type Link struct {
	ChannelID string
	MessageID string
	ReplyID   string
}

type Store interface {
	Link(l Link) error
	Reply(channelID, messageID string) (Link, error)
	Unlink(channelID, messageID string) error
}

var ErrNotFound = errors.New("Link not found in database")
var ErrNoAffect = errors.New("Not able to affect anything in the database")
var ErrInternal = errors.New("Internal error while trying to use database")
