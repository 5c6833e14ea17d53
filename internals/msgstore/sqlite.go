package msgstore

import (
	"database/sql"
	"errors"

	_ "github.com/tursodatabase/go-libsql"
)

type SQLiteStore struct {
	sql *sql.DB
}

func NewSQLiteStore(file string) (*SQLiteStore, error) {
	db, err := sql.Open("libsql", file)
	if err != nil {
		return &SQLiteStore{}, err
	}
	return &SQLiteStore{db}, nil
}

func (db *SQLiteStore) Close() error {
	return db.sql.Close()
}

func (db *SQLiteStore) Prepare() error {
	if _, err := db.sql.Exec(`
		CREATE TABLE IF NOT EXISTS links (
			ChannelID text NOT NULL,
			MessageID text NOT NULL,
			ReplyID   text NOT NULL,
			PRIMARY KEY(MessageID, ChannelID)
		);
	`); err != nil {
		return errors.Join(ErrInternal, err)
	}

	return nil
}

func (db *SQLiteStore) Link(l Link) error {
	r, err := db.sql.Exec(`
		INSERT OR IGNORE INTO links (ChannelID, MessageID, ReplyID)
			VALUES ($1, $2, $3)
	`, l.ChannelID, l.MessageID, l.ReplyID)

	if err != nil {
		return errors.Join(ErrInternal, err)
	} else if rows, _ := r.RowsAffected(); rows == 0 {
		return ErrNoAffect
	}

	return nil
}

func (db *SQLiteStore) Reply(channelID, messageID string) (Link, error) {
	q := db.sql.QueryRow(`
		SELECT ChannelID, MessageID, ReplyID FROM links
			WHERE "ChannelID" = $1 AND "MessageID" = $2
	`, channelID, messageID)

	var l Link
	err := q.Scan(&l.ChannelID, &l.MessageID, &l.ReplyID)
	if errors.Is(err, sql.ErrNoRows) {
		return Link{}, ErrNotFound
	} else if err != nil {
		return Link{}, errors.Join(ErrInternal, err)
	}

	return l, nil
}

func (db *SQLiteStore) Unlink(channelID, messageID string) error {
	r, err := db.sql.Exec(`
		DELETE FROM links
			WHERE "ChannelID" = $1 AND "MessageID" = $2
	`, channelID, messageID)

	if err != nil {
		return errors.Join(ErrInternal, err)
	} else if rows, _ := r.RowsAffected(); rows == 0 {
		return ErrNoAffect
	}

	return nil
}
