package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rqlite/gorqlite"
)

func New(conn *gorqlite.Connection) *Queries {
	return &Queries{
		conn: conn,
	}
}

type Queries struct {
	conn *gorqlite.Connection
}

// Interaction is a summary or answer returned to a user. Computed features are not stored.
type Interaction struct {
	ID        int64
	User      string
	Kind      string
	URL       string
	Question  string
	Response  string
	CreatedAt time.Time
}

func (q *Queries) InteractionPut(ctx context.Context, i Interaction) (id int64, err error) {
	stmt := gorqlite.ParameterizedStatement{
		Query:     `insert into interaction (user, kind, url, question, response, created_at) values (?, ?, ?, ?, ?, ?)`,
		Arguments: []any{i.User, i.Kind, i.URL, i.Question, i.Response, i.CreatedAt},
	}
	result, err := q.conn.WriteOneParameterizedContext(ctx, stmt)
	if err != nil {
		return 0, err
	}
	if result.LastInsertID == 0 {
		return 0, fmt.Errorf("expected a non-zero row ID")
	}
	return result.LastInsertID, nil
}

type InteractionListArgs struct {
	User  string
	Limit int
}

// InteractionList returns the user's most recent interactions, newest first.
func (q *Queries) InteractionList(ctx context.Context, args InteractionListArgs) (interactions []Interaction, err error) {
	stmt := gorqlite.ParameterizedStatement{
		Query:     `select id, user, kind, url, question, response, created_at from interaction where user = ? order by created_at desc, id desc limit ?`,
		Arguments: []any{args.User, args.Limit},
	}
	result, err := q.conn.QueryOneParameterizedContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	for result.Next() {
		var i Interaction
		if err = result.Scan(&i.ID, &i.User, &i.Kind, &i.URL, &i.Question, &i.Response, &i.CreatedAt); err != nil {
			return nil, err
		}
		interactions = append(interactions, i)
	}
	return interactions, nil
}

func (q *Queries) InteractionDeleteUser(ctx context.Context, user string) (err error) {
	stmt := gorqlite.ParameterizedStatement{
		Query:     `delete from interaction where user = ?`,
		Arguments: []any{user},
	}
	_, err = q.conn.WriteOneParameterizedContext(ctx, stmt)
	return err
}

// Discard accepts interactions without storing them, for servers without an interaction log.
type Discard struct{}

func (Discard) InteractionPut(ctx context.Context, i Interaction) (id int64, err error) {
	return 0, nil
}
