// Package credentials persists the access token and the user snapshot in the
// local metadata table so a session survives restarts.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
	"github.com/dmitrijs2005/goalkeeper/internal/dbx"
)

// Credentials is what survives a restart.
type Credentials struct {
	Token string
	User  *models.User
}

// Holder reads and writes the two credential rows. It keeps no state of its own.
type Holder struct {
	db *sql.DB
}

func NewHolder(db *sql.DB) *Holder {
	return &Holder{db: db}
}

func (h *Holder) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Save writes the token and the user snapshot in one transaction.
// A nil user removes any previous snapshot.
func (h *Holder) Save(ctx context.Context, token string, user *models.User) error {
	var snapshot []byte
	if user != nil {
		b, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode user snapshot: %w", err)
		}
		snapshot = b
	}

	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := h.repo(tx)
		if err := r.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			return err
		}
		if snapshot == nil {
			return r.Delete(ctx, common.UserDataKey)
		}
		return r.Set(ctx, common.UserDataKey, snapshot)
	})
}

// Read returns (nil, nil) when no token is stored. A token whose snapshot is
// missing or unreadable comes back with the placeholder user.
func (h *Holder) Read(ctx context.Context) (*Credentials, error) {
	rows, err := h.repo(h.db).List(ctx)
	if err != nil {
		return nil, err
	}

	token, ok := rows[common.AccessTokenKey]
	if !ok {
		return nil, nil
	}

	user := &models.User{}
	raw, ok := rows[common.UserDataKey]
	if !ok || json.Unmarshal(raw, user) != nil || (user.ID == "" && user.Name == "") {
		user = models.PlaceholderUser()
	}

	return &Credentials{Token: string(token), User: user}, nil
}

// Token returns the stored access token, or "" when there is none.
func (h *Holder) Token(ctx context.Context) (string, error) {
	b, err := h.repo(h.db).Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Clear deletes both credential rows.
func (h *Holder) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := h.repo(tx)
		if err := r.Delete(ctx, common.AccessTokenKey); err != nil {
			return err
		}
		return r.Delete(ctx, common.UserDataKey)
	})
}
