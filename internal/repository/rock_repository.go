package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/rock-catalog/internal/model"
)

// RockRepo encapsulates all database queries related to specimen records.
// Every read and delete carries the owner in its WHERE clause so that tenant
// isolation is enforced at the lowest layer, not just in handlers.
type RockRepo struct{ db *sql.DB }

func NewRockRepo(db *sql.DB) *RockRepo { return &RockRepo{db: db} }

const rockColumns = "id, user_id, name, category, description, properties, colors, image_url, common_uses, image_quality, confidence_level, created_at, updated_at"

// ListByOwner returns all rocks for a specific owner, newest first. The id
// tiebreak keeps ordering stable for rows created in the same second.
func (r *RockRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Rock, error) {
	const q = "SELECT " + rockColumns + ` FROM rocks
	           WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Rock{}
	for rows.Next() {
		rock, err := scanRock(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rock)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new rock bound to its owner. On success the ID field is
// populated and a follow-up SELECT fills in the database-generated
// timestamps so callers receive a fully populated record.
func (r *RockRepo) Create(ctx context.Context, rock *model.Rock) error {
	props, err := json.Marshal(orEmptyMap(rock.Properties))
	if err != nil {
		return err
	}
	colors, err := json.Marshal(orEmptySlice(rock.Colors))
	if err != nil {
		return err
	}
	const qInsert = `INSERT INTO rocks
	    (user_id, name, category, description, properties, colors, image_url, common_uses, image_quality, confidence_level)
	    VALUES (?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		rock.UserID, rock.Name, rock.Category, rock.Description,
		string(props), string(colors),
		nullable(rock.ImageURL), rock.CommonUses, rock.ImageQuality, rock.ConfidenceLevel)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rock.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM rocks WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, rock.ID).Scan(&rock.CreatedAt, &rock.UpdatedAt)
}

// DeleteByIDAndOwner removes a rock only when both the id and the owner
// match. A missing record and a record owned by another user both yield
// (false, nil); the two cases are indistinguishable on purpose.
func (r *RockRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) (bool, error) {
	const q = "DELETE FROM rocks WHERE id = ? AND user_id = ?"
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanRock reads one row into a Rock, decoding the JSON columns.
func scanRock(rows *sql.Rows) (*model.Rock, error) {
	var (
		rock     model.Rock
		props    sql.NullString
		colors   sql.NullString
		imageURL sql.NullString
		uses     sql.NullString
		quality  sql.NullString
		conf     sql.NullString
	)
	if err := rows.Scan(&rock.ID, &rock.UserID, &rock.Name, &rock.Category, &rock.Description,
		&props, &colors, &imageURL, &uses, &quality, &conf,
		&rock.CreatedAt, &rock.UpdatedAt); err != nil {
		return nil, err
	}
	rock.Properties = map[string]any{}
	if props.Valid && props.String != "" {
		if err := json.Unmarshal([]byte(props.String), &rock.Properties); err != nil {
			return nil, err
		}
	}
	rock.Colors = []string{}
	if colors.Valid && colors.String != "" {
		if err := json.Unmarshal([]byte(colors.String), &rock.Colors); err != nil {
			return nil, err
		}
	}
	rock.ImageURL = imageURL.String
	rock.CommonUses = uses.String
	rock.ImageQuality = quality.String
	rock.ConfidenceLevel = conf.String
	return &rock, nil
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// nullable maps "" to NULL for optional VARCHAR columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
