package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/repstack/repcore/internal/model"
)

// Blob columns (pinnedNotes, notes, bodyPart, suggest, actual) hold the
// JSON encoding of the corresponding model value. Enum columns hold the
// bare string value and are parsed tolerantly on load, so rows written by
// a newer version with unknown variants still load.

func jsonBlob(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal blob: %w", err)
	}
	return string(data), nil
}

// nullableJSONBlob returns NULL for nil pointers instead of the JSON
// literal "null", keeping optional columns queryable with IS NULL.
func nullableJSONBlob(v any, isNil bool) (sql.NullString, error) {
	if isNil {
		return sql.NullString{}, nil
	}
	blob, err := jsonBlob(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: blob, Valid: true}, nil
}

func unmarshalBlob(blob sql.NullString, v any) error {
	if !blob.Valid || blob.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(blob.String), v); err != nil {
		return fmt.Errorf("unmarshal blob: %w", err)
	}
	return nil
}

func unixTime(t time.Time) int64 {
	return t.UTC().Unix()
}

func timeFromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func nullableUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: unixTime(*t), Valid: true}
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullableInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullableWeightUnit(wu *model.WeightUnit) sql.NullString {
	if wu == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*wu), Valid: true}
}

func intPtrFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	i := int(n.Int64)
	return &i
}

func stringPtrFromNull(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func timePtrFromNull(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := timeFromUnix(n.Int64)
	return &t
}

func weightUnitPtrFromNull(n sql.NullString) *model.WeightUnit {
	if !n.Valid {
		return nil
	}
	wu := model.ParseWeightUnit(n.String)
	return &wu
}
