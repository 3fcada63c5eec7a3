package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

// EncodeColumn serializes a nested value into the scalar stored in its column.
func EncodeColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrSerializationFailure, err)
	}
	return string(b), nil
}

// DecodeColumn restores a value written by EncodeColumn. Unknown fields are
// rejected so that documents written under another schema surface as
// ErrSerializationFailure instead of silently losing data.
func DecodeColumn(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return apperrors.Wrapf(apperrors.ErrSerializationFailure, "unsupported column value %T", src)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Wrap(apperrors.ErrSerializationFailure, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperrors.Wrapf(apperrors.ErrSerializationFailure, "trailing data after document")
	}
	return nil
}

// documentColumnType picks a native document type where the engine has one.
func documentColumnType(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	default:
		return "TEXT"
	}
}

type documentColumn struct{}

func (documentColumn) GormDataType() string {
	return "json"
}

func (documentColumn) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return documentColumnType(db)
}
