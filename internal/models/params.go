package model

import (
	"database/sql/driver"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Params holds request parameters kept alongside the task that are not part
// of its queryable columns.
type Params struct {
	AttachmentType string `json:"attachment_type"`
}

func (p Params) Value() (driver.Value, error) {
	return EncodeColumn(p)
}

func (p *Params) Scan(src any) error {
	var out Params
	if err := DecodeColumn(src, &out); err != nil {
		return err
	}
	*p = out
	return nil
}

func (Params) GormDataType() string {
	return documentColumn{}.GormDataType()
}

func (Params) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return documentColumn{}.GormDBDataType(db, field)
}

// ObjectList is the ordered list of objects a worker must annotate.
type ObjectList []string

func (l ObjectList) Value() (driver.Value, error) {
	return EncodeColumn(l)
}

func (l *ObjectList) Scan(src any) error {
	var out ObjectList
	if err := DecodeColumn(src, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

func (ObjectList) GormDataType() string {
	return documentColumn{}.GormDataType()
}

func (ObjectList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return documentColumn{}.GormDBDataType(db, field)
}
