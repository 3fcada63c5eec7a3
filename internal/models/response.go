package model

import (
	"database/sql/driver"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// BoundingBox is the region a worker drew around one object. A zero box is
// the placeholder written at creation.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Label  *string `json:"label,omitempty"`
}

func (b BoundingBox) Valid() bool {
	for _, v := range []float64{b.Left, b.Top, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Width >= 0 && b.Height >= 0
}

// Response maps object name to the box drawn for it.
type Response map[string]BoundingBox

// EmptyResponse returns one zero box per object.
func EmptyResponse(objects []string) Response {
	r := make(Response, len(objects))
	for _, o := range objects {
		r[o] = BoundingBox{}
	}
	return r
}

// MatchesObjects reports whether the response keys are exactly objects.
func (r Response) MatchesObjects(objects []string) bool {
	if len(r) != len(objects) {
		return false
	}
	for _, o := range objects {
		if _, ok := r[o]; !ok {
			return false
		}
	}
	return true
}

func (r Response) Value() (driver.Value, error) {
	return EncodeColumn(r)
}

func (r *Response) Scan(src any) error {
	var out Response
	if err := DecodeColumn(src, &out); err != nil {
		return err
	}
	*r = out
	return nil
}

func (Response) GormDataType() string {
	return documentColumn{}.GormDataType()
}

func (Response) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return documentColumn{}.GormDBDataType(db, field)
}
