package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Position struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	DepartmentID string             `bson:"department_id" json:"departmentId"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

type PositionCreatePayload struct {
	Title        string `json:"title" validate:"notblank"`
	DepartmentID string `json:"departmentId" validate:"notblank"`
}

// PositionPatch holds the fields of a partial position update. A nil field is
// left untouched.
type PositionPatch struct {
	Title        *string `json:"title,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
}

// Normalize trims every present field and drops the ones that end up blank.
func (p PositionPatch) Normalize() PositionPatch {
	return PositionPatch{
		Title:        trimmedOrNil(p.Title),
		DepartmentID: trimmedOrNil(p.DepartmentID),
	}
}

func (p PositionPatch) IsEmpty() bool {
	return p.Title == nil && p.DepartmentID == nil
}

func (p PositionPatch) Apply(pos *Position) {
	if p.Title != nil {
		pos.Title = *p.Title
	}
	if p.DepartmentID != nil {
		pos.DepartmentID = *p.DepartmentID
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
