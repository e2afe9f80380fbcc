package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceType string

const (
	AttendanceTimeIn  AttendanceType = "time-in"
	AttendanceTimeOut AttendanceType = "time-out"
)

// OfficeLocation is stamped on every attendance record.
const OfficeLocation = "BGC, Taguig City Office"

// AttendanceRecord belongs to exactly one employee document (EmployeeRef) and
// is append-only.
type AttendanceRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeRef primitive.ObjectID `bson:"employee_ref" json:"-"`
	Type        AttendanceType     `bson:"type" json:"type"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Location    string             `bson:"location" json:"location"`
}

type AttendanceEventPayload struct {
	EmployeeID string `json:"employeeId" validate:"notblank"`
}

type AttendanceEventResponse struct {
	Message string           `json:"message"`
	Record  AttendanceRecord `json:"record"`
}

type ClockState string

const (
	ClockStateIn   ClockState = "IN"
	ClockStateOut  ClockState = "OUT"
	ClockStateNone ClockState = "NONE"
)

// AttendanceStatus is derived from the latest record. Recording never checks
// it; callers that want strict alternation can read it first.
type AttendanceStatus struct {
	EmployeeID string            `json:"employeeId"`
	State      ClockState        `json:"state"`
	LastRecord *AttendanceRecord `json:"lastRecord,omitempty"`
}

func StatusFromRecord(employeeID string, last *AttendanceRecord) AttendanceStatus {
	status := AttendanceStatus{EmployeeID: employeeID, State: ClockStateNone, LastRecord: last}
	if last == nil {
		return status
	}
	switch last.Type {
	case AttendanceTimeIn:
		status.State = ClockStateIn
	case AttendanceTimeOut:
		status.State = ClockStateOut
	}
	return status
}
