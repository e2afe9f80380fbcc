package repository

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"Employee-Management-System/config"
)

var (
	ErrDuplicateActiveEmail = errors.New("an active employee with this email already exists")
	ErrDuplicateEmployeeID  = errors.New("employee id is already taken")
)

// Now returns the current time at the precision BSON dates keep, so a record
// read back from the store compares equal to the one that was written.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// classifyEmployeeWriteError maps a duplicate key on one of the employee
// unique indexes to its sentinel. ok is false for every other error.
func classifyEmployeeWriteError(err error) (classified error, ok bool) {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return nil, false
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, config.ActiveEmailIndex):
		return ErrDuplicateActiveEmail, true
	case strings.Contains(msg, config.EmployeeIDIndex):
		return ErrDuplicateEmployeeID, true
	}
	return nil, false
}
