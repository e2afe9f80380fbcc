// Package service holds the domain rules of the API. Services validate input,
// talk to the repositories and translate every failure into an *apperror.AppError.
package service

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Management-System/pkg/apperror"
)

// parseObjectID maps a malformed id to NotFound: no document can live there.
func parseObjectID(id string, notFound *apperror.AppError) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return objID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
