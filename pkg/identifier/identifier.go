// Package identifier converts between MongoDB ObjectIDs and the opaque
// hex strings exposed over the wire.
package identifier

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalid means the string is not a syntactically valid identifier.
// Malformed ids are rejected outright; there is no fallback to treating
// them as literal stored values.
var ErrInvalid = errors.New("invalid identifier")

func Encode(id primitive.ObjectID) string {
	return id.Hex()
}

func Decode(s string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(s) {
		return primitive.NilObjectID, ErrInvalid
	}

	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalid
	}

	return id, nil
}
