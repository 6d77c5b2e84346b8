package identifier

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()

	decoded, err := Decode(Encode(id))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded != id {
		t.Errorf("Decode(Encode(id)) = %s, want %s", decoded.Hex(), id.Hex())
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "too short", in: "507f1f77bcf86cd79943"},
		{name: "too long", in: "507f1f77bcf86cd799439011aa"},
		{name: "bad charset", in: "507f1f77bcf86cd79943901z"},
		{name: "uuid", in: "7f6c2c7e-9a5e-4a6b-8a10-2f1d6a3c9e01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.in); !errors.Is(err, ErrInvalid) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalid", tt.in, err)
			}
		})
	}
}
