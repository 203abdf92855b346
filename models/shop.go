package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop is a catalog entry. Listings are seeded outside this service, so apart
// from the id every attribute is kept as stored.
type Shop struct {
	ID         primitive.ObjectID `bson:"_id"`
	Attributes bson.M             `bson:",inline"`
}

func (s Shop) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Attributes)+1)
	for k, v := range s.Attributes {
		out[k] = v
	}
	out["_id"] = s.ID
	return json.Marshal(out)
}
