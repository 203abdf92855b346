package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a sign-in record. The users collection is written by clients as
// they see fit, so the typed fields are filled only when the stored value has
// the expected type. Everything else, including oddly typed known fields, is
// kept in Attributes and written back unchanged.
type User struct {
	ID          primitive.ObjectID
	Email       string
	Name        string
	Phone       string
	Image       string
	Address     string
	CreatedAt   *time.Time
	LastLoginAt *time.Time
	Attributes  bson.M
}

// UserProfile holds the editable profile fields. Nil fields are left untouched.
type UserProfile struct {
	Name    *string `bson:"name,omitempty"`
	Phone   *string `bson:"phone,omitempty"`
	Image   *string `bson:"image,omitempty"`
	Address *string `bson:"address,omitempty"`
}

func (p UserProfile) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Image == nil && p.Address == nil
}

func (u User) MarshalBSON() ([]byte, error) {
	return bson.Marshal(u.document())
}

func (u *User) UnmarshalBSON(data []byte) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()

	var doc bson.M
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	u.fromDocument(doc)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Attributes)+8)
	for _, e := range u.document() {
		out[e.Key] = e.Value
	}
	return json.Marshal(out)
}

func (u *User) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	doc, ok := v.(bson.M)
	if !ok && v != nil {
		return fmt.Errorf("user must be a JSON object")
	}
	u.fromDocument(doc)
	if id, ok := u.Attributes["_id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			u.ID = oid
			delete(u.Attributes, "_id")
		}
	}
	return nil
}

// document lays out the typed fields first, then the remaining attributes in
// key order.
func (u User) document() bson.D {
	doc := bson.D{}
	if !u.ID.IsZero() {
		doc = append(doc, bson.E{Key: "_id", Value: u.ID})
	}
	for _, f := range []struct {
		key   string
		value string
	}{
		{"email", u.Email},
		{"name", u.Name},
		{"phone", u.Phone},
		{"image", u.Image},
		{"address", u.Address},
	} {
		if f.value != "" {
			doc = append(doc, bson.E{Key: f.key, Value: f.value})
		}
	}
	if u.CreatedAt != nil {
		doc = append(doc, bson.E{Key: "createdAt", Value: *u.CreatedAt})
	}
	if u.LastLoginAt != nil {
		doc = append(doc, bson.E{Key: "lastLoginAt", Value: *u.LastLoginAt})
	}

	keys := make([]string, 0, len(u.Attributes))
	for k := range u.Attributes {
		if !u.hasField(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		doc = append(doc, bson.E{Key: k, Value: u.Attributes[k]})
	}
	return doc
}

// hasField reports whether key is already written from a typed field.
func (u User) hasField(key string) bool {
	switch key {
	case "_id":
		return !u.ID.IsZero()
	case "email":
		return u.Email != ""
	case "name":
		return u.Name != ""
	case "phone":
		return u.Phone != ""
	case "image":
		return u.Image != ""
	case "address":
		return u.Address != ""
	case "createdAt":
		return u.CreatedAt != nil
	case "lastLoginAt":
		return u.LastLoginAt != nil
	}
	return false
}

func (u *User) fromDocument(doc bson.M) {
	*u = User{}
	for k, v := range doc {
		if u.setField(k, v) {
			continue
		}
		if u.Attributes == nil {
			u.Attributes = bson.M{}
		}
		u.Attributes[k] = v
	}
}

func (u *User) setField(key string, v interface{}) bool {
	switch key {
	case "_id":
		id, ok := v.(primitive.ObjectID)
		if ok {
			u.ID = id
		}
		return ok
	case "email":
		return setString(&u.Email, v)
	case "name":
		return setString(&u.Name, v)
	case "phone":
		return setString(&u.Phone, v)
	case "image":
		return setString(&u.Image, v)
	case "address":
		return setString(&u.Address, v)
	case "createdAt":
		return setTime(&u.CreatedAt, v)
	case "lastLoginAt":
		return setTime(&u.LastLoginAt, v)
	}
	return false
}

// setString leaves empty strings in Attributes so they survive a round trip.
func setString(dst *string, v interface{}) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	*dst = s
	return true
}

// setTime takes dates and parseable date strings. Anything else, epoch
// numbers included, stays in Attributes as written.
func setTime(dst **time.Time, v interface{}) bool {
	switch v.(type) {
	case primitive.DateTime, time.Time, string:
	default:
		return false
	}
	t, ok := ParseTimestamp(v)
	if !ok {
		return false
	}
	*dst = &t
	return true
}
