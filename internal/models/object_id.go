package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID is used to seemlessly convert between string and the stored `_id`.
// Documents written outside this service may carry non ObjectID keys, those
// are decoded into their string form.
//
//nolint:recvcheck // use pointer receiver to match bson.UnmarshalValue
type ObjectID string

func (o ObjectID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	p, err := primitive.ObjectIDFromHex(string(o))
	if err != nil {
		return bson.MarshalValue(string(o))
	}
	return bson.MarshalValue(p)
}

func (o *ObjectID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeObjectID:
		*o = ObjectID(raw.ObjectID().Hex())
	case bson.TypeString:
		*o = ObjectID(raw.StringValue())
	case bson.TypeInt32:
		*o = ObjectID(strconv.FormatInt(int64(raw.Int32()), 10))
	case bson.TypeInt64:
		*o = ObjectID(strconv.FormatInt(raw.Int64(), 10))
	case bson.TypeDouble:
		*o = ObjectID(strconv.FormatFloat(raw.Double(), 'f', -1, 64))
	case bson.TypeNull, bson.TypeUndefined:
		*o = ""
	default:
		*o = ObjectID(raw.String())
	}
	return nil
}

func (o ObjectID) String() string {
	return string(o)
}
