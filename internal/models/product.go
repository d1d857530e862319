package models

import (
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductCollection is populated outside this service and only read here.
const ProductCollection = "product"

// Product is the stored product document. Every field is optional in the
// collection, so scalar fields are pointers. Decoding is lenient, see
// UnmarshalBSON.
type Product struct {
	ID          ObjectID `bson:"_id,omitempty"`
	Title       *string  `bson:"title,omitempty"`
	Description *string  `bson:"description,omitempty"`
	Price       *float64 `bson:"price,omitempty"`
	Category    *string  `bson:"category,omitempty"`
	InStock     *bool    `bson:"in_stock,omitempty"`
	ImageURL    *string  `bson:"image_url,omitempty"`
}

func (Product) CollectionName() string {
	return ProductCollection
}

// UnmarshalBSON never rejects a well-formed document. A field holding a type
// it cannot be read as is left nil, so one odd document does not fail a whole
// listing.
func (p *Product) UnmarshalBSON(data []byte) error {
	doc := bson.Raw(data)
	if err := doc.Validate(); err != nil {
		return err
	}

	var out Product
	if v, err := doc.LookupErr("_id"); err == nil {
		if err := out.ID.UnmarshalBSONValue(v.Type, v.Value); err != nil {
			return err
		}
	}
	out.Title = lookupString(doc, "title")
	out.Description = lookupString(doc, "description")
	out.Price = lookupNumber(doc, "price")
	out.Category = lookupString(doc, "category")
	out.InStock = lookupBool(doc, "in_stock")
	out.ImageURL = lookupString(doc, "image_url")

	*p = out
	return nil
}

func lookupString(doc bson.Raw, key string) *string {
	v, err := doc.LookupErr(key)
	if err != nil {
		return nil
	}

	var s string
	switch v.Type {
	case bson.TypeString:
		s = v.StringValue()
	case bson.TypeInt32:
		s = strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		s = strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		s = strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bson.TypeBoolean:
		s = strconv.FormatBool(v.Boolean())
	default:
		return nil
	}
	return &s
}

func lookupNumber(doc bson.Raw, key string) *float64 {
	v, err := doc.LookupErr(key)
	if err != nil {
		return nil
	}

	var f float64
	switch v.Type {
	case bson.TypeDouble:
		f = v.Double()
	case bson.TypeInt32:
		f = float64(v.Int32())
	case bson.TypeInt64:
		f = float64(v.Int64())
	case bson.TypeDecimal128:
		parsed, err := strconv.ParseFloat(v.Decimal128().String(), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	// NaN and infinities have no JSON form
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func lookupBool(doc bson.Raw, key string) *bool {
	v, err := doc.LookupErr(key)
	if err != nil {
		return nil
	}

	var b bool
	switch v.Type {
	case bson.TypeBoolean:
		b = v.Boolean()
	case bson.TypeInt32:
		b = v.Int32() != 0
	case bson.TypeInt64:
		b = v.Int64() != 0
	case bson.TypeDouble:
		b = v.Double() != 0
	case bson.TypeString:
		parsed, err := strconv.ParseBool(v.StringValue())
		if err != nil {
			return nil
		}
		b = parsed
	default:
		return nil
	}
	return &b
}

// ProductResponse is the API shape of a product. Missing optional fields are
// rendered as null.
type ProductResponse struct {
	ID          string   `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     bool     `json:"in_stock"`
	ImageURL    *string  `json:"image_url"`
}

// Serialize maps a stored product to its response shape. in_stock defaults to
// true when the document does not carry it, a document without `_id` gets an
// empty id.
func (p Product) Serialize() ProductResponse {
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}
	return ProductResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     inStock,
		ImageURL:    p.ImageURL,
	}
}

// ProductFilter holds the exact-match conditions of a product query.
type ProductFilter struct {
	Category string
}
