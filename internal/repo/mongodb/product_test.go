package mongodb

import (
	"testing"

	"github.com/nguyentranbao-ct/lighting-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list by category", func(mt *mtest.T) {
		repo := NewProductRepository(NewDB(mt.Client, mt.DB))
		ns := mt.DB.Name() + "." + models.ProductCollection
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: oid},
				{Key: "title", Value: "Halo"},
				{Key: "price", Value: 99.9},
				{Key: "category", Value: "pendant"},
			},
		))

		products, err := repo.List(mt.Context(), models.ProductFilter{Category: "pendant"}, 24)
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.Equal(mt, oid.Hex(), products[0].ID.String())
		assert.Equal(mt, "pendant", *products[0].Category)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, models.ProductCollection, started.Command.Lookup("find").StringValue())
		assert.Equal(mt, "pendant", started.Command.Lookup("filter", "category").StringValue())
	})

	mt.Run("odd field types do not fail the listing", func(mt *mtest.T) {
		repo := NewProductRepository(NewDB(mt.Client, mt.DB))
		ns := mt.DB.Name() + "." + models.ProductCollection
		decimalPrice, err := primitive.ParseDecimal128("129.50")
		require.NoError(mt, err)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "sku-1"}, {Key: "price", Value: decimalPrice}},
			bson.D{{Key: "_id", Value: "sku-2"}, {Key: "price", Value: "ask us"}, {Key: "in_stock", Value: "yes"}},
			bson.D{{Key: "_id", Value: "sku-3"}, {Key: "price", Value: int32(40)}, {Key: "in_stock", Value: false}},
		))

		products, err := repo.List(mt.Context(), models.ProductFilter{}, 24)
		require.NoError(mt, err)
		require.Len(mt, products, 3)

		first := products[0].Serialize()
		require.NotNil(mt, first.Price)
		assert.Equal(mt, 129.5, *first.Price)

		second := products[1].Serialize()
		assert.Nil(mt, second.Price)
		assert.True(mt, second.InStock)

		third := products[2].Serialize()
		assert.Equal(mt, 40.0, *third.Price)
		assert.False(mt, third.InStock)
	})

	mt.Run("list without category uses empty filter", func(mt *mtest.T) {
		repo := NewProductRepository(NewDB(mt.Client, mt.DB))
		ns := mt.DB.Name() + "." + models.ProductCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		products, err := repo.List(mt.Context(), models.ProductFilter{}, 8)
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		filter := started.Command.Lookup("filter").Document()
		elems, err := filter.Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})
}

func TestProductRepositoryUnavailable(t *testing.T) {
	repo := NewProductRepository(Unavailable())
	_, err := repo.List(t.Context(), models.ProductFilter{}, 8)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
