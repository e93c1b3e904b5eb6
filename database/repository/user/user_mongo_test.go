package userRepo

import (
	"context"
	"testing"

	"smarthome/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get by email returns nil on miss", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.GetByEmail(ctx, "nobody@x.com")
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("get by email decodes user", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Ada"},
			{Key: "email", Value: "ada@x.com"},
			{Key: "role", Value: "admin"},
		}))

		got, err := repo.GetByEmail(ctx, "ada@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, "Ada", got.Name)
		assert.Equal(mt, "admin", got.Role)
	})

	mt.Run("get all", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.com"}},
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		got, err := repo.GetAll(ctx, nil)
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, "a@x.com", got[0].Email)
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Name: "Ada", Email: "ada@x.com", Role: models.DefaultUserRole}
		id, err := repo.Create(ctx, user)
		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
	})

	mt.Run("create surfaces duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Create(ctx, &models.User{Email: "ada@x.com"})
		assert.Error(mt, err)
	})

	mt.Run("update role reports matched count", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		matched, err := repo.UpdateRole(ctx, "ada@x.com", "admin")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), matched)
	})
}
