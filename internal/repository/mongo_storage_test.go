package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStorage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get existing key", func(mt *mtest.T) {
		s := NewMongoStorage(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(1, "dhrw.local_storage", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: KeyWalletAddress},
			{Key: "value", Value: `"0xabc"`},
		}))

		v, err := s.Get(context.Background(), KeyWalletAddress)
		require.NoError(mt, err)
		assert.Equal(mt, `"0xabc"`, string(v))
	})

	mt.Run("get missing key", func(mt *mtest.T) {
		s := NewMongoStorage(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dhrw.local_storage", mtest.FirstBatch))

		_, err := s.Get(context.Background(), KeyWalletAddress)
		assert.True(mt, IsNotFound(err))
	})

	mt.Run("set upserts", func(mt *mtest.T) {
		s := NewMongoStorage(mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := s.Set(context.Background(), KeyAuditLogs, []byte(`[]`))
		assert.NoError(mt, err)
	})

	mt.Run("set write error", func(mt *mtest.T) {
		s := NewMongoStorage(mt.Coll)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := s.Set(context.Background(), KeyAuditLogs, []byte(`[]`))
		assert.Error(mt, err)
	})

	mt.Run("remove", func(mt *mtest.T) {
		s := NewMongoStorage(mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, s.Remove(context.Background(), KeyAuditLogs))
	})
}
