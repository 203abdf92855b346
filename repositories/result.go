package repositories

import (
	"handicraft-server/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func newInsertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
	}
}

func newUpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
