package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAvgRating(t *testing.T) {
	p := &ProjectDoc{}
	assert.Equal(t, 0.0, p.AvgRating(), "no ratings means average 0")

	p.Ratings = []RatingEntry{
		{User: primitive.NewObjectID(), Rating: 2},
		{User: primitive.NewObjectID(), Rating: 4},
	}
	assert.Equal(t, 3.0, p.AvgRating())

	p.Ratings = append(p.Ratings, RatingEntry{User: primitive.NewObjectID(), Rating: 5})
	assert.InDelta(t, 11.0/3.0, p.AvgRating(), 1e-9)
}

func TestDecorateSerializesAverage(t *testing.T) {
	p := &ProjectDoc{
		Title: "x",
		Ratings: []RatingEntry{
			{User: primitive.NewObjectID(), Rating: 5},
		},
	}

	b, err := json.Marshal(p.Decorate())
	assert.NoError(t, err)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, 5.0, out["averageRating"])
}
