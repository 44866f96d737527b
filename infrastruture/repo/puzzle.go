package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PuzzleRepo handles the persistence of puzzle definitions.
type PuzzleRepo struct {
	collection *mongo.Collection
}

// NewPuzzleRepo creates a new PuzzleRepo with the given MongoDB client, database name, and collection name.
func NewPuzzleRepo(client *mongo.Client, dbName, collectionName string) *PuzzleRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &PuzzleRepo{
		collection: collection,
	}
}

// Save inserts or updates a puzzle definition.
// If the puzzle already exists, it updates the existing record.
// If the puzzle does not exist, it adds a new record.
func (r *PuzzleRepo) Save(p *dmn.Puzzle) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": p.ID}
	update := bson.M{
		"$set": bson.M{
			"name":      p.Name,
			"rows":      p.Rows,
			"agents":    p.Agents,
			"createdAt": p.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a puzzle by its ID.
// Returns ErrPuzzleNotFound if no such puzzle exists.
func (r *PuzzleRepo) ByID(id uuid.UUID) (*dmn.Puzzle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var p dmn.Puzzle
	if err := r.collection.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, dmn.ErrPuzzleNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &p, nil
}
