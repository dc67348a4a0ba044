package repository

import (
	"context"
	"errors"
	"time"

	"titanpc-store/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrReviewNotFound = errors.New("reseña no encontrada")

type MongoReviewRepository struct {
	col *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{col: db.Collection("reviews")}
}

func (m *MongoReviewRepository) Insert(ctx context.Context, r *model.Review) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := m.col.InsertOne(ctx, r)
	return err
}

func (m *MongoReviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var res model.Review
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReviewNotFound
	}
	return &res, err
}

func (m *MongoReviewRepository) FindByProductID(ctx context.Context, productID string) ([]*model.Review, error) {
	cur, err := m.col.Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Review
	for cur.Next(ctx) {
		var v model.Review
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}

// FindByUserAndProduct localiza la reseña previa del usuario, si existe
// (máximo una reseña por usuario y producto).
func (m *MongoReviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*model.Review, error) {
	var res model.Review
	err := m.col.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReviewNotFound
	}
	return &res, err
}

func (m *MongoReviewRepository) Update(ctx context.Context, r *model.Review) error {
	r.UpdatedAt = time.Now().UTC()

	filter := bson.M{"id": r.ID}
	update := bson.M{"$set": bson.M{
		"rating":     r.Rating,
		"title":      r.Title,
		"comment":    r.Comment,
		"updated_at": r.UpdatedAt,
	}}

	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (m *MongoReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}
