package repository

import (
	"context"
	"errors"
	"time"

	"titanpc-store/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("orden no encontrada")

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Save(ctx context.Context, o *model.Order) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	filter := bson.M{"id": o.ID}
	update := bson.M{"$set": o}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return m.findOne(ctx, bson.M{"id": id})
}

func (m *MongoOrderRepository) FindByTrackingNumber(ctx context.Context, tracking string) (*model.Order, error) {
	return m.findOne(ctx, bson.M{"numero_seguimiento": tracking})
}

func (m *MongoOrderRepository) FindBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	return m.findOne(ctx, bson.M{"session_id": sessionID})
}

func (m *MongoOrderRepository) findOne(ctx context.Context, filter bson.M) (*model.Order, error) {
	var res model.Order
	err := m.col.FindOne(ctx, filter).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// UpdateStatus cambia el estado y añade el evento de seguimiento asociado.
// El historial de eventos es append-only.
func (m *MongoOrderRepository) UpdateStatus(ctx context.Context, id string, estado model.OrderStatus, event model.TrackingEvent) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"estado":     estado,
			"updated_at": time.Now().UTC(),
		},
		"$push": bson.M{
			"eventos": event,
		},
	}

	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendEvent añade un evento de seguimiento sin tocar el estado.
func (m *MongoOrderRepository) AppendEvent(ctx context.Context, id string, event model.TrackingEvent) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set":  bson.M{"updated_at": time.Now().UTC()},
		"$push": bson.M{"eventos": event},
	}

	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateShippingAddress edita la dirección de entrega de una orden existente.
func (m *MongoOrderRepository) UpdateShippingAddress(ctx context.Context, id string, addr model.ShippingAddress) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$set": bson.M{
			"shipping_address": addr,
			"updated_at":       time.Now().UTC(),
		},
	}

	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*model.Order, error) {
	cur, err := m.col.Find(ctx, bson.M{"customer_email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}

func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}
