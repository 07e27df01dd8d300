package bookingsRepo

import (
	"context"

	"meetwise/database"
	"meetwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("meetwise")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
