package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookings(ctx context.Context, userID string, all bool) ([]*Booking, error)
	ListUpcomingBookings(ctx context.Context, userID string, now time.Time) ([]*Booking, error)
	ListPastBookings(ctx context.Context, userID string, now time.Time) ([]*Booking, error)
	UpdateBooking(ctx context.Context, id primitive.ObjectID, version int, set bson.M) (*Booking, error)
	CancelBooking(ctx context.Context, id primitive.ObjectID, version int, reason string, cancelledAt time.Time, refundAmount float64) (*Booking, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}

// eventDateOr builds the $or clause matching any of the three per-type
// event date fields against the given comparison operator.
func eventDateOr(op string, t time.Time) bson.A {
	return bson.A{
		bson.M{"hotel.check_in_date": bson.M{op: t}},
		bson.M{"restaurant.reservation_date": bson.M{op: t}},
		bson.M{"attraction.visit_date": bson.M{op: t}},
	}
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	booking.BeforeCreate()
	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context, userID string, all bool) ([]*Booking, error) {
	filter := bson.M{}
	if !all {
		filter["user_id"] = userID
	}
	return mdb.findBookings(ctx, filter, bson.D{{Key: "created_at", Value: -1}})
}

func (mdb *MongodbRepo) ListUpcomingBookings(ctx context.Context, userID string, now time.Time) ([]*Booking, error) {
	filter := bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": bson.A{StatusConfirmed, StatusPending}},
		"$or":     eventDateOr("$gte", now),
	}
	return mdb.findBookings(ctx, filter, bson.D{{Key: "booking_date", Value: 1}})
}

func (mdb *MongodbRepo) ListPastBookings(ctx context.Context, userID string, now time.Time) ([]*Booking, error) {
	filter := bson.M{
		"user_id": userID,
		"$or": bson.A{
			bson.M{"status": bson.M{"$in": bson.A{StatusCancelled, StatusCompleted}}},
			bson.M{
				"status": bson.M{"$in": bson.A{StatusConfirmed, StatusPending}},
				"$or":    eventDateOr("$lt", now),
			},
		},
	}
	return mdb.findBookings(ctx, filter, bson.D{{Key: "booking_date", Value: -1}})
}

func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M, sort bson.D) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	for cursor.Next(ctx) {
		var b Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return bookings, nil
}

// UpdateBooking applies the given $set fields conditionally on the
// version the caller read and on the booking not being terminal. The
// version counter is bumped on success.
func (mdb *MongodbRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, version int, set bson.M) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set["updated_at"] = time.Now()
	filter := bson.M{
		"_id":     id,
		"version": version,
		"status":  bson.M{"$in": bson.A{StatusConfirmed, StatusPending}},
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Booking
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, mdb.classifyMissedWrite(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating booking: %v", err)
	}
	return &updated, nil
}

// CancelBooking performs the single status transition implemented by
// this service. The filter requires the version the caller read and a
// cancellable status, so two racing cancels cannot both succeed.
func (mdb *MongodbRepo) CancelBooking(ctx context.Context, id primitive.ObjectID, version int, reason string, cancelledAt time.Time, refundAmount float64) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"_id":     id,
		"version": version,
		"status":  bson.M{"$in": bson.A{StatusConfirmed, StatusPending}},
	}
	update := bson.M{
		"$set": bson.M{
			"status":              StatusCancelled,
			"payment_status":      PaymentRefunded,
			"cancellation_reason": reason,
			"cancellation_date":   cancelledAt,
			"refund_amount":       refundAmount,
			"updated_at":          cancelledAt,
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cancelled Booking
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cancelled)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, mdb.classifyMissedWrite(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("error cancelling booking: %v", err)
	}
	return &cancelled, nil
}

// classifyMissedWrite distinguishes why a conditional update matched
// nothing: record absent, terminal status, or a lost version race.
func (mdb *MongodbRepo) classifyMissedWrite(ctx context.Context, id primitive.ObjectID) error {
	current, err := mdb.GetBookingByID(ctx, id)
	if err != nil {
		return err
	}
	switch current.Status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrInvalidState
	default:
		return ErrConflict
	}
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting booking: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
