package repository

import (
	analyticsRepo "seminarly/database/repository/analytics"
	bookingRepo "seminarly/database/repository/booking"
	memoryRepo "seminarly/database/repository/memory"
	seminarRepo "seminarly/database/repository/seminar"
	userRepo "seminarly/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the SeminarRepository interface and constructor.
type SeminarRepository = seminarRepo.SeminarRepository

var NewMongoSeminarRepo = seminarRepo.NewMongoSeminarRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepository = userRepo.NewMongoUserRepo

// Re-export the AnalyticsRepository interface and constructor.
type AnalyticsRepository = analyticsRepo.AnalyticsRepository

var NewMongoAnalyticsRepo = analyticsRepo.NewMongoAnalyticsRepo

// Set groups every repository the services depend on.
type Set struct {
	Seminars  SeminarRepository
	Bookings  BookingRepository
	Users     UserRepository
	Analytics AnalyticsRepository
}

// NewMongoSet builds repositories backed by the given database.
func NewMongoSet(db *mongo.Database) Set {
	return Set{
		Seminars:  NewMongoSeminarRepo(db),
		Bookings:  NewMongoBookingRepo(db),
		Users:     NewMongoUserRepository(db),
		Analytics: NewMongoAnalyticsRepo(db),
	}
}

// NewMemorySet builds repositories that live only for the process lifetime.
func NewMemorySet() Set {
	store := memoryRepo.NewStore()
	return Set{
		Seminars:  store.Seminars(),
		Bookings:  store.Bookings(),
		Users:     store.Users(),
		Analytics: store.Analytics(),
	}
}
