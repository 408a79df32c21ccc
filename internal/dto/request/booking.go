package request

type CreateBookingRequest struct {
	TripID        string `json:"tripId" validate:"required"`
	UserID        string `json:"userId" validate:"required,max=255"`
	NumberOfSeats int    `json:"numberOfSeats" validate:"required,min=1"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
