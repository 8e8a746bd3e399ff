package response

import (
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Rental dates are calendar dates; timestamps keep their instant.
var dateOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(rentrequest.DateLayout), nil
			},
		},
	},
}

type RentRequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	ProductID       uuid.UUID  `json:"productId"`
	ProductName     string     `json:"productName"`
	BuyerID         uuid.UUID  `json:"buyerId"`
	BuyerEmail      string     `json:"buyerEmail"`
	SellerID        uuid.UUID  `json:"sellerId"`
	SellerEmail     string     `json:"sellerEmail"`
	Quantity        int        `json:"quantity"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	TotalDays       int        `json:"totalDays"`
	PricePerDay     int64      `json:"pricePerDay"`
	TotalAmount     int64      `json:"totalAmount"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	CollectedAt     *time.Time `json:"collectedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type RentRequestListResponse struct {
	Items      []*RentRequestResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromRentRequestView(v *queries.RentRequestView) (*RentRequestResponse, error) {
	var res RentRequestResponse
	if err := copier.CopyWithOption(&res, v, dateOptions); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRentRequestViews(views []*queries.RentRequestView, next *queries.Cursor) (*RentRequestListResponse, error) {
	res := &RentRequestListResponse{Items: make([]*RentRequestResponse, len(views))}
	for i, v := range views {
		item, err := FromRentRequestView(v)
		if err != nil {
			return nil, err
		}
		res.Items[i] = item
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
