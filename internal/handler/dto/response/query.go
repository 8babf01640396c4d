package response

import (
	"time"

	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QueryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

type DashboardResponse struct {
	Bookings      BookingStatsResponse `json:"bookings"`
	TotalQueries  int64                `json:"total_queries"`
	UnreadQueries int64                `json:"unread_queries"`
	RecentQueries []*QueryResponse     `json:"recent_queries"`
}

func FromQueryView(rm *queries.QueryView) *QueryResponse {
	resp := &QueryResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromQueryViews(rms []*queries.QueryView) []*QueryResponse {
	out := make([]*QueryResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromQueryView(rm))
	}
	return out
}

func FromDashboardStats(rm *queries.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		Bookings: BookingStatsResponse{
			Total:     rm.Bookings.Total,
			Pending:   rm.Bookings.Pending,
			Confirmed: rm.Bookings.Confirmed,
			Cancelled: rm.Bookings.Cancelled,
		},
		TotalQueries:  rm.TotalQueries,
		UnreadQueries: rm.UnreadQueries,
		RecentQueries: FromQueryViews(rm.RecentQueries),
	}
}
