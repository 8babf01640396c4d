//go:build unit || e2e

package builder

import (
	"time"

	reqdto "linenhire/internal/handler/dto/request"
	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
)

type QueryBuilder struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Status  string
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "07700900001",
		Message: "Do you deliver on Sundays?",
		Status:  "unread",
	}
}

func (q *QueryBuilder) BuildDTO() reqdto.SubmitQueryRequest {
	return reqdto.SubmitQueryRequest{
		Name:    q.Name,
		Email:   q.Email,
		Phone:   q.Phone,
		Message: q.Message,
	}
}

func (q *QueryBuilder) BuildReadModel() *queries.QueryView {
	return &queries.QueryView{
		ID:        uuid.New(),
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Message:   q.Message,
		Status:    q.Status,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func (q *QueryBuilder) AsRead() *QueryBuilder {
	q.Status = "read"
	return q
}
