package query

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errors.New("name, email and message are required")
	ErrInvalidStatus = errors.New("invalid query status")
)

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusUnread || s == StatusRead
}

// Query is a contact-form submission landing in the admin inbox.
type Query struct {
	id        uuid.UUID
	name      string
	email     string
	phone     string
	message   string
	status    Status
	createdAt time.Time
}

func NewQuery(name, email, phone, message string) (*Query, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}

	return &Query{
		id:      uuid.New(),
		name:    name,
		email:   email,
		phone:   strings.TrimSpace(phone),
		message: message,
		status:  StatusUnread,
	}, nil
}

func ReconstructQuery(id uuid.UUID, name, email, phone, message string, status Status, createdAt time.Time) *Query {
	return &Query{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		message:   message,
		status:    status,
		createdAt: createdAt,
	}
}

func (q *Query) MarkRead() {
	q.status = StatusRead
}

func (q *Query) ID() uuid.UUID        { return q.id }
func (q *Query) Name() string         { return q.name }
func (q *Query) Email() string        { return q.email }
func (q *Query) Phone() string        { return q.phone }
func (q *Query) Message() string      { return q.message }
func (q *Query) Status() Status       { return q.status }
func (q *Query) CreatedAt() time.Time { return q.createdAt }
