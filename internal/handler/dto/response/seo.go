package response

import (
	"time"

	"linenhire/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SeoSettingResponse struct {
	ID          uuid.UUID `json:"id"`
	PageRoute   string    `json:"page_route"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"`
	OgImage     *string   `json:"og_image,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MailConfigResponse mirrors MailConfigView; the password never appears.
type MailConfigResponse struct {
	ID                     uuid.UUID `json:"id"`
	Host                   string    `json:"host"`
	Port                   int32     `json:"port"`
	Username               string    `json:"username"`
	FromEmail              string    `json:"from_email"`
	SenderName             string    `json:"sender_name"`
	AdminEmail             string    `json:"admin_email"`
	QueryAdminSubject      string    `json:"query_admin_subject"`
	QueryAdminBody         string    `json:"query_admin_body"`
	QueryCustomerSubject   string    `json:"query_customer_subject"`
	QueryCustomerBody      string    `json:"query_customer_body"`
	BookingAdminSubject    string    `json:"booking_admin_subject"`
	BookingAdminBody       string    `json:"booking_admin_body"`
	BookingCustomerSubject string    `json:"booking_customer_subject"`
	BookingCustomerBody    string    `json:"booking_customer_body"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func FromSeoSettingView(rm *queries.SeoSettingView) *SeoSettingResponse {
	resp := &SeoSettingResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromSeoSettingViews(rms []*queries.SeoSettingView) []*SeoSettingResponse {
	out := make([]*SeoSettingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromSeoSettingView(rm))
	}
	return out
}

func FromMailConfigView(rm *queries.MailConfigView) *MailConfigResponse {
	resp := &MailConfigResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
