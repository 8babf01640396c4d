package request

type UpdateMailConfigRequest struct {
	Host     string `json:"host" binding:"required"`
	Port     int32  `json:"port" binding:"required"`
	Username string `json:"username"`
	// Empty keeps the stored password; the form never echoes it back.
	Password   string `json:"password"`
	FromEmail  string `json:"from_email" binding:"required,email"`
	SenderName string `json:"sender_name"`
	AdminEmail string `json:"admin_email" binding:"required,email"`

	QueryAdminSubject    string `json:"query_admin_subject"`
	QueryAdminBody       string `json:"query_admin_body"`
	QueryCustomerSubject string `json:"query_customer_subject"`
	QueryCustomerBody    string `json:"query_customer_body"`

	BookingAdminSubject    string `json:"booking_admin_subject"`
	BookingAdminBody       string `json:"booking_admin_body"`
	BookingCustomerSubject string `json:"booking_customer_subject"`
	BookingCustomerBody    string `json:"booking_customer_body"`
}
