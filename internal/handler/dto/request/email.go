package request

// EmailData carries the fields interpolated into the booking email templates.
type EmailData struct {
	BookedBy    string `json:"bookedBy"`
	StudentName string `json:"studentName"`
	ClassName   string `json:"className"`
	SessionDate string `json:"sessionDate"`
	VenueName   string `json:"venueName"`
	Amount      int64  `json:"amount"`
	ReceiptURL  string `json:"receiptUrl"`
}

type SendEmailRequest struct {
	To   string    `json:"to" binding:"required,email"`
	Type string    `json:"type" binding:"required,oneof=confirmation cancellation"`
	Data EmailData `json:"data"`
}
