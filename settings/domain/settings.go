package domain

// AdminSettings is the single store configuration document.
type AdminSettings struct {
	RefundEnabled bool   `firestore:"refundEnabled" json:"refundEnabled"`
	RefundMessage string `firestore:"refundMessage,omitempty" json:"refundMessage,omitempty"`
}
