package domain

// VerificationRecord stores a pending one-time phone verification code.
// PK: phone (normalized E.164). At most one live record exists per phone:
// issuing a new code overwrites the previous item.
// ExpiresAt is a Unix timestamp also used as DynamoDB TTL; expiry is still
// checked at verification time since TTL deletion is best-effort.
type VerificationRecord struct {
	Phone     string `json:"phone" dynamodbav:"phone"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // Unix seconds
}
