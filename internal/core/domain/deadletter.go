package domain

import "time"

// ValueNotAvailable is the sentinel rendered for optional upstream fields
// that are missing from a dead-letter event or its enrichment details.
const ValueNotAvailable = "N/A"

// RedactedEmail replaces the notification email before a transaction detail
// is embedded in a composite record.
const RedactedEmail = "***"

// NPGGateway is the only payment gateway exposing an operation-detail API.
const NPGGateway = "NPG"

// DeadLetterEvent is one entry from the primary dead-letter search. It is
// consumed once per enrichment pass and never persisted by this service.
type DeadLetterEvent struct {
	Timestamp       time.Time        `json:"timestamp"`
	TransactionInfo *TransactionInfo `json:"transactionInfo,omitempty"`
}

// TransactionID returns the event's transaction id, or "" when the event
// carries none.
func (e DeadLetterEvent) TransactionID() string {
	if e.TransactionInfo == nil {
		return ""
	}
	return e.TransactionInfo.TransactionID
}

// PaymentGateway returns the event's gateway tag, or "" when unknown.
func (e DeadLetterEvent) PaymentGateway() string {
	if e.TransactionInfo == nil {
		return ""
	}
	return e.TransactionInfo.PaymentGateway
}

// TransactionInfo is the provider-specific metadata attached to an event.
type TransactionInfo struct {
	TransactionID     string            `json:"transactionId,omitempty"`
	PaymentGateway    string            `json:"paymentGateway,omitempty"`
	PaymentTokens     []string          `json:"paymentTokens,omitempty"`
	PaymentMethodName string            `json:"paymentMethodName,omitempty"`
	PspID             string            `json:"pspId,omitempty"`
	Details           *GatewayEventInfo `json:"details,omitempty"`
}

// GatewayEventInfo carries gateway-level identifiers when present.
type GatewayEventInfo struct {
	PaymentEndToEndID *string `json:"paymentEndToEndId,omitempty"`
	OperationID       *string `json:"operationId,omitempty"`
}

// TransactionDetail is the ecommerce helpdesk view of a transaction
// (first match of the transaction search).
type TransactionDetail struct {
	TransactionInfo TransactionDetailInfo `json:"transactionInfo"`
	PaymentInfo     PaymentInfo           `json:"paymentInfo"`
	UserInfo        *UserInfo             `json:"userInfo,omitempty"`
	PspInfo         *PspInfo              `json:"pspInfo,omitempty"`
}

// TransactionDetailInfo holds transaction-level status and timing.
type TransactionDetailInfo struct {
	CreationDate               time.Time `json:"creationDate"`
	EventStatus                string    `json:"eventStatus,omitempty"`
	GatewayAuthorizationStatus string    `json:"gatewayAuthorizationStatus,omitempty"`
	Amount                     int64     `json:"amount,omitempty"`
}

// PaymentInfo lists the payment notices attached to a transaction.
type PaymentInfo struct {
	Origin  string              `json:"origin,omitempty"`
	Details []PaymentDetailItem `json:"details,omitempty"`
}

// PaymentDetailItem is one payment notice. RptID concatenates the
// organization fiscal code (11 chars) and the notice number.
type PaymentDetailItem struct {
	RptID        string `json:"rptId,omitempty"`
	PaymentToken string `json:"paymentToken,omitempty"`
	Amount       int64  `json:"amount,omitempty"`
}

// UserInfo holds user contact data. NotificationEmail is PII and must be
// redacted before leaving the assembler.
type UserInfo struct {
	NotificationEmail  string `json:"notificationEmail,omitempty"`
	AuthenticationType string `json:"authenticationType,omitempty"`
}

// PspInfo identifies the payment service provider.
type PspInfo struct {
	PspID        string `json:"pspId,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	IDChannel    string `json:"idChannel,omitempty"`
}

// GatewayOperations is the NPG operation-detail response.
type GatewayOperations struct {
	Operations []GatewayOperation `json:"operations,omitempty"`
}

// GatewayOperation is one authorization attempt recorded by the gateway.
type GatewayOperation struct {
	OperationID       string `json:"operationId,omitempty"`
	OperationResult   string `json:"operationResult,omitempty"`
	OperationTime     string `json:"operationTime,omitempty"`
	PaymentEndToEndID string `json:"paymentEndToEndId,omitempty"`
}

// NodoDetail is the clearing-house technical-support view of a payment.
type NodoDetail struct {
	Payments []NodoPayment `json:"payments,omitempty"`
}

// NodoPayment is one clearing-house payment attempt.
type NodoPayment struct {
	OrganizationFiscalCode string `json:"organizationFiscalCode,omitempty"`
	NoticeNumber           string `json:"noticeNumber,omitempty"`
	Outcome                string `json:"outcome,omitempty"`
	InsertedTimestamp      string `json:"insertedTimestamp,omitempty"`
}

// LookupState is the outcome class of one enrichment call.
type LookupState int

const (
	// LookupNotAttempted means the call was never issued (gateway does not
	// support it, the source is disabled, or the event had no transaction id).
	LookupNotAttempted LookupState = iota
	// LookupAbsent means the call was issued but yielded nothing usable
	// (empty result or downstream failure).
	LookupAbsent
	// LookupPresent means the call returned a value.
	LookupPresent
)

// Lookup records the tri-state outcome of one enrichment call, so that
// "disabled" and "failed" stay distinguishable.
type Lookup[T any] struct {
	State LookupState
	Value *T
}

// Found marks an attempted lookup; a nil value degrades to absent.
func Found[T any](v *T) Lookup[T] {
	if v == nil {
		return Lookup[T]{State: LookupAbsent}
	}
	return Lookup[T]{State: LookupPresent, Value: v}
}

// Missing marks an attempted lookup that produced nothing.
func Missing[T any]() Lookup[T] {
	return Lookup[T]{State: LookupAbsent}
}

// NotAttempted marks a lookup that was never issued.
func NotAttempted[T any]() Lookup[T] {
	return Lookup[T]{State: LookupNotAttempted}
}

// Attempted reports whether the call was issued at all.
func (l Lookup[T]) Attempted() bool {
	return l.State != LookupNotAttempted
}

// Get returns the value and whether one is present.
func (l Lookup[T]) Get() (*T, bool) {
	if l.State != LookupPresent {
		return nil, false
	}
	return l.Value, true
}

// EnrichmentResult holds the per-source outcomes of one enrichment pass.
// It is owned by a single pass and discarded after assembly.
type EnrichmentResult struct {
	Ecommerce Lookup[TransactionDetail]
	Gateway   Lookup[GatewayOperations]
	Nodo      Lookup[NodoDetail]
}

// DeadletterTransaction is the composite, operator-facing record for one
// dead-letter event. Embedded details are already redacted.
type DeadletterTransaction struct {
	TransactionID              string             `json:"transactionId"`
	InsertionDate              time.Time          `json:"insertionDate"`
	PaymentToken               string             `json:"paymentToken"`
	PaymentMethodName          string             `json:"paymentMethodName"`
	PspID                      string             `json:"pspId"`
	EcommerceStatus            string             `json:"eCommerceStatus"`
	GatewayAuthorizationStatus string             `json:"gatewayAuthorizationStatus"`
	PaymentEndToEndID          *string            `json:"paymentEndToEndId,omitempty"`
	OperationID                *string            `json:"operationId,omitempty"`
	Details                    DeadLetterEvent    `json:"deadletterTransactionDetails"`
	EcommerceDetails           *TransactionDetail `json:"eCommerceDetails,omitempty"`
	GatewayDetails             *GatewayOperations `json:"npgDetails,omitempty"`
	NodoDetails                *NodoDetail        `json:"nodoDetails,omitempty"`
}

// PageInfo is the page metadata returned by the primary search.
type PageInfo struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Results int `json:"results"`
}

// DeadletterPage is one page of composite records plus its metadata.
type DeadletterPage struct {
	Transactions []DeadletterTransaction `json:"deadletterTransactions"`
	Page         PageInfo                `json:"page"`
}
