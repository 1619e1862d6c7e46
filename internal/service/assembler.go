package service

import (
	"deadletter-watchdog/internal/core/domain"
)

// assembleTransaction flattens one event and its enrichment into the
// operator-facing composite record. Optional fields that no source could
// provide render as the "N/A" sentinel; the notification email is
// redacted before the detail is embedded.
func assembleTransaction(event domain.DeadLetterEvent, enrichment domain.EnrichmentResult) domain.DeadletterTransaction {
	tx := domain.DeadletterTransaction{
		TransactionID:              renderValue(event.TransactionID()),
		InsertionDate:              event.Timestamp,
		PaymentToken:               domain.ValueNotAvailable,
		PaymentMethodName:          domain.ValueNotAvailable,
		PspID:                      domain.ValueNotAvailable,
		EcommerceStatus:            domain.ValueNotAvailable,
		GatewayAuthorizationStatus: domain.ValueNotAvailable,
		Details:                    event,
	}

	if info := event.TransactionInfo; info != nil {
		if len(info.PaymentTokens) > 0 {
			tx.PaymentToken = renderValue(info.PaymentTokens[0])
		}
		tx.PaymentMethodName = renderValue(info.PaymentMethodName)
		tx.PspID = renderValue(info.PspID)
		if info.Details != nil {
			tx.PaymentEndToEndID = info.Details.PaymentEndToEndID
			tx.OperationID = info.Details.OperationID
		}
	}

	if detail, ok := enrichment.Ecommerce.Get(); ok {
		tx.EcommerceStatus = renderValue(detail.TransactionInfo.EventStatus)
		tx.GatewayAuthorizationStatus = renderValue(detail.TransactionInfo.GatewayAuthorizationStatus)
		tx.EcommerceDetails = redactDetail(detail)
	}

	if operations, ok := enrichment.Gateway.Get(); ok {
		tx.GatewayDetails = operations
	}

	if nodoDetail, ok := enrichment.Nodo.Get(); ok {
		tx.NodoDetails = nodoDetail
	}

	return tx
}

// redactDetail masks the notification email on a copy. The original stays
// untouched because it may be shared with the detail cache.
func redactDetail(detail *domain.TransactionDetail) *domain.TransactionDetail {
	redacted := *detail
	if detail.UserInfo != nil {
		userInfo := *detail.UserInfo
		if userInfo.NotificationEmail != "" {
			userInfo.NotificationEmail = domain.RedactedEmail
		}
		redacted.UserInfo = &userInfo
	}
	return &redacted
}

// renderValue substitutes the sentinel for empty optional fields.
func renderValue(v string) string {
	if v == "" {
		return domain.ValueNotAvailable
	}
	return v
}
