package service

import (
	"context"
	"sync"
	"time"

	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports"

	"github.com/rs/zerolog"
)

// DeadletterServiceImpl implements ports.DeadletterService. The primary
// search gates the page; every downstream detail call is isolated so a
// single outage degrades the affected fields, never the listing.
type DeadletterServiceImpl struct {
	helpdesk    ports.HelpdeskClient
	nodo        ports.NodoClient
	cache       ports.DetailCache
	nodoEnabled bool
	log         zerolog.Logger
}

// NewDeadletterService creates a new DeadletterServiceImpl.
func NewDeadletterService(
	helpdesk ports.HelpdeskClient,
	nodo ports.NodoClient,
	cache ports.DetailCache,
	nodoEnabled bool,
	log zerolog.Logger,
) *DeadletterServiceImpl {
	return &DeadletterServiceImpl{
		helpdesk:    helpdesk,
		nodo:        nodo,
		cache:       cache,
		nodoEnabled: nodoEnabled,
		log:         log,
	}
}

// ListByDate serves the deprecated single-day listing.
func (s *DeadletterServiceImpl) ListByDate(ctx context.Context, date time.Time, pageNumber, pageSize int) (*domain.DeadletterPage, error) {
	result, err := s.helpdesk.SearchDeadLetterEventsByDate(ctx, date, pageNumber, pageSize)
	if err != nil {
		s.log.Warn().Err(err).Time("date", date).Msg("dead-letter search failed, returning empty page")
		return emptyPage(), nil
	}
	if len(result.Events) == 0 {
		return emptyPage(), nil
	}
	return s.enrichPage(ctx, result), nil
}

// ListByDateRange serves the date-range listing.
func (s *DeadletterServiceImpl) ListByDateRange(ctx context.Context, from, to time.Time, pageNumber, pageSize int) (*domain.DeadletterPage, error) {
	result, err := s.helpdesk.SearchDeadLetterEventsByDateRange(ctx, from, to, pageNumber, pageSize)
	if err != nil {
		s.log.Warn().Err(err).Time("from", from).Time("to", to).Msg("dead-letter search failed, returning empty page")
		return emptyPage(), nil
	}
	if len(result.Events) == 0 {
		return emptyPage(), nil
	}
	return s.enrichPage(ctx, result), nil
}

// enrichPage fans out one enrichment pass per event and reassembles the
// page in search order.
func (s *DeadletterServiceImpl) enrichPage(ctx context.Context, result *ports.DeadLetterSearchResult) *domain.DeadletterPage {
	transactions := make([]domain.DeadletterTransaction, len(result.Events))

	var wg sync.WaitGroup
	for i, event := range result.Events {
		wg.Add(1)
		go func(i int, event domain.DeadLetterEvent) {
			defer wg.Done()
			enrichment := s.enrichEvent(ctx, event)
			transactions[i] = assembleTransaction(event, enrichment)
		}(i, event)
	}
	wg.Wait()

	return buildPage(transactions, result.Page)
}

// enrichEvent resolves the per-source details for one event. The ecommerce
// and gateway calls run concurrently; the clearing-house lookup needs the
// rptId from the ecommerce detail, so it runs after the join.
func (s *DeadletterServiceImpl) enrichEvent(ctx context.Context, event domain.DeadLetterEvent) domain.EnrichmentResult {
	transactionID := event.TransactionID()
	if transactionID == "" {
		return domain.EnrichmentResult{
			Ecommerce: domain.NotAttempted[domain.TransactionDetail](),
			Gateway:   domain.NotAttempted[domain.GatewayOperations](),
			Nodo:      domain.NotAttempted[domain.NodoDetail](),
		}
	}

	var enrichment domain.EnrichmentResult
	enrichment.Gateway = domain.NotAttempted[domain.GatewayOperations]()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		enrichment.Ecommerce = s.lookupTransactionDetail(ctx, transactionID)
	}()

	if event.PaymentGateway() == domain.NPGGateway {
		wg.Add(1)
		go func() {
			defer wg.Done()
			enrichment.Gateway = s.lookupGatewayOperations(ctx, transactionID)
		}()
	}

	wg.Wait()

	enrichment.Nodo = s.lookupNodoDetail(ctx, transactionID, enrichment.Ecommerce)
	return enrichment
}

// lookupTransactionDetail consults the cache first; the helpdesk call is
// the source of truth and cache errors only cost the round trip.
func (s *DeadletterServiceImpl) lookupTransactionDetail(ctx context.Context, transactionID string) domain.Lookup[domain.TransactionDetail] {
	cached, err := s.cache.GetTransactionDetail(ctx, transactionID)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("detail cache read failed, falling through")
	}
	if cached != nil {
		return domain.Found(cached)
	}

	detail, err := s.helpdesk.SearchTransaction(ctx, transactionID)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("transaction detail lookup failed")
		return domain.Missing[domain.TransactionDetail]()
	}
	if detail == nil {
		return domain.Missing[domain.TransactionDetail]()
	}

	if err := s.cache.SetTransactionDetail(ctx, transactionID, detail); err != nil {
		s.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("detail cache write failed")
	}
	return domain.Found(detail)
}

func (s *DeadletterServiceImpl) lookupGatewayOperations(ctx context.Context, transactionID string) domain.Lookup[domain.GatewayOperations] {
	operations, err := s.helpdesk.SearchNpgOperations(ctx, transactionID)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("gateway operations lookup failed")
		return domain.Missing[domain.GatewayOperations]()
	}
	return domain.Found(operations)
}

// lookupNodoDetail derives the clearing-house key from the ecommerce
// detail: rptId[0:11] is the organization fiscal code, the remainder the
// notice number, and the creation date bounds the search window.
func (s *DeadletterServiceImpl) lookupNodoDetail(ctx context.Context, transactionID string, ecommerce domain.Lookup[domain.TransactionDetail]) domain.Lookup[domain.NodoDetail] {
	if !s.nodoEnabled {
		return domain.NotAttempted[domain.NodoDetail]()
	}

	detail, ok := ecommerce.Get()
	if !ok || len(detail.PaymentInfo.Details) == 0 {
		return domain.NotAttempted[domain.NodoDetail]()
	}
	rptID := detail.PaymentInfo.Details[0].RptID
	if len(rptID) <= 11 {
		return domain.NotAttempted[domain.NodoDetail]()
	}

	fiscalCode := rptID[:11]
	noticeNumber := rptID[11:]
	date := detail.TransactionInfo.CreationDate

	nodoDetail, err := s.nodo.SearchByNoticeNumberAndFiscalCode(ctx, noticeNumber, fiscalCode, date, date)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_id", transactionID).Msg("clearing-house lookup failed")
		return domain.Missing[domain.NodoDetail]()
	}
	return domain.Found(nodoDetail)
}
