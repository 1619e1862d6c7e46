package nodo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deadletter-watchdog/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByNoticeNumberAndFiscalCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/organizations/77777777777/noticeNumber/302001069073736", r.URL.Path)
		assert.Equal(t, "2025-08-19", r.URL.Query().Get("dateFrom"))
		assert.Equal(t, "2025-08-19", r.URL.Query().Get("dateTo"))
		assert.Equal(t, "nodo-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		json.NewEncoder(w).Encode(domain.NodoDetail{
			Payments: []domain.NodoPayment{{
				OrganizationFiscalCode: "77777777777",
				NoticeNumber:           "302001069073736",
				Outcome:                "KO",
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "nodo-key", srv.Client(), zerolog.Nop())
	date := time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)

	detail, err := c.SearchByNoticeNumberAndFiscalCode(context.Background(), "302001069073736", "77777777777", date, date)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, "KO", detail.Payments[0].Outcome)
}

func TestSearchByNoticeNumberAndFiscalCode_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", srv.Client(), zerolog.Nop())

	_, err := c.SearchByNoticeNumberAndFiscalCode(context.Background(), "n", "f", time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
