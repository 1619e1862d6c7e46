package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterEvent_TransactionID(t *testing.T) {
	assert.Equal(t, "", DeadLetterEvent{}.TransactionID())

	ev := DeadLetterEvent{TransactionInfo: &TransactionInfo{TransactionID: "T1", PaymentGateway: "NPG"}}
	assert.Equal(t, "T1", ev.TransactionID())
	assert.Equal(t, "NPG", ev.PaymentGateway())
}

func TestLookup_States(t *testing.T) {
	detail := &TransactionDetail{}

	present := Found(detail)
	assert.Equal(t, LookupPresent, present.State)
	assert.True(t, present.Attempted())
	v, ok := present.Get()
	assert.True(t, ok)
	assert.Same(t, detail, v)

	absent := Missing[TransactionDetail]()
	assert.Equal(t, LookupAbsent, absent.State)
	assert.True(t, absent.Attempted())
	_, ok = absent.Get()
	assert.False(t, ok)

	skipped := NotAttempted[TransactionDetail]()
	assert.Equal(t, LookupNotAttempted, skipped.State)
	assert.False(t, skipped.Attempted())
	_, ok = skipped.Get()
	assert.False(t, ok)

	// Disabled and failed stay distinguishable.
	assert.NotEqual(t, skipped.State, absent.State)
}

func TestFound_NilDegradesToAbsent(t *testing.T) {
	l := Found[GatewayOperations](nil)
	assert.Equal(t, LookupAbsent, l.State)
	assert.True(t, l.Attempted())
}

func TestActionTaxonomy_Find(t *testing.T) {
	tax := NewActionTaxonomy([]ActionType{
		{Value: "no action required", Terminal: true},
		{Value: "refund requested", Terminal: false},
	})

	at, ok := tax.Find("no action required")
	require.True(t, ok)
	assert.True(t, at.Terminal)

	at, ok = tax.Find("refund requested")
	require.True(t, ok)
	assert.False(t, at.Terminal)

	_, ok = tax.Find("reboot the mainframe")
	assert.False(t, ok)
}

func TestActionTaxonomy_TypesReturnsCopy(t *testing.T) {
	tax := NewActionTaxonomy([]ActionType{{Value: "a"}})

	got := tax.Types()
	got[0].Value = "mutated"

	again := tax.Types()
	assert.Equal(t, "a", again[0].Value)
}
