package verification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirieshka/infrastructure"
)

func newTestLedger(t *testing.T) (*Ledger, *MemoryStorage, *time.Time) {
	t.Helper()
	storage := NewMemoryStorage()
	ledger := NewLedger(storage)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }
	return ledger, storage, &now
}

func TestIssueGeneratesUppercaseAlphanumericCode(t *testing.T) {
	ledger, storage, _ := newTestLedger(t)

	code, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, strings.ToUpper(code), code)

	stored, err := storage.GetCode("alice@example.com", PurposeRegistration)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, code, stored.Code)
	assert.Equal(t, stored.CreatedAt.Add(CodeTTL), stored.ExpiresAt)
}

func TestIssueOverwritesPriorCode(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	first, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)

	second := first
	for second == first {
		second, err = ledger.Issue("alice@example.com", PurposeRegistration)
		require.NoError(t, err)
	}

	err = ledger.Consume("alice@example.com", PurposeRegistration, first)
	assert.ErrorIs(t, err, infrastructure.ErrCodeMismatch)
	assert.NoError(t, ledger.Consume("alice@example.com", PurposeRegistration, second))
}

func TestPurposesAreIndependent(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	regCode, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)
	_, err = ledger.Issue("alice@example.com", PurposeReset)
	require.NoError(t, err)

	// consuming the reset code must not touch the registration code
	require.Error(t, ledger.Consume("alice@example.com", PurposeReset, "WRONG1"))
	assert.NoError(t, ledger.Consume("alice@example.com", PurposeRegistration, regCode))
}

func TestConsumeIsCaseInsensitive(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	code, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)

	assert.NoError(t, ledger.Consume("alice@example.com", PurposeRegistration, strings.ToLower(code)))
}

func TestConsumeDeletesCode(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	code, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)

	require.NoError(t, ledger.Consume("alice@example.com", PurposeRegistration, code))
	err = ledger.Consume("alice@example.com", PurposeRegistration, code)
	assert.ErrorIs(t, err, infrastructure.ErrNoPendingCode)
}

func TestConsumeWithoutPendingCode(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	err := ledger.Consume("nobody@example.com", PurposeRegistration, "ABC123")
	assert.ErrorIs(t, err, infrastructure.ErrNoPendingCode)
}

func TestConsumeMismatch(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	code, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)

	wrong := "AAAAAA"
	if strings.EqualFold(code, wrong) {
		wrong = "BBBBBB"
	}
	err = ledger.Consume("alice@example.com", PurposeRegistration, wrong)
	assert.ErrorIs(t, err, infrastructure.ErrCodeMismatch)

	// a mismatch must not consume the real code
	assert.NoError(t, ledger.Consume("alice@example.com", PurposeRegistration, code))
}

func TestCodeExpiry(t *testing.T) {
	ledger, _, now := newTestLedger(t)

	code, err := ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)

	issuedAt := *now

	*now = issuedAt.Add(29 * time.Minute)
	require.NoError(t, ledger.Consume("alice@example.com", PurposeRegistration, code))

	code, err = ledger.Issue("alice@example.com", PurposeRegistration)
	require.NoError(t, err)
	issuedAt = *now

	*now = issuedAt.Add(31 * time.Minute)
	err = ledger.Consume("alice@example.com", PurposeRegistration, code)
	assert.ErrorIs(t, err, infrastructure.ErrCodeExpired)

	// the expired entry is deleted, so a retry reports no pending code
	err = ledger.Consume("alice@example.com", PurposeRegistration, code)
	assert.ErrorIs(t, err, infrastructure.ErrNoPendingCode)
}

func TestDeleteExpiredSweepsOnlyStaleCodes(t *testing.T) {
	storage := NewMemoryStorage()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, storage.StoreCode(&Code{
		Email: "stale@example.com", Purpose: PurposeRegistration,
		Code: "AAAAAA", ExpiresAt: base.Add(-time.Minute),
	}))
	require.NoError(t, storage.StoreCode(&Code{
		Email: "fresh@example.com", Purpose: PurposeRegistration,
		Code: "BBBBBB", ExpiresAt: base.Add(time.Minute),
	}))

	require.NoError(t, storage.DeleteExpired(base))

	stale, err := storage.GetCode("stale@example.com", PurposeRegistration)
	require.NoError(t, err)
	assert.Nil(t, stale)

	fresh, err := storage.GetCode("fresh@example.com", PurposeRegistration)
	require.NoError(t, err)
	assert.NotNil(t, fresh)
}
