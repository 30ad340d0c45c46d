package verification

import (
	"log/slog"
	"strings"
	"time"

	"kirieshka/infrastructure"
)

// CodeTTL is the absolute lifetime of a one-time code.
const CodeTTL = 30 * time.Minute

// Ledger owns the pending one-time codes. Issuing a new code for the same
// email and purpose overwrites the prior one, so at most one code is
// outstanding per (email, purpose).
type Ledger struct {
	storage Storage
	ttl     time.Duration
	now     func() time.Time
}

func NewLedger(storage Storage) *Ledger {
	return &Ledger{
		storage: storage,
		ttl:     CodeTTL,
		now:     time.Now,
	}
}

// Issue stores a fresh code for the email and returns it. Delivery is the
// caller's concern; the ledger never blocks on it.
func (l *Ledger) Issue(email string, purpose Purpose) (string, error) {
	code := infrastructure.GenerateVerificationCode()
	now := l.now()
	err := l.storage.StoreCode(&Code{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(l.ttl),
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// Consume validates the submitted code and deletes it on success. The compare
// is case-insensitive. An expired entry is deleted on sight.
func (l *Ledger) Consume(email string, purpose Purpose, submitted string) error {
	stored, err := l.storage.GetCode(email, purpose)
	if err != nil {
		return err
	}
	if stored == nil {
		return infrastructure.ErrNoPendingCode
	}
	if !strings.EqualFold(stored.Code, submitted) {
		return infrastructure.ErrCodeMismatch
	}
	if l.now().After(stored.ExpiresAt) {
		_ = l.storage.DeleteCode(email, purpose)
		return infrastructure.ErrCodeExpired
	}
	return l.storage.DeleteCode(email, purpose)
}

// StartJanitor sweeps expired codes until stop is closed.
func (l *Ledger) StartJanitor(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := l.storage.DeleteExpired(l.now()); err != nil {
					slog.Error("failed to sweep expired verification codes", "error", err)
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
