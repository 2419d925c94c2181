package history_test

import (
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"
	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stores(t *testing.T) (map[string]history.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return map[string]history.Store{
		"memory": history.NewMemoryStore(),
		"redis":  history.NewRedisStore(client),
	}, mr
}

func decided(reporter, reported report.User, severity enum.Severity) *report.Report {
	r := report.New(reporter)
	r.Reported = reported
	r.Classification = report.Spam{}
	r.Severity = &severity

	return r
}

func TestHistoryCounts(t *testing.T) {
	t.Parallel()

	s, _ := stores(t)
	for name, store := range s {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			h := history.New(store, zap.NewNop())

			alice := report.User{ID: 10, Name: "alice"}
			bob := report.User{ID: 20, Name: "bob"}

			for i := 1; i <= 3; i++ {
				count, err := h.RecordFalseReport(ctx, decided(alice, bob, enum.SeverityFalse))
				require.NoError(t, err)
				assert.Equal(t, i, count)
			}

			// Ledgers are independent per kind and per user
			count, err := h.RecordViolation(ctx, decided(alice, bob, enum.Severity1))
			require.NoError(t, err)
			assert.Equal(t, 1, count)

			count, err = h.RecordViolation(ctx, decided(bob, alice, enum.Severity2))
			require.NoError(t, err)
			assert.Equal(t, 1, count)

			falseReports, err := h.FalseReports(ctx, alice)
			require.NoError(t, err)
			require.Len(t, falseReports, 3)
			assert.Equal(t, alice, falseReports[0].User)
			assert.Equal(t, enum.SeverityFalse, falseReports[0].Severity)

			violations, err := h.Violations(ctx, bob)
			require.NoError(t, err)
			require.Len(t, violations, 1)
			assert.Equal(t, enum.Severity1, violations[0].Severity)

			none, err := h.FalseReports(ctx, bob)
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestHistoryKeysNamelessAccounts(t *testing.T) {
	t.Parallel()

	s, mr := stores(t)
	ctx := t.Context()
	h := history.New(s["redis"], zap.NewNop())

	automod := report.User{Name: report.AutoModName}
	target := report.User{ID: 99, Name: "target"}

	_, err := h.RecordFalseReport(ctx, decided(automod, target, enum.SeverityFalse))
	require.NoError(t, err)

	_, err = h.RecordViolation(ctx, decided(automod, target, enum.Severity2))
	require.NoError(t, err)

	assert.True(t, mr.Exists(history.LedgerKey(enum.HistoryKindFalseReport, "name:Auto Mod")))
	assert.True(t, mr.Exists("warden:history:violation:99"))
}

func TestHistoryConcurrentAppends(t *testing.T) {
	t.Parallel()

	s, _ := stores(t)
	for name, store := range s {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			h := history.New(store, zap.NewNop())
			reported := report.User{ID: 5, Name: "target"}

			const workers = 20

			var (
				wg     sync.WaitGroup
				mu     sync.Mutex
				counts = make(map[int]bool)
			)

			for i := range workers {
				wg.Add(1)

				go func() {
					defer wg.Done()

					reporter := report.User{ID: uint64(100 + i), Name: "reporter"}
					count, err := h.RecordViolation(ctx, decided(reporter, reported, enum.Severity1))
					assert.NoError(t, err)

					mu.Lock()
					counts[count] = true
					mu.Unlock()
				}()
			}

			wg.Wait()

			// Every append observes a distinct position
			assert.Len(t, counts, workers)
			for i := 1; i <= workers; i++ {
				assert.True(t, counts[i], "missing count %d", i)
			}
		})
	}
}

func TestEscalates(t *testing.T) {
	t.Parallel()

	assert.False(t, history.Escalates(1))
	assert.False(t, history.Escalates(2))
	assert.True(t, history.Escalates(3))
}
