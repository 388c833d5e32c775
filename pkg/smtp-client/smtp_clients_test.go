package smtp_client

import (
	"sync"
	"testing"

	"github.com/knadh/smtppool"
)

func TestNextPool(t *testing.T) {
	t.Run("cycles through the pools", func(t *testing.T) {
		sc := &SmtpClients{
			connectionPool: []*smtppool.Pool{{}, {}, {}},
		}
		got := []int{}
		for i := 0; i < 6; i++ {
			index, _, err := sc.nextPool()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got = append(got, index)
		}
		want := []int{1, 2, 0, 1, 2, 0}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected index sequence: %v", got)
			}
		}
	})

	t.Run("without any servers", func(t *testing.T) {
		sc := &SmtpClients{}
		if _, _, err := sc.nextPool(); err == nil {
			t.Error("should fail when no server is configured")
		}
	})

	t.Run("concurrent callers never lose increments", func(t *testing.T) {
		sc := &SmtpClients{
			connectionPool: []*smtppool.Pool{{}, {}},
		}

		var wg sync.WaitGroup
		const callers = 100
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				index, _, err := sc.nextPool()
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if index < 0 || index >= 2 {
					t.Errorf("index out of range: %d", index)
				}
			}()
		}
		wg.Wait()

		if sc.counter != callers {
			t.Errorf("unexpected counter after %d calls: %d", callers, sc.counter)
		}
	})
}

func TestReplacePool(t *testing.T) {
	sc := &SmtpClients{
		connectionPool: []*smtppool.Pool{{}},
	}
	replacement := &smtppool.Pool{}
	sc.replacePool(0, replacement)
	if sc.connectionPool[0] != replacement {
		t.Error("pool was not replaced")
	}

	// out of range indexes are ignored
	sc.replacePool(5, replacement)
}
