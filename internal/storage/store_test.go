package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/zenone/internal/models"
)

// newStores returns a fresh, initialized store of each backend.
func newStores(t *testing.T) map[string]Provider {
	t.Helper()

	jsonStore := NewJSONStore(filepath.Join(t.TempDir(), "zenone.json"))
	sqliteStore := NewSQLiteStore(filepath.Join(t.TempDir(), "zenone.db"))

	stores := map[string]Provider{
		"json":   jsonStore,
		"sqlite": sqliteStore,
	}
	for name, s := range stores {
		if err := s.Init(); err != nil {
			t.Fatalf("%s Init() error = %v", name, err)
		}
		if err := s.Load(); err != nil {
			t.Fatalf("%s Load() error = %v", name, err)
		}
		t.Cleanup(func() { s.Close() })
	}
	return stores
}

func TestInitTwiceFails(t *testing.T) {
	for name, s := range newStores(t) {
		if err := s.Init(); err == nil {
			t.Errorf("%s: second Init() succeeded, want error", name)
		}
	}
}

func TestLoadWithoutInitFails(t *testing.T) {
	stores := map[string]Provider{
		"json":   NewJSONStore(filepath.Join(t.TempDir(), "zenone.json")),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "zenone.db")),
	}
	for name, s := range stores {
		if err := s.Load(); err == nil {
			t.Errorf("%s: Load() without Init() succeeded, want error", name)
		}
	}
}

func TestUsersIndex(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			users, err := s.GetUsers()
			if err != nil {
				t.Fatalf("GetUsers() error = %v", err)
			}
			if len(users) != 0 {
				t.Fatalf("fresh store has %d users, want 0", len(users))
			}

			for _, u := range []string{"mei", "arjun", "mei"} {
				if err := s.AddUser(u); err != nil {
					t.Fatalf("AddUser(%q) error = %v", u, err)
				}
			}

			users, err = s.GetUsers()
			if err != nil {
				t.Fatalf("GetUsers() error = %v", err)
			}
			// Insertion order, no duplicates.
			want := []string{"mei", "arjun"}
			if len(users) != len(want) {
				t.Fatalf("GetUsers() = %v, want %v", users, want)
			}
			for i := range want {
				if users[i] != want[i] {
					t.Errorf("GetUsers()[%d] = %q, want %q", i, users[i], want[i])
				}
			}
		})
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	records := []models.DailyRecord{
		{Date: "2024-01-01", Morning: true},
		{Date: "2024-01-02", Evening: true},
	}

	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			// Absent partition reads as empty.
			got, err := s.GetRecords("mei")
			if err != nil {
				t.Fatalf("GetRecords() error = %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("GetRecords() on empty store = %v, want empty", got)
			}

			if err := s.SaveRecords("mei", records); err != nil {
				t.Fatalf("SaveRecords() error = %v", err)
			}

			got, err = s.GetRecords("mei")
			if err != nil {
				t.Fatalf("GetRecords() error = %v", err)
			}
			if len(got) != 2 || got[0].Date != "2024-01-01" || !got[1].Evening {
				t.Errorf("GetRecords() = %+v, want %+v", got, records)
			}

			// Partitions are isolated per user.
			other, err := s.GetRecords("arjun")
			if err != nil {
				t.Fatalf("GetRecords() error = %v", err)
			}
			if len(other) != 0 {
				t.Errorf("GetRecords(arjun) = %v, want empty", other)
			}
		})
	}
}

func TestMalformedRecordsReadAsEmpty(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			var kv rawKV
			switch store := s.(type) {
			case *JSONStore:
				kv = store
			case *SQLiteStore:
				kv = store
			}
			if err := kv.setRaw(recordsKey("mei"), []byte("{not json")); err != nil {
				t.Fatalf("setRaw() error = %v", err)
			}

			got, err := s.GetRecords("mei")
			if err != nil {
				t.Fatalf("GetRecords() error = %v, want fail-soft nil", err)
			}
			if len(got) != 0 {
				t.Errorf("GetRecords() = %v, want empty for malformed data", got)
			}
		})
	}
}

func TestDeleteUserCascades(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.AddUser("mei"); err != nil {
				t.Fatal(err)
			}
			if err := s.SetActiveUser("mei"); err != nil {
				t.Fatal(err)
			}
			if err := s.SaveRecords("mei", []models.DailyRecord{{Date: "2024-01-01", Morning: true}}); err != nil {
				t.Fatal(err)
			}

			if err := s.DeleteUser("mei"); err != nil {
				t.Fatalf("DeleteUser() error = %v", err)
			}

			users, _ := s.GetUsers()
			if len(users) != 0 {
				t.Errorf("users after delete = %v, want empty", users)
			}
			records, _ := s.GetRecords("mei")
			if len(records) != 0 {
				t.Errorf("records after delete = %v, want empty", records)
			}
			active, _ := s.GetActiveUser()
			if active != "" {
				t.Errorf("active user after delete = %q, want empty", active)
			}
		})
	}
}

func TestActiveUser(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			active, err := s.GetActiveUser()
			if err != nil || active != "" {
				t.Fatalf("GetActiveUser() = %q, %v; want empty, nil", active, err)
			}

			if err := s.SetActiveUser("mei"); err != nil {
				t.Fatalf("SetActiveUser() error = %v", err)
			}
			active, _ = s.GetActiveUser()
			if active != "mei" {
				t.Errorf("GetActiveUser() = %q, want mei", active)
			}

			if err := s.SetActiveUser(""); err != nil {
				t.Fatalf("SetActiveUser(\"\") error = %v", err)
			}
			active, _ = s.GetActiveUser()
			if active != "" {
				t.Errorf("GetActiveUser() after logout = %q, want empty", active)
			}
		})
	}
}

func TestQuoteCache(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.GetQuote(); ok || err != nil {
				t.Fatalf("GetQuote() on fresh store = ok=%v err=%v, want absent", ok, err)
			}

			quote := models.QuoteData{
				Text:      "应无所住，而生其心。",
				Source:    "《金刚经》",
				FetchedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			}
			if err := s.SaveQuote(quote); err != nil {
				t.Fatalf("SaveQuote() error = %v", err)
			}

			got, ok, err := s.GetQuote()
			if err != nil || !ok {
				t.Fatalf("GetQuote() = ok=%v err=%v, want cached quote", ok, err)
			}
			if got.Text != quote.Text || got.Source != quote.Source || !got.FetchedAt.Equal(quote.FetchedAt) {
				t.Errorf("GetQuote() = %+v, want %+v", got, quote)
			}
		})
	}
}

func TestJSONStoreMalformedFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zenone.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() of malformed file error = %v, want fail-soft nil", err)
	}
	users, err := s.GetUsers()
	if err != nil || len(users) != 0 {
		t.Errorf("GetUsers() = %v, %v; want empty, nil", users, err)
	}
}

func TestRecordsSaveIsWholeSetOverwrite(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			first := []models.DailyRecord{
				{Date: "2024-01-01", Morning: true},
				{Date: "2024-01-02", Morning: true},
			}
			if err := s.SaveRecords("mei", first); err != nil {
				t.Fatal(err)
			}
			second := []models.DailyRecord{{Date: "2024-02-01", Evening: true}}
			if err := s.SaveRecords("mei", second); err != nil {
				t.Fatal(err)
			}

			got, err := s.GetRecords("mei")
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].Date != "2024-02-01" {
				t.Errorf("GetRecords() = %+v, want only the second set", got)
			}
		})
	}
}
