package snapshot

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Orionsman/cari-takip/internal/config"
	"github.com/Orionsman/cari-takip/internal/database"
	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T) (*Engine, *gorm.DB, *ledger.Service, *DirStore) {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("dir store: %v", err)
	}
	return NewEngine(db, store), db, ledger.NewService(db), store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seed fills all five tables: one account with a quote in its name,
// one product, a sale with mirrored debit, a payment with mirrored
// credit, and one manual entry.
func seed(t *testing.T, svc *ledger.Service) *models.Account {
	t.Helper()

	a := &models.Account{Name: "O'Brien & Sons", Phone: "555-0100"}
	if err := svc.CreateAccount(a); err != nil {
		t.Fatalf("create account: %v", err)
	}
	p := &models.Product{Name: "Valve", Price: dec("4.25")}
	if err := svc.CreateProduct(p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := svc.RecordSale(ledger.SaleInput{
		AccountID: a.ID, ProductID: p.ID, ProductName: p.Name,
		Date: "2026-07-01", Quantity: dec("4"), UnitPrice: dec("4.25"),
	}); err != nil {
		t.Fatalf("record sale: %v", err)
	}
	if _, err := svc.RecordPayment(ledger.PaymentInput{
		AccountID: a.ID, Date: "2026-07-02", Amount: dec("10"),
	}); err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if err := svc.AddEntry(&models.LedgerEntry{
		AccountID: a.ID, Date: "2026-07-03", Description: "opening 'balance'",
		Debit: dec("1.50"),
	}); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return a
}

func TestExport_Format(t *testing.T) {
	engine, _, svc, _ := newTestEngine(t)
	seed(t, svc)

	doc, err := engine.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	text := string(doc)

	for _, table := range []string{"accounts", "products", "ledger_entries", "sales", "payments"} {
		if !strings.Contains(text, "-- table: "+table+"\n") {
			t.Errorf("document missing boundary comment for %s", table)
		}
		if !strings.Contains(text, "INSERT INTO "+table+" (") {
			t.Errorf("document missing insert for %s", table)
		}
	}

	// embedded quotes must be doubled
	if !strings.Contains(text, "O''Brien & Sons") {
		t.Errorf("account name quote not escaped in document")
	}
	if !strings.Contains(text, "opening ''balance''") {
		t.Errorf("description quotes not escaped in document")
	}

	// every statement ends on the split delimiter
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.HasPrefix(line, "INSERT ") && !strings.HasSuffix(line, ";") {
			t.Errorf("statement not terminated: %q", line)
		}
	}

	// tables must appear in parent-before-child order
	if strings.Index(text, "-- table: accounts") > strings.Index(text, "-- table: sales") {
		t.Errorf("accounts dumped after sales; replay would break foreign keys")
	}
}

func TestRoundTrip(t *testing.T) {
	engine, db, svc, store := newTestEngine(t)
	a := seed(t, svc)

	var wantEntries []models.LedgerEntry
	if err := db.Order("id").Find(&wantEntries).Error; err != nil {
		t.Fatalf("load entries: %v", err)
	}

	doc, err := engine.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := store.Save("snapshot-test.sql", doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	// mutate everything after the snapshot
	if err := svc.DeleteAccount(a.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	extra := &models.Account{Name: "Post-snapshot Co"}
	if err := svc.CreateAccount(extra); err != nil {
		t.Fatalf("create extra account: %v", err)
	}

	applied, err := engine.Restore("snapshot-test.sql")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if want := 1 + 1 + len(wantEntries) + 1 + 1; applied != want {
		t.Errorf("statements applied = %d, want %d", applied, want)
	}

	// rows must match the snapshot exactly, post-snapshot data gone
	var accounts []models.Account
	if err := db.Order("id").Find(&accounts).Error; err != nil {
		t.Fatalf("load accounts: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Name != "O'Brien & Sons" || accounts[0].Phone != "555-0100" {
		t.Fatalf("restored accounts = %+v, want the single seeded account", accounts)
	}

	var gotEntries []models.LedgerEntry
	if err := db.Order("id").Find(&gotEntries).Error; err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(gotEntries) != len(wantEntries) {
		t.Fatalf("entries = %d, want %d", len(gotEntries), len(wantEntries))
	}
	for i := range wantEntries {
		w, g := wantEntries[i], gotEntries[i]
		if g.ID != w.ID || g.Date != w.Date || g.Kind != w.Kind ||
			!g.Debit.Equal(w.Debit) || !g.Credit.Equal(w.Credit) ||
			g.Description != w.Description {
			t.Errorf("entry %d = %+v, want %+v", i, g, w)
		}
		if (g.RefID == nil) != (w.RefID == nil) {
			t.Errorf("entry %d ref id nil-ness changed across round trip", i)
		}
	}

	// back-references survived, so exact deletion still works
	var sale models.Sale
	if err := db.First(&sale).Error; err != nil {
		t.Fatalf("load sale: %v", err)
	}
	if err := svc.DeleteSale(sale.ID); err != nil {
		t.Fatalf("delete sale after restore: %v", err)
	}
	var saleEntries int64
	db.Model(&models.LedgerEntry{}).Where("kind = ?", models.KindSale).Count(&saleEntries)
	if saleEntries != 0 {
		t.Errorf("sale entries after post-restore delete = %d, want 0", saleEntries)
	}
}

// Free-text fields can contain anything, including strings that look
// like the document's own syntax. The exported statements must stay
// single-line so such content survives the naive split on restore.
func TestRoundTrip_MultilineText(t *testing.T) {
	engine, db, svc, store := newTestEngine(t)

	note := "line one\n-- looks like a comment\n\n  indented tail;\nend\r\nwindows line"
	a := &models.Account{Name: "Multiline Co", Note: note}
	if err := svc.CreateAccount(a); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := svc.AddEntry(&models.LedgerEntry{
		AccountID: a.ID, Date: "2026-08-01",
		Description: "first;\nsecond -- not a comment", Debit: dec("3"),
	}); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	doc, err := engine.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, line := range strings.Split(string(doc), "\n") {
		if strings.HasPrefix(line, "INSERT ") && !strings.HasSuffix(line, ";") {
			t.Fatalf("multi-line statement in document: %q", line)
		}
	}

	if err := store.Save("snapshot-multiline.sql", doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.DeleteAccount(a.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if _, err := engine.Restore("snapshot-multiline.sql"); err != nil {
		t.Fatalf("restore: %v", err)
	}

	var got models.Account
	if err := db.First(&got, a.ID).Error; err != nil {
		t.Fatalf("load account: %v", err)
	}
	if got.Note != note {
		t.Errorf("restored note = %q, want %q", got.Note, note)
	}

	var entry models.LedgerEntry
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.Description != "first;\nsecond -- not a comment" {
		t.Errorf("restored description = %q", entry.Description)
	}
}

func TestRestore_FailureRollsBack(t *testing.T) {
	engine, db, svc, store := newTestEngine(t)
	seed(t, svc)

	bad := "INSERT INTO accounts (id, name) VALUES (50, 'Half');\nNOT A STATEMENT;\n"
	if err := store.Save("snapshot-broken.sql", []byte(bad)); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := engine.Restore("snapshot-broken.sql"); err == nil {
		t.Fatal("expected restore of broken document to fail")
	}

	// the failed restore must leave the previous dataset untouched
	var accounts []models.Account
	if err := db.Find(&accounts).Error; err != nil {
		t.Fatalf("load accounts: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Name != "O'Brien & Sons" {
		t.Errorf("accounts after failed restore = %+v, want seeded data intact", accounts)
	}
}

func TestRestore_UnknownSnapshot(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	if _, err := engine.Restore("snapshot-nope.sql"); !errors.Is(err, ErrNotFound) {
		t.Errorf("restore unknown name error = %v, want ErrNotFound", err)
	}
}

func TestCreateAndList(t *testing.T) {
	engine, _, svc, _ := newTestEngine(t)
	seed(t, svc)

	info, err := engine.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(info.Name, "snapshot-") || !strings.HasSuffix(info.Name, ".sql") {
		t.Errorf("snapshot name = %q, want snapshot-*.sql", info.Name)
	}
	if info.Size == 0 {
		t.Error("snapshot size = 0, want the document length")
	}

	infos, err := engine.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != info.Name {
		t.Errorf("list = %+v, want the created snapshot", infos)
	}
}

func TestDirStore_Unconfigured(t *testing.T) {
	if _, err := NewDirStore(""); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewDirStore(\"\") error = %v, want ErrUnavailable", err)
	}
}

func TestDirStore_RejectsPathEscape(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("dir store: %v", err)
	}
	for _, name := range []string{"../evil.sql", "/etc/passwd", "a/b.sql", ".hidden"} {
		if _, err := store.Load(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q) error = %v, want ErrNotFound", name, err)
		}
		if err := store.Save(name, []byte("x")); err == nil {
			t.Errorf("Save(%q) succeeded, want error", name)
		}
	}
}
