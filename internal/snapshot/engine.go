// Package snapshot serializes the five business tables into a plain
// text document of INSERT statements and can replay such a document to
// reconstruct the dataset. Documents live in a BlobStore under
// timestamped names.
package snapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tables in dump order: parents before children so a replay never
// violates a foreign key. Restore truncates in reverse order.
var tables = []string{"accounts", "products", "ledger_entries", "sales", "payments"}

// Engine dumps and replays the working schema.
type Engine struct {
	db    *gorm.DB
	store BlobStore
}

func NewEngine(db *gorm.DB, store BlobStore) *Engine {
	return &Engine{db: db, store: store}
}

// Export renders every row of every table as one single-line INSERT
// statement. One comment line marks each table boundary; statements
// end with ";\n" so Restore can split the document naively. Text
// fields are quoted with embedded quotes doubled and newlines encoded
// as char(10)/char(13) concatenations, which keeps every statement on
// one line so free-text content can never fake a statement boundary or
// a comment line. NULL is emitted literally and everything else uses
// its default textual form.
func (e *Engine) Export() ([]byte, error) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("-- cari-takip snapshot %s\n", time.Now().Format(time.RFC3339)))

	for _, table := range tables {
		b.WriteString(fmt.Sprintf("-- table: %s\n", table))

		rows, err := e.db.Raw("SELECT * FROM " + table + " ORDER BY id").Rows()
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", table, err)
		}
		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("dump %s: %w", table, err)
		}

		for rows.Next() {
			raw := make([]interface{}, len(cols))
			ptrs := make([]interface{}, len(cols))
			for i := range raw {
				ptrs[i] = &raw[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				rows.Close()
				return nil, fmt.Errorf("dump %s: %w", table, err)
			}

			vals := make([]string, len(cols))
			for i, v := range raw {
				vals[i] = renderValue(v)
			}
			b.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
				table, strings.Join(cols, ", "), strings.Join(vals, ", ")))
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("dump %s: %w", table, err)
		}
		rows.Close()
	}
	return []byte(b.String()), nil
}

func renderValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(x)
	case []byte:
		return quote(string(x))
	case time.Time:
		return quote(x.Format("2006-01-02 15:04:05.999999999-07:00"))
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// quote renders s as a SQL string literal on a single line. Embedded
// quotes are doubled; newline and carriage return characters would
// break the line-oriented document format, so they are spliced in as
// char(10)/char(13) concatenations instead.
func quote(s string) string {
	esc := strings.ReplaceAll(s, "'", "''")
	if !strings.ContainsAny(esc, "\n\r") {
		return "'" + esc + "'"
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range esc {
		switch r {
		case '\n':
			b.WriteString("' || char(10) || '")
		case '\r':
			b.WriteString("' || char(13) || '")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Create exports the dataset and hands the document to the store under
// a timestamped name.
func (e *Engine) Create() (*Info, error) {
	doc, err := e.Export()
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("snapshot-%s-%s.sql",
		time.Now().Format("20060102-150405"), uuid.New().String()[:8])
	if err := e.store.Save(name, doc); err != nil {
		return nil, err
	}
	return &Info{Name: name, Size: int64(len(doc)), ModTime: time.Now()}, nil
}

// List returns the snapshots available in the store, newest first.
func (e *Engine) List() ([]Info, error) {
	return e.store.List()
}

// Restore loads the named document, then in ONE transaction deletes
// every row of the five tables, resets their identity counters and
// replays the document's statements in order. Because the whole replay
// shares the transaction, a failing statement rolls everything back
// and the previous data stays intact. Returns the number of statements
// applied.
func (e *Engine) Restore(name string) (int, error) {
	doc, err := e.store.Load(name)
	if err != nil {
		return 0, err
	}

	applied := 0
	err = e.db.Transaction(func(tx *gorm.DB) error {
		// children first so foreign keys never block the truncate
		for i := len(tables) - 1; i >= 0; i-- {
			if err := tx.Exec("DELETE FROM " + tables[i]).Error; err != nil {
				return fmt.Errorf("truncate %s: %w", tables[i], err)
			}
		}
		if err := resetSequences(tx); err != nil {
			return err
		}

		for _, stmt := range splitStatements(string(doc)) {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("replay statement %d: %w", applied+1, err)
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// resetSequences clears the sqlite AUTOINCREMENT counters for the
// dumped tables, so a restore of an empty snapshot starts ids from 1.
func resetSequences(tx *gorm.DB) error {
	var n int64
	if err := tx.Raw(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'",
	).Scan(&n).Error; err != nil {
		return fmt.Errorf("check sqlite_sequence: %w", err)
	}
	if n == 0 {
		return nil
	}
	placeholders := "'" + strings.Join(tables, "', '") + "'"
	if err := tx.Exec("DELETE FROM sqlite_sequence WHERE name IN (" + placeholders + ")").Error; err != nil {
		return fmt.Errorf("reset sequences: %w", err)
	}
	return nil
}

// splitStatements cuts the document on the ";\n" terminator and drops
// comment lines. Naive by contract: the format guarantees one
// statement per line with no embedded newlines, so neither the
// terminator nor a comment prefix can occur inside a literal.
func splitStatements(doc string) []string {
	chunks := strings.Split(doc, ";\n")
	stmts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		var kept []string
		for _, line := range strings.Split(chunk, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "--") {
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) == 0 {
			continue
		}
		stmts = append(stmts, strings.Join(kept, "\n"))
	}
	return stmts
}
