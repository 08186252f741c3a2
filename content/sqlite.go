package content

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps a page in a SQLite database. Guides are authored or
// exported into it ahead of time and read once at startup.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path, ensures the parent
// directory exists, and creates the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA foreign_keys=ON;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_fields (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS nav_links (
    position INTEGER PRIMARY KEY,
    label TEXT NOT NULL,
    target TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS footer_links (
    position INTEGER PRIMARY KEY,
    label TEXT NOT NULL,
    url TEXT NOT NULL,
    external INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS lessons (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    topic TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    theme TEXT NOT NULL,
    icon TEXT NOT NULL DEFAULT '',
    links_heading TEXT NOT NULL DEFAULT '',
    link_layout TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS outline_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lesson_id INTEGER NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
    parent_id INTEGER REFERENCES outline_items(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    label TEXT NOT NULL DEFAULT '',
    text TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS lesson_links (
    lesson_id INTEGER NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    url TEXT NOT NULL,
    external INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (lesson_id, position)
);
CREATE TABLE IF NOT EXISTS code_samples (
    lesson_id INTEGER PRIMARY KEY REFERENCES lessons(id) ON DELETE CASCADE,
    title TEXT NOT NULL DEFAULT '',
    language TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL
);
`)
	return err
}

// Save replaces the stored page with p in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, p Page) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"code_samples", "lesson_links", "outline_items", "lessons", "footer_links", "nav_links", "page_fields"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	fields := map[string]string{
		"title":        p.Title,
		"description":  p.Description,
		"brand":        p.Brand,
		"hero_title":   p.Hero.Title,
		"hero_tagline": p.Hero.Tagline,
		"footer_note":  p.FooterNote,
	}
	for name, value := range fields {
		if _, err := tx.ExecContext(ctx, `INSERT INTO page_fields (name, value) VALUES (?, ?)`, name, value); err != nil {
			return err
		}
	}
	for i, n := range p.Nav {
		if _, err := tx.ExecContext(ctx, `INSERT INTO nav_links (position, label, target) VALUES (?, ?, ?)`, i, n.Label, n.Target); err != nil {
			return err
		}
	}
	for i, l := range p.FooterLinks {
		if _, err := tx.ExecContext(ctx, `INSERT INTO footer_links (position, label, url, external) VALUES (?, ?, ?, ?)`, i, l.Label, l.URL, boolInt(l.External)); err != nil {
			return err
		}
	}
	for _, l := range p.Lessons {
		if _, err := tx.ExecContext(ctx, `INSERT INTO lessons (id, title, topic, description, theme, icon, links_heading, link_layout) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.Title, l.Topic, l.Description, string(l.Theme), l.Icon, l.LinksHeading, string(l.LinkLayout)); err != nil {
			return fmt.Errorf("insert lesson %d: %w", l.ID, err)
		}
		if err := saveOutline(ctx, tx, l.ID, nil, l.Outline); err != nil {
			return fmt.Errorf("insert outline of lesson %d: %w", l.ID, err)
		}
		for i, link := range l.Links {
			if _, err := tx.ExecContext(ctx, `INSERT INTO lesson_links (lesson_id, position, label, url, external) VALUES (?, ?, ?, ?, ?)`,
				l.ID, i, link.Label, link.URL, boolInt(link.External)); err != nil {
				return err
			}
		}
		if l.Code != nil {
			if _, err := tx.ExecContext(ctx, `INSERT INTO code_samples (lesson_id, title, language, body) VALUES (?, ?, ?, ?)`,
				l.ID, l.Code.Title, string(l.Code.Language), l.Code.Body); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func saveOutline(ctx context.Context, tx *sql.Tx, lessonID int, parent *int64, items []OutlineItem) error {
	for i, item := range items {
		res, err := tx.ExecContext(ctx, `INSERT INTO outline_items (lesson_id, parent_id, position, label, text) VALUES (?, ?, ?, ?, ?)`,
			lessonID, parent, i, item.Label, item.Text)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		if err := saveOutline(ctx, tx, lessonID, &id, item.Children); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the stored page. Lessons come back ordered by id, everything
// else by its stored position.
func (s *SQLiteStore) Load(ctx context.Context) (Page, error) {
	var p Page

	fields, err := s.loadFields(ctx)
	if err != nil {
		return Page{}, err
	}
	p.Title = fields["title"]
	p.Description = fields["description"]
	p.Brand = fields["brand"]
	p.Hero = Hero{Title: fields["hero_title"], Tagline: fields["hero_tagline"]}
	p.FooterNote = fields["footer_note"]

	navRows, err := s.db.QueryContext(ctx, `SELECT label, target FROM nav_links ORDER BY position`)
	if err != nil {
		return Page{}, err
	}
	for navRows.Next() {
		var n NavLink
		if err := navRows.Scan(&n.Label, &n.Target); err != nil {
			navRows.Close()
			return Page{}, err
		}
		p.Nav = append(p.Nav, n)
	}
	if err := navRows.Err(); err != nil {
		navRows.Close()
		return Page{}, err
	}
	navRows.Close()

	p.FooterLinks, err = s.loadLinks(ctx, `SELECT label, url, external FROM footer_links ORDER BY position`)
	if err != nil {
		return Page{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, title, topic, description, theme, icon, links_heading, link_layout FROM lessons ORDER BY id`)
	if err != nil {
		return Page{}, err
	}
	for rows.Next() {
		var l Lesson
		var theme, layout string
		if err := rows.Scan(&l.ID, &l.Title, &l.Topic, &l.Description, &theme, &l.Icon, &l.LinksHeading, &layout); err != nil {
			rows.Close()
			return Page{}, err
		}
		l.Theme = ThemeColor(theme)
		l.LinkLayout = LinkLayout(layout)
		p.Lessons = append(p.Lessons, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return Page{}, err
	}
	rows.Close()

	for i := range p.Lessons {
		l := &p.Lessons[i]
		if l.Outline, err = s.loadOutline(ctx, l.ID); err != nil {
			return Page{}, err
		}
		if l.Links, err = s.loadLinks(ctx, `SELECT label, url, external FROM lesson_links WHERE lesson_id = ? ORDER BY position`, l.ID); err != nil {
			return Page{}, err
		}
		var code CodeSample
		var lang string
		err := s.db.QueryRowContext(ctx, `SELECT title, language, body FROM code_samples WHERE lesson_id = ?`, l.ID).
			Scan(&code.Title, &lang, &code.Body)
		switch {
		case err == sql.ErrNoRows:
		case err != nil:
			return Page{}, err
		default:
			code.Language = Language(lang)
			l.Code = &code
		}
	}
	return p, nil
}

func (s *SQLiteStore) loadFields(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, value FROM page_fields`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	fields := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		fields[name] = value
	}
	return fields, rows.Err()
}

func (s *SQLiteStore) loadLinks(ctx context.Context, query string, args ...any) ([]LinkRef, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var links []LinkRef
	for rows.Next() {
		var l LinkRef
		var external int
		if err := rows.Scan(&l.Label, &l.URL, &external); err != nil {
			return nil, err
		}
		l.External = external == 1
		links = append(links, l)
	}
	return links, rows.Err()
}

type outlineRow struct {
	id     int64
	parent sql.NullInt64
	item   OutlineItem
}

func (s *SQLiteStore) loadOutline(ctx context.Context, lessonID int) ([]OutlineItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, parent_id, label, text FROM outline_items WHERE lesson_id = ? ORDER BY position, id`, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	children := make(map[int64][]outlineRow)
	var roots []outlineRow
	for rows.Next() {
		var r outlineRow
		if err := rows.Scan(&r.id, &r.parent, &r.item.Label, &r.item.Text); err != nil {
			return nil, err
		}
		if r.parent.Valid {
			children[r.parent.Int64] = append(children[r.parent.Int64], r)
		} else {
			roots = append(roots, r)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return buildOutline(roots, children), nil
}

func buildOutline(rows []outlineRow, children map[int64][]outlineRow) []OutlineItem {
	if len(rows) == 0 {
		return nil
	}
	items := make([]OutlineItem, len(rows))
	for i, r := range rows {
		items[i] = r.item
		items[i].Children = buildOutline(children[r.id], children)
	}
	return items
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
