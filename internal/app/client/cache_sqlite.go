package client

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SnapshotCache - локальный SQLite-кэш последнего снимка.
// Позволяет показать данные до первой синхронизации с хранилищем.
type SnapshotCache struct {
	db *sql.DB
}

func NewSnapshotCache(path string) (*SnapshotCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия кэша: %w", err)
	}

	c := &SnapshotCache{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

func (c *SnapshotCache) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS spaces (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		db_id TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		alt TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS products (
		position INTEGER PRIMARY KEY,
		remote_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		descr TEXT NOT NULL DEFAULT '',
		box TEXT NOT NULL DEFAULT '',
		parent_id TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		collaborators TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	);`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("ошибка инициализации схемы кэша: %w", err)
	}

	return nil
}

// Save атомарно заменяет содержимое кэша новым снимком
func (c *SnapshotCache) Save(snap *Snapshot) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM spaces"); err != nil {
		return fmt.Errorf("ошибка очистки кэша пространств: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM products"); err != nil {
		return fmt.Errorf("ошибка очистки кэша предметов: %w", err)
	}

	for i, sp := range snap.Spaces {
		_, err := tx.Exec(
			"INSERT INTO spaces (position, id, db_id, image, alt) VALUES (?, ?, ?, ?, ?)",
			i, sp.ID, sp.DBID, sp.Image, sp.Alt,
		)
		if err != nil {
			return fmt.Errorf("ошибка записи пространства в кэш: %w", err)
		}
	}

	for i, p := range snap.Products {
		collab, err := json.Marshal(p.Collaborators)
		if err != nil {
			return fmt.Errorf("ошибка сериализации участников: %w", err)
		}

		_, err = tx.Exec(
			`INSERT INTO products
			(position, remote_id, name, descr, box, parent_id, image, collaborators, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.ID, p.Name, p.Desc, p.Box, p.ParentID, p.Image, string(collab), p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("ошибка записи предмета в кэш: %w", err)
		}
	}

	return tx.Commit()
}

// Load возвращает сохранённый снимок или nil, если кэш пуст
func (c *SnapshotCache) Load() (*Snapshot, error) {
	spaceRows, err := c.db.Query("SELECT id, db_id, image, alt FROM spaces ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения пространств из кэша: %w", err)
	}
	defer spaceRows.Close()

	var spaces []Space
	for spaceRows.Next() {
		var sp Space
		if err := spaceRows.Scan(&sp.ID, &sp.DBID, &sp.Image, &sp.Alt); err != nil {
			return nil, fmt.Errorf("ошибка чтения пространства: %w", err)
		}
		spaces = append(spaces, sp)
	}
	if err := spaceRows.Err(); err != nil {
		return nil, err
	}

	productRows, err := c.db.Query(
		`SELECT remote_id, name, descr, box, parent_id, image, collaborators, created_at, updated_at
		FROM products ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения предметов из кэша: %w", err)
	}
	defer productRows.Close()

	var products []Product
	for productRows.Next() {
		var (
			p      Product
			collab string
		)
		err := productRows.Scan(&p.ID, &p.Name, &p.Desc, &p.Box, &p.ParentID, &p.Image, &collab, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения предмета: %w", err)
		}
		if err := json.Unmarshal([]byte(collab), &p.Collaborators); err != nil {
			return nil, fmt.Errorf("ошибка разбора участников: %w", err)
		}
		products = append(products, p)
	}
	if err := productRows.Err(); err != nil {
		return nil, err
	}

	if len(spaces) == 0 && len(products) == 0 {
		return nil, nil
	}

	return &Snapshot{Spaces: spaces, Products: products}, nil
}

// Close закрывает соединение с кэшем
func (c *SnapshotCache) Close() error {
	return c.db.Close()
}
