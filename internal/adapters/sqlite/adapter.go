// Package sqlite provides the SQLite-backed track store used when no
// external catalog is reachable: a flat table of tracks with precomputed
// embeddings.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/vector"
)

// Adapter implements the track store port for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.TrackStore = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// AllTracks loads every stored track with its embedding. Rows whose
// embedding column cannot be decoded are skipped rather than failing the
// whole load.
func (a *Adapter) AllTracks(ctx context.Context) ([]ports.StoredTrack, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT song_name, artist, spotify_id, embedding,
			IFNULL(album, ''), IFNULL(preview_url, '')
		FROM tracks
		ORDER BY song_name, artist
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}
	defer rows.Close()

	var out []ports.StoredTrack
	for rows.Next() {
		var st ports.StoredTrack
		var encoded string
		if err := rows.Scan(
			&st.Track.Title,
			&st.Track.Artist,
			&st.Track.SpotifyID,
			&encoded,
			&st.Track.Album,
			&st.Track.PreviewURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		emb, err := decodeEmbedding(encoded)
		if err != nil {
			continue
		}
		st.Embedding = emb
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}

	return out, nil
}

// SaveTracks upserts tracks with their embeddings, keyed by title and
// artist.
func (a *Adapter) SaveTracks(ctx context.Context, tracks []ports.StoredTrack) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tracks (song_name, artist, spotify_id, embedding, album, preview_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(song_name, artist) DO UPDATE SET
			spotify_id=excluded.spotify_id,
			embedding=excluded.embedding,
			album=excluded.album,
			preview_url=excluded.preview_url;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, st := range tracks {
		if _, err := stmt.ExecContext(
			ctx,
			st.Track.Title,
			st.Track.Artist,
			st.Track.SpotifyID,
			encodeEmbedding(st.Embedding),
			st.Track.Album,
			st.Track.PreviewURL,
		); err != nil {
			return fmt.Errorf("failed to save track %q: %w", st.Track.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS tracks (
		song_name TEXT NOT NULL,
		artist TEXT NOT NULL,
		spotify_id TEXT,
		embedding TEXT NOT NULL,
		album TEXT,
		preview_url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (song_name, artist)
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}

// embeddingVersion prefixes the serialized form so the format can evolve
// without a schema change.
const embeddingVersion = "v1"

func encodeEmbedding(v vector.Vector) string {
	var b strings.Builder
	b.WriteString(embeddingVersion)
	b.WriteByte(':')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return b.String()
}

func decodeEmbedding(s string) (vector.Vector, error) {
	version, payload, found := strings.Cut(s, ":")
	if !found || version != embeddingVersion {
		return nil, fmt.Errorf("unsupported embedding encoding %q", version)
	}
	if payload == "" {
		return nil, fmt.Errorf("empty embedding payload")
	}

	fields := strings.Split(payload, ",")
	out := make(vector.Vector, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad embedding component %d: %w", i, err)
		}
		out[i] = x
	}
	return out, nil
}
