package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Eluskie/Orlando/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateBrandWithConversation(ctx context.Context, brand *model.Brand, conversation *model.Conversation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	styleJSON, err := json.Marshal(brand.Style)
	if err != nil {
		return fmt.Errorf("could not marshal brand style: %w", err)
	}

	brandQuery := "INSERT INTO brands (id, name, description, style, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, brandQuery,
		brand.ID, brand.Name, brand.Description, string(styleJSON), brand.CreatedAt, brand.UpdatedAt,
	); err != nil {
		return fmt.Errorf("could not insert brand: %w", err)
	}

	convQuery := "INSERT INTO conversations (id, brand_id, title, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, convQuery,
		conversation.ID, conversation.BrandID, conversation.Title, conversation.CreatedAt, conversation.UpdatedAt,
	); err != nil {
		return fmt.Errorf("could not insert conversation: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetBrand(ctx context.Context, brandID string) (*model.Brand, error) {
	query := "SELECT id, name, description, style, created_at, updated_at FROM brands WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, brandID)
	return scanBrand(row)
}

func (r *sqliteRepository) ListBrands(ctx context.Context) ([]*model.Brand, error) {
	query := "SELECT id, name, description, style, created_at, updated_at FROM brands ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*model.Brand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBrand(row rowScanner) (*model.Brand, error) {
	var brand model.Brand
	var description sql.NullString
	var styleJSON string
	err := row.Scan(&brand.ID, &brand.Name, &description, &styleJSON, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if description.Valid {
		brand.Description = &description.String
	}
	if styleJSON != "" {
		if err := json.Unmarshal([]byte(styleJSON), &brand.Style); err != nil {
			return nil, fmt.Errorf("could not unmarshal brand style: %w", err)
		}
	}
	return &brand, nil
}

func (r *sqliteRepository) UpdateBrandStyle(ctx context.Context, brandID string, style model.BrandStyle) error {
	styleJSON, err := json.Marshal(style)
	if err != nil {
		return fmt.Errorf("could not marshal brand style: %w", err)
	}
	query := "UPDATE brands SET style = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, string(styleJSON), time.Now().UTC(), brandID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	query := "SELECT id, brand_id, title, created_at, updated_at FROM conversations WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, conversationID)

	var conv model.Conversation
	var brandID sql.NullString
	err := row.Scan(&conv.ID, &brandID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if brandID.Valid {
		conv.BrandID = &brandID.String
	}
	return &conv, nil
}

func (r *sqliteRepository) AppendMessages(ctx context.Context, conversationID string, messages []model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := "INSERT INTO messages (id, conversation_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)"
	for _, msg := range messages {
		if _, err := tx.ExecContext(ctx, insertQuery,
			msg.ID, conversationID, msg.Role, msg.Content, msg.CreatedAt,
		); err != nil {
			return fmt.Errorf("could not insert message: %w", err)
		}
	}

	updateQuery := "UPDATE conversations SET updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, updateQuery, time.Now().UTC(), conversationID); err != nil {
		return fmt.Errorf("could not update conversation timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	query := `
		SELECT id, conversation_id, role, content, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *sqliteRepository) ClearMessages(ctx context.Context, conversationID string) error {
	query := "DELETE FROM messages WHERE conversation_id = ?"
	_, err := r.db.ExecContext(ctx, query, conversationID)
	return err
}

func (r *sqliteRepository) CreateGeneration(ctx context.Context, generation *model.Generation) error {
	metadataJSON, err := json.Marshal(generation.Metadata)
	if err != nil {
		return fmt.Errorf("could not marshal generation metadata: %w", err)
	}
	query := `
		INSERT INTO generations (id, brand_id, conversation_id, prompt, status, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		generation.ID, generation.BrandID, generation.ConversationID,
		generation.Prompt, generation.Status, string(metadataJSON), generation.CreatedAt,
	)
	return err
}

func (r *sqliteRepository) CompleteGeneration(ctx context.Context, generationID string, completedAt time.Time, assets []model.Asset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO assets (id, brand_id, generation_id, type, url, thumbnail_url, name, width, height, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, asset := range assets {
		if _, err := tx.ExecContext(ctx, insertQuery,
			asset.ID, asset.BrandID, asset.GenerationID, asset.Type,
			asset.URL, asset.ThumbnailURL, asset.Name, asset.Width, asset.Height, asset.CreatedAt,
		); err != nil {
			return fmt.Errorf("could not insert asset: %w", err)
		}
	}

	updateQuery := "UPDATE generations SET status = ?, completed_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, updateQuery, model.GenerationCompleted, completedAt, generationID); err != nil {
		return fmt.Errorf("could not complete generation: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) FailGeneration(ctx context.Context, generationID string, errorMessage string) error {
	query := "UPDATE generations SET status = ?, error_message = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, model.GenerationFailed, errorMessage, generationID)
	return err
}

func (r *sqliteRepository) ListGenerations(ctx context.Context, brandID string, limit int) ([]*model.Generation, error) {
	query := `
		SELECT id, brand_id, conversation_id, prompt, status, metadata, error_message, created_at, completed_at
		FROM generations
		WHERE brand_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, brandID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generations []*model.Generation
	byID := make(map[string]*model.Generation)
	for rows.Next() {
		var gen model.Generation
		var conversationID, errorMessage sql.NullString
		var metadataJSON string
		var completedAt sql.NullTime
		if err := rows.Scan(&gen.ID, &gen.BrandID, &conversationID, &gen.Prompt, &gen.Status,
			&metadataJSON, &errorMessage, &gen.CreatedAt, &completedAt); err != nil {
			return nil, err
		}
		if conversationID.Valid {
			gen.ConversationID = &conversationID.String
		}
		if errorMessage.Valid {
			gen.ErrorMessage = &errorMessage.String
		}
		if completedAt.Valid {
			gen.CompletedAt = &completedAt.Time
		}
		if metadataJSON != "" {
			if err := json.Unmarshal([]byte(metadataJSON), &gen.Metadata); err != nil {
				return nil, fmt.Errorf("could not unmarshal generation metadata: %w", err)
			}
		}
		generations = append(generations, &gen)
		byID[gen.ID] = &gen
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(generations) == 0 {
		return generations, nil
	}

	// Attach assets for the fetched page.
	assetQuery := `
		SELECT a.id, a.brand_id, a.generation_id, a.type, a.url, a.thumbnail_url, a.name,
		       a.width, a.height, a.canvas_x, a.canvas_y, a.canvas_scale, a.created_at
		FROM assets a
		JOIN generations g ON g.id = a.generation_id
		WHERE g.brand_id = ?
		ORDER BY a.created_at ASC
	`
	assetRows, err := r.db.QueryContext(ctx, assetQuery, brandID)
	if err != nil {
		return nil, err
	}
	defer assetRows.Close()

	for assetRows.Next() {
		asset, err := scanAsset(assetRows)
		if err != nil {
			return nil, err
		}
		if asset.GenerationID != nil {
			if gen, ok := byID[*asset.GenerationID]; ok {
				gen.Assets = append(gen.Assets, asset)
			}
		}
	}
	return generations, assetRows.Err()
}

func (r *sqliteRepository) CountGenerationsSince(ctx context.Context, brandID string, since time.Time) (int, error) {
	query := "SELECT COUNT(*) FROM generations WHERE brand_id = ? AND created_at >= ?"
	var count int
	err := r.db.QueryRowContext(ctx, query, brandID, since).Scan(&count)
	return count, err
}

func (r *sqliteRepository) CreateAsset(ctx context.Context, asset *model.Asset) error {
	query := `
		INSERT INTO assets (id, brand_id, generation_id, type, url, thumbnail_url, name, width, height, canvas_x, canvas_y, canvas_scale, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.BrandID, asset.GenerationID, asset.Type,
		asset.URL, asset.ThumbnailURL, asset.Name, asset.Width, asset.Height,
		asset.CanvasX, asset.CanvasY, asset.CanvasScale, asset.CreatedAt,
	)
	return err
}

func (r *sqliteRepository) ListAssetsByBrand(ctx context.Context, brandID string) ([]model.Asset, error) {
	query := `
		SELECT id, brand_id, generation_id, type, url, thumbnail_url, name,
		       width, height, canvas_x, canvas_y, canvas_scale, created_at
		FROM assets
		WHERE brand_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func scanAsset(rows *sql.Rows) (model.Asset, error) {
	var asset model.Asset
	var generationID, thumbnailURL sql.NullString
	var width, height sql.NullInt64
	var canvasX, canvasY, canvasScale sql.NullFloat64

	if err := rows.Scan(&asset.ID, &asset.BrandID, &generationID, &asset.Type, &asset.URL,
		&thumbnailURL, &asset.Name, &width, &height, &canvasX, &canvasY, &canvasScale, &asset.CreatedAt); err != nil {
		return model.Asset{}, err
	}
	if generationID.Valid {
		asset.GenerationID = &generationID.String
	}
	if thumbnailURL.Valid {
		asset.ThumbnailURL = &thumbnailURL.String
	}
	if width.Valid {
		w := int(width.Int64)
		asset.Width = &w
	}
	if height.Valid {
		h := int(height.Int64)
		asset.Height = &h
	}
	if canvasX.Valid {
		asset.CanvasX = &canvasX.Float64
	}
	if canvasY.Valid {
		asset.CanvasY = &canvasY.Float64
	}
	if canvasScale.Valid {
		asset.CanvasScale = &canvasScale.Float64
	}
	return asset, nil
}
