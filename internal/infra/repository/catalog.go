package repository

import (
	"context"
	"errors"
	"time"

	"tastebuds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Catalog records carry no invariants beyond NOT NULL columns, so they are
// stored and returned as plain rows rather than domain entities.

type Venue struct {
	ID        uuid.UUID
	Name      string
	Address   string
	CreatedAt time.Time
}

type Class struct {
	ID         uuid.UUID
	Type       string
	Name       string
	DayOfWeek  string
	StartTime  string
	EndTime    string
	AgeMin     int
	AgeMax     int
	MaxSize    int
	Instructor string
	VenueID    uuid.UUID
	PricePence int64
	CreatedAt  time.Time
}

type Recipe struct {
	ID          uuid.UUID
	Name        string
	Description string
	PhotoURL    *string
	CreatedAt   time.Time
}

type GalleryImage struct {
	ID          uuid.UUID
	ImageURL    string
	Description string
	AltText     string
	SortOrder   int
	CreatedAt   time.Time
}

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateVenue(ctx context.Context, v *Venue) error {
	const q = `INSERT INTO venues (id, name, address) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, q, v.ID, v.Name, v.Address); err != nil {
		return infra.WrapRepoErr("failed to create venue", err)
	}
	return nil
}

func (r *CatalogRepository) FindVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	const q = `SELECT id, name, address, created_at FROM venues WHERE id = $1`

	var v Venue
	err := r.pool.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Address, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue", err)
	}
	return &v, nil
}

func (r *CatalogRepository) ListVenues(ctx context.Context) ([]Venue, error) {
	const q = `SELECT id, name, address, created_at FROM venues ORDER BY name`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	return venues, nil
}

func (r *CatalogRepository) UpdateVenue(ctx context.Context, v *Venue) error {
	const q = `UPDATE venues SET name = $2, address = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, v.ID, v.Name, v.Address)
	if err != nil {
		return infra.WrapRepoErr("failed to update venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM venues WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

const classColumns = `id, type, name, day_of_week, start_time, end_time, age_min, age_max,
	max_size, instructor, venue_id, price_pence, created_at`

func scanClass(row pgx.Row) (*Class, error) {
	var c Class
	err := row.Scan(&c.ID, &c.Type, &c.Name, &c.DayOfWeek, &c.StartTime, &c.EndTime,
		&c.AgeMin, &c.AgeMax, &c.MaxSize, &c.Instructor, &c.VenueID, &c.PricePence, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) CreateClass(ctx context.Context, c *Class) error {
	const q = `
		INSERT INTO classes (id, type, name, day_of_week, start_time, end_time, age_min, age_max,
			max_size, instructor, venue_id, price_pence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, q, c.ID, c.Type, c.Name, c.DayOfWeek, c.StartTime, c.EndTime,
		c.AgeMin, c.AgeMax, c.MaxSize, c.Instructor, c.VenueID, c.PricePence)
	if err != nil {
		return infra.WrapRepoErr("failed to create class", err)
	}
	return nil
}

func (r *CatalogRepository) FindClass(ctx context.Context, id uuid.UUID) (*Class, error) {
	const q = `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	c, err := scanClass(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("class not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class", err)
	}
	return c, nil
}

func (r *CatalogRepository) ListClasses(ctx context.Context) ([]Class, error) {
	const q = `SELECT ` + classColumns + ` FROM classes ORDER BY name`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes", err)
	}
	defer rows.Close()

	var classes []Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan class", err)
		}
		classes = append(classes, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list classes", err)
	}
	return classes, nil
}

func (r *CatalogRepository) UpdateClass(ctx context.Context, c *Class) error {
	const q = `
		UPDATE classes
		SET type = $2, name = $3, day_of_week = $4, start_time = $5, end_time = $6,
			age_min = $7, age_max = $8, max_size = $9, instructor = $10, venue_id = $11, price_pence = $12
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, c.ID, c.Type, c.Name, c.DayOfWeek, c.StartTime, c.EndTime,
		c.AgeMin, c.AgeMax, c.MaxSize, c.Instructor, c.VenueID, c.PricePence)
	if err != nil {
		return infra.WrapRepoErr("failed to update class", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteClass(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM classes WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete class", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) CreateRecipe(ctx context.Context, rec *Recipe) error {
	const q = `INSERT INTO recipes (id, name, description, photo_url) VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, q, rec.ID, rec.Name, rec.Description, rec.PhotoURL); err != nil {
		return infra.WrapRepoErr("failed to create recipe", err)
	}
	return nil
}

func (r *CatalogRepository) FindRecipe(ctx context.Context, id uuid.UUID) (*Recipe, error) {
	const q = `SELECT id, name, description, photo_url, created_at FROM recipes WHERE id = $1`

	var rec Recipe
	err := r.pool.QueryRow(ctx, q, id).Scan(&rec.ID, &rec.Name, &rec.Description, &rec.PhotoURL, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("recipe not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find recipe", err)
	}
	return &rec, nil
}

func (r *CatalogRepository) ListRecipes(ctx context.Context) ([]Recipe, error) {
	const q = `SELECT id, name, description, photo_url, created_at FROM recipes ORDER BY name`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recipes", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var rec Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.PhotoURL, &rec.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recipe", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list recipes", err)
	}
	return recipes, nil
}

func (r *CatalogRepository) UpdateRecipe(ctx context.Context, rec *Recipe) error {
	const q = `UPDATE recipes SET name = $2, description = $3, photo_url = $4 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, rec.ID, rec.Name, rec.Description, rec.PhotoURL)
	if err != nil {
		return infra.WrapRepoErr("failed to update recipe", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM recipes WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete recipe", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) CreateGalleryImage(ctx context.Context, img *GalleryImage) error {
	const q = `INSERT INTO gallery_images (id, image_url, description, alt_text, sort_order) VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.pool.Exec(ctx, q, img.ID, img.ImageURL, img.Description, img.AltText, img.SortOrder); err != nil {
		return infra.WrapRepoErr("failed to create gallery image", err)
	}
	return nil
}

func (r *CatalogRepository) ListGalleryImages(ctx context.Context) ([]GalleryImage, error) {
	const q = `SELECT id, image_url, description, alt_text, sort_order, created_at FROM gallery_images ORDER BY sort_order, created_at`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery images", err)
	}
	defer rows.Close()

	var images []GalleryImage
	for rows.Next() {
		var img GalleryImage
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.Description, &img.AltText, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan gallery image", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery images", err)
	}
	return images, nil
}

func (r *CatalogRepository) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM gallery_images WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete gallery image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("gallery image not found", nil, infra.KindNotFound)
	}
	return nil
}
