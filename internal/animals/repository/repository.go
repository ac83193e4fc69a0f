package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/animals/transport"
	"refuge_backend/internal/search"
)

var ErrNotFound = errors.New("not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Animal is the full shelter record. Nullable columns map to pointers.
type Animal struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Alias          string               `json:"alias"`
	Species        domain.Species       `json:"species"`
	BreedID        *uuid.UUID           `json:"breedId"`
	ColorID        *uuid.UUID           `json:"colorId"`
	Gender         domain.Gender        `json:"gender"`
	BirthDate      *time.Time           `json:"birthDate"`
	Status         domain.Status        `json:"status"`
	PickUpDate     *time.Time           `json:"pickUpDate"`
	PickUpLocation string               `json:"pickUpLocation"`
	PickUpReason   string               `json:"pickUpReason"`
	ManagerID      *uuid.UUID           `json:"managerId"`
	FosterFamilyID *uuid.UUID           `json:"fosterFamilyId"`
	Sterilization  domain.Sterilization `json:"sterilization"`
	NextVaccineDue *time.Time           `json:"nextVaccineDue"`
	AdoptionDate   *time.Time           `json:"adoptionDate"`
	Description    string               `json:"description"`
	CreatedAt      time.Time            `json:"-"`
	UpdatedAt      time.Time            `json:"-"`

	// Joined display fields, not persisted on the animal row.
	BreedName string `json:"-"`
	ColorName string `json:"-"`
}

// Card is the list projection row.
type Card struct {
	ID             uuid.UUID
	Name           string
	Species        domain.Species
	BreedName      string
	Status         domain.Status
	Gender         domain.Gender
	BirthDate      *time.Time
	PickUpDate     *time.Time
	PickUpLocation string
	NextVaccineDue *time.Time
	PhotoKey       string
}

// Photo is one stored photo reference.
type Photo struct {
	ID        uuid.UUID
	AnimalID  uuid.UUID
	Key       string
	TakenAt   *time.Time
	CreatedAt time.Time
}

const animalColumns = `
	a.id, a.name, a.alias, a.species, a.breed_id, a.color_id, a.gender,
	a.birth_date, a.status, a.pick_up_date, a.pick_up_location, a.pick_up_reason,
	a.manager_id, a.foster_family_id, a.sterilization, a.next_vaccine_due,
	a.adoption_date, a.description, a.created_at, a.updated_at,
	COALESCE(b.name, ''), COALESCE(c.name, '')`

const animalJoins = `
	LEFT JOIN breeds b ON b.id = a.breed_id
	LEFT JOIN colors c ON c.id = a.color_id`

func scanAnimal(row pgx.Row) (Animal, error) {
	var a Animal
	err := row.Scan(
		&a.ID, &a.Name, &a.Alias, &a.Species, &a.BreedID, &a.ColorID, &a.Gender,
		&a.BirthDate, &a.Status, &a.PickUpDate, &a.PickUpLocation, &a.PickUpReason,
		&a.ManagerID, &a.FosterFamilyID, &a.Sterilization, &a.NextVaccineDue,
		&a.AdoptionDate, &a.Description, &a.CreatedAt, &a.UpdatedAt,
		&a.BreedName, &a.ColorName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Animal{}, ErrNotFound
	}
	return a, err
}

func (r *Repository) Create(ctx context.Context, a Animal) (Animal, error) {
	return scanAnimal(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO animals (
				name, alias, species, breed_id, color_id, gender, birth_date,
				status, pick_up_date, pick_up_location, pick_up_reason,
				manager_id, foster_family_id, sterilization, next_vaccine_due,
				adoption_date, description
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING *
		)
		SELECT `+animalColumns+` FROM inserted a`+animalJoins,
		a.Name, a.Alias, a.Species, a.BreedID, a.ColorID, a.Gender, a.BirthDate,
		a.Status, a.PickUpDate, a.PickUpLocation, a.PickUpReason,
		a.ManagerID, a.FosterFamilyID, a.Sterilization, a.NextVaccineDue,
		a.AdoptionDate, a.Description,
	))
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Animal, error) {
	return scanAnimal(r.pool.QueryRow(ctx, `
		SELECT `+animalColumns+` FROM animals a`+animalJoins+`
		WHERE a.id = $1
	`, id))
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, a Animal) (Animal, error) {
	return scanAnimal(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE animals SET
				name = $2, alias = $3, species = $4, breed_id = $5, color_id = $6,
				gender = $7, birth_date = $8, status = $9, pick_up_date = $10,
				pick_up_location = $11, pick_up_reason = $12, manager_id = $13,
				foster_family_id = $14, sterilization = $15, next_vaccine_due = $16,
				adoption_date = $17, description = $18, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+animalColumns+` FROM updated a`+animalJoins,
		id,
		a.Name, a.Alias, a.Species, a.BreedID, a.ColorID, a.Gender, a.BirthDate,
		a.Status, a.PickUpDate, a.PickUpLocation, a.PickUpReason,
		a.ManagerID, a.FosterFamilyID, a.Sterilization, a.NextVaccineDue,
		a.AdoptionDate, a.Description,
	))
}

// Delete removes the animal and its photo rows in one transaction and
// returns the orphaned storage keys for best-effort cleanup.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		DELETE FROM animal_photos WHERE animal_id = $1 RETURNING storage_key
	`, id)
	if err != nil {
		return nil, err
	}
	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return nil, err
		}
		keys = append(keys, key)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	tag, err := tx.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return keys, tx.Commit(ctx)
}

// Search lists animals as cards. When rankedIDs is non-nil the result is
// restricted to the fuzzy candidates in rank order; otherwise the declared
// sort applies, with absent values last.
func (r *Repository) Search(ctx context.Context, params transport.SearchParams, rankedIDs []uuid.UUID, page search.Page) (search.Result[Card], error) {
	var p search.Predicate
	search.WhereEnum(&p, "a.species", params.Species)
	search.WhereEnum(&p, "a.status", params.Statuses)
	search.WhereEnum(&p, "a.sterilization", params.Sterilizations)
	p.WhereIDs("a.manager_id", params.Managers)
	p.WhereIDs("a.foster_family_id", params.FosterFamilies)
	p.WhereStrings("a.pick_up_location", params.PickUpLocations)
	p.WhereDateRange("a.pick_up_date", params.PickUpDate)
	p.WhereDateRange("a.next_vaccine_due", params.Vaccination)

	orderBy := sortExpr(params.Sort)
	if rankedIDs != nil {
		p.Where("a.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("a.id", rankedIDs)
	}

	q := search.Query{
		Base: `FROM animals a` + animalJoins + ` ` + p.SQL(),
		Columns: `a.id, a.name, a.species, COALESCE(b.name, ''), a.status,
			a.gender, a.birth_date, a.pick_up_date, a.pick_up_location,
			a.next_vaccine_due,
			COALESCE((SELECT p.storage_key FROM animal_photos p
				WHERE p.animal_id = a.id ORDER BY p.created_at LIMIT 1), '')`,
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (Card, error) {
		var card Card
		err := rows.Scan(
			&card.ID, &card.Name, &card.Species, &card.BreedName, &card.Status,
			&card.Gender, &card.BirthDate, &card.PickUpDate, &card.PickUpLocation,
			&card.NextVaccineDue, &card.PhotoKey,
		)
		return card, err
	})
}

func sortExpr(key transport.SortKey) string {
	switch key {
	case transport.SortName:
		return "lower(a.name), a.id"
	case transport.SortBirthDate:
		return "a.birth_date DESC NULLS LAST, a.id"
	case transport.SortVaccination:
		return "a.next_vaccine_due ASC NULLS LAST, a.id"
	default:
		return "a.pick_up_date DESC NULLS LAST, a.id"
	}
}

// DistinctPickUpLocations lists the stored location values, most used first.
func (r *Repository) DistinctPickUpLocations(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pick_up_location
		FROM animals
		WHERE pick_up_location <> ''
		GROUP BY pick_up_location
		ORDER BY COUNT(*) DESC, pick_up_location
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *Repository) AddPhoto(ctx context.Context, animalID uuid.UUID, key string, takenAt *time.Time) (Photo, error) {
	var photo Photo
	err := r.pool.QueryRow(ctx, `
		INSERT INTO animal_photos (animal_id, storage_key, taken_at)
		VALUES ($1, $2, $3)
		RETURNING id, animal_id, storage_key, taken_at, created_at
	`, animalID, key, takenAt).Scan(
		&photo.ID, &photo.AnimalID, &photo.Key, &photo.TakenAt, &photo.CreatedAt,
	)
	return photo, err
}

func (r *Repository) ListPhotos(ctx context.Context, animalID uuid.UUID) ([]Photo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, animal_id, storage_key, taken_at, created_at
		FROM animal_photos
		WHERE animal_id = $1
		ORDER BY created_at
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]Photo, 0)
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.AnimalID, &p.Key, &p.TakenAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *Repository) DeletePhoto(ctx context.Context, animalID, photoID uuid.UUID) (string, error) {
	var key string
	err := r.pool.QueryRow(ctx, `
		DELETE FROM animal_photos
		WHERE id = $1 AND animal_id = $2
		RETURNING storage_key
	`, photoID, animalID).Scan(&key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return key, err
}
