package festival

import (
	"context"
	"time"

	"github.com/Madhu-Juttiga/TourMate-2/internal/db"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"

	"github.com/google/uuid"
)

// nowFn is swapped in tests to pin IsPast derivation.
var nowFn = time.Now

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) AddFestival(ctx context.Context, placeID string, input Festival) (Festival, error) {
	input.ID = uuid.NewString()
	input.PlaceID = placeID
	row := s.db.QueryRow(ctx, `
		INSERT INTO place_festivals (id, place_id, name, date_label, occurs_on, description, images)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, placeID, input.Name, input.Date, input.OccursOn, input.Description, input.Images)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Festival{}, err
	}
	input.IsPast = isPast(input.OccursOn)
	return input, nil
}

func (s *Service) Festivals(ctx context.Context, placeID string) ([]Festival, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, place_id, name, date_label, occurs_on, description, images, created_at
		FROM place_festivals WHERE place_id=$1
		ORDER BY occurs_on
	`, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Festival, 0)
	for rows.Next() {
		var f Festival
		if err := rows.Scan(&f.ID, &f.PlaceID, &f.Name, &f.Date, &f.OccursOn, &f.Description, &f.Images, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.IsPast = isPast(f.OccursOn)
		result = append(result, f)
	}
	return result, nil
}

func (s *Service) AddPhoto(ctx context.Context, placeID string, input Photo) (Photo, error) {
	input.ID = uuid.NewString()
	input.PlaceID = placeID
	row := s.db.QueryRow(ctx, `
		INSERT INTO place_photos (id, place_id, url, caption)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, input.ID, placeID, input.URL, input.Caption)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Photo{}, err
	}
	return input, nil
}

func (s *Service) Photos(ctx context.Context, placeID string) ([]Photo, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, place_id, url, caption, created_at
		FROM place_photos WHERE place_id=$1
		ORDER BY created_at
	`, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Photo, 0)
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.PlaceID, &p.URL, &p.Caption, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// PlaceInfo projects a place's festivals into the shape embedded in place
// payloads.
func (s *Service) PlaceInfo(ctx context.Context, placeID string) ([]places.Festival, error) {
	festivals, err := s.Festivals(ctx, placeID)
	if err != nil {
		return nil, err
	}
	info := make([]places.Festival, 0, len(festivals))
	for _, f := range festivals {
		info = append(info, places.Festival{
			ID:          f.ID,
			Name:        f.Name,
			Date:        f.Date,
			Description: f.Description,
			Images:      f.Images,
			IsPast:      f.IsPast,
		})
	}
	return info, nil
}

func isPast(occursOn time.Time) bool {
	return !occursOn.IsZero() && occursOn.Before(nowFn())
}
