package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/dinosaur-api/internal/domain"
	"github.com/phrazzld/dinosaur-api/internal/store"
)

const (
	dinosaurColumns = `t.key, t.id, t.name, t.description, t.image, t.size`

	selectDinosaurs = `
		SELECT ` + dinosaurColumns + `,
			d.key, d.id, d.name, d.description,
			p.key, p.id, p.name, p.description, p.from_mya, p.to_mya
		FROM dinosaurs t
		JOIN diets d ON d.key = t.diet_key
		JOIN periods p ON p.key = t.period_key`

	selectDiets = `
		SELECT t.key, t.id, t.name, t.description
		FROM diets t`

	selectPeriods = `
		SELECT t.key, t.id, t.name, t.description, t.from_mya, t.to_mya
		FROM periods t`

	selectLocations = `
		SELECT t.key, t.id, t.name
		FROM locations t`

	selectTaxonomies = `
		SELECT t.key, t.id, t.name, t.description,
			p.key, p.id, p.name, p.description
		FROM taxonomies t
		LEFT JOIN taxonomies p ON p.key = t.parent_key`

	selectDinosaurLocations = `
		SELECT dn.id, l.key, l.id, l.name
		FROM dinosaur_locations dl
		JOIN dinosaurs dn ON dn.key = dl.dinosaur_key
		JOIN locations l ON l.key = dl.location_key
		WHERE dn.id = ANY($1::integer[])
		ORDER BY dn.id, l.id`

	selectDinosaurTaxonomies = `
		SELECT dn.id, x.key, x.id, x.name, x.description
		FROM dinosaur_taxonomies dt
		JOIN dinosaurs dn ON dn.key = dt.dinosaur_key
		JOIN taxonomies x ON x.key = dt.taxonomy_key
		WHERE dn.id = ANY($1::integer[])
		ORDER BY dn.id, x.id`

	dinosaursByDiet = `
		SELECT ` + dinosaurColumns + `
		FROM dinosaurs t
		WHERE t.diet_key = $1
		ORDER BY t.id`

	dinosaursByPeriod = `
		SELECT ` + dinosaurColumns + `
		FROM dinosaurs t
		WHERE t.period_key = $1
		ORDER BY t.id`

	dinosaursByLocation = `
		SELECT ` + dinosaurColumns + `
		FROM dinosaurs t
		JOIN dinosaur_locations dl ON dl.dinosaur_key = t.key
		WHERE dl.location_key = $1
		ORDER BY t.id`

	dinosaursByTaxonomy = `
		SELECT ` + dinosaurColumns + `
		FROM dinosaurs t
		JOIN dinosaur_taxonomies dt ON dt.dinosaur_key = t.key
		WHERE dt.taxonomy_key = $1
		ORDER BY t.id`
)

// Dinosaurs returns the dinosaur reader. Diet and period are joined in the
// main query; locations and taxonomies are read with one query each per page.
func (s *PostgresStore) Dinosaurs() store.Reader[domain.Dinosaur] {
	return reader[domain.Dinosaur]{s: s, t: table[domain.Dinosaur]{
		kind:      domain.KindDinosaur,
		selectSQL: selectDinosaurs,
		countSQL:  `SELECT count(*) FROM dinosaurs`,
		scan: func(row rowScanner) (domain.Dinosaur, error) {
			var d domain.Dinosaur
			err := row.Scan(
				&d.Key, &d.ID, &d.Name, &d.Description, &d.Image, &d.Size,
				&d.Diet.Key, &d.Diet.ID, &d.Diet.Name, &d.Diet.Description,
				&d.Period.Key, &d.Period.ID, &d.Period.Name, &d.Period.Description,
				&d.Period.From, &d.Period.To,
			)
			return d, err
		},
		join: joinDinosaurs,
	}}
}

// Diets returns the diet reader.
func (s *PostgresStore) Diets() store.Reader[domain.Diet] {
	return reader[domain.Diet]{s: s, t: table[domain.Diet]{
		kind:      domain.KindDiet,
		selectSQL: selectDiets,
		countSQL:  `SELECT count(*) FROM diets`,
		scan: func(row rowScanner) (domain.Diet, error) {
			var d domain.Diet
			err := row.Scan(&d.Key, &d.ID, &d.Name, &d.Description)
			return d, err
		},
		reverse: func(ctx context.Context, q store.DBTX, d *domain.Diet) error {
			var err error
			d.Dinosaurs, err = dinosaursReferencing(ctx, q, dinosaursByDiet, d.Key)
			return err
		},
	}}
}

// Periods returns the period reader.
func (s *PostgresStore) Periods() store.Reader[domain.Period] {
	return reader[domain.Period]{s: s, t: table[domain.Period]{
		kind:      domain.KindPeriod,
		selectSQL: selectPeriods,
		countSQL:  `SELECT count(*) FROM periods`,
		scan: func(row rowScanner) (domain.Period, error) {
			var p domain.Period
			err := row.Scan(&p.Key, &p.ID, &p.Name, &p.Description, &p.From, &p.To)
			return p, err
		},
		reverse: func(ctx context.Context, q store.DBTX, p *domain.Period) error {
			var err error
			p.Dinosaurs, err = dinosaursReferencing(ctx, q, dinosaursByPeriod, p.Key)
			return err
		},
	}}
}

// Locations returns the location reader.
func (s *PostgresStore) Locations() store.Reader[domain.Location] {
	return reader[domain.Location]{s: s, t: table[domain.Location]{
		kind:      domain.KindLocation,
		selectSQL: selectLocations,
		countSQL:  `SELECT count(*) FROM locations`,
		scan: func(row rowScanner) (domain.Location, error) {
			var l domain.Location
			err := row.Scan(&l.Key, &l.ID, &l.Name)
			return l, err
		},
		reverse: func(ctx context.Context, q store.DBTX, l *domain.Location) error {
			var err error
			l.Dinosaurs, err = dinosaursReferencing(ctx, q, dinosaursByLocation, l.Key)
			return err
		},
	}}
}

// Taxonomies returns the taxonomy reader. The parent is joined one level deep.
func (s *PostgresStore) Taxonomies() store.Reader[domain.Taxonomy] {
	return reader[domain.Taxonomy]{s: s, t: table[domain.Taxonomy]{
		kind:      domain.KindTaxonomy,
		selectSQL: selectTaxonomies,
		countSQL:  `SELECT count(*) FROM taxonomies`,
		scan: func(row rowScanner) (domain.Taxonomy, error) {
			var (
				t                      domain.Taxonomy
				parentKey              uuid.NullUUID
				parentID               sql.NullInt64
				parentName, parentDesc sql.NullString
			)
			err := row.Scan(&t.Key, &t.ID, &t.Name, &t.Description,
				&parentKey, &parentID, &parentName, &parentDesc)
			if err != nil {
				return t, err
			}
			if parentKey.Valid {
				t.Parent = &domain.Taxonomy{
					Key:         parentKey.UUID,
					ID:          int(parentID.Int64),
					Name:        parentName.String,
					Description: parentDesc.String,
				}
			}
			return t, nil
		},
		reverse: func(ctx context.Context, q store.DBTX, t *domain.Taxonomy) error {
			var err error
			t.Dinosaurs, err = dinosaursReferencing(ctx, q, dinosaursByTaxonomy, t.Key)
			return err
		},
	}}
}

// joinDinosaurs fills Locations and Taxonomies of every item.
func joinDinosaurs(ctx context.Context, q store.DBTX, items []domain.Dinosaur) error {
	ids := make([]int, len(items))
	index := make(map[int]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].Locations = []domain.Location{}
		items[i].Taxonomies = []domain.Taxonomy{}
	}

	rows, err := q.QueryContext(ctx, selectDinosaurLocations, intArray(ids))
	if err != nil {
		return err
	}
	for rows.Next() {
		var (
			dinosaurID int
			l          domain.Location
		)
		if err := rows.Scan(&dinosaurID, &l.Key, &l.ID, &l.Name); err != nil {
			_ = rows.Close()
			return err
		}
		i := index[dinosaurID]
		items[i].Locations = append(items[i].Locations, l)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = q.QueryContext(ctx, selectDinosaurTaxonomies, intArray(ids))
	if err != nil {
		return err
	}
	for rows.Next() {
		var (
			dinosaurID int
			t          domain.Taxonomy
		)
		if err := rows.Scan(&dinosaurID, &t.Key, &t.ID, &t.Name, &t.Description); err != nil {
			_ = rows.Close()
			return err
		}
		i := index[dinosaurID]
		items[i].Taxonomies = append(items[i].Taxonomies, t)
	}
	return closeRows(rows)
}

// dinosaursReferencing runs one of the dinosaursBy* queries. The dinosaurs
// are returned unjoined, ordered by ID.
func dinosaursReferencing(ctx context.Context, q store.DBTX, query string, key uuid.UUID) ([]domain.Dinosaur, error) {
	rows, err := q.QueryContext(ctx, query, key)
	if err != nil {
		return nil, err
	}

	out := []domain.Dinosaur{}
	for rows.Next() {
		var d domain.Dinosaur
		if err := rows.Scan(&d.Key, &d.ID, &d.Name, &d.Description, &d.Image, &d.Size); err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, d)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	return out, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}
