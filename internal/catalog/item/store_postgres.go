// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/catalog/media"
	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/internal/catalog/term"
	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] backed by catalog.item and its
// satellite tables.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter, includePrivate bool) ([]*Summary, int, error) {
	query, args := buildListQuery(filter, includePrivate)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_items")
	}
	defer rows.Close()

	summaries := make([]*Summary, 0, len(args))
	total := 0
	for rows.Next() {
		s := &Summary{}
		err := rows.Scan(
			&s.ID, &s.Name, &s.NameAr, &s.IsPublic,
			&s.DisplayDateOverride, &s.EarliestCreation, &s.LatestCreation,
			&s.ThumbnailPath, &s.ImageCount,
			&s.rank, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_item_summary")
		}
		summaries = append(summaries, s)
	}

	return summaries, total, rows.Err()
}

func (repository *PostgresRepository) Get(ctx context.Context, id string, includePrivate bool) (*Item, error) {
	t := schema.CatalogItem

	visibility := ""
	if !includePrivate {
		visibility = fmt.Sprintf(" AND %s = TRUE", t.IsPublic)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1%s`,
		strings.Join(t.Columns(), ", "), t.Table, t.ID, visibility)

	it := &Item{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.NameAr, &it.IsPublic, &it.Description, &it.DescriptionAr,
		&it.Inscription, &it.TranslatedInscription, &it.TranslatedInscriptionAr,
		&it.CurrentLocation, &it.Dimensions, &it.Interpretations,
		&it.BibliographicReferences, &it.DisplayDateOverride, &it.EarliestCreation,
		&it.LatestCreation, &it.CultureOther, &it.FindspotOther, &it.ProvenanceOther,
		&it.InscriptionStyleID, &it.FindspotID, &it.ProvenanceID,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_item")
	}

	if err := repository.loadAssociations(ctx, it, includePrivate); err != nil {
		return nil, err
	}
	return it, nil
}

// loadAssociations resolves tag sets, single-term references, images, and
// contributions for a detail read.
func (repository *PostgresRepository) loadAssociations(ctx context.Context, it *Item, includePrivate bool) error {
	tagSets := []struct {
		junction schema.JunctionTable
		kind     term.Kind
		target   *[]term.Ref
	}{
		{schema.ItemCategory, term.KindCategory, &it.Categories},
		{schema.ItemCulture, term.KindCulture, &it.Cultures},
		{schema.ItemLanguage, term.KindLanguage, &it.Languages},
		{schema.ItemTechnique, term.KindTechnique, &it.Techniques},
		{schema.ItemMaterial, term.KindMaterial, &it.Materials},
		{schema.ItemSubject, term.KindSubject, &it.Subjects},
	}
	for _, tagSet := range tagSets {
		refs, err := repository.loadTagSet(ctx, tagSet.junction, tagSet.kind, it.ID)
		if err != nil {
			return err
		}
		*tagSet.target = refs
	}

	singles := []struct {
		kind   term.Kind
		id     *int
		target **term.Ref
	}{
		{term.KindInscriptionStyle, it.InscriptionStyleID, &it.InscriptionStyle},
		{term.KindLocation, it.FindspotID, &it.Findspot},
		{term.KindLocation, it.ProvenanceID, &it.Provenance},
	}
	for _, single := range singles {
		if single.id == nil {
			continue
		}
		ref, err := repository.loadTermRef(ctx, single.kind, *single.id)
		if err != nil {
			return err
		}
		*single.target = ref
	}

	var err error
	if it.Images, err = repository.loadImages(ctx, it.ID, includePrivate); err != nil {
		return err
	}
	if it.RemoteImages, err = repository.loadRemoteImages(ctx, it.ID); err != nil {
		return err
	}
	if it.Contributions, err = repository.loadContributions(ctx, it.ID); err != nil {
		return err
	}
	return nil
}

func (repository *PostgresRepository) loadTagSet(ctx context.Context, junction schema.JunctionTable, kind term.Kind, itemID string) ([]term.Ref, error) {
	t := kind.Table()
	query := fmt.Sprintf(
		`SELECT t.%s, t.%s, t.%s FROM %s t JOIN %s j ON j.%s = t.%s WHERE j.%s = $1 ORDER BY t.%s ASC`,
		t.ID, t.Label, t.Slug, t.Table, junction.Table, junction.TermID, t.ID, junction.ItemID, t.Label,
	)

	rows, err := repository.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "load_item_tags")
	}
	defer rows.Close()

	refs := make([]term.Ref, 0)
	for rows.Next() {
		var ref term.Ref
		if err := rows.Scan(&ref.ID, &ref.Label, &ref.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_item_tag")
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (repository *PostgresRepository) loadTermRef(ctx context.Context, kind term.Kind, id int) (*term.Ref, error) {
	t := kind.Table()
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Label, t.Slug, t.Table, t.ID)

	ref := &term.Ref{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&ref.ID, &ref.Label, &ref.Slug)
	if err != nil {
		return nil, dberr.Wrap(err, "load_term_ref")
	}
	return ref, nil
}

func (repository *PostgresRepository) loadImages(ctx context.Context, itemID string, includePrivate bool) ([]media.Image, error) {
	t := schema.CatalogImage

	visibility := ""
	if !includePrivate {
		visibility = fmt.Sprintf(" AND %s = TRUE", t.IsPublic)
	}

	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1%s ORDER BY %s ASC, %s ASC`,
		t.ID, t.ItemID, t.Name, t.IsPublic, t.ImagePath, t.ImageWidth, t.ImageHeight,
		t.ThumbnailPath, t.Description, t.License, t.SortOrder, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ItemID, visibility, t.SortOrder, t.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "load_item_images")
	}
	defer rows.Close()

	images := make([]media.Image, 0)
	for rows.Next() {
		var image media.Image
		err := rows.Scan(
			&image.ID, &image.ItemID, &image.Name, &image.IsPublic, &image.ImagePath,
			&image.ImageWidth, &image.ImageHeight, &image.ThumbnailPath,
			&image.Description, &image.License, &image.SortOrder,
			&image.CreatedAt, &image.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_item_image")
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (repository *PostgresRepository) loadRemoteImages(ctx context.Context, itemID string) ([]media.RemoteImage, error) {
	t := schema.CatalogRemoteImage
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		t.ID, t.ItemID, t.Name, t.URL, t.Description, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ItemID, t.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "load_item_remote_images")
	}
	defer rows.Close()

	remotes := make([]media.RemoteImage, 0)
	for rows.Next() {
		var remote media.RemoteImage
		err := rows.Scan(
			&remote.ID, &remote.ItemID, &remote.Name, &remote.URL,
			&remote.Description, &remote.CreatedAt, &remote.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_item_remote_image")
		}
		remotes = append(remotes, remote)
	}
	return remotes, rows.Err()
}

// loadContributions returns the item's contributions joined to their people,
// in the registry's default citation-name order.
func (repository *PostgresRepository) loadContributions(ctx context.Context, itemID string) ([]person.Contribution, error) {
	c := schema.CatalogContribution
	p := schema.CatalogPerson

	query := fmt.Sprintf(
		`SELECT c.%s, c.%s, c.%s, c.%s, p.%s, p.%s, p.%s
FROM %s c
JOIN %s p ON p.%s = c.%s
WHERE c.%s = $1
ORDER BY COALESCE(NULLIF(p.%s, ''), p.%s) ASC`,
		c.ID, c.ItemID, c.PersonID, c.MarcRelators, p.ID, p.Fullname, p.CitationName,
		c.Table, p.Table, p.ID, c.PersonID, c.ItemID,
		p.CitationName, p.Fullname,
	)

	rows, err := repository.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "load_item_contributions")
	}
	defer rows.Close()

	contributions := make([]person.Contribution, 0)
	for rows.Next() {
		contribution := person.Contribution{Person: &person.Person{}}
		err := rows.Scan(
			&contribution.ID, &contribution.ItemID, &contribution.PersonID,
			&contribution.MarcRelators,
			&contribution.Person.ID, &contribution.Person.Fullname, &contribution.Person.CitationName,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_item_contribution")
		}
		contributions = append(contributions, contribution)
	}
	return contributions, rows.Err()
}

func (repository *PostgresRepository) Create(ctx context.Context, it *Item, links Links) error {
	t := schema.CatalogItem

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_item")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := fmt.Sprintf(`INSERT INTO %s (
	%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
	%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
	$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
) RETURNING %s, %s`,
		t.Table,
		t.ID, t.Name, t.NameAr, t.IsPublic, t.Description, t.DescriptionAr,
		t.Inscription, t.TranslatedInscription, t.TranslatedInscriptionAr,
		t.CurrentLocation, t.Dimensions,
		t.Interpretations, t.BibliographicReferences, t.DisplayDate,
		t.EarliestCreation, t.LatestCreation, t.CultureOther, t.FindspotOther,
		t.ProvenanceOther, t.InscriptionStyleID, t.FindspotID, t.ProvenanceID,
		t.CreatedAt, t.UpdatedAt,
	)

	err = tx.QueryRow(ctx, query,
		it.ID, it.Name, it.NameAr, it.IsPublic, it.Description, it.DescriptionAr,
		it.Inscription, it.TranslatedInscription, it.TranslatedInscriptionAr,
		it.CurrentLocation, it.Dimensions,
		it.Interpretations, it.BibliographicReferences, it.DisplayDateOverride,
		it.EarliestCreation, it.LatestCreation, it.CultureOther, it.FindspotOther,
		it.ProvenanceOther, it.InscriptionStyleID, it.FindspotID, it.ProvenanceID,
	).Scan(&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_item")
	}

	if err := repository.syncAssociations(ctx, tx, it.ID, links); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "commit_create_item")
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, it *Item, links Links) error {
	t := schema.CatalogItem

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_item")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := fmt.Sprintf(`UPDATE %s SET
	%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
	%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15,
	%s = $16, %s = $17, %s = $18, %s = $19, %s = $20, %s = $21,
	%s = NOW()
WHERE %s = $22
RETURNING %s`,
		t.Table,
		t.Name, t.NameAr, t.IsPublic, t.Description, t.DescriptionAr,
		t.Inscription, t.TranslatedInscription, t.TranslatedInscriptionAr,
		t.CurrentLocation, t.Dimensions, t.Interpretations,
		t.BibliographicReferences, t.DisplayDate, t.EarliestCreation,
		t.LatestCreation, t.CultureOther, t.FindspotOther, t.ProvenanceOther,
		t.InscriptionStyleID, t.FindspotID, t.ProvenanceID,
		t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err = tx.QueryRow(ctx, query,
		it.Name, it.NameAr, it.IsPublic, it.Description, it.DescriptionAr,
		it.Inscription, it.TranslatedInscription, it.TranslatedInscriptionAr,
		it.CurrentLocation, it.Dimensions, it.Interpretations,
		it.BibliographicReferences, it.DisplayDateOverride, it.EarliestCreation,
		it.LatestCreation, it.CultureOther, it.FindspotOther, it.ProvenanceOther,
		it.InscriptionStyleID, it.FindspotID, it.ProvenanceID,
		it.ID,
	).Scan(&it.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_item")
	}

	if err := repository.syncAssociations(ctx, tx, it.ID, links); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "commit_update_item")
	}
	return nil
}

// syncAssociations replaces the item's junction rows and contributions with
// the submitted sets. Clear-and-insert keeps the write path simple and the
// transaction makes it atomic.
func (repository *PostgresRepository) syncAssociations(ctx context.Context, tx pgx.Tx, itemID string, links Links) error {
	junctions := []struct {
		table   schema.JunctionTable
		termIDs []int
	}{
		{schema.ItemCategory, links.CategoryIDs},
		{schema.ItemCulture, links.CultureIDs},
		{schema.ItemLanguage, links.LanguageIDs},
		{schema.ItemTechnique, links.TechniqueIDs},
		{schema.ItemMaterial, links.MaterialIDs},
		{schema.ItemSubject, links.SubjectIDs},
	}

	for _, junction := range junctions {
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			junction.table.Table, junction.table.ItemID)
		if _, err := tx.Exec(ctx, deleteQuery, itemID); err != nil {
			return dberr.Wrap(err, "clear_item_tags")
		}

		insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			junction.table.Table, junction.table.ItemID, junction.table.TermID)
		for _, termID := range junction.termIDs {
			if _, err := tx.Exec(ctx, insert, itemID, termID); err != nil {
				return dberr.Wrap(err, "insert_item_tag")
			}
		}
	}

	c := schema.CatalogContribution
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ItemID)
	if _, err := tx.Exec(ctx, deleteQuery, itemID); err != nil {
		return dberr.Wrap(err, "clear_item_contributions")
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		c.Table, c.ItemID, c.PersonID, c.MarcRelators)
	for _, contribution := range links.Contributions {
		relators := contribution.MarcRelators
		if relators == nil {
			relators = []string{}
		}
		if _, err := tx.Exec(ctx, insert, itemID, contribution.PersonID, relators); err != nil {
			return dberr.Wrap(err, "insert_item_contribution")
		}
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	t := schema.CatalogItem
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	result, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_item")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
