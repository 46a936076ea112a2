package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	documentsTable = "documents"

	upsertDocumentSuffix = "ON CONFLICT(root, id) DO UPDATE SET body = excluded.body"
)

func documentKey(root, id string) sq.And {
	return sq.And{sq.Eq{"root": root}, sq.Eq{"id": id}}
}

func buildSelectDocumentQuery(root, id string) (string, []any, error) {
	return sq.Select("body").
		From(documentsTable).
		Where(documentKey(root, id)).
		ToSql()
}

func buildSelectRootQuery(root string) (string, []any, error) {
	return sq.Select("id", "body").
		From(documentsTable).
		Where(sq.Eq{"root": root}).
		OrderBy("id").
		ToSql()
}

func buildUpsertDocumentQuery(root, id, body string) (string, []any, error) {
	return sq.Insert(documentsTable).
		Columns("root", "id", "body").
		Values(root, id, body).
		Suffix(upsertDocumentSuffix).
		ToSql()
}

func buildDeleteDocumentQuery(root, id string) (string, []any, error) {
	return sq.Delete(documentsTable).
		Where(documentKey(root, id)).
		ToSql()
}

func buildDeleteRootQuery(root string) (string, []any, error) {
	return sq.Delete(documentsTable).
		Where(sq.Eq{"root": root}).
		ToSql()
}
