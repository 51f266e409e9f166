package psqlbuilder

import "github.com/Masterminds/squirrel"

// Построители запросов с плейсхолдерами $1, $2, ... для Postgres

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT-построитель
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT-построитель
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update возвращает UPDATE-построитель
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE-построитель
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
