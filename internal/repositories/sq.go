package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// SqliteBuilder emits `?` placeholders for database/sql on modernc sqlite.
var SqliteBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var ErrBadQuery = errors.New("bad query")
