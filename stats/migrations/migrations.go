package migrations

import "embed"

// VersionTable keeps stats migrations apart from the facility ones when both
// services share a database.
const VersionTable = "stats_db_version"

//go:embed *.sql
var MigrationFiles embed.FS
