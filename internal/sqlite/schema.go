package sqlite

// createComponents holds every component of the session. Position is the
// 0-based index and stays contiguous across deletes. It is not UNIQUE because
// the shift after a delete renumbers rows one at a time.
const createComponents = `CREATE TABLE components (
    component_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    kind INTEGER NOT NULL,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT ''
);`

const createComponentsPositionIndex = `CREATE INDEX idx_components_position ON components(position);`

// schemaStatements lists DDL statements in execution order.
var schemaStatements = []string{
	createComponents,
	createComponentsPositionIndex,
}
