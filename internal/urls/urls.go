package urls

// Reference URLs for the prjxray project, whose database supplies the
// frame address layout of every supported part.

// PrjxrayDatabase is the prjxray database repository. A checkout of it is
// what --db, database.dir and XRAY_DATABASE_DIR point at.
const PrjxrayDatabase = "https://github.com/f4pga/prjxray-db"

// Prjxray is the prjxray project, which documents the Series-7
// configuration frame layout and the part.json descriptor format.
const Prjxray = "https://github.com/f4pga/prjxray"
