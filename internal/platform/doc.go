package platform

// Package platform contains OS integration glue: directory creation, opening
// and revealing files with the desktop's own tools, and the leveled
// operational logger.
