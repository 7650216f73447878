// Package scorelib provides a local, file-backed library for PDF sheet
// music. Each score lives in its own directory (raw PDF, JSON metadata
// record, optional thumbnail) and a single shared catalog file keeps a
// lightweight projection of every record for fast listing and search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, pdftoppm/).
package scorelib
