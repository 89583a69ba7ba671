// Package pdfextractor converts scanned PDF documents into searchable text
// and derived analytics. Each page is rendered to a raster image, transcribed
// by an OCR engine, and persisted; per-page text is then consolidated into a
// combined output and aggregated into word-frequency and person-name reports.
// Directory batches process documents sequentially with per-document fault
// isolation, while pages within a document run on a bounded worker pool with
// checkpoint-based resume.
//
// This package contains domain types and collaborator interfaces following
// the standard package layout: implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, poppler/, gosseract/).
package pdfextractor
