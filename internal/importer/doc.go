// Package importer orchestrates one synchronous ingest run.
//
// For each regular file beneath the sources it checks run-level content
// identity, resolves a capture date (filename pattern for video, EXIF
// DateTimeOriginal for images), routes to <library>/<year>/<month>/<day>,
// and places the file with collision-safe renaming. Per-file problems are
// logged and skip only that file; missing source folders and a held library
// lock abort the run before anything moves. Duplicates and identical
// collisions are skipped, never deleted from the source.
package importer
