// Package library places files into the date-partitioned destination tree.
//
// The Router maps a capture date onto <root>/<year>/<month>/<day> and
// materializes the directory; Place then moves a file in, skipping
// byte-identical collisions and renaming around non-identical ones with
// deterministic -N suffixes. Collision checks compare full content, never
// just digests, so a hash collision can never cause a silent skip or
// overwrite.
package library
