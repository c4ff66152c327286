/*
Package status holds the per-step patch outcome and the file access layer
used to read and rewrite build artifacts.

	+-----------+        +-------------+
	|  Outcome  | <----- |  feature /  |
	| (counts)  |        |    text     |
	+-----+-----+        +-------------+
	      |
	+-----+-----+        +-------------+
	| Formatter |        | FileManager |
	| (summary) |        |   (billy)   |
	+-----------+        +-------------+

Files are addressed relative to the project root the billy filesystem is
rooted at. Writes replace the whole file; by default they truncate and
rewrite in place, so an interrupted write can leave a partial file. The
Atomic option writes a sibling .tmp file and renames it over the target.

🔍 Example:

	files := status.New(osfs.New(root), status.Options{})

	content, err := files.ReadFile(ctx, "src/.vite/build/main.js")
	...
	err = files.WriteFile(ctx, "src/.vite/build/main.js", patched)
*/
package status
