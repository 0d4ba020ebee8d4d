/*
Package scan implements the traversal engine and file matcher for filegrep.

	+-------------+
	|   Scanner   |
	| (Traversal) |
	+------+------+
	       |
	+------+------+
	|   Matcher   |
	| (Per File)  |
	+------+------+
	       |
	+------+------+
	|    Sink     |
	| (Reporting) |
	+-------------+

🎯 Purpose:
- Recursively enumerates every node under the root
- Applies the per-file filtering policy in a fixed order
- Reads whole-file content and applies the compiled pattern
- Emits matched paths to the injected sink

🔄 Flow:
1. WalkDir visits entries in deterministic lexical order
2. Ignore globs prune entries (and whole directories) first
3. Only regular files with an eligible extension are read
4. A single match anywhere in the content reports the file

⚡ Key Responsibilities:
- Per-file error isolation: unreadable entries and undecodable
  content are debug-logged skips, never run failures
- Sink failures are the one fatal path; the walk aborts

📝 Design Philosophy:
The scanner is single-threaded and synchronous on purpose. File handles are
scoped to one read, nothing is retained between files, and the only state that
outlives the walk is the summary counters.
*/
package scan
