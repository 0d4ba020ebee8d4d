/*
Package config manages option parsing and defaults-file loading for filegrep.

	            +-------------+
	            |   Options   |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	| Parser    | | Parser | | Parser  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Turns key=value command-line tokens into typed Options
- Loads optional defaults files in multiple formats
- Validates that a run can proceed (term or regexp present)

🔄 Flow:
1. Defaults() seeds the baseline values
2. A config=<path> token loads a defaults file through a registered parser
3. Remaining key=value tokens override file values
4. Validate() gates the run before any pattern is compiled

📝 Design Philosophy:
The option surface is deliberately forgiving: tokens without "=" and
unrecognized keys are ignored, and later duplicates win. Defaults files are
strict instead: unknown keys there are almost certainly typos and are
rejected by the parsers.

🔍 Example:

	opts, err := config.Build(ctx, os.Args[1:])
	if err != nil {
		// defaults-file problem; opts is still usable
	}
	if err := opts.Validate(); err != nil {
		// no term or regexp supplied
	}
*/
package config
