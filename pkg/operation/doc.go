/*
Package operation runs the post-build patch against a project root.

	+-------------+
	|   Patcher   |
	+------+------+
	       |
	+------+------+-------------+
	|             |             |
	+------+ +----+-----+ +-----+-----+
	|locate| | feature  | |   text    |
	+------+ | (bundle) | | (main.js) |
	         +----------+ +-----------+

🔄 Flow:
1. Locate the renderer bundle and force the i18n flag read
2. Localize the main-process script with the rule table
3. Print one summary line per step

Both steps always run. A missing file, a stale rule or an I/O error turns
into a warning on that step's report; Run never fails.

🔍 Example:

	p, err := operation.NewFromConfig(ctx, cfg, logger)
	...
	report := p.Run(ctx)
*/
package operation
