/*
Package config loads the optional i18npatch configuration.

	            +-------------+
	            |   Config    |
	            |  (paths)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |  JSON   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

Running without a config file uses Default(): the current directory as
root, src/webview/assets/index-*.js as the renderer bundle and
src/.vite/build/main.js as the main-process script. A config file may
override any of these; unknown keys are rejected.

🔍 Example:

	# i18npatch.yaml
	root: ..
	assets_dir: out/renderer/assets
	rules_file: rules.zh.yaml
	backup: true
*/
package config
