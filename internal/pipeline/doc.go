// Package pipeline provides the declarative manifest mode of langtags. A
// manifest is one or more .hcl files declaring string tables and the jobs
// that run over them: tag extraction and per-language map export.
package pipeline
